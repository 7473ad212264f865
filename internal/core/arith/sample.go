package arith

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultMaxAttempts is the attempt budget used when callers do not pick one.
const DefaultMaxAttempts = 100

// Source is the randomness capability consumed by Sample and Generate.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n). n is always positive.
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// DefaultSource returns a Source backed by the process-wide math/rand
// generator, which is safe for concurrent use and not reproducible.
func DefaultSource() Source {
	return globalSource{}
}

// Sample draws integers uniformly from [low, high] and returns the first one
// divisible by multiple. It draws at most maxAttempts times and returns an
// *AttemptsExhaustedError when no draw qualifies, even when the range holds
// a single value whose outcome is known after the first draw.
//
// Reversed bounds are swapped. A zero multiple, or a range holding more than
// math.MaxInt values, is rejected with ErrInvalidConfiguration.
func Sample(src Source, low, high, multiple, maxAttempts int) (int, error) {
	if multiple == 0 {
		return 0, fmt.Errorf("%w: multiple must not be zero", ErrInvalidConfiguration)
	}
	if src == nil {
		src = DefaultSource()
	}
	if low > high {
		low, high = high, low
	}
	span := uint64(high) - uint64(low)
	if span >= math.MaxInt {
		return 0, fmt.Errorf("%w: range [%d, %d] is too wide", ErrInvalidConfiguration, low, high)
	}
	n := int(span + 1)

	for attempts := 0; attempts < maxAttempts; attempts++ {
		candidate := int(uint64(low) + uint64(src.Intn(n)))
		if candidate%multiple == 0 {
			return candidate, nil
		}
	}

	return 0, &AttemptsExhaustedError{Attempts: maxAttempts}
}

// SampleDefault is Sample with DefaultMaxAttempts.
func SampleDefault(src Source, low, high, multiple int) (int, error) {
	return Sample(src, low, high, multiple, DefaultMaxAttempts)
}
