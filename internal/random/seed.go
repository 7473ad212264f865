// Package random provides seed generation and resolution for the practice
// generator.
//
// Seeds come from crypto/rand so that server-chosen problems are not
// predictable, while a client-supplied seed can replay an earlier problem
// exactly.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	apperrors "github.com/louisbranch/mathdrill/internal/platform/errors"
)

// SeedSource reports where a resolved seed came from.
type SeedSource string

const (
	SeedSourceServer SeedSource = "server"
	SeedSourceClient SeedSource = "client"
)

const maxSeedInt64 = uint64(math.MaxInt64)

// ErrSeedOutOfRange returns the error reported for client seeds that do not
// fit in an int64.
func ErrSeedOutOfRange() error {
	return apperrors.New(apperrors.CodeSeedOutOfRange, "seed exceeds int64 range")
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRand returns a generator seeded with seed. The result is not safe for
// concurrent use; give each goroutine its own.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ResolveSeed picks the seed for one generation. A requested seed is honored
// only when allowClient is true; otherwise seedFunc supplies a fresh one.
func ResolveSeed(requested *uint64, allowClient bool, seedFunc func() (int64, error)) (int64, SeedSource, error) {
	if requested != nil && allowClient {
		if *requested > maxSeedInt64 {
			return 0, "", ErrSeedOutOfRange()
		}
		return int64(*requested), SeedSourceClient, nil
	}

	if seedFunc == nil {
		seedFunc = NewSeed
	}
	seed, err := seedFunc()
	if err != nil {
		return 0, "", fmt.Errorf("generate seed: %w", err)
	}
	return seed, SeedSourceServer, nil
}
