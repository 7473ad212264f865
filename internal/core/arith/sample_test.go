package arith

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestSampleWithinRangeAndDivisible(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tests := []struct {
		name           string
		low, high, mul int
	}{
		{name: "evens in 1..10", low: 1, high: 10, mul: 2},
		{name: "fives in 0..100", low: 0, high: 100, mul: 5},
		{name: "any in -10..10", low: -10, high: 10, mul: 1},
		{name: "threes in -9..9", low: -9, high: 9, mul: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				got, err := SampleDefault(rng, tt.low, tt.high, tt.mul)
				if err != nil {
					t.Fatalf("Sample returned error: %v", err)
				}
				if got < tt.low || got > tt.high {
					t.Fatalf("Sample = %d, out of range [%d, %d]", got, tt.low, tt.high)
				}
				if got%tt.mul != 0 {
					t.Fatalf("Sample = %d, not a multiple of %d", got, tt.mul)
				}
			}
		})
	}
}

func TestSampleExhaustsWhenNoMultipleExists(t *testing.T) {
	src := &scriptedSource{values: []int{0, 3, 7, 9}}
	_, err := Sample(src, 1, 10, 11, 5)

	var exhausted *AttemptsExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Sample error = %v, want *AttemptsExhaustedError", err)
	}
	if exhausted.Attempts != 5 {
		t.Fatalf("Attempts = %d, want 5", exhausted.Attempts)
	}
	if src.calls != 5 {
		t.Fatalf("draws = %d, want 5", src.calls)
	}
	if err.Error() != "no calculation found within 5 iterations" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestSampleDegenerateRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, attempts := range []int{1, 2, 100} {
		got, err := Sample(rng, 4, 4, 2, attempts)
		if err != nil {
			t.Fatalf("Sample(4, 4, 2, %d) returned error: %v", attempts, err)
		}
		if got != 4 {
			t.Fatalf("Sample(4, 4, 2, %d) = %d, want 4", attempts, got)
		}
	}
}

func TestSampleDegenerateRangeWithoutMultipleUsesFullBudget(t *testing.T) {
	src := &scriptedSource{}
	_, err := Sample(src, 5, 5, 2, 5)
	if !errors.Is(err, ErrAttemptsExhausted) {
		t.Fatalf("Sample error = %v, want ErrAttemptsExhausted", err)
	}
	if src.calls != 5 {
		t.Fatalf("draws = %d, want full budget of 5", src.calls)
	}
}

func TestSampleNonPositiveBudget(t *testing.T) {
	for _, attempts := range []int{0, -1} {
		src := &scriptedSource{}
		_, err := Sample(src, 1, 10, 1, attempts)

		var exhausted *AttemptsExhaustedError
		if !errors.As(err, &exhausted) {
			t.Fatalf("Sample error = %v, want *AttemptsExhaustedError", err)
		}
		if exhausted.Attempts != attempts {
			t.Fatalf("Attempts = %d, want %d", exhausted.Attempts, attempts)
		}
		if src.calls != 0 {
			t.Fatalf("draws = %d, want none", src.calls)
		}
	}
}

func TestSampleSwapsReversedBounds(t *testing.T) {
	src := &scriptedSource{values: []int{0, 9}}
	first, err := Sample(src, 10, 1, 1, 1)
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}
	second, err := Sample(src, 10, 1, 1, 1)
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}
	if first != 1 || second != 10 {
		t.Fatalf("draws = (%d, %d), want (1, 10)", first, second)
	}
}

func TestSampleRejectsZeroMultiple(t *testing.T) {
	src := &scriptedSource{}
	_, err := Sample(src, 1, 10, 0, 5)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("Sample error = %v, want ErrInvalidConfiguration", err)
	}
	if src.calls != 0 {
		t.Fatalf("draws = %d, want none", src.calls)
	}
}

func TestSampleRangeWidth(t *testing.T) {
	tests := []struct {
		name      string
		low       int
		high      int
		wantError bool
	}{
		{name: "full int range", low: math.MinInt, high: math.MaxInt, wantError: true},
		{name: "full int range reversed", low: math.MaxInt, high: math.MinInt, wantError: true},
		{name: "non-negative ints", low: 0, high: math.MaxInt, wantError: true},
		{name: "negative ints", low: math.MinInt, high: -1, wantError: true},
		{name: "widest upper range", low: 0, high: math.MaxInt - 1},
		{name: "widest lower range", low: math.MinInt, high: -2},
		{name: "widest range across zero", low: math.MinInt / 2, high: math.MaxInt/2 - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sample(rand.New(rand.NewSource(1)), tt.low, tt.high, 1, 5)
			if tt.wantError {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Fatalf("Sample error = %v, want ErrInvalidConfiguration", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Sample returned error: %v", err)
			}
			low, high := tt.low, tt.high
			if low > high {
				low, high = high, low
			}
			if got < low || got > high {
				t.Fatalf("Sample = %d, want within [%d, %d]", got, low, high)
			}
		})
	}
}

func TestSampleDefaultSource(t *testing.T) {
	got, err := SampleDefault(nil, 2, 8, 2)
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}
	if got < 2 || got > 8 || got%2 != 0 {
		t.Fatalf("Sample = %d, want an even number in [2, 8]", got)
	}
}
