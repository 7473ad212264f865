package arith

import "fmt"

// Settings defaults applied by NewSettings.
const (
	DefaultMin      = 0
	DefaultMax      = 100
	DefaultMultiple = 1
)

// Settings describes which operators may be drawn and the numeric bounds of
// every operand. Build it with NewSettings; the zero value fails Validate.
type Settings struct {
	modes    []Operator
	min      int
	max      int
	multiple int
}

// Option customizes Settings during construction.
type Option func(*Settings)

// WithRange sets the inclusive operand range.
func WithRange(low, high int) Option {
	return func(s *Settings) {
		s.min = low
		s.max = high
	}
}

// WithMultiple sets the divisor every operand must be a multiple of.
func WithMultiple(multiple int) Option {
	return func(s *Settings) {
		s.multiple = multiple
	}
}

// NewSettings validates and returns settings for the given operators.
// At least one operator is required and the multiple must be positive.
// min <= max is not enforced; Sample swaps reversed bounds.
func NewSettings(modes []Operator, opts ...Option) (Settings, error) {
	s := Settings{
		modes:    append([]Operator(nil), modes...),
		min:      DefaultMin,
		max:      DefaultMax,
		multiple: DefaultMultiple,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the construction rules again. Generate calls it on every
// invocation so a zero-value Settings cannot slip through.
func (s Settings) Validate() error {
	if len(s.modes) == 0 {
		return ErrNoModesAvailable
	}
	if s.multiple <= 0 {
		return fmt.Errorf("%w: multiple must be positive, got %d", ErrInvalidConfiguration, s.multiple)
	}
	return nil
}

// Modes returns a copy of the configured operators in order.
func (s Settings) Modes() []Operator {
	return append([]Operator(nil), s.modes...)
}

// Min returns the inclusive lower bound.
func (s Settings) Min() int { return s.min }

// Max returns the inclusive upper bound.
func (s Settings) Max() int { return s.max }

// Multiple returns the divisibility constraint.
func (s Settings) Multiple() int { return s.multiple }
