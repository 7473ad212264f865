package arith

import (
	"errors"
	"testing"
)

func TestNewSettingsDefaults(t *testing.T) {
	s, err := NewSettings([]Operator{OperatorAdd})
	if err != nil {
		t.Fatalf("NewSettings returned error: %v", err)
	}
	if s.Min() != 0 || s.Max() != 100 || s.Multiple() != 1 {
		t.Fatalf("defaults = (%d, %d, %d), want (0, 100, 1)", s.Min(), s.Max(), s.Multiple())
	}
	if modes := s.Modes(); len(modes) != 1 || modes[0] != OperatorAdd {
		t.Fatalf("modes = %v, want [ADD]", modes)
	}
}

func TestNewSettingsOptions(t *testing.T) {
	s, err := NewSettings([]Operator{OperatorAdd, OperatorSubtract}, WithRange(10, 200), WithMultiple(5))
	if err != nil {
		t.Fatalf("NewSettings returned error: %v", err)
	}
	if s.Min() != 10 || s.Max() != 200 || s.Multiple() != 5 {
		t.Fatalf("settings = (%d, %d, %d), want (10, 200, 5)", s.Min(), s.Max(), s.Multiple())
	}
	if len(s.Modes()) != 2 {
		t.Fatalf("modes = %v, want two modes", s.Modes())
	}
}

func TestNewSettingsErrors(t *testing.T) {
	tests := []struct {
		name    string
		modes   []Operator
		opts    []Option
		wantErr error
	}{
		{name: "nil modes", modes: nil, wantErr: ErrNoModesAvailable},
		{name: "empty modes", modes: []Operator{}, wantErr: ErrNoModesAvailable},
		{name: "zero multiple", modes: []Operator{OperatorAdd}, opts: []Option{WithMultiple(0)}, wantErr: ErrInvalidConfiguration},
		{name: "negative multiple", modes: []Operator{OperatorAdd}, opts: []Option{WithMultiple(-2)}, wantErr: ErrInvalidConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSettings(tt.modes, tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewSettings error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNoModesIsInvalidConfiguration(t *testing.T) {
	_, err := NewSettings(nil)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("error = %v, want it to match ErrInvalidConfiguration", err)
	}
}

func TestSettingsModesAreCopied(t *testing.T) {
	modes := []Operator{OperatorAdd}
	s, err := NewSettings(modes)
	if err != nil {
		t.Fatalf("NewSettings returned error: %v", err)
	}

	modes[0] = OperatorSubtract
	if got := s.Modes()[0]; got != OperatorAdd {
		t.Fatalf("mode after caller mutation = %v, want ADD", got)
	}

	out := s.Modes()
	out[0] = OperatorSubtract
	if got := s.Modes()[0]; got != OperatorAdd {
		t.Fatalf("mode after mutating Modes() result = %v, want ADD", got)
	}
}

func TestZeroSettingsFailValidate(t *testing.T) {
	if err := (Settings{}).Validate(); !errors.Is(err, ErrNoModesAvailable) {
		t.Fatalf("Validate error = %v, want ErrNoModesAvailable", err)
	}
}
