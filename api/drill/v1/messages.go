// Package drillv1 defines the drill.v1.DrillService wire contract.
//
// Messages travel as google.protobuf.Struct values so the service needs no
// generated code; the typed structs here convert to and from that form.
// Seeds are carried as decimal strings because Struct numbers are doubles
// and cannot hold every 64-bit value. Request bounds are 32-bit integers;
// operands and results may reach the exact-double range, since a SUBTRACT
// result spans twice the configured range.
package drillv1

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"
)

// ErrMalformedMessage reports a Struct that does not match the message shape.
var ErrMalformedMessage = errors.New("malformed message")

// Field names used in the Struct encoding.
const (
	fieldModes       = "modes"
	fieldMin         = "min"
	fieldMax         = "max"
	fieldMultiple    = "multiple"
	fieldMaxAttempts = "max_attempts"
	fieldSeed        = "seed"
	fieldReplay      = "replay"
	fieldLocale      = "locale"
	fieldProblemID   = "problem_id"
	fieldA           = "a"
	fieldB           = "b"
	fieldC           = "c"
	fieldOperator    = "operator"
	fieldPrompt      = "prompt"
	fieldSeedSource  = "seed_source"
	fieldAnswer      = "answer"
	fieldCorrect     = "correct"
	fieldFeedback    = "feedback"
)

// GenerateRequest asks for one problem. Nil bounds fall back to the
// generator defaults; a zero MaxAttempts uses the default budget.
type GenerateRequest struct {
	Modes       []string
	Min         *int
	Max         *int
	Multiple    *int
	MaxAttempts int
	// Seed replays a previous problem when the server allows it.
	Seed   *uint64
	Replay bool
	Locale string
}

// GenerateResponse carries the generated problem and how to replay it.
type GenerateResponse struct {
	ProblemID  string
	A          int
	B          int
	C          int
	Operator   string
	Prompt     string
	Seed       int64
	SeedSource string
}

// EvaluateRequest checks an answer against a previously generated problem.
type EvaluateRequest struct {
	A        int
	B        int
	C        int
	Operator string
	Answer   string
	Locale   string
}

// EvaluateResponse reports the verdict with localized feedback.
type EvaluateResponse struct {
	Correct  bool
	Feedback string
}

// ToStruct encodes the request.
func (r *GenerateRequest) ToStruct() *structpb.Struct {
	fields := map[string]*structpb.Value{}
	if r == nil {
		return &structpb.Struct{Fields: fields}
	}
	if len(r.Modes) > 0 {
		modes := make([]*structpb.Value, 0, len(r.Modes))
		for _, mode := range r.Modes {
			modes = append(modes, structpb.NewStringValue(mode))
		}
		fields[fieldModes] = structpb.NewListValue(&structpb.ListValue{Values: modes})
	}
	putOptionalInt(fields, fieldMin, r.Min)
	putOptionalInt(fields, fieldMax, r.Max)
	putOptionalInt(fields, fieldMultiple, r.Multiple)
	if r.MaxAttempts != 0 {
		fields[fieldMaxAttempts] = structpb.NewNumberValue(float64(r.MaxAttempts))
	}
	if r.Seed != nil {
		fields[fieldSeed] = structpb.NewStringValue(strconv.FormatUint(*r.Seed, 10))
	}
	if r.Replay {
		fields[fieldReplay] = structpb.NewBoolValue(true)
	}
	if r.Locale != "" {
		fields[fieldLocale] = structpb.NewStringValue(r.Locale)
	}
	return &structpb.Struct{Fields: fields}
}

// GenerateRequestFromStruct decodes a request.
func GenerateRequestFromStruct(s *structpb.Struct) (*GenerateRequest, error) {
	fields := s.GetFields()
	req := &GenerateRequest{}

	if v, ok := fields[fieldModes]; ok {
		list, ok := v.GetKind().(*structpb.Value_ListValue)
		if !ok {
			return nil, fieldError(fieldModes, "expected a list")
		}
		for i, item := range list.ListValue.GetValues() {
			str, ok := item.GetKind().(*structpb.Value_StringValue)
			if !ok {
				return nil, fieldError(fmt.Sprintf("%s[%d]", fieldModes, i), "expected a string")
			}
			req.Modes = append(req.Modes, str.StringValue)
		}
	}

	var err error
	if req.Min, err = optionalInt(fields, fieldMin); err != nil {
		return nil, err
	}
	if req.Max, err = optionalInt(fields, fieldMax); err != nil {
		return nil, err
	}
	if req.Multiple, err = optionalInt(fields, fieldMultiple); err != nil {
		return nil, err
	}
	if req.MaxAttempts, err = requiredInt(fields, fieldMaxAttempts, false, settingBounds); err != nil {
		return nil, err
	}
	if v, ok := fields[fieldSeed]; ok {
		raw, err := stringField(v, fieldSeed)
		if err != nil {
			return nil, err
		}
		seed, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fieldError(fieldSeed, "expected an unsigned integer")
		}
		req.Seed = &seed
	}
	if req.Replay, err = boolField(fields, fieldReplay); err != nil {
		return nil, err
	}
	if req.Locale, err = optionalString(fields, fieldLocale); err != nil {
		return nil, err
	}
	return req, nil
}

// ToStruct encodes the response.
func (r *GenerateResponse) ToStruct() *structpb.Struct {
	if r == nil {
		return &structpb.Struct{Fields: map[string]*structpb.Value{}}
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldProblemID:  structpb.NewStringValue(r.ProblemID),
		fieldA:          structpb.NewNumberValue(float64(r.A)),
		fieldB:          structpb.NewNumberValue(float64(r.B)),
		fieldC:          structpb.NewNumberValue(float64(r.C)),
		fieldOperator:   structpb.NewStringValue(r.Operator),
		fieldPrompt:     structpb.NewStringValue(r.Prompt),
		fieldSeed:       structpb.NewStringValue(strconv.FormatInt(r.Seed, 10)),
		fieldSeedSource: structpb.NewStringValue(r.SeedSource),
	}}
}

// GenerateResponseFromStruct decodes a response.
func GenerateResponseFromStruct(s *structpb.Struct) (*GenerateResponse, error) {
	fields := s.GetFields()
	resp := &GenerateResponse{}
	var err error
	if resp.ProblemID, err = optionalString(fields, fieldProblemID); err != nil {
		return nil, err
	}
	if resp.A, resp.B, resp.C, err = operands(fields); err != nil {
		return nil, err
	}
	if resp.Operator, err = optionalString(fields, fieldOperator); err != nil {
		return nil, err
	}
	if resp.Prompt, err = optionalString(fields, fieldPrompt); err != nil {
		return nil, err
	}
	rawSeed, err := optionalString(fields, fieldSeed)
	if err != nil {
		return nil, err
	}
	if rawSeed != "" {
		if resp.Seed, err = strconv.ParseInt(rawSeed, 10, 64); err != nil {
			return nil, fieldError(fieldSeed, "expected an integer")
		}
	}
	if resp.SeedSource, err = optionalString(fields, fieldSeedSource); err != nil {
		return nil, err
	}
	return resp, nil
}

// ToStruct encodes the request.
func (r *EvaluateRequest) ToStruct() *structpb.Struct {
	if r == nil {
		return &structpb.Struct{Fields: map[string]*structpb.Value{}}
	}
	fields := map[string]*structpb.Value{
		fieldA:        structpb.NewNumberValue(float64(r.A)),
		fieldB:        structpb.NewNumberValue(float64(r.B)),
		fieldC:        structpb.NewNumberValue(float64(r.C)),
		fieldOperator: structpb.NewStringValue(r.Operator),
		fieldAnswer:   structpb.NewStringValue(r.Answer),
	}
	if r.Locale != "" {
		fields[fieldLocale] = structpb.NewStringValue(r.Locale)
	}
	return &structpb.Struct{Fields: fields}
}

// EvaluateRequestFromStruct decodes a request. The problem operands are
// required; the answer may be empty.
func EvaluateRequestFromStruct(s *structpb.Struct) (*EvaluateRequest, error) {
	fields := s.GetFields()
	req := &EvaluateRequest{}
	var err error
	if req.A, req.B, req.C, err = operands(fields); err != nil {
		return nil, err
	}
	if req.Operator, err = optionalString(fields, fieldOperator); err != nil {
		return nil, err
	}
	if req.Answer, err = optionalString(fields, fieldAnswer); err != nil {
		return nil, err
	}
	if req.Locale, err = optionalString(fields, fieldLocale); err != nil {
		return nil, err
	}
	return req, nil
}

// ToStruct encodes the response.
func (r *EvaluateResponse) ToStruct() *structpb.Struct {
	if r == nil {
		return &structpb.Struct{Fields: map[string]*structpb.Value{}}
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldCorrect:  structpb.NewBoolValue(r.Correct),
		fieldFeedback: structpb.NewStringValue(r.Feedback),
	}}
}

// EvaluateResponseFromStruct decodes a response.
func EvaluateResponseFromStruct(s *structpb.Struct) (*EvaluateResponse, error) {
	fields := s.GetFields()
	resp := &EvaluateResponse{}
	var err error
	if resp.Correct, err = boolField(fields, fieldCorrect); err != nil {
		return nil, err
	}
	if resp.Feedback, err = optionalString(fields, fieldFeedback); err != nil {
		return nil, err
	}
	return resp, nil
}

func operands(fields map[string]*structpb.Value) (a, b, c int, err error) {
	if a, err = requiredInt(fields, fieldA, true, operandBounds); err != nil {
		return 0, 0, 0, err
	}
	if b, err = requiredInt(fields, fieldB, true, operandBounds); err != nil {
		return 0, 0, 0, err
	}
	if c, err = requiredInt(fields, fieldC, true, operandBounds); err != nil {
		return 0, 0, 0, err
	}
	return a, b, c, nil
}

func putOptionalInt(fields map[string]*structpb.Value, key string, v *int) {
	if v != nil {
		fields[key] = structpb.NewNumberValue(float64(*v))
	}
}

func optionalInt(fields map[string]*structpb.Value, key string) (*int, error) {
	if _, ok := fields[key]; !ok {
		return nil, nil
	}
	n, err := requiredInt(fields, key, true, settingBounds)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// intBounds limits the integral numbers a field accepts.
type intBounds struct {
	min, max float64
	desc     string
}

var (
	settingBounds = intBounds{min: math.MinInt32, max: math.MaxInt32, desc: "a 32-bit integer"}
	operandBounds = intBounds{min: -(1 << 53), max: 1 << 53, desc: "an integer within ±2^53"}
)

// requiredInt reads an integral number within bounds. When required is false
// a missing field yields zero.
func requiredInt(fields map[string]*structpb.Value, key string, required bool, bounds intBounds) (int, error) {
	v, ok := fields[key]
	if !ok {
		if required {
			return 0, fieldError(key, "is required")
		}
		return 0, nil
	}
	num, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fieldError(key, "expected a number")
	}
	f := num.NumberValue
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f > bounds.max || f < bounds.min {
		return 0, fieldError(key, "expected "+bounds.desc)
	}
	return int(f), nil
}

func optionalString(fields map[string]*structpb.Value, key string) (string, error) {
	v, ok := fields[key]
	if !ok {
		return "", nil
	}
	return stringField(v, key)
}

func stringField(v *structpb.Value, key string) (string, error) {
	str, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fieldError(key, "expected a string")
	}
	return str.StringValue, nil
}

func boolField(fields map[string]*structpb.Value, key string) (bool, error) {
	v, ok := fields[key]
	if !ok {
		return false, nil
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, fieldError(key, "expected a bool")
	}
	return b.BoolValue, nil
}

func fieldError(key, problem string) error {
	return fmt.Errorf("%w: field %q %s", ErrMalformedMessage, key, problem)
}
