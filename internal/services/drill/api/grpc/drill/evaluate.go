package drill

import (
	"context"

	drillv1 "github.com/louisbranch/mathdrill/api/drill/v1"
	"github.com/louisbranch/mathdrill/internal/core/arith"
	apperrors "github.com/louisbranch/mathdrill/internal/platform/errors"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Evaluate checks an answer against the problem carried in the request.
// Answers that do not parse as numbers are reported as incorrect.
func (s *Service) Evaluate(ctx context.Context, in *drillv1.EvaluateRequest) (*drillv1.EvaluateResponse, error) {
	_, span := tracer.Start(ctx, "drill.Evaluate")
	defer span.End()

	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "evaluate request is required")
	}
	locale := s.messages.ResolveLocale(in.Locale)

	op, err := arith.ParseOperator(in.Operator)
	if err != nil {
		recordError(span, err)
		return nil, apperrors.HandleError(err, locale)
	}
	calc := arith.Calculation{A: in.A, B: in.B, C: in.C, Operator: op}
	if !calc.Holds() {
		err := apperrors.New(apperrors.CodeInvalidRequest, "problem does not hold: "+calc.String())
		recordError(span, err)
		return nil, apperrors.HandleError(err, locale)
	}

	correct := arith.Evaluate(calc, in.Answer)
	span.SetAttributes(
		attribute.String("drill.operator", op.String()),
		attribute.Bool("drill.correct", correct),
	)

	key := "drill.incorrect"
	if correct {
		key = "drill.correct"
	}
	printer := s.messages.Printer(locale)
	return &drillv1.EvaluateResponse{
		Correct:  correct,
		Feedback: printer.Sprintf(key, calc.A, op.Symbol(), calc.B, calc.C),
	}, nil
}
