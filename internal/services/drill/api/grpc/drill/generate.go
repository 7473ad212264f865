package drill

import (
	"context"
	"fmt"

	drillv1 "github.com/louisbranch/mathdrill/api/drill/v1"
	"github.com/louisbranch/mathdrill/internal/core/arith"
	apperrors "github.com/louisbranch/mathdrill/internal/platform/errors"
	"github.com/louisbranch/mathdrill/internal/random"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Generate produces one problem for the requested settings.
func (s *Service) Generate(ctx context.Context, in *drillv1.GenerateRequest) (*drillv1.GenerateResponse, error) {
	_, span := tracer.Start(ctx, "drill.Generate")
	defer span.End()

	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "generate request is required")
	}
	if s.seedFunc == nil {
		return nil, status.Error(codes.Internal, "seed generator is not configured")
	}
	locale := s.messages.ResolveLocale(in.Locale)

	settings, err := settingsFromRequest(in)
	if err != nil {
		recordError(span, err)
		return nil, apperrors.HandleError(err, locale)
	}
	attempts, err := attemptsFromRequest(in.MaxAttempts)
	if err != nil {
		recordError(span, err)
		return nil, apperrors.HandleError(err, locale)
	}

	seed, seedSource, err := random.ResolveSeed(in.Seed, s.allowReplay && in.Replay, s.seedFunc)
	if err != nil {
		recordError(span, err)
		return nil, apperrors.HandleError(err, locale)
	}
	span.SetAttributes(
		attribute.Int64("drill.seed", seed),
		attribute.String("drill.seed_source", string(seedSource)),
	)

	calc, err := arith.Generate(random.NewRand(seed), settings, attempts)
	if err != nil {
		recordError(span, err)
		return nil, apperrors.HandleError(err, locale)
	}
	span.SetAttributes(attribute.String("drill.operator", calc.Operator.String()))

	problemID, err := s.idFunc()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "generate problem id: %v", err)
	}

	printer := s.messages.Printer(locale)
	return &drillv1.GenerateResponse{
		ProblemID:  problemID,
		A:          calc.A,
		B:          calc.B,
		C:          calc.C,
		Operator:   calc.Operator.String(),
		Prompt:     printer.Sprintf("drill.prompt", calc.A, calc.Operator.Symbol(), calc.B),
		Seed:       seed,
		SeedSource: string(seedSource),
	}, nil
}

func settingsFromRequest(in *drillv1.GenerateRequest) (arith.Settings, error) {
	modes, err := arith.ParseOperators(in.Modes)
	if err != nil {
		return arith.Settings{}, err
	}

	low, high := arith.DefaultMin, arith.DefaultMax
	if in.Min != nil {
		low = *in.Min
	}
	if in.Max != nil {
		high = *in.Max
	}
	opts := []arith.Option{arith.WithRange(low, high)}
	if in.Multiple != nil {
		opts = append(opts, arith.WithMultiple(*in.Multiple))
	}
	return arith.NewSettings(modes, opts...)
}

func attemptsFromRequest(requested int) (int, error) {
	switch {
	case requested == 0:
		return arith.DefaultMaxAttempts, nil
	case requested < 0 || requested > MaxAttemptsLimit:
		return 0, apperrors.New(apperrors.CodeInvalidRequest,
			fmt.Sprintf("max_attempts must be between 1 and %d, got %d", MaxAttemptsLimit, requested))
	default:
		return requested, nil
	}
}
