// Package drill implements the drill.v1.DrillService gRPC API on top of the
// arith generator.
package drill

import (
	drillv1 "github.com/louisbranch/mathdrill/api/drill/v1"
	"github.com/louisbranch/mathdrill/internal/platform/i18n/catalog"
	"github.com/louisbranch/mathdrill/internal/platform/id"
	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/mathdrill/internal/services/drill"

// MaxAttemptsLimit caps the per-operand budget a client may request.
const MaxAttemptsLimit = 10000

var tracer = otel.Tracer(tracerName)

// Service implements drillv1.DrillServiceServer.
type Service struct {
	drillv1.UnimplementedDrillServiceServer

	seedFunc    func() (int64, error)
	idFunc      func() (string, error)
	allowReplay bool
	messages    *catalog.Bundle
}

// Option customizes a Service.
type Option func(*Service)

// WithReplay allows clients to supply their own seed when they ask for a
// replay.
func WithReplay(allow bool) Option {
	return func(s *Service) {
		s.allowReplay = allow
	}
}

// WithIDFunc replaces the problem identifier generator.
func WithIDFunc(fn func() (string, error)) Option {
	return func(s *Service) {
		if fn != nil {
			s.idFunc = fn
		}
	}
}

// WithCatalog replaces the message bundle used for prompts and feedback.
func WithCatalog(bundle *catalog.Bundle) Option {
	return func(s *Service) {
		if bundle != nil {
			s.messages = bundle
		}
	}
}

// NewService creates a drill service that draws server seeds from seedFunc.
func NewService(seedFunc func() (int64, error), opts ...Option) *Service {
	s := &Service{
		seedFunc: seedFunc,
		idFunc:   id.NewID,
		messages: catalog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Error())
}
