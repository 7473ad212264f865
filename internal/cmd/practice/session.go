package practice

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"time"

	drillv1 "github.com/louisbranch/mathdrill/api/drill/v1"
	"github.com/louisbranch/mathdrill/internal/core/arith"
	platformgrpc "github.com/louisbranch/mathdrill/internal/platform/grpc"
	"github.com/louisbranch/mathdrill/internal/platform/i18n/catalog"
	"github.com/louisbranch/mathdrill/internal/platform/timeouts"
	"github.com/louisbranch/mathdrill/internal/random"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// problem is one generated question with the text shown to the learner.
type problem struct {
	calc   arith.Calculation
	prompt string
}

// problemSource produces problems and grades answers for a session.
type problemSource interface {
	Next(ctx context.Context) (problem, error)
	Check(ctx context.Context, p problem, answer string) (bool, string, error)
}

type localSource struct {
	src      arith.Source
	settings arith.Settings
	locale   string
}

func newLocalSource(cfg Config, requested *uint64) (*localSource, error) {
	settings, err := settingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	seed, err := localSeed(requested)
	if err != nil {
		return nil, err
	}
	return &localSource{
		src:      random.NewRand(seed),
		settings: settings,
		locale:   cfg.Locale,
	}, nil
}

func (s *localSource) Next(context.Context) (problem, error) {
	calc, err := arith.GenerateDefault(s.src, s.settings)
	if err != nil {
		return problem{}, err
	}
	printer := catalog.Default().Printer(s.locale)
	return problem{
		calc:   calc,
		prompt: printer.Sprintf("drill.prompt", calc.A, calc.Operator.Symbol(), calc.B),
	}, nil
}

func (s *localSource) Check(_ context.Context, p problem, answer string) (bool, string, error) {
	correct := arith.Evaluate(p.calc, answer)
	key := "drill.incorrect"
	if correct {
		key = "drill.correct"
	}
	printer := catalog.Default().Printer(s.locale)
	return correct, printer.Sprintf(key, p.calc.A, p.calc.Operator.Symbol(), p.calc.B, p.calc.C), nil
}

type remoteSource struct {
	conn    *grpc.ClientConn
	client  drillv1.DrillServiceClient
	request drillv1.GenerateRequest
	timeout time.Duration
	// nextSeed advances by one per problem when the session replays a seed.
	nextSeed *uint64
}

func dialRemote(ctx context.Context, cfg Config, requested *uint64, logger *log.Logger) (*remoteSource, error) {
	conn, err := platformgrpc.DialWithHealth(ctx, cfg.GRPCAddr, drillv1.ServiceName, timeouts.GRPCDial, logger.Printf)
	if err != nil {
		return nil, fmt.Errorf("connect to drill server %s: %w", cfg.GRPCAddr, err)
	}

	minimum, maximum, multiple := cfg.Min, cfg.Max, cfg.Multiple
	return &remoteSource{
		conn:   conn,
		client: drillv1.NewDrillServiceClient(conn),
		request: drillv1.GenerateRequest{
			Modes:    splitModes(cfg.Modes),
			Min:      &minimum,
			Max:      &maximum,
			Multiple: &multiple,
			Locale:   cfg.Locale,
		},
		timeout:  requestTimeout(cfg),
		nextSeed: requested,
	}, nil
}

func (s *remoteSource) Close() error {
	return s.conn.Close()
}

func (s *remoteSource) Next(ctx context.Context) (problem, error) {
	req := s.request
	if s.nextSeed != nil {
		seed := *s.nextSeed
		req.Seed = &seed
		req.Replay = true
		next := seed + 1
		if seed == math.MaxInt64 {
			next = 0
		}
		s.nextSeed = &next
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	resp, err := s.client.Generate(callCtx, &req)
	if err != nil {
		return problem{}, fmt.Errorf("generate: %s", userMessage(err))
	}
	op, err := arith.ParseOperator(resp.Operator)
	if err != nil {
		return problem{}, err
	}
	return problem{
		calc:   arith.Calculation{A: resp.A, B: resp.B, C: resp.C, Operator: op},
		prompt: resp.Prompt,
	}, nil
}

func (s *remoteSource) Check(ctx context.Context, p problem, answer string) (bool, string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	resp, err := s.client.Evaluate(callCtx, &drillv1.EvaluateRequest{
		A:        p.calc.A,
		B:        p.calc.B,
		C:        p.calc.C,
		Operator: p.calc.Operator.String(),
		Answer:   answer,
		Locale:   s.request.Locale,
	})
	if err != nil {
		return false, "", fmt.Errorf("evaluate: %s", userMessage(err))
	}
	return resp.Correct, resp.Feedback, nil
}

// runSession asks up to rounds problems, reading one answer per line from in.
// The session ends early when in is exhausted.
func runSession(ctx context.Context, source problemSource, rounds int, locale string, in io.Reader, out io.Writer) error {
	if rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", rounds)
	}
	scanner := bufio.NewScanner(in)
	asked, correct := 0, 0

	for round := 1; round <= rounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, err := source.Next(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "[%d/%d] %s ", round, rounds, p.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		asked++
		ok, feedback, err := source.Check(ctx, p, scanner.Text())
		if err != nil {
			return err
		}
		if ok {
			correct++
		}
		fmt.Fprintln(out, feedback)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read answers: %w", err)
	}

	printer := catalog.Default().Printer(locale)
	fmt.Fprintln(out, printer.Sprintf("drill.summary", correct, asked))
	return nil
}

// userMessage prefers the localized message the drill server attaches to its
// status errors, then the status message, then err itself.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	st, ok := status.FromError(err)
	if !ok {
		return err.Error()
	}
	for _, detail := range st.Details() {
		if localized, ok := detail.(*errdetails.LocalizedMessage); ok && localized.GetMessage() != "" {
			return localized.GetMessage()
		}
	}
	return st.Message()
}
