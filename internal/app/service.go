// Package app provides the orchestrator that runs the requested partition
// strategies, refines their results, and ranks them by balance score.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/okian/teamsplit/internal/domain/balance"
	"github.com/okian/teamsplit/internal/domain/model"
	"github.com/okian/teamsplit/internal/domain/optimize"
	"github.com/okian/teamsplit/internal/domain/strategy"
	"github.com/okian/teamsplit/pkg/logger"
)

// ErrValidation reports an invalid roster/team-count combination, raised
// before any strategy runs.
var ErrValidation = errors.New("invalid team setup")

// minTeams is the smallest number of teams worth partitioning into.
const minTeams = 2

// Result packages one strategy's final partition and its evaluation.
type Result struct {
	Key         string
	Name        string
	Description string
	Teams       model.Partition
	Evaluation  balance.Evaluation
	Optimized   bool
	Elapsed     time.Duration
}

// Recorder extends the optimizer's counters with per-strategy timings.
type Recorder interface {
	optimize.Recorder
	ObserveStrategyDuration(strategy string, d time.Duration)
}

type nopRecorder struct{ optimize.Recorder }

func (nopRecorder) ObserveStrategyDuration(string, time.Duration) {}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRand injects the pseudorandom source handed to the random strategy.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithRecorder wires run counters and timings to a metrics sink.
func WithRecorder(rec Recorder) Option {
	return func(s *Service) {
		if rec != nil {
			s.rec = rec
		}
	}
}

// WithMaxIterations caps the optimizer's outer iterations.
func WithMaxIterations(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}

// WithNoImprovementLimit sets the optimizer's rejected-candidate limit.
func WithNoImprovementLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.noImprovementLimit = n
		}
	}
}

// Service runs strategies over a roster and ranks the outcomes. The work is
// synchronous and CPU-bound; Run returns when every strategy has finished.
type Service struct {
	log                logger.Logger
	rng                *rand.Rand
	rec                Recorder
	maxIterations      int
	noImprovementLimit int
}

// New creates a Service using the provided options.
func New(opts ...Option) *Service {
	s := &Service{
		rec: nopRecorder{Recorder: noCounters{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type noCounters struct{}

func (noCounters) RecordEvaluation()   {}
func (noCounters) RecordSwapAccepted() {}
func (noCounters) RecordSwapRejected() {}

// Run partitions the roster with every requested strategy, optimizes each
// result except the pure snake baseline, and returns all results sorted
// ascending by score (best balance first).
func (s *Service) Run(ctx context.Context, players []model.Player, numTeams int, strategies []string) ([]Result, error) {
	perTeam, err := validate(players, numTeams)
	if err != nil {
		return nil, err
	}

	optOpts := []optimize.Option{optimize.WithRecorder(s.rec)}
	if s.maxIterations > 0 {
		optOpts = append(optOpts, optimize.WithMaxIterations(s.maxIterations))
	}
	if s.noImprovementLimit > 0 {
		optOpts = append(optOpts, optimize.WithNoImprovementLimit(s.noImprovementLimit))
	}
	if s.log != nil {
		optOpts = append(optOpts, optimize.WithLogger(s.log))
	}
	optimizer := optimize.New(optOpts...)

	results := make([]Result, 0, len(strategies))
	for _, name := range strategies {
		res, err := s.runOne(ctx, optimizer, name, players, numTeams, perTeam)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	// Stable: strategies that tie keep their requested order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Evaluation.Score < results[j].Evaluation.Score
	})
	return results, nil
}

func (s *Service) runOne(ctx context.Context, optimizer *optimize.Optimizer, name string, players []model.Player, numTeams, perTeam int) (Result, error) {
	info, err := strategy.Describe(name)
	if err != nil {
		return Result{}, err
	}

	var opts []strategy.Option
	if s.rng != nil {
		opts = append(opts, strategy.WithRand(s.rng))
	}
	strat, err := strategy.New(name, opts...)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	teams, err := strat.Distribute(ctx, players, numTeams, perTeam)
	if err != nil {
		return Result{}, fmt.Errorf("strategy %s: %w", name, err)
	}

	// The snake baseline is reported as built to show what the optimizer
	// buys elsewhere.
	var ev balance.Evaluation
	optimized := name != strategy.Snake
	if optimized {
		teams, ev = optimizer.Optimize(ctx, teams)
	} else {
		ev = balance.Evaluate(teams)
	}
	elapsed := time.Since(start)
	s.rec.ObserveStrategyDuration(name, elapsed)

	if s.log != nil {
		s.log.Debug(ctx, "strategy finished",
			logger.String("strategy", name),
			logger.Float64("score", ev.Score),
			logger.Any("elapsed", elapsed),
		)
	}

	return Result{
		Key:         info.Key,
		Name:        info.Name,
		Description: info.Description,
		Teams:       teams,
		Evaluation:  ev,
		Optimized:   optimized,
		Elapsed:     elapsed,
	}, nil
}

func validate(players []model.Player, numTeams int) (int, error) {
	if numTeams < minTeams {
		return 0, fmt.Errorf("%w: number of teams must be at least %d, got %d", ErrValidation, minTeams, numTeams)
	}
	if len(players) < numTeams {
		return 0, fmt.Errorf("%w: not enough players (%d) for %d teams", ErrValidation, len(players), numTeams)
	}
	if len(players)%numTeams != 0 {
		return 0, fmt.Errorf("%w: %d players cannot be split evenly into %d teams", ErrValidation, len(players), numTeams)
	}
	return len(players) / numTeams, nil
}
