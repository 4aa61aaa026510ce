// Package optimize refines a partition with a bounded greedy local search
// over single-swap and paired-swap neighborhoods.
package optimize

import (
	"context"

	"github.com/okian/teamsplit/internal/domain/balance"
	"github.com/okian/teamsplit/internal/domain/model"
	"github.com/okian/teamsplit/pkg/logger"
)

// Default search bounds. The rejection counter advances per candidate, so
// the no-improvement limit usually ends the search long before the
// iteration budget does.
const (
	defaultMaxIterations      = 1000
	defaultNoImprovementLimit = 100
	pairedSwapEvery           = 10
)

// Recorder receives search counters. pkg/metrics satisfies it; a nil-free
// no-op is used when nothing is wired.
type Recorder interface {
	RecordEvaluation()
	RecordSwapAccepted()
	RecordSwapRejected()
}

type nopRecorder struct{}

func (nopRecorder) RecordEvaluation()   {}
func (nopRecorder) RecordSwapAccepted() {}
func (nopRecorder) RecordSwapRejected() {}

// Option applies a configuration option to the Optimizer.
type Option func(*Optimizer)

// WithMaxIterations caps the number of outer search iterations.
func WithMaxIterations(n int) Option {
	return func(o *Optimizer) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithNoImprovementLimit aborts the search after n rejected candidates in a
// row.
func WithNoImprovementLimit(n int) Option {
	return func(o *Optimizer) {
		if n > 0 {
			o.noImprovementLimit = n
		}
	}
}

// WithLogger sets a custom logger for the optimizer.
func WithLogger(log logger.Logger) Option {
	return func(o *Optimizer) {
		if log != nil {
			o.log = log
		}
	}
}

// WithRecorder wires search counters to a metrics sink.
func WithRecorder(rec Recorder) Option {
	return func(o *Optimizer) {
		if rec != nil {
			o.rec = rec
		}
	}
}

// Optimizer performs the local search. Safe to reuse across partitions; it
// keeps no per-run state.
type Optimizer struct {
	maxIterations      int
	noImprovementLimit int
	log                logger.Logger
	rec                Recorder
}

// New creates an Optimizer using the provided options.
func New(opts ...Option) *Optimizer {
	o := &Optimizer{
		maxIterations:      defaultMaxIterations,
		noImprovementLimit: defaultNoImprovementLimit,
		rec:                nopRecorder{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Optimize returns a partition whose score is never worse than the input's.
// The input is not mutated; every candidate move works on an independent
// copy and the current best reference is swapped only on acceptance.
//
// Acceptance is greedy first-improvement over a fixed scan order: an
// accepted candidate immediately becomes the baseline for the rest of the
// pass, so the scan order is part of the observable behavior.
func (o *Optimizer) Optimize(ctx context.Context, p model.Partition) (model.Partition, balance.Evaluation) {
	best := p.Clone()
	bestEval := o.evaluate(best)
	if bestEval.Score == 0 {
		return best, bestEval
	}

	noImprove := 0
	iterations := 0
	for iter := 0; iter < o.maxIterations; iter++ {
		if noImprove >= o.noImprovementLimit || ctx.Err() != nil {
			break
		}
		iterations++

		// Single-swap pass: exchange one member between every team pair.
		for i := 0; i < len(best); i++ {
			for j := i + 1; j < len(best); j++ {
				for p1 := 0; p1 < len(best[i]); p1++ {
					for p2 := 0; p2 < len(best[j]); p2++ {
						cand := best.Clone()
						cand[i][p1], cand[j][p2] = cand[j][p2], cand[i][p1]

						ev := o.evaluate(cand)
						if ev.Score < bestEval.Score {
							best, bestEval = cand, ev
							noImprove = 0
							o.rec.RecordSwapAccepted()
							if bestEval.Score == 0 {
								o.logDone(ctx, iterations, bestEval)
								return best, bestEval
							}
						} else {
							noImprove++
							o.rec.RecordSwapRejected()
						}
					}
				}
			}
		}

		// Paired-swap pass: occasionally exchange two members at once.
		if iter%pairedSwapEvery != 0 {
			continue
		}
		for i := 0; i < len(best); i++ {
			for j := i + 1; j < len(best); j++ {
				for p1 := 0; p1 < len(best[i]); p1++ {
					for p2 := p1 + 1; p2 < len(best[i]); p2++ {
						for p3 := 0; p3 < len(best[j]); p3++ {
							for p4 := p3 + 1; p4 < len(best[j]); p4++ {
								cand := best.Clone()
								cand[i][p1], cand[j][p3] = cand[j][p3], cand[i][p1]
								cand[i][p2], cand[j][p4] = cand[j][p4], cand[i][p2]

								ev := o.evaluate(cand)
								if ev.Score < bestEval.Score {
									best, bestEval = cand, ev
									noImprove = 0
									o.rec.RecordSwapAccepted()
									if bestEval.Score == 0 {
										o.logDone(ctx, iterations, bestEval)
										return best, bestEval
									}
								} else {
									noImprove++
									o.rec.RecordSwapRejected()
								}
							}
						}
					}
				}
			}
		}
	}

	o.logDone(ctx, iterations, bestEval)
	return best, bestEval
}

func (o *Optimizer) evaluate(p model.Partition) balance.Evaluation {
	o.rec.RecordEvaluation()
	return balance.Evaluate(p)
}

func (o *Optimizer) logDone(ctx context.Context, iterations int, ev balance.Evaluation) {
	if o.log == nil {
		return
	}
	o.log.Debug(ctx, "local search finished",
		logger.Int("iterations", iterations),
		logger.Float64("score", ev.Score),
	)
}
