// Command teamsplit partitions a roster CSV into balanced teams.
//
// Usage:
//
//	teamsplit -n 4 roster.csv
//	teamsplit -n 2 -s round_robin,snake -w "S:13,A:8,B:5" roster.csv
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/okian/teamsplit/internal/adapters/report"
	"github.com/okian/teamsplit/internal/adapters/roster"
	app "github.com/okian/teamsplit/internal/app"
	"github.com/okian/teamsplit/internal/config"
	"github.com/okian/teamsplit/internal/domain/scoring"
	"github.com/okian/teamsplit/pkg/logger"
	"github.com/okian/teamsplit/pkg/metrics"
)

// Exit codes: 1 for run failures, 2 for usage/config mistakes.
const (
	exitFailure = 1
	exitUsage   = 2
)

type flags struct {
	rosterPath    string
	numTeams      int
	strategies    string
	customWeights string
	seed          int64
	jsonOut       string
	metricsOut    string
	logLevel      string
}

func parseFlags(args []string) (*flags, map[string]bool, error) {
	f := &flags{}
	fs := flag.NewFlagSet("teamsplit", flag.ContinueOnError)

	fs.IntVar(&f.numTeams, "num-teams", 0, "number of teams to create (required)")
	fs.IntVar(&f.numTeams, "n", 0, "shorthand for -num-teams")
	fs.StringVar(&f.strategies, "strategies", "", "comma-separated strategies to run")
	fs.StringVar(&f.strategies, "s", "", "shorthand for -strategies")
	fs.StringVar(&f.customWeights, "custom-weights", "", `replacement tier weights, e.g. "S:13,A:8,B:5"`)
	fs.StringVar(&f.customWeights, "w", "", "shorthand for -custom-weights")
	fs.Int64Var(&f.seed, "seed", 0, "seed for the random strategy (0 = time-based)")
	fs.StringVar(&f.jsonOut, "json-out", "", "write the report as JSON to this file")
	fs.StringVar(&f.metricsOut, "metrics-out", "", "write run metrics as a Prometheus textfile")
	fs.StringVar(&f.logLevel, "log-level", "", "log verbosity: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() != 1 {
		return nil, nil, errors.New("exactly one roster CSV path is required")
	}
	f.rosterPath = fs.Arg(0)

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set, nil
}

// override lays explicitly set flags over the loaded config.
func override(cfg *config.Config, f *flags, set map[string]bool) {
	if set["num-teams"] || set["n"] {
		cfg.NumTeams = f.numTeams
	}
	if set["strategies"] || set["s"] {
		cfg.Strategies = f.strategies
	}
	if set["custom-weights"] || set["w"] {
		cfg.CustomWeights = f.customWeights
	}
	if set["seed"] {
		cfg.Seed = f.seed
	}
	if set["json-out"] {
		cfg.JSONOut = f.jsonOut
	}
	if set["metrics-out"] {
		cfg.MetricsOut = f.metricsOut
	}
	if set["log-level"] {
		cfg.LogLevel = f.logLevel
	}
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	f, set, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitUsage
	}

	if err := logger.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: failed to initialize logging:", err)
		return exitFailure
	}
	log := logger.Get()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitUsage
	}
	override(cfg, f, set)
	if len(cfg.StrategyList()) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no strategies requested")
		return exitUsage
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel))
		_ = logger.SetLevelString("info")
	}

	table := scoring.Default()
	if cfg.CustomWeights != "" {
		table, err = scoring.ParseWeights(cfg.CustomWeights)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return exitUsage
		}
	}

	mgr := metrics.NewManager()
	runID := uuid.New().String()
	log.Info(ctx, "starting balancing run",
		logger.String("run_id", runID),
		logger.String("roster", f.rosterPath),
		logger.Int("num_teams", cfg.NumTeams),
	)

	loader := roster.New(table, roster.WithLogger(log.Named("loader")), roster.WithRecorder(mgr))
	players, err := loader.Load(ctx, f.rosterPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitFailure
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	svc := app.New(
		app.WithLogger(log.Named("orchestrator")),
		app.WithRand(rand.New(rand.NewSource(seed))),
		app.WithRecorder(mgr),
		app.WithMaxIterations(cfg.MaxIterations),
		app.WithNoImprovementLimit(cfg.NoImprovementLimit),
	)
	results, err := svc.Run(ctx, players, cfg.NumTeams, cfg.StrategyList())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitFailure
	}

	if err := report.RenderText(os.Stdout, results); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitFailure
	}
	if cfg.JSONOut != "" {
		if err := report.WriteJSON(cfg.JSONOut, runID, results); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return exitFailure
		}
	}
	if cfg.MetricsOut != "" {
		if err := mgr.WriteTextfile(cfg.MetricsOut); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return exitFailure
		}
	}

	log.Info(ctx, "balancing run finished",
		logger.String("run_id", runID),
		logger.Int("strategies", len(results)),
		logger.Float64("best_score", results[0].Evaluation.Score),
	)
	return 0
}
