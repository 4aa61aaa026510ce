// Command gen-roster writes a synthetic roster CSV for trying the balancer.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/okian/teamsplit/internal/domain/scoring"
	"github.com/okian/teamsplit/internal/rostergen"
	"github.com/okian/teamsplit/pkg/logger"
)

const defaultPlayers = 24

func main() {
	var (
		players = flag.Int("players", defaultPlayers, "number of players to generate")
		seed    = flag.Int64("seed", 0, "pseudorandom seed (0 = time-based)")
		output  = flag.String("output", "roster.csv", "destination CSV file")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: failed to initialize logging:", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ctx := context.Background()
	cfg := rostergen.Config{Players: *players, Seed: *seed, Output: *output}

	if err := rostergen.ValidateAgainst(scoring.Default()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if err := rostergen.Generate(ctx, cfg, rand.New(rand.NewSource(*seed)), logger.Get()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
