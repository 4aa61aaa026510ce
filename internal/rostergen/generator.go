// Package rostergen produces synthetic roster CSVs for trying out the
// balancer without real player data.
package rostergen

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"

	"github.com/okian/teamsplit/internal/domain/scoring"
	"github.com/okian/teamsplit/pkg/logger"
)

// Config holds generation parameters.
type Config struct {
	Players int    // number of rows to generate
	Seed    int64  // pseudorandom seed; 0 means time-based upstream
	Output  string // destination CSV path
}

// tierWeights skews generation toward mid tiers so synthetic rosters look
// like real ladders: few S+ players, a fat middle, a thin tail.
var tierWeights = []struct {
	tier   string
	weight int
}{
	{"S+", 2},
	{"S", 5},
	{"S/A", 6},
	{"A", 12},
	{"A/B", 12},
	{"B", 25},
	{"C", 20},
	{"D", 12},
	{"F", 6},
}

// Generate writes a roster CSV of cfg.Players rows with unique names and
// tier labels drawn from the default scoring table.
func Generate(ctx context.Context, cfg Config, rng *rand.Rand, log logger.Logger) error {
	if cfg.Players <= 0 {
		return fmt.Errorf("players must be > 0, got %d", cfg.Players)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create roster file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"name", "tier"}); err != nil {
		return err
	}
	for i := 0; i < cfg.Players; i++ {
		row := []string{fmt.Sprintf("player-%03d", i+1), pickTier(rng)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	if err := w.Error(); err != nil {
		return fmt.Errorf("write roster file: %w", err)
	}

	if log != nil {
		log.Info(ctx, "roster generated",
			logger.String("output", cfg.Output),
			logger.Int("players", cfg.Players),
		)
	}
	return nil
}

func pickTier(rng *rand.Rand) string {
	total := 0
	for _, tw := range tierWeights {
		total += tw.weight
	}
	n := rng.Intn(total)
	for _, tw := range tierWeights {
		if n < tw.weight {
			return tw.tier
		}
		n -= tw.weight
	}
	return tierWeights[len(tierWeights)-1].tier
}

// Tiers returns the labels generation draws from, for sanity checks against
// a scoring table.
func Tiers() []string {
	out := make([]string, len(tierWeights))
	for i, tw := range tierWeights {
		out[i] = tw.tier
	}
	return out
}

// ValidateAgainst confirms every generated tier resolves in the table.
func ValidateAgainst(table scoring.Table) error {
	for _, tier := range Tiers() {
		if _, ok := table.Weight(tier); !ok {
			return fmt.Errorf("generator tier %q missing from scoring table", tier)
		}
	}
	return nil
}
