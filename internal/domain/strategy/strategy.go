// Package strategy provides the initial partition constructors. Each
// strategy takes a scored roster and produces a partition of equal-size
// teams; refinement is the optimizer's job, not theirs.
package strategy

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/okian/teamsplit/internal/domain/model"
)

// ErrUnknown reports a strategy name absent from the registry.
var ErrUnknown = errors.New("unknown strategy")

// Registry keys.
const (
	RoundRobin = "round_robin"
	Random     = "random"
	Cluster    = "cluster"
	Snake      = "snake"
)

// Strategy builds an initial partition from a scored roster. The returned
// partition satisfies the model invariants or the call fails with
// model.ErrPartitionSize.
type Strategy interface {
	Distribute(ctx context.Context, players []model.Player, numTeams, perTeam int) (model.Partition, error)
}

// Info describes a registry entry for reporting.
type Info struct {
	Key         string
	Name        string
	Description string
}

var registry = map[string]Info{
	RoundRobin: {
		Key:         RoundRobin,
		Name:        "Round-Robin Distribution",
		Description: "Distributes players in a snake draft pattern, ensuring top players are spread across teams.",
	},
	Random: {
		Key:         Random,
		Name:        "Tier-Based Random Distribution",
		Description: "Distributes players randomly while maintaining tier balance across teams.",
	},
	Cluster: {
		Key:         Cluster,
		Name:        "Cluster-Based Distribution",
		Description: "Groups similar-strength players together, then distributes groups to maximize diversity within teams.",
	},
	Snake: {
		Key:         Snake,
		Name:        "Pure Snake Draft",
		Description: "Simple snake draft pattern where teams pick players in alternating order without optimization.",
	},
}

// Option applies a configuration option to a strategy.
type Option func(*settings)

type settings struct {
	rng *rand.Rand
}

// WithRand injects the pseudorandom source used by the random strategy.
// Inject a fixed seed to make runs reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// New returns the strategy registered under name.
func New(name string, opts ...Option) (Strategy, error) {
	if _, ok := registry[name]; !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknown, name, Names())
	}

	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	switch name {
	case RoundRobin:
		return roundRobin{}, nil
	case Random:
		return tierRandom{rng: s.rng}, nil
	case Cluster:
		return cluster{}, nil
	default:
		return snake{}, nil
	}
}

// Describe returns the registry entry for name.
func Describe(name string) (Info, error) {
	info, ok := registry[name]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q (valid: %v)", ErrUnknown, name, Names())
	}
	return info, nil
}

// Names lists the registered strategy keys in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// byScoreDesc returns a copy of players stable-sorted by descending score.
// Stability keeps equal-score players in roster order, which downstream
// tie-breaking relies on.
func byScoreDesc(players []model.Player) []model.Player {
	sorted := make([]model.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}
