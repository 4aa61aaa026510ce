// Package model contains domain models passed between layers.
package model

import (
	"errors"
	"fmt"
)

// ErrPartitionSize reports a team whose size differs from the required
// players-per-team count. Callers discriminate with errors.Is.
var ErrPartitionSize = errors.New("partition size mismatch")

// Player is an immutable roster entry. Score is derived from Tier by the
// scoring table before the player reaches the core.
type Player struct {
	Name  string
	Tier  string
	Score int
}

// Team is a set of players; member order carries no meaning.
type Team []Player

// Strength is the sum of member scores.
func (t Team) Strength() int {
	total := 0
	for _, p := range t {
		total += p.Score
	}
	return total
}

// TierCounts returns how many members carry each tier label.
func (t Team) TierCounts() map[string]int {
	counts := make(map[string]int, len(t))
	for _, p := range t {
		counts[p.Tier]++
	}
	return counts
}

// Clone returns an independent copy of the team.
func (t Team) Clone() Team {
	out := make(Team, len(t))
	copy(out, t)
	return out
}

// Partition assigns every roster player to exactly one of a fixed number of
// equal-size teams.
type Partition []Team

// Clone returns a deep copy; mutating the copy never touches the original.
func (p Partition) Clone() Partition {
	out := make(Partition, len(p))
	for i, t := range p {
		out[i] = t.Clone()
	}
	return out
}

// Players flattens the partition back into a single roster, teams in order.
func (p Partition) Players() []Player {
	var out []Player
	for _, t := range p {
		out = append(out, t...)
	}
	return out
}

// Validate checks the two partition invariants: every team holds exactly
// perTeam players, and every roster player appears exactly once.
func (p Partition) Validate(roster []Player, perTeam int) error {
	for i, t := range p {
		if len(t) != perTeam {
			return fmt.Errorf("%w: team %d has %d players, want %d", ErrPartitionSize, i+1, len(t), perTeam)
		}
	}
	seen := make(map[string]bool, len(roster))
	for _, t := range p {
		for _, player := range t {
			if seen[player.Name] {
				return fmt.Errorf("player %q assigned more than once", player.Name)
			}
			seen[player.Name] = true
		}
	}
	for _, player := range roster {
		if !seen[player.Name] {
			return fmt.Errorf("player %q missing from partition", player.Name)
		}
	}
	return nil
}
