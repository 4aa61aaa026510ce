package strategy

import (
	"context"

	"github.com/okian/teamsplit/internal/domain/model"
)

// roundRobin seeds the top player of each team first, then fills the rest
// with alternating-direction sweeps over the remaining players in
// descending score order.
type roundRobin struct{}

func (roundRobin) Distribute(_ context.Context, players []model.Player, numTeams, perTeam int) (model.Partition, error) {
	sorted := byScoreDesc(players)

	teams := make(model.Partition, numTeams)
	for i := range teams {
		teams[i] = make(model.Team, 0, perTeam)
	}

	// Seeding pass: one top player per team.
	for i := 0; i < numTeams; i++ {
		teams[i] = append(teams[i], sorted[i])
	}

	remaining := sorted[numTeams:]
	for sweep := 1; len(remaining) > 0 && allBelow(teams, perTeam); sweep++ {
		forward := sweep%2 == 1
		for k := 0; k < numTeams; k++ {
			idx := k
			if !forward {
				idx = numTeams - 1 - k
			}
			if len(remaining) == 0 || len(teams[idx]) >= perTeam {
				continue
			}
			teams[idx] = append(teams[idx], remaining[0])
			remaining = remaining[1:]
		}
	}

	if err := teams.Validate(players, perTeam); err != nil {
		return nil, err
	}
	return teams, nil
}

func allBelow(teams model.Partition, perTeam int) bool {
	for _, t := range teams {
		if len(t) >= perTeam {
			return false
		}
	}
	return true
}
