package strategy

import (
	"context"

	"github.com/okian/teamsplit/internal/domain/model"
)

// snake assigns rank i to a boustrophedon team index from rank 0 on, with
// no seeding pass. Reported unoptimized as the naive baseline.
type snake struct{}

func (snake) Distribute(_ context.Context, players []model.Player, numTeams, perTeam int) (model.Partition, error) {
	sorted := byScoreDesc(players)

	teams := make(model.Partition, numTeams)
	for i := range teams {
		teams[i] = make(model.Team, 0, perTeam)
	}

	for i, p := range sorted {
		round := i / numTeams
		idx := i % numTeams
		if round%2 == 1 {
			idx = numTeams - 1 - idx
		}
		teams[idx] = append(teams[idx], p)
	}

	if err := teams.Validate(players, perTeam); err != nil {
		return nil, err
	}
	return teams, nil
}
