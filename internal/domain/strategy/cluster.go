package strategy

import (
	"context"

	"github.com/okian/teamsplit/internal/domain/model"
)

// cluster chunks the descending-score roster into consecutive clusters of
// numTeams players and deals each cluster across the teams, reversing
// direction on odd clusters.
type cluster struct{}

func (cluster) Distribute(_ context.Context, players []model.Player, numTeams, perTeam int) (model.Partition, error) {
	sorted := byScoreDesc(players)

	teams := make(model.Partition, numTeams)
	for i := range teams {
		teams[i] = make(model.Team, 0, perTeam)
	}

	for start, c := 0, 0; start < len(sorted); start, c = start+numTeams, c+1 {
		end := start + numTeams
		if end > len(sorted) {
			end = len(sorted)
		}
		chunk := sorted[start:end]
		for j, p := range chunk {
			if j >= numTeams {
				continue
			}
			idx := j
			if c%2 == 1 {
				idx = numTeams - 1 - j
			}
			teams[idx] = append(teams[idx], p)
		}
	}

	if err := teams.Validate(players, perTeam); err != nil {
		return nil, err
	}
	return teams, nil
}
