package strategy

import (
	"context"
	"math/rand"
	"sort"

	"github.com/okian/teamsplit/internal/domain/model"
)

// tierRandom shuffles players within each tier and deals them round-robin,
// so tiers stay spread across teams while the pairing inside a tier varies
// run to run. Falls back to roundRobin if the deal leaves uneven teams.
type tierRandom struct {
	rng *rand.Rand
}

func (s tierRandom) Distribute(ctx context.Context, players []model.Player, numTeams, perTeam int) (model.Partition, error) {
	byTier := make(map[string][]model.Player)
	for _, p := range players {
		byTier[p.Tier] = append(byTier[p.Tier], p)
	}

	tiers := make([]string, 0, len(byTier))
	for tier := range byTier {
		tiers = append(tiers, tier)
	}
	sort.Strings(tiers)

	teams := make(model.Partition, numTeams)
	for i := range teams {
		teams[i] = make(model.Team, 0, perTeam)
	}

	for _, tier := range tiers {
		group := byTier[tier]
		s.rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
		for i, p := range group {
			idx := i % numTeams
			teams[idx] = append(teams[idx], p)
		}
	}

	// Member order has no meaning; shuffling it just avoids a visible
	// tier-sorted pattern in the output.
	for _, team := range teams {
		s.rng.Shuffle(len(team), func(i, j int) {
			team[i], team[j] = team[j], team[i]
		})
	}

	for _, team := range teams {
		if len(team) != perTeam {
			// Safety net: redistribute everything deterministically.
			return roundRobin{}.Distribute(ctx, teams.Players(), numTeams, perTeam)
		}
	}

	if err := teams.Validate(players, perTeam); err != nil {
		return nil, err
	}
	return teams, nil
}
