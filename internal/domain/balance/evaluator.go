// Package balance scores how evenly a partition spreads strength and tier
// composition across teams. Lower is better; zero is perfect balance.
package balance

import (
	"github.com/okian/teamsplit/internal/domain/model"
)

// Weighting of the combined score. Strength spread dominates, then tier
// composition, then raw variance.
const (
	varianceWeight = 2
	diffWeight     = 10
)

// tierBuckets are the single-letter buckets counted for tier imbalance.
// Composite labels such as "S/A" are counted only on an exact match and so
// never land in a bucket; changing that would change observable scores, so
// the behavior is kept as-is.
var tierBuckets = []string{"S", "A", "B", "C", "D", "E", "F", "G"}

// Evaluation holds the imbalance metrics of one partition. It is derived on
// demand and never cached across mutation.
type Evaluation struct {
	StrengthVariance float64 `json:"strength_variance"`
	StrengthDiff     int     `json:"strength_diff"`
	TierImbalance    float64 `json:"tier_imbalance"`
	Score            float64 `json:"score"`
}

// Evaluate computes the imbalance metrics of a partition. It is a pure
// function: identical partitions always produce identical evaluations.
func Evaluate(p model.Partition) Evaluation {
	strengths := make([]int, len(p))
	tierCounts := make([]map[string]int, len(p))
	for i, team := range p {
		strengths[i] = team.Strength()
		tierCounts[i] = team.TierCounts()
	}

	minS, maxS := strengths[0], strengths[0]
	total := 0
	for _, s := range strengths {
		if s < minS {
			minS = s
		}
		if s > maxS {
			maxS = s
		}
		total += s
	}
	mean := float64(total) / float64(len(strengths))

	variance := 0.0
	for _, s := range strengths {
		d := float64(s) - mean
		variance += d * d
	}
	variance /= float64(len(strengths))

	imbalance := 0.0
	for _, bucket := range tierBuckets {
		present := false
		sum := 0
		for _, counts := range tierCounts {
			if counts[bucket] > 0 {
				present = true
			}
			sum += counts[bucket]
		}
		if !present {
			continue
		}
		bucketMean := float64(sum) / float64(len(tierCounts))
		for _, counts := range tierCounts {
			d := float64(counts[bucket]) - bucketMean
			imbalance += d * d
		}
	}

	diff := maxS - minS
	return Evaluation{
		StrengthVariance: variance,
		StrengthDiff:     diff,
		TierImbalance:    imbalance,
		Score:            variance*varianceWeight + imbalance + float64(diff)*diffWeight,
	}
}
