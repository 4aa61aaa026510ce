// Package report renders ranked balancing results for humans (console text)
// and machines (JSON file).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	app "github.com/okian/teamsplit/internal/app"
	"github.com/okian/teamsplit/internal/domain/model"
)

const (
	headerRule = 70
	teamRule   = 40
)

// RenderText writes the ranked results to w in the console format: one
// OPTION block per strategy with its metrics and team compositions.
func RenderText(w io.Writer, results []app.Result) error {
	for i, res := range results {
		if _, err := fmt.Fprintf(w, "\n\nOPTION %d: %s\n", i+1, res.Name); err != nil {
			return err
		}
		fmt.Fprintln(w, strings.Repeat("=", headerRule))
		fmt.Fprintf(w, "Description: %s\n", res.Description)
		fmt.Fprintf(w, "Strength variance: %.2f\n", res.Evaluation.StrengthVariance)
		fmt.Fprintf(w, "Max strength difference between teams: %d\n", res.Evaluation.StrengthDiff)
		fmt.Fprintf(w, "Tier imbalance score: %.2f\n", res.Evaluation.TierImbalance)
		fmt.Fprintf(w, "Overall balance score: %.2f (lower is better)\n", res.Evaluation.Score)

		renderTeams(w, res.Teams)
	}
	return nil
}

func renderTeams(w io.Writer, teams model.Partition) {
	fmt.Fprintln(w, "\nTeam Distributions:")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	for i, team := range teams {
		fmt.Fprintf(w, "\nTeam %d (Total Strength: %d)\n", i+1, team.Strength())
		fmt.Fprintln(w, strings.Repeat("-", teamRule))

		for _, p := range sortedByRank(team) {
			fmt.Fprintf(w, "%s (Tier %s)\n", p.Name, p.Tier)
		}
	}
}

// sortedByRank orders members strongest first, name as the tie-break so
// output is stable for equal scores.
func sortedByRank(team model.Team) model.Team {
	out := team.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Envelope is the JSON report wrapper.
type Envelope struct {
	RunID       string   `json:"run_id"`
	GeneratedAt string   `json:"generated_at"`
	Options     []Option `json:"options"`
}

// Option is one ranked strategy result in the JSON report.
type Option struct {
	Rank             int     `json:"rank"`
	Strategy         string  `json:"strategy"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Optimized        bool    `json:"optimized"`
	StrengthVariance float64 `json:"strength_variance"`
	StrengthDiff     int     `json:"strength_diff"`
	TierImbalance    float64 `json:"tier_imbalance"`
	Score            float64 `json:"score"`
	Teams            []Team  `json:"teams"`
}

// Team is one team in the JSON report.
type Team struct {
	Strength int      `json:"strength"`
	Members  []Member `json:"members"`
}

// Member is one player in the JSON report.
type Member struct {
	Name  string `json:"name"`
	Tier  string `json:"tier"`
	Score int    `json:"score"`
}

// WriteJSON writes the ranked results to path as an indented JSON envelope.
func WriteJSON(path, runID string, results []app.Result) error {
	env := Envelope{
		RunID:       runID,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Options:     make([]Option, 0, len(results)),
	}
	for i, res := range results {
		opt := Option{
			Rank:             i + 1,
			Strategy:         res.Key,
			Name:             res.Name,
			Description:      res.Description,
			Optimized:        res.Optimized,
			StrengthVariance: res.Evaluation.StrengthVariance,
			StrengthDiff:     res.Evaluation.StrengthDiff,
			TierImbalance:    res.Evaluation.TierImbalance,
			Score:            res.Evaluation.Score,
		}
		for _, team := range res.Teams {
			jt := Team{Strength: team.Strength()}
			for _, p := range sortedByRank(team) {
				jt.Members = append(jt.Members, Member{Name: p.Name, Tier: p.Tier, Score: p.Score})
			}
			opt.Teams = append(opt.Teams, jt)
		}
		env.Options = append(env.Options, opt)
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
