// Package roster loads and validates the player CSV before anything reaches
// the core. Rows it cannot use are skipped with a warning, never fatal; the
// core trusts that what it receives is clean.
package roster

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/okian/teamsplit/internal/domain/model"
	"github.com/okian/teamsplit/internal/domain/scoring"
	"github.com/okian/teamsplit/pkg/logger"
)

// Skip reasons recorded against the metrics sink.
const (
	reasonShortRow      = "short_row"
	reasonDuplicateName = "duplicate_name"
	reasonUnknownTier   = "unknown_tier"
)

// RowRecorder counts skipped rows. pkg/metrics satisfies it.
type RowRecorder interface {
	RecordRowSkipped(reason string)
}

type nopRecorder struct{}

func (nopRecorder) RecordRowSkipped(string) {}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithLogger sets a custom logger for the loader.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithRecorder wires skip counters to a metrics sink.
func WithRecorder(rec RowRecorder) Option {
	return func(l *Loader) {
		if rec != nil {
			l.rec = rec
		}
	}
}

// Loader reads roster CSVs against a fixed scoring table.
type Loader struct {
	table scoring.Table
	log   logger.Logger
	rec   RowRecorder
}

// New creates a Loader using the provided options.
func New(table scoring.Table, opts ...Option) *Loader {
	l := &Loader{
		table: table,
		rec:   nopRecorder{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads a roster CSV of name,tier rows. The first row is a header and
// is skipped. Blank rows are ignored; rows with fewer than two fields,
// duplicate names, or tiers absent from the table are skipped with a
// warning. Players come back in file order with scores resolved.
func (l *Loader) Load(ctx context.Context, path string) ([]model.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read roster file %s: %w", path, err)
	}
	if len(rows) > 0 {
		rows = rows[1:] // header
	}

	var players []model.Player
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if blank(row) {
			continue
		}
		if len(row) < 2 {
			l.warn(ctx, reasonShortRow, "skipping invalid row", logger.Any("row", row))
			continue
		}

		name := strings.TrimSpace(row[0])
		tier := strings.ToUpper(strings.TrimSpace(row[1]))

		if seen[name] {
			l.warn(ctx, reasonDuplicateName, "skipping duplicate player", logger.String("name", name))
			continue
		}
		score, ok := l.table.Weight(tier)
		if !ok {
			l.warn(ctx, reasonUnknownTier, "skipping player with unknown tier",
				logger.String("name", name),
				logger.String("tier", tier),
				logger.Any("valid_tiers", l.table.Tiers()),
			)
			continue
		}

		players = append(players, model.Player{Name: name, Tier: tier, Score: score})
		seen[name] = true
	}

	return players, nil
}

func (l *Loader) warn(ctx context.Context, reason, msg string, fields ...logger.Field) {
	l.rec.RecordRowSkipped(reason)
	if l.log != nil {
		l.log.Warn(ctx, msg, fields...)
	}
}

func blank(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
