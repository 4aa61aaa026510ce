// Package scoring maps tier labels to the integer weights used everywhere
// downstream. A table is either the built-in default or a full caller-supplied
// replacement; there is no partial override.
package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrWeightFormat reports a custom weight specification that cannot be
// parsed into tier/integer pairs.
var ErrWeightFormat = errors.New("invalid weight format")

// Table maps tier labels to integer weights. The zero value is unusable;
// build one with Default or New.
type Table struct {
	weights map[string]int
}

// Default returns the built-in tier weight table.
func Default() Table {
	return New(map[string]int{
		"S+": 13, "S": 10, "S/A": 9, "A": 8, "A/B": 7, "B": 5, "C": 2,
		"D": 0, "F": -1,
	})
}

// New builds a table from a full replacement mapping. The map is copied so
// later caller mutation cannot leak in.
func New(weights map[string]int) Table {
	w := make(map[string]int, len(weights))
	for tier, weight := range weights {
		w[tier] = weight
	}
	return Table{weights: w}
}

// Weight returns the weight for a tier label and whether the label is known.
func (t Table) Weight(tier string) (int, bool) {
	w, ok := t.weights[tier]
	return w, ok
}

// Tiers returns the known tier labels in sorted order.
func (t Table) Tiers() []string {
	out := make([]string, 0, len(t.weights))
	for tier := range t.weights {
		out = append(out, tier)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of known tiers.
func (t Table) Len() int { return len(t.weights) }

// ParseWeights parses a comma-separated list of TIER:INTEGER pairs, such as
// "S:13,A:8,B:5", into a replacement table. Labels are upper-cased to match
// the roster loader's normalization.
func ParseWeights(spec string) (Table, error) {
	weights := make(map[string]int)
	for _, pair := range strings.Split(spec, ",") {
		tier, value, ok := strings.Cut(pair, ":")
		if !ok {
			return Table{}, fmt.Errorf("%w: %q is not a TIER:INTEGER pair", ErrWeightFormat, pair)
		}
		tier = strings.ToUpper(strings.TrimSpace(tier))
		if tier == "" {
			return Table{}, fmt.Errorf("%w: empty tier label in %q", ErrWeightFormat, pair)
		}
		weight, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return Table{}, fmt.Errorf("%w: weight in %q is not an integer", ErrWeightFormat, pair)
		}
		weights[tier] = weight
	}
	if len(weights) == 0 {
		return Table{}, fmt.Errorf("%w: no pairs in %q", ErrWeightFormat, spec)
	}
	return New(weights), nil
}
