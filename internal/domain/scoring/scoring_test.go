package scoring_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	scoring "github.com/okian/teamsplit/internal/domain/scoring"
)

func TestDefaultTable(t *testing.T) {
	Convey("Given the default tier table", t, func() {
		table := scoring.Default()

		Convey("Then it should carry the built-in weights", func() {
			cases := map[string]int{
				"S+": 13, "S": 10, "S/A": 9, "A": 8, "A/B": 7,
				"B": 5, "C": 2, "D": 0, "F": -1,
			}
			So(table.Len(), ShouldEqual, len(cases))
			for tier, want := range cases {
				w, ok := table.Weight(tier)
				So(ok, ShouldBeTrue)
				So(w, ShouldEqual, want)
			}
		})

		Convey("Then unknown labels should not resolve", func() {
			_, ok := table.Weight("X")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestNewReplacesNotMerges(t *testing.T) {
	Convey("Given a caller-supplied table", t, func() {
		table := scoring.New(map[string]int{"X": 1})

		Convey("Then default tiers should be gone", func() {
			_, ok := table.Weight("S")
			So(ok, ShouldBeFalse)

			w, ok := table.Weight("X")
			So(ok, ShouldBeTrue)
			So(w, ShouldEqual, 1)
		})
	})

	Convey("Given a source map that is mutated afterwards", t, func() {
		src := map[string]int{"A": 8}
		table := scoring.New(src)
		src["A"] = 99

		Convey("Then the table should keep its own copy", func() {
			w, _ := table.Weight("A")
			So(w, ShouldEqual, 8)
		})
	})
}

func TestParseWeights(t *testing.T) {
	Convey("Given a well-formed weight spec", t, func() {
		table, err := scoring.ParseWeights("S:13, a:8 ,B:-2")

		Convey("Then parsing should succeed with upper-cased labels", func() {
			So(err, ShouldBeNil)
			So(table.Len(), ShouldEqual, 3)

			w, ok := table.Weight("A")
			So(ok, ShouldBeTrue)
			So(w, ShouldEqual, 8)

			w, ok = table.Weight("B")
			So(ok, ShouldBeTrue)
			So(w, ShouldEqual, -2)
		})
	})

	Convey("Given malformed specs", t, func() {
		for _, spec := range []string{"", "S", "S:", "S:x", ":5", "S:1:2"} {
			_, err := scoring.ParseWeights(spec)

			Convey("Then "+spec+" should be rejected", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, scoring.ErrWeightFormat)
			})
		}
	})

	Convey("Given sorted tier listing", t, func() {
		table := scoring.New(map[string]int{"C": 2, "A": 8, "B": 5})
		So(table.Tiers(), ShouldResemble, []string{"A", "B", "C"})
	})
}
