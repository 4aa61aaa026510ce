package roster_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/teamsplit/internal/adapters/roster"
	"github.com/okian/teamsplit/internal/domain/scoring"
)

type recordingSink struct {
	reasons []string
}

func (r *recordingSink) RecordRowSkipped(reason string) {
	r.reasons = append(r.reasons, reason)
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCleanRoster(t *testing.T) {
	Convey("Given a clean roster file", t, func() {
		path := writeCSV(t, "name,tier\nann,S\nbob,a\ncia, b \n")
		l := roster.New(scoring.Default())

		players, err := l.Load(context.Background(), path)
		So(err, ShouldBeNil)

		Convey("Then players come back in file order, normalized and scored", func() {
			So(players, ShouldHaveLength, 3)
			So(players[0].Name, ShouldEqual, "ann")
			So(players[0].Tier, ShouldEqual, "S")
			So(players[0].Score, ShouldEqual, 10)
			So(players[1].Tier, ShouldEqual, "A")
			So(players[1].Score, ShouldEqual, 8)
			So(players[2].Name, ShouldEqual, "cia")
			So(players[2].Tier, ShouldEqual, "B")
			So(players[2].Score, ShouldEqual, 5)
		})
	})
}

func TestLoadSkipsBadRows(t *testing.T) {
	Convey("Given a roster with blank, short, duplicate and unknown-tier rows", t, func() {
		content := "name,tier\n" +
			"ann,S\n" +
			"   ,  \n" +
			"bob\n" +
			"ann,B\n" +
			"cia,X\n" +
			"dan,C\n"
		path := writeCSV(t, content)
		sink := &recordingSink{}
		l := roster.New(scoring.Default(), roster.WithRecorder(sink))

		players, err := l.Load(context.Background(), path)
		So(err, ShouldBeNil)

		Convey("Then only the usable rows survive", func() {
			So(players, ShouldHaveLength, 2)
			So(players[0].Name, ShouldEqual, "ann")
			So(players[1].Name, ShouldEqual, "dan")
		})

		Convey("Then each skip is recorded with its reason", func() {
			So(sink.reasons, ShouldResemble, []string{"short_row", "duplicate_name", "unknown_tier"})
		})
	})
}

func TestLoadCustomTableRejectsDefaultTiers(t *testing.T) {
	Convey("Given a custom table without the default tiers", t, func() {
		path := writeCSV(t, "name,tier\nann,S\nbob,X\n")
		table, err := scoring.ParseWeights("X:1")
		So(err, ShouldBeNil)

		l := roster.New(table)
		players, err := l.Load(context.Background(), path)
		So(err, ShouldBeNil)

		Convey("Then tier S is rejected upstream and never reaches the core", func() {
			So(players, ShouldHaveLength, 1)
			So(players[0].Name, ShouldEqual, "bob")
			So(players[0].Score, ShouldEqual, 1)
		})
	})
}

func TestLoadMissingFile(t *testing.T) {
	Convey("Given a path that does not exist", t, func() {
		l := roster.New(scoring.Default())
		_, err := l.Load(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
		So(err, ShouldNotBeNil)
	})
}
