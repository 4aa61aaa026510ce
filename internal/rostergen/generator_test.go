package rostergen_test

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/teamsplit/internal/adapters/roster"
	"github.com/okian/teamsplit/internal/domain/scoring"
	"github.com/okian/teamsplit/internal/rostergen"
)

func TestGenerate(t *testing.T) {
	Convey("Given a generation config", t, func() {
		path := filepath.Join(t.TempDir(), "roster.csv")
		cfg := rostergen.Config{Players: 24, Output: path}

		Convey("When generating with a fixed seed", func() {
			err := rostergen.Generate(context.Background(), cfg, rand.New(rand.NewSource(9)), nil)
			So(err, ShouldBeNil)

			Convey("Then the loader accepts every generated row", func() {
				l := roster.New(scoring.Default())
				players, err := l.Load(context.Background(), path)
				So(err, ShouldBeNil)
				So(players, ShouldHaveLength, 24)
			})
		})

		Convey("When the player count is invalid", func() {
			bad := rostergen.Config{Players: 0, Output: path}
			err := rostergen.Generate(context.Background(), bad, rand.New(rand.NewSource(9)), nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestTiersMatchDefaultTable(t *testing.T) {
	Convey("Given the default scoring table", t, func() {
		So(rostergen.ValidateAgainst(scoring.Default()), ShouldBeNil)
	})
}
