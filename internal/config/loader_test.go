package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/teamsplit/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no file and no env overrides", t, func() {
		t.Setenv("TEAMSPLIT_CONFIG", "")

		cfg, err := config.Load(context.Background())
		So(err, ShouldBeNil)

		Convey("Then the defaults apply", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.StrategyList(), ShouldResemble, []string{"round_robin", "random", "cluster", "snake"})
			So(cfg.MaxIterations, ShouldEqual, 1000)
			So(cfg.NoImprovementLimit, ShouldEqual, 100)
			So(cfg.NumTeams, ShouldEqual, 0)
			So(cfg.Seed, ShouldEqual, 0)
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	Convey("Given TEAMSPLIT_ environment variables", t, func() {
		t.Setenv("TEAMSPLIT_CONFIG", "")
		t.Setenv("TEAMSPLIT_NUM_TEAMS", "4")
		t.Setenv("TEAMSPLIT_STRATEGIES", "snake, cluster")
		t.Setenv("TEAMSPLIT_LOG_LEVEL", "debug")

		cfg, err := config.Load(context.Background())
		So(err, ShouldBeNil)

		Convey("Then env values win over defaults", func() {
			So(cfg.NumTeams, ShouldEqual, 4)
			So(cfg.StrategyList(), ShouldResemble, []string{"snake", "cluster"})
			So(cfg.LogLevel, ShouldEqual, "debug")
		})
	})
}

func TestLoadFileThenEnv(t *testing.T) {
	Convey("Given a YAML config file and an env override", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "teamsplit.yaml")
		data := []byte("num_teams: 3\nstrategies: round_robin\nmax_iterations: 50\n")
		So(os.WriteFile(path, data, 0o600), ShouldBeNil)

		t.Setenv("TEAMSPLIT_CONFIG", path)
		t.Setenv("TEAMSPLIT_NUM_TEAMS", "6")

		cfg, err := config.Load(context.Background())
		So(err, ShouldBeNil)

		Convey("Then env beats file and file beats defaults", func() {
			So(cfg.NumTeams, ShouldEqual, 6)
			So(cfg.Strategies, ShouldEqual, "round_robin")
			So(cfg.MaxIterations, ShouldEqual, 50)
		})
	})
}

func TestLoadFailures(t *testing.T) {
	Convey("Given a missing config file", t, func() {
		t.Setenv("TEAMSPLIT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

		_, err := config.Load(context.Background())
		So(err, ShouldWrap, config.ErrLoadConfig)
	})

	Convey("Given an empty strategy list", t, func() {
		t.Setenv("TEAMSPLIT_CONFIG", "")
		t.Setenv("TEAMSPLIT_STRATEGIES", " , ")

		_, err := config.Load(context.Background())
		So(err, ShouldWrap, config.ErrInvalidConfig)
	})
}
