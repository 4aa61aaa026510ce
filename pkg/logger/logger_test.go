package logger

import (
	"bytes"
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerOutput(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(InitWithWriter(&buf), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging at info level", func() {
			Get().Info(ctx, "roster loaded", Int("players", 12), String("path", "roster.csv"))

			Convey("Then the message and fields appear", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "roster loaded")
				So(out, ShouldContainSubstring, "players=12")
				So(out, ShouldContainSubstring, "path=roster.csv")
			})
		})

		Convey("When the level is raised to error", func() {
			So(SetLevelString("error"), ShouldBeNil)
			Get().Warn(ctx, "should be dropped")
			Get().Error(ctx, "should pass")

			Convey("Then only error output remains", func() {
				out := buf.String()
				So(out, ShouldNotContainSubstring, "should be dropped")
				So(out, ShouldContainSubstring, "should pass")
			})
		})

		Convey("When using a named logger", func() {
			Named("loader").Info(ctx, "skipping row", String("reason", "duplicate"))

			Convey("Then fields are grouped under the name", func() {
				So(buf.String(), ShouldContainSubstring, "loader.reason=duplicate")
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(SetLevelString("debug"), ShouldBeNil)
		So(SetLevelString("INFO"), ShouldBeNil)
		So(SetLevelString(" warning "), ShouldBeNil)
		So(SetLevelString(""), ShouldBeNil)
		So(SetLevelString("loud"), ShouldNotBeNil)
		// Restore default for other tests.
		So(SetLevelString("info"), ShouldBeNil)
	})
}
