package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCounters(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithRegistry(registry))

		Convey("When recording run events", func() {
			m.RecordEvaluation()
			m.RecordEvaluation()
			m.RecordSwapAccepted()
			m.RecordSwapRejected()
			m.RecordRowSkipped("duplicate_name")
			m.ObserveStrategyDuration("snake", 5*time.Millisecond)

			Convey("Then counters hold the recorded values", func() {
				So(testutil.ToFloat64(m.partitionsEvaluated), ShouldEqual, 2)
				So(testutil.ToFloat64(m.swapsAccepted), ShouldEqual, 1)
				So(testutil.ToFloat64(m.swapsRejected), ShouldEqual, 1)
				So(testutil.ToFloat64(m.rowsSkipped.WithLabelValues("duplicate_name")), ShouldEqual, 1)
			})
		})
	})
}

func TestWriteTextfile(t *testing.T) {
	Convey("Given a manager with some activity", t, func() {
		m := NewManager(WithNamespace("testrun"))
		m.RecordEvaluation()
		m.RecordSwapRejected()

		Convey("When dumping to a textfile", func() {
			path := filepath.Join(t.TempDir(), "run.prom")
			So(m.WriteTextfile(path), ShouldBeNil)

			Convey("Then the file holds exposition-format samples", func() {
				data, err := os.ReadFile(path)
				So(err, ShouldBeNil)
				out := string(data)
				So(out, ShouldContainSubstring, "testrun_partitions_evaluated_total 1")
				So(out, ShouldContainSubstring, "testrun_swaps_rejected_total 1")
			})
		})
	})
}
