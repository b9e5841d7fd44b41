package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSnapshot(t *testing.T) {
	Convey("Snapshot", t, func() {
		before := testutil.ToFloat64(ContinuationRetries.WithLabelValues("characters-of-staff"))
		ContinuationRetries.WithLabelValues("characters-of-staff").Inc()
		RateLimitRemaining.Set(42)
		RequestDuration.Observe(0.2)

		samples, err := Snapshot()
		So(err, ShouldBeNil)

		retries, ok := lo.Find(samples, func(s Sample) bool {
			return s.Name == "anigraph_continuation_retries_total" && s.Labels["kind"] == "characters-of-staff"
		})
		So(ok, ShouldBeTrue)
		So(retries.Value, ShouldEqual, before+1)

		remaining, ok := lo.Find(samples, func(s Sample) bool {
			return s.Name == "anigraph_ratelimit_remaining"
		})
		So(ok, ShouldBeTrue)
		So(remaining.Value, ShouldEqual, 42)

		latency, ok := lo.Find(samples, func(s Sample) bool {
			return s.Name == "anigraph_graphql_request_duration_seconds"
		})
		So(ok, ShouldBeTrue)
		So(latency.Value, ShouldBeGreaterThanOrEqualTo, 1)
	})
}
