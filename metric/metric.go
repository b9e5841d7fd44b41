// Package metric holds the Prometheus collectors describing GraphQL traffic and connection draining.
package metric

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "anigraph"

// Registry is the private registry every collector in this package is registered with.
var Registry = prometheus.NewRegistry()

var (
	// Requests counts GraphQL round trips by HTTP status ("error" when no response arrived).
	Requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "graphql",
		Name:      "requests_total",
		Help:      "GraphQL requests sent, partitioned by HTTP status.",
	}, []string{"status"})

	// RequestDuration observes the latency of GraphQL round trips.
	RequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "graphql",
		Name:      "request_duration_seconds",
		Help:      "Latency of GraphQL requests.",
		Buckets:   prometheus.DefBuckets,
	})

	// RateLimitRemaining tracks the last remaining-calls value reported by the API.
	RateLimitRemaining = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ratelimit",
		Name:      "remaining",
		Help:      "Remaining calls in the current rate limit window, as last reported.",
	})

	// ContinuationPages counts successfully fetched continuation pages per connection kind.
	ContinuationPages = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "continuation",
		Name:      "pages_total",
		Help:      "Continuation pages fetched, partitioned by connection kind.",
	}, []string{"kind"})

	// ContinuationRetries counts failed continuation page fetches that were retried.
	ContinuationRetries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "continuation",
		Name:      "retries_total",
		Help:      "Failed continuation page fetches, partitioned by connection kind.",
	}, []string{"kind"})
)

func init() {
	Registry.MustRegister(
		Requests,
		RequestDuration,
		RateLimitRemaining,
		ContinuationPages,
		ContinuationRetries,
	)
}

// Sample is a flattened counter or gauge value.
type Sample struct {
	Name   string            `json:"name"`
	Labels map[string]string `json:"labels,omitempty"`
	Value  float64           `json:"value"`
}

// Snapshot gathers counters and gauges from Registry. Histograms are reported by their sample count.
func Snapshot() ([]Sample, error) {
	families, err := Registry.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, family := range families {
		for _, m := range family.GetMetric() {
			labels := make(map[string]string, len(m.GetLabel()))
			for _, pair := range m.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}

			s := Sample{Name: family.GetName(), Labels: labels}
			switch {
			case m.GetCounter() != nil:
				s.Value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				s.Value = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				s.Value = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}
			samples = append(samples, s)
		}
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Name < samples[j].Name
	})
	return samples, nil
}
