// Package metrics exposes Prometheus instrumentation for the landing page.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks filter usage, load-more clicks, contact submissions and
// page render time.
type Metrics struct {
	FilterRequests     *prometheus.CounterVec
	LoadMore           prometheus.Counter
	ContactSubmissions *prometheus.CounterVec
	RenderDuration     prometheus.Histogram
}

// New registers the showcase metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FilterRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "showcase_filter_requests_total",
			Help: "Total number of catalog views by active category",
		}, []string{"category"}),
		LoadMore: f.NewCounter(prometheus.CounterOpts{
			Name: "showcase_load_more_total",
			Help: "Total number of additional pages revealed",
		}),
		ContactSubmissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "showcase_contact_submissions_total",
			Help: "Total number of contact form submissions by result",
		}, []string{"result"}),
		RenderDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "showcase_render_duration_seconds",
			Help:    "Duration of landing page renders",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

// ObserveView records one catalog view at the given page depth. Categories
// outside known are folded into "other" to bound label cardinality.
func (m *Metrics) ObserveView(category string, known bool, pages int) {
	if !known {
		category = "other"
	}
	m.FilterRequests.WithLabelValues(category).Inc()
	if pages > 1 {
		m.LoadMore.Add(float64(pages - 1))
	}
}

// ObserveContact records a contact submission outcome.
func (m *Metrics) ObserveContact(result string) {
	m.ContactSubmissions.WithLabelValues(result).Inc()
}

// ObserveRender records the duration of a page render.
// Call with time.Now() at the start of the render.
func (m *Metrics) ObserveRender(start time.Time) {
	m.RenderDuration.Observe(time.Since(start).Seconds())
}
