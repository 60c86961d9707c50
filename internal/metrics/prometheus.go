package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PromRecorder implements Recorder on a dedicated Prometheus registry.
type PromRecorder struct {
	registry     *prometheus.Registry
	lookups      *prometheus.CounterVec
	buildSeconds *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
}

// NewPromRecorder creates and registers the guestmatch collectors.
func NewPromRecorder() *PromRecorder {
	p := &PromRecorder{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "guestmatch",
			Name:      "lookups_total",
			Help:      "Viewer lookups by event and outcome",
		}, []string{"event", "result"}),
		buildSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "guestmatch",
			Name:      "build_seconds",
			Help:      "Match graph build duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}, []string{"event"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "guestmatch",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
	}
	p.registry.MustRegister(p.lookups, p.buildSeconds, p.httpRequests)
	return p
}

func (p *PromRecorder) IncLookup(event, result string) {
	p.lookups.WithLabelValues(event, result).Inc()
}

func (p *PromRecorder) ObserveBuildSeconds(event string, seconds float64) {
	p.buildSeconds.WithLabelValues(event).Observe(seconds)
}

func (p *PromRecorder) IncHTTPRequest(method, route string, status int) {
	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (p *PromRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
