package client

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/khushisingh18/Ai-blog-website/client/internal/api"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (m *metrics, err error) {
	// promauto panics on duplicate registration; surface it as an error.
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = errors.New("register client metrics")
		}
	}()
	f := promauto.With(reg)
	return &metrics{
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "inkwell_client",
				Name:      "requests_total",
				Help:      "Backend requests by operation and HTTP status (\"error\" for transport failures).",
			},
			[]string{"op", "code"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "inkwell_client",
				Name:      "request_duration_seconds",
				Help:      "Backend request latency by operation.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}, nil
}

type metricsTransport struct {
	base http.RoundTripper
	m    *metrics
}

func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	op := api.OpFrom(req.Context())
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	t.m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		t.m.requests.WithLabelValues(op, "error").Inc()
		return nil, err
	}
	t.m.requests.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}
