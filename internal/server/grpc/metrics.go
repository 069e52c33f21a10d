package grpc

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var histogramBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}

// Metrics holds the RPC collectors of the server.
type Metrics struct {
	requestTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	authFailures   *prometheus.CounterVec
}

// NewMetrics builds the collectors and registers them with reg. Collectors
// already present in reg are reused, so building twice against the default
// registry is fine.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "todokeeper",
			Subsystem: "grpc",
			Name:      "requests_total",
			Help:      "Count of handled unary RPCs",
		}, []string{"method", "code"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "todokeeper",
			Subsystem: "grpc",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution of unary RPCs",
			Buckets:   histogramBuckets,
		}, []string{"method"}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "todokeeper",
			Subsystem: "auth",
			Name:      "failures_total",
			Help:      "Number of rejected bearer tokens",
		}, []string{"method"}),
	}

	if reg == nil {
		return m
	}

	for _, c := range []prometheus.Collector{m.requestTotal, m.requestLatency, m.authFailures} {
		if err := reg.Register(c); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				switch v := are.ExistingCollector.(type) {
				case *prometheus.CounterVec:
					if c == m.requestTotal {
						m.requestTotal = v
					} else if c == m.authFailures {
						m.authFailures = v
					}
				case *prometheus.HistogramVec:
					m.requestLatency = v
				}
			}
		}
	}
	return m
}

func (m *Metrics) interceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	m.requestTotal.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
	m.requestLatency.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
	return resp, err
}

func (m *Metrics) authFailed(method string) {
	m.authFailures.WithLabelValues(method).Inc()
}
