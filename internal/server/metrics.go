package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kataras/brand-tokens/pkg/tool"
)

// Metrics records tool call counts and latencies. It implements tool.Observer.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the tool call collectors on registerer. Registering
// twice against the same registerer reuses the existing collectors.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "brand_tokens",
		Name:      "tool_calls_total",
		Help:      "Tool calls by tool name and result code.",
	}, []string{"tool", "code"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "brand_tokens",
		Name:      "tool_call_duration_seconds",
		Help:      "Tool call latency by tool name and result code.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	}, []string{"tool", "code"})

	return &Metrics{
		calls:    registerCounterVec(registerer, calls),
		duration: registerHistogramVec(registerer, duration),
	}
}

// ObserveCall implements tool.Observer.
func (m *Metrics) ObserveCall(name string, code tool.Code, elapsed time.Duration) {
	if m == nil {
		return
	}
	name = toolLabel(name)
	m.calls.WithLabelValues(name, string(code)).Inc()
	m.duration.WithLabelValues(name, string(code)).Observe(elapsed.Seconds())
}

// toolLabel keeps the tool label set bounded: any name the handler does not
// serve is reported as "unknown".
func toolLabel(name string) string {
	switch name {
	case tool.ExtractPDFBranding, tool.GenerateDesignTokens:
		return name
	default:
		return "unknown"
	}
}

func registerCounterVec(registerer prometheus.Registerer, collector *prometheus.CounterVec) *prometheus.CounterVec {
	if err := registerer.Register(collector); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, castOK := already.ExistingCollector.(*prometheus.CounterVec); castOK {
				return existing
			}
		}
		panic(err)
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, collector *prometheus.HistogramVec) *prometheus.HistogramVec {
	if err := registerer.Register(collector); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, castOK := already.ExistingCollector.(*prometheus.HistogramVec); castOK {
				return existing
			}
		}
		panic(err)
	}
	return collector
}
