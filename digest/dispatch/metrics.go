package dispatch

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics counts the calls made through the boundary.
type Metrics struct {
	Calls *prometheus.CounterVec
	Bytes *prometheus.CounterVec
}

// NewMetrics creates a new metrics instance, the instance shall be
// assigned to DefaultMetrics before any processing takes place.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "calls_total",
			Help:      "Calls through the boundary by operation, algorithm and status code.",
		}, []string{"op", "algorithm", "status"}),
		Bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "output_bytes_total",
			Help:      "Bytes of digest or key material produced by operation and algorithm.",
		}, []string{"op", "algorithm"}),
	}
}

// DefaultMetrics is updated by every Hash and HKDF call.
var DefaultMetrics = (*Metrics)(nil)

// Registry holds the dispatch metrics.  It is separate from the
// prometheus default registry so that loading the library doesn't
// change a host program's metrics.
var Registry = prometheus.NewRegistry()

func init() {
	m := NewMetrics("digestbridge")
	Registry.MustRegister(m.Collectors()...)
	DefaultMetrics = m
}

// Collectors returns all prometheus metrics as collectors for registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	if m == nil {
		return nil
	}
	return []prometheus.Collector{
		m.Calls,
		m.Bytes,
	}
}

func (m *Metrics) onCall(op, algorithm string, out []byte, err error) {
	if m == nil {
		return
	}
	status := Status(err)
	if err == nil && op == "hash" {
		status = len(out)
	}
	m.Calls.WithLabelValues(op, algorithm, strconv.Itoa(status)).Inc()
	if err == nil {
		m.Bytes.WithLabelValues(op, algorithm).Add(float64(len(out)))
	}
}

// CallCount is one row of the call counters
type CallCount struct {
	Op        string `json:"op"`
	Algorithm string `json:"algorithm"`
	Status    int    `json:"status"`
	Count     uint64 `json:"count"`
}

// CallCounts reads back the call counters from Registry
func CallCounts() ([]CallCount, error) {
	families, err := Registry.Gather()
	if err != nil {
		return nil, err
	}
	var out []CallCount
	for _, family := range families {
		if family.GetName() != "digestbridge_dispatch_calls_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			out = append(out, callCount(metric))
		}
	}
	return out, nil
}

func callCount(metric *dto.Metric) CallCount {
	var c CallCount
	for _, label := range metric.GetLabel() {
		switch label.GetName() {
		case "op":
			c.Op = label.GetValue()
		case "algorithm":
			c.Algorithm = label.GetValue()
		case "status":
			c.Status, _ = strconv.Atoi(label.GetValue())
		}
	}
	c.Count = uint64(metric.GetCounter().GetValue())
	return c
}
