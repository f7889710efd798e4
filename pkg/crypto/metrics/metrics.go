// Package metrics instruments pkg/crypto/lthash instances with
// Prometheus counters and histograms. It is a decorator, not a
// requirement: lthash itself has no Prometheus dependency, and
// callers that don't need metrics never import this package.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Mutator is the subset of *lthash.Hash16/20/32's methods Instrument
// needs. All three satisfy it, since Add/Remove/Checksum have
// identical signatures across the three element widths.
type Mutator interface {
	Add(obj []byte) error
	Remove(obj []byte) error
	Checksum() []byte
}

// Instrumented wraps a Mutator, recording every Add/Remove call
// against the counters and histogram it was constructed with.
type Instrumented struct {
	Mutator
	operations *prometheus.CounterVec
	objectSize prometheus.Histogram
}

// Instrument registers (or reuses, if already registered under the
// same labels) a lthash_operations_total counter and a
// lthash_object_bytes histogram against reg, and returns m wrapped to
// record against them. Passing the same *prometheus.Registry to
// multiple Instrument calls for the same sizing is safe: the
// underlying prometheus.CounterVec/Histogram are registered once and
// shared.
func Instrument(reg prometheus.Registerer, sizing string, m Mutator) (*Instrumented, error) {
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "lthash_operations_total",
		Help:        "Number of LtHash mutating operations performed, by operation.",
		ConstLabels: prometheus.Labels{"sizing": sizing},
	}, []string{"operation"})

	objectSize := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:        "lthash_object_bytes",
		Help:        "Size in bytes of objects passed to LtHash Add/Remove.",
		ConstLabels: prometheus.Labels{"sizing": sizing},
		Buckets:     prometheus.ExponentialBuckets(8, 2, 16),
	})

	registeredOps, err := registerCounterVec(reg, operations)
	if err != nil {
		return nil, err
	}
	registeredSize, err := registerHistogram(reg, objectSize)
	if err != nil {
		return nil, err
	}

	return &Instrumented{Mutator: m, operations: registeredOps, objectSize: registeredSize}, nil
}

// registerCounterVec registers c, returning the already-registered
// CounterVec instead of a fresh duplicate when c's exact metric
// already exists under reg -- the common case when instrumenting many
// short-lived instances of the same sizing against one registry.
func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

// registerHistogram is registerCounterVec for prometheus.Histogram.
func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return h, nil
}

func (i *Instrumented) Add(obj []byte) error {
	i.operations.WithLabelValues("add").Inc()
	i.objectSize.Observe(float64(len(obj)))
	return i.Mutator.Add(obj)
}

func (i *Instrumented) Remove(obj []byte) error {
	i.operations.WithLabelValues("remove").Inc()
	i.objectSize.Observe(float64(len(obj)))
	return i.Mutator.Remove(obj)
}
