// Package metrics accumulates per-frame statistics from a running world.
package metrics

import "github.com/san-kum/emojidrop/internal/world"

type Metric interface {
	Name() string
	Observe(f world.Frame)
	Value() float64
	Reset()
}

// Set fans frames out to several metrics. It satisfies world.Observer.
type Set struct {
	metrics []Metric
}

func NewSet(ms ...Metric) *Set {
	return &Set{metrics: ms}
}

func (s *Set) Add(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Set) Observe(f world.Frame) {
	for _, m := range s.metrics {
		m.Observe(f)
	}
}

func (s *Set) Reset() {
	for _, m := range s.metrics {
		m.Reset()
	}
}

func (s *Set) Metrics() []Metric { return s.metrics }

// Values returns every metric keyed by name.
func (s *Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Default returns the metrics the CLI reports after a headless run.
func Default() *Set {
	return NewSet(NewActivity(), NewEnergy(), NewPeakEnergy(), NewContacts(), NewSettle())
}
