package metrics

import "github.com/san-kum/emojidrop/internal/world"

// History keeps the most recent values of one frame field for plotting.
type History struct {
	values []float64
	cap    int
	pick   func(world.Frame) float64
}

func NewHistory(capacity int, pick func(world.Frame) float64) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{cap: capacity, pick: pick, values: make([]float64, 0, capacity)}
}

// AwakeHistory tracks the number of awake bodies.
func AwakeHistory(capacity int) *History {
	return NewHistory(capacity, func(f world.Frame) float64 { return float64(f.Awake) })
}

// EnergyHistory tracks kinetic energy.
func EnergyHistory(capacity int) *History {
	return NewHistory(capacity, func(f world.Frame) float64 { return f.Kinetic })
}

func (h *History) Observe(f world.Frame) {
	if len(h.values) == h.cap {
		copy(h.values, h.values[1:])
		h.values = h.values[:h.cap-1]
	}
	h.values = append(h.values, h.pick(f))
}

func (h *History) Values() []float64 { return h.values }

func (h *History) Len() int { return len(h.values) }

func (h *History) Reset() { h.values = h.values[:0] }
