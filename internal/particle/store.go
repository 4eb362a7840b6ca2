package particle

import (
	"math"

	"github.com/san-kum/emojidrop/internal/random"
)

const (
	MinSize   = 44.0
	SizeRange = 64.0

	// DropHeight is the extra random height above the viewport that
	// unplaced spawns start from.
	DropHeight = 60.0

	// MinViewport is the smallest accepted viewport edge.
	MinViewport = 320.0

	JitterX = 1.8
	JitterY = 0.3
)

// Bounds is the viewport the simulation runs in.
type Bounds struct {
	Width, Height float64
}

// NewBounds floors w and h to whole units and clamps them to MinViewport.
func NewBounds(w, h float64) Bounds {
	return Bounds{Width: viewportEdge(w), Height: viewportEdge(h)}
}

func viewportEdge(v float64) float64 {
	if math.IsNaN(v) {
		return MinViewport
	}
	return math.Max(MinViewport, math.Floor(v))
}

// ClampX clamps x into [r, width-r]. When the viewport is narrower than the
// particle the right edge wins.
func (b Bounds) ClampX(x, r float64) float64 {
	return math.Min(b.Width-r, math.Max(r, x))
}

// ClampY clamps y into [r, height-r], right edge winning as in ClampX.
func (b Bounds) ClampY(y, r float64) float64 {
	return math.Min(b.Height-r, math.Max(r, y))
}

// Point is an explicit spawn location.
type Point struct {
	X, Y float64
}

// Store is the ordered collection of live particles.
type Store struct {
	items []Particle
}

func NewStore(capacity int) *Store {
	return &Store{items: make([]Particle, 0, capacity)}
}

// Spawn creates a particle for glyph and appends it. A nil at drops the
// particle in from a random column above the viewport; otherwise at is
// clamped into the legal range.
func (s *Store) Spawn(glyph string, rng random.Source, b Bounds, at *Point) *Particle {
	size := MinSize + rng.Float64()*SizeRange
	r := size * RadiusScale

	var x, y float64
	if at != nil {
		x = b.ClampX(nanOr(at.X, b.Width/2), r)
		y = b.ClampY(nanOr(at.Y, b.Height/2), r)
	} else {
		x = r + rng.Float64()*math.Max(1, b.Width-r*2)
		y = -r - rng.Float64()*DropHeight
	}

	vx := (rng.Float64() - 0.5) * JitterX
	vy := rng.Float64() * JitterY

	return s.Add(New(glyph, size, x, y, vx, vy))
}

// Add appends p and returns a pointer to the stored copy.
func (s *Store) Add(p Particle) *Particle {
	s.items = append(s.items, p)
	return &s.items[len(s.items)-1]
}

// Clear drops every particle.
func (s *Store) Clear() {
	s.items = s.items[:0]
}

func (s *Store) Len() int { return len(s.items) }

// At returns the i-th particle in insertion order.
func (s *Store) At(i int) *Particle { return &s.items[i] }

// Particles returns the backing slice, valid until the next Add or Clear.
func (s *Store) Particles() []Particle { return s.items }

// Awake counts particles that are still simulated.
func (s *Store) Awake() int {
	n := 0
	for i := range s.items {
		if !s.items[i].Asleep() {
			n++
		}
	}
	return n
}

// Snapshot appends the visual state of every particle to dst[:0].
func (s *Store) Snapshot(dst []Visual) []Visual {
	dst = dst[:0]
	for i := range s.items {
		dst = append(dst, s.items[i].Visual())
	}
	return dst
}

func nanOr(v, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return v
}
