// Package world runs the falling-glyph simulation one frame at a time and
// exposes the input surface renderers and drivers talk to.
//
// A World is not safe for concurrent use. Every call, spawns and ticks
// alike, must come from the same goroutine, which is how the bubbletea
// update loop and the headless drivers use it.
package world

import (
	"github.com/san-kum/emojidrop/internal/glyph"
	"github.com/san-kum/emojidrop/internal/particle"
	"github.com/san-kum/emojidrop/internal/physics"
	"github.com/san-kum/emojidrop/internal/random"
)

// CancelKey clears the world instead of spawning.
const CancelKey = "Escape"

// Frame summarises one completed tick.
type Frame struct {
	Index     int
	Particles int
	Awake     int
	Contacts  int
	Slept     int
	Kinetic   float64
}

// Observer is notified after every tick.
type Observer interface {
	Observe(f Frame)
}

type World struct {
	store      *particle.Store
	bounds     particle.Bounds
	params     *physics.Params
	integrator *physics.Integrator
	resolver   *physics.Resolver
	sleeper    *physics.SleepManager
	picker     *glyph.Picker
	rng        random.Source
	interacted bool
	frame      Frame
	observers  []Observer
}

// New returns an empty world of the given viewport. params is copied; use
// Params to tune the running world.
func New(width, height float64, params physics.Params, rng random.Source) *World {
	prm := params
	return &World{
		store:      particle.NewStore(64),
		bounds:     particle.NewBounds(width, height),
		params:     &prm,
		integrator: physics.NewIntegrator(&prm),
		resolver:   physics.NewResolver(&prm),
		sleeper:    physics.NewSleepManager(&prm),
		picker:     glyph.NewPicker(rng),
		rng:        rng,
	}
}

func (w *World) AddObserver(o Observer) { w.observers = append(w.observers, o) }

// KeyPress spawns one particle for key, two when the key is auto-repeating,
// and returns how many were spawned. CancelKey resets instead.
func (w *World) KeyPress(key string, repeat bool) int {
	if key == CancelKey {
		w.Reset()
		return 0
	}
	w.interacted = true

	n := 1
	if repeat {
		n = 2
	}
	for i := 0; i < n; i++ {
		w.store.Spawn(w.picker.ForKey(key), w.rng, w.bounds, nil)
	}
	return n
}

// PointerDown spawns one tap glyph at (x, y), clamped into the viewport.
func (w *World) PointerDown(x, y float64) {
	w.interacted = true
	w.store.Spawn(w.picker.ForTap(), w.rng, w.bounds, &particle.Point{X: x, Y: y})
}

// Add inserts a prepared particle, bypassing glyph selection and random
// placement. It counts as an interaction.
func (w *World) Add(p particle.Particle) {
	w.interacted = true
	w.store.Add(p)
}

// Reset drops every particle and brings the hint back.
func (w *World) Reset() {
	w.store.Clear()
	w.interacted = false
}

// Resize changes the viewport used from the next tick on.
func (w *World) Resize(width, height float64) {
	w.bounds = particle.NewBounds(width, height)
}

// Tick advances the simulation by one frame: integrate, resolve collisions,
// update sleep, then notify observers.
func (w *World) Tick() Frame {
	ps := w.store.Particles()

	w.integrator.StepAll(ps, w.bounds)
	contacts := w.resolver.ResolveAll(ps)
	slept := w.sleeper.UpdateAll(ps, w.bounds)

	f := Frame{
		Index:     w.frame.Index + 1,
		Particles: len(ps),
		Contacts:  contacts,
		Slept:     slept,
	}
	for i := range ps {
		p := &ps[i]
		if !p.Asleep() {
			f.Awake++
			f.Kinetic += 0.5 * p.SpeedSq()
		}
	}
	w.frame = f

	for _, o := range w.observers {
		o.Observe(f)
	}
	return f
}

// Snapshot appends the visual state of every particle to dst[:0].
func (w *World) Snapshot(dst []particle.Visual) []particle.Visual {
	return w.store.Snapshot(dst)
}

// Particles exposes the live particles for inspection. The slice is only
// valid until the next spawn or reset.
func (w *World) Particles() []particle.Particle { return w.store.Particles() }

func (w *World) Interacted() bool        { return w.interacted }
func (w *World) Len() int                { return w.store.Len() }
func (w *World) Bounds() particle.Bounds { return w.bounds }
func (w *World) Params() *physics.Params { return w.params }
func (w *World) LastFrame() Frame        { return w.frame }
