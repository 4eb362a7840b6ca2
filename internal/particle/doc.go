// Package particle holds the data model of the simulation: falling glyph
// bodies and the ordered store that owns them.
//
//   - [Particle]: one body with position, velocity and an explicit sleep state
//   - [Store]: insertion-ordered, append-only collection with a full reset
//   - [Visual]: the read-only projection handed to renderers
//
// # Sleep
//
// A particle is either [Awake] or [Asleep]. The transition is one way:
// [Particle.Sleep] freezes a body and nothing wakes it again. A sleeping body
// may still be pushed by an awake neighbour through [Particle.Displace],
// which moves it without touching its state or velocity.
//
// # Ownership
//
// The store hands out its backing slice so the physics passes can walk index
// pairs without copying. Callers must not retain pointers across a
// [Store.Clear] or an append.
package particle
