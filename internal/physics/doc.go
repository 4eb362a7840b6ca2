// Package physics advances a set of particles by one frame.
//
// A frame runs three passes over the store, in order:
//
//   - [Integrator]: gravity, drag, motion, then wall and floor bounces
//   - [Resolver]: pairwise circle overlap correction and velocity response
//   - [SleepManager]: rest counting and the awake to asleep transition
//
// Sleeping particles are skipped by the integrator and count as immovable
// obstacles for the resolver. The per-frame O(n²) pair scan is intended for
// tens to low hundreds of particles.
//
// All passes read a shared [*Params], so values changed between frames apply
// to the next frame.
package physics
