package world_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/emojidrop/internal/particle"
	"github.com/san-kum/emojidrop/internal/physics"
	"github.com/san-kum/emojidrop/internal/random"
	"github.com/san-kum/emojidrop/internal/world"
)

type recorder struct {
	frames []world.Frame
}

func (r *recorder) Observe(f world.Frame) { r.frames = append(r.frames, f) }

var _ = Describe("World", func() {
	var w *world.World

	BeforeEach(func() {
		w = world.New(800, 400, physics.DefaultParams(), random.New(42))
	})

	Describe("key input", func() {
		It("spawns one particle per key press", func() {
			Expect(w.KeyPress("a", false)).To(Equal(1))
			Expect(w.Len()).To(Equal(1))
			Expect(w.Interacted()).To(BeTrue())
		})

		It("spawns two particles for a repeating key", func() {
			Expect(w.KeyPress("a", true)).To(Equal(2))
			Expect(w.Len()).To(Equal(2))
		})

		It("drops key spawns in from above the viewport", func() {
			w.KeyPress("q", false)
			p := w.Particles()[0]
			Expect(p.Y).To(BeNumerically("<", 0))
		})

		It("resets on the cancel key instead of spawning", func() {
			for i := 0; i < 3; i++ {
				w.KeyPress("b", false)
			}

			Expect(w.KeyPress(world.CancelKey, false)).To(Equal(0))
			Expect(w.Len()).To(BeZero())
			Expect(w.Interacted()).To(BeFalse())
		})

		It("maps the space bar to the cloud glyph", func() {
			w.KeyPress(" ", false)
			Expect(w.Snapshot(nil)[0].Glyph).To(Equal("☁️"))
		})
	})

	Describe("pointer input", func() {
		It("clamps a spawn left of the viewport to the particle radius", func() {
			w.PointerDown(-50, 200)

			p := w.Particles()[0]
			Expect(p.X).To(Equal(p.Radius()))
			Expect(p.Y).To(Equal(200.0))
			Expect(w.Interacted()).To(BeTrue())
		})

		It("clamps a spawn below the floor", func() {
			w.PointerDown(400, 1000)

			p := w.Particles()[0]
			Expect(p.Y).To(Equal(400 - p.Radius()))
		})
	})

	Describe("reset", func() {
		It("empties the store and clears the interaction flag", func() {
			for i := 0; i < 10; i++ {
				w.KeyPress("x", false)
			}
			Expect(w.Len()).To(Equal(10))

			w.Reset()

			Expect(w.Len()).To(BeZero())
			Expect(w.Interacted()).To(BeFalse())
			Expect(w.Tick().Particles).To(BeZero())
		})
	})

	Describe("resize", func() {
		It("applies new bounds on the next tick", func() {
			w.Add(particle.New("a", 100, 700, 200, 0, 0))

			w.Resize(500, 400)
			w.Tick()

			p := w.Particles()[0]
			Expect(p.X).To(BeNumerically("<=", 500-p.Radius()))
		})

		It("never shrinks below the minimum viewport", func() {
			w.Resize(10, 10)
			Expect(w.Bounds()).To(Equal(particle.Bounds{Width: particle.MinViewport, Height: particle.MinViewport}))
		})
	})

	Describe("ticking", func() {
		It("settles a dropped particle on the floor", func() {
			w.Add(particle.New("a", 100, 400, 340, 0, 5))

			for i := 0; i < 300 && !w.Particles()[0].Asleep(); i++ {
				w.Tick()
			}

			p := w.Particles()[0]
			Expect(p.Asleep()).To(BeTrue())
			Expect(p.Y).To(Equal(357.0))
			Expect(p.VX).To(BeZero())
			Expect(p.VY).To(BeZero())
		})

		It("keeps every particle inside the walls and above the floor", func() {
			for i := 0; i < 30; i++ {
				w.KeyPress("abcdefghij"[i%10:i%10+1], i%3 == 0)
			}

			for frame := 0; frame < 600; frame++ {
				w.Tick()
			}

			b := w.Bounds()
			for _, p := range w.Particles() {
				Expect(p.Radius()).To(Equal(p.Size() * particle.RadiusScale))
				Expect(p.X).To(BeNumerically(">=", 0))
				Expect(p.X).To(BeNumerically("<=", b.Width))
				Expect(p.Y).To(BeNumerically("<=", b.Height))
			}
		})

		It("eventually puts every body to sleep, stacked ones included", func() {
			for _, x := range []float64{100, 250, 550, 700} {
				w.Add(particle.New("m", 80, x, 200, 0, 0))
			}
			w.Add(particle.New("a", 100, 400, 300, 0, 0))
			w.Add(particle.New("b", 100, 400, -100, 0, 0))

			var f world.Frame
			for frame := 0; frame < 1000; frame++ {
				f = w.Tick()
				if f.Awake == 0 {
					break
				}
			}
			Expect(f.Awake).To(BeZero())
			Expect(f.Kinetic).To(BeZero())

			top, bottom := w.Particles()[5], w.Particles()[4]
			Expect(top.Y).To(BeNumerically("<", bottom.Y-bottom.Radius()))
		})

		It("reports frames to observers", func() {
			rec := &recorder{}
			w.AddObserver(rec)
			w.KeyPress("a", false)

			w.Tick()
			w.Tick()

			Expect(rec.frames).To(HaveLen(2))
			Expect(rec.frames[1].Index).To(Equal(2))
			Expect(rec.frames[1].Particles).To(Equal(1))
			Expect(w.LastFrame()).To(Equal(rec.frames[1]))
		})
	})

	Describe("tuning", func() {
		It("applies parameter changes to the running world", func() {
			w.Add(particle.New("a", 50, 400, 100, 0, 0))
			Expect(w.Params().SetParam("gravity", 0)).To(Succeed())
			Expect(w.Params().SetParam("air_drag", 1)).To(Succeed())

			w.Tick()

			Expect(w.Particles()[0].Y).To(Equal(100.0))
		})
	})

	Describe("scripts", func() {
		It("types text with repeats for doubled letters", func() {
			s := world.TypeText("hello", 0, 5)
			Expect(s).To(HaveLen(5))
			Expect(s[3].Repeat).To(BeTrue())
			Expect(s[2].Repeat).To(BeFalse())
			Expect(s[4].Frame).To(Equal(20))
		})

		It("delivers events before the tick of their frame", func() {
			s := world.Script{
				{Frame: 0, Key: "a"},
				{Frame: 2, Key: "b", Repeat: true},
				{Frame: 4, Tap: true, X: 400, Y: 200},
				{Frame: 6, Reset: true},
			}

			counts := []int{}
			s.Play(w, 8, func(f world.Frame) { counts = append(counts, f.Particles) })

			Expect(counts).To(Equal([]int{1, 1, 3, 3, 4, 4, 0, 0}))
			Expect(w.Interacted()).To(BeFalse())
		})
	})
})
