package metrics

import "github.com/san-kum/emojidrop/internal/world"

// Activity is the mean fraction of bodies still awake. Empty frames are
// skipped. A run where nothing ever slept has activity 1.
type Activity struct {
	name    string
	sum     float64
	samples int
}

func NewActivity() *Activity {
	return &Activity{name: "activity"}
}

func (a *Activity) Name() string { return a.name }

func (a *Activity) Observe(f world.Frame) {
	if f.Particles == 0 {
		return
	}
	a.sum += float64(f.Awake) / float64(f.Particles)
	a.samples++
}

func (a *Activity) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.sum / float64(a.samples)
}

func (a *Activity) Reset() {
	a.sum = 0
	a.samples = 0
}

// Contacts is the mean number of resolved contacts per frame.
type Contacts struct {
	name    string
	total   int
	samples int
}

func NewContacts() *Contacts {
	return &Contacts{name: "contacts"}
}

func (c *Contacts) Name() string { return c.name }

func (c *Contacts) Observe(f world.Frame) {
	c.total += f.Contacts
	c.samples++
}

func (c *Contacts) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.total) / float64(c.samples)
}

func (c *Contacts) Reset() {
	c.total = 0
	c.samples = 0
}

// Settle is the index of the first frame at which every body rests, or 0
// while any body is still moving.
type Settle struct {
	name  string
	frame int
}

func NewSettle() *Settle {
	return &Settle{name: "settle_frame"}
}

func (s *Settle) Name() string { return s.name }

func (s *Settle) Observe(f world.Frame) {
	switch {
	case f.Awake > 0:
		s.frame = 0
	case f.Particles > 0 && s.frame == 0:
		s.frame = f.Index
	}
}

func (s *Settle) Value() float64 { return float64(s.frame) }

func (s *Settle) Reset() { s.frame = 0 }
