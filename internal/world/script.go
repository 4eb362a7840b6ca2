package world

import (
	"context"
	"fmt"
	"sort"
)

// Event is one scripted input delivered before the tick of Frame.
type Event struct {
	Frame  int
	Key    string
	Repeat bool
	Tap    bool
	X, Y   float64
	Reset  bool
}

// Script is a list of input events for headless runs.
type Script []Event

// TypeText returns one key event per rune of text, the first at frame start
// and then every `every` frames. Runs of the same rune are delivered as
// repeats, the way a held key would be.
func TypeText(text string, start, every int) Script {
	if every < 1 {
		every = 1
	}
	var s Script
	var prev rune
	i := 0
	for _, c := range text {
		s = append(s, Event{
			Frame:  start + i*every,
			Key:    string(c),
			Repeat: i > 0 && c == prev,
		})
		prev = c
		i++
	}
	return s
}

// Play runs the world for frames ticks, delivering each event before the
// tick of its frame. Frames are counted from 0. fn, when not nil, sees
// every completed frame. The last frame is returned.
func (s Script) Play(w *World, frames int, fn func(Frame)) Frame {
	last, _ := s.PlayContext(context.Background(), w, frames, fn)
	return last
}

// PlayContext is Play with cancellation checked between frames. On
// cancellation it returns the last completed frame and an error wrapping
// ErrCanceled.
func (s Script) PlayContext(ctx context.Context, w *World, frames int, fn func(Frame)) (Frame, error) {
	events := make(Script, len(s))
	copy(events, s)
	sort.SliceStable(events, func(i, j int) bool { return events[i].Frame < events[j].Frame })

	next := 0
	var last Frame
	for frame := 0; frame < frames; frame++ {
		if err := ctx.Err(); err != nil {
			return last, fmt.Errorf("%w at frame %d: %w", ErrCanceled, frame, err)
		}
		for next < len(events) && events[next].Frame <= frame {
			w.apply(events[next])
			next++
		}
		last = w.Tick()
		if fn != nil {
			fn(last)
		}
	}
	return last, nil
}

func (w *World) apply(e Event) {
	switch {
	case e.Reset:
		w.Reset()
	case e.Tap:
		w.PointerDown(e.X, e.Y)
	case e.Key != "":
		w.KeyPress(e.Key, e.Repeat)
	}
}
