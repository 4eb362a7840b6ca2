// Package glyph maps input to the emoji a spawned particle shows.
package glyph

import (
	"strings"
	"unicode/utf8"

	"github.com/san-kum/emojidrop/internal/random"
)

// Rule says which pool a pick draws from.
type Rule int

const (
	RuleLetter Rule = iota
	RuleSpace
	RuleFallback
	RuleTap
)

func (r Rule) String() string {
	switch r {
	case RuleLetter:
		return "letter"
	case RuleSpace:
		return "space"
	case RuleFallback:
		return "fallback"
	case RuleTap:
		return "tap"
	}
	return "unknown"
}

// Picker chooses glyphs uniformly from the pool a key maps to.
type Picker struct {
	rng random.Source
}

func NewPicker(rng random.Source) *Picker {
	return &Picker{rng: rng}
}

// ForKey picks a glyph for a key press.
func (p *Picker) ForKey(key string) string {
	pool, _ := lookup(key)
	return p.from(pool)
}

// ForTap picks a glyph for a pointer press from the union of every pool.
func (p *Picker) ForTap() string {
	return p.from(tapPool)
}

func (p *Picker) from(pool []string) string {
	return pool[p.rng.Intn(len(pool))]
}

// Pool returns a copy of the candidates for key and the rule that selected
// them. Letters are matched case-insensitively.
func Pool(key string) ([]string, Rule) {
	pool, rule := lookup(key)
	return append([]string(nil), pool...), rule
}

// TapPool returns a copy of the pool pointer presses draw from.
func TapPool() []string {
	return append([]string(nil), tapPool...)
}

func lookup(key string) ([]string, Rule) {
	if key == " " {
		return []string{SpaceGlyph}, RuleSpace
	}
	if c, ok := letter(key); ok {
		return letterPools[c], RuleLetter
	}
	return fallbackPool, RuleFallback
}

func letter(key string) (rune, bool) {
	if utf8.RuneCountInString(key) != 1 {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(strings.ToLower(key))
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return c, true
}
