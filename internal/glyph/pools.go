package glyph

// SpaceGlyph is what the space bar always produces.
const SpaceGlyph = "☁️"

var letterPools = map[rune][]string{
	'a': {"🍎", "🐜", "🛩️", "🥑", "🅰️"},
	'b': {"🍌", "🐻", "⚽", "🚌", "🫧"},
	'c': {"🐱", "🚗", "🥕", "☁️", "🍪"},
	'd': {"🐶", "🐬", "🍩", "🦆", "🧃"},
	'e': {"🥚", "🦅", "🐘", "🌎", "🚨"},
	'f': {"🐟", "🦊", "🌸", "🔥", "🍟"},
	'g': {"🍇", "🦒", "🎁", "👻", "🌍"},
	'h': {"🏠", "❤️", "🎩", "🐹", "🍯"},
	'i': {"🍦", "🧊", "🪲", "📷", "🆔"},
	'j': {"🧃", "🤹", "🕹️", "🇯🇵", "🍇"},
	'k': {"🔑", "🪁", "🐨", "🥝", "🏰"},
	'l': {"🦁", "🍋", "💡", "🦙", "🌿"},
	'm': {"🌙", "🍈", "🧲", "🍄", "📯"},
	'n': {"📰", "👃", "🪺", "🌃", "🔢"},
	'o': {"🐙", "🦉", "🧅", "⭕", "🛢️"},
	'p': {"🐼", "🍍", "🍕", "🐧", "🎈"},
	'q': {"👑", "❓", "🇶🇦", "🧑‍🚀", "⚛️"},
	'r': {"🤖", "🌈", "🚀", "🌹", "🦏"},
	's': {"⭐", "🐍", "☀️", "🧦", "🍓"},
	't': {"🐯", "🌮", "🚂", "🌳", "🎯"},
	'u': {"☂️", "🦄", "🛸", "⬆️", "🦔"},
	'v': {"🎻", "🌋", "🎮", "🏐", "✅"},
	'w': {"🍉", "🐋", "🪟", "⌚", "🌊"},
	'x': {"❌", "📦", "🩻", "🧬", "⚔️"},
	'y': {"🪀", "🛳️", "💴", "🟡", "🧘"},
	'z': {"🦓", "⚡", "🤐", "💤", "🛣️"},
}

var fallbackPool = []string{"😀", "😎", "🎉", "🌈", "🍭", "🧸", "🎵", "✨", "🫧", "🍀"}

// tapPool is every letter glyph followed by the fallback glyphs, a to z,
// each glyph once.
var tapPool = buildTapPool()

func buildTapPool() []string {
	seen := make(map[string]bool)
	var pool []string
	add := func(gs []string) {
		for _, g := range gs {
			if !seen[g] {
				seen[g] = true
				pool = append(pool, g)
			}
		}
	}
	for c := 'a'; c <= 'z'; c++ {
		add(letterPools[c])
	}
	add(fallbackPool)
	return pool
}
