package viz

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/san-kum/emojidrop/internal/particle"
)

// Hint is shown in the middle of the viewport until the first input.
const Hint = "press any key"

// Circle is one background decoration in viewport units.
type Circle struct {
	X, Y, R float64
}

// BackgroundCircles returns the six soft circles along the top edge.
func BackgroundCircles(b particle.Bounds) []Circle {
	cs := make([]Circle, 6)
	for i := range cs {
		cs[i] = Circle{
			X: b.Width/6*float64(i) + 30,
			Y: 18 + float64(i%2)*12,
			R: 28 + float64(i)*10,
		}
	}
	return cs
}

// GlyphWidth is the number of terminal cells g occupies. Emoji presentation
// selectors force the wide form even where the base rune is narrow.
func GlyphWidth(g string) int {
	w := runewidth.StringWidth(g)
	if w < 2 && strings.ContainsRune(g, '\uFE0F') {
		w = 2
	}
	if w < 1 {
		w = 1
	}
	return w
}

// DrawOrder sorts visuals so larger glyphs come first and smaller ones
// end up on top. Equal sizes keep spawn order.
func DrawOrder(vs []particle.Visual) {
	sort.SliceStable(vs, func(i, j int) bool { return vs[i].Size > vs[j].Size })
}

// scene maps viewport units onto a grid of terminal cells.
type scene struct {
	cols, rows int
	cellW      float64
	cellH      float64
	canvas     *Canvas
	cells      [][]string // "" marks the right half of a wide glyph
}

func newScene(cols, rows int, cellW, cellH float64) *scene {
	s := &scene{
		cols:   cols,
		rows:   rows,
		cellW:  cellW,
		cellH:  cellH,
		canvas: NewCanvas(cols, rows),
		cells:  make([][]string, rows),
	}
	for i := range s.cells {
		s.cells[i] = make([]string, cols)
	}
	return s
}

// cell maps a viewport point to the terminal cell containing it.
func (s *scene) cell(x, y float64) (col, row int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

// point maps a terminal cell to the viewport point at its centre.
func (s *scene) point(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

func (s *scene) drawBackground(b particle.Bounds) {
	s.canvas.Clear()
	sx, sy := 2/s.cellW, 4/s.cellH
	for _, c := range BackgroundCircles(b) {
		s.canvas.DrawEllipse(c.X*sx, c.Y*sy, c.R*sx, c.R*sy)
	}
}

// place writes g centred on (x, y). Cells outside the grid are dropped,
// and wide glyphs it partly covers are blanked.
func (s *scene) place(g string, x, y float64) {
	w := GlyphWidth(g)
	col, row := s.cell(x, y)
	col -= w / 2
	if row < 0 || row >= s.rows || col < 0 || col+w > s.cols {
		return
	}
	line := s.cells[row]
	if line[col] == "" && col > 0 {
		line[col-1] = " "
	}
	end := col + w
	if end < s.cols && line[end] == "" {
		line[end] = " "
	}
	line[col] = g
	for i := col + 1; i < end; i++ {
		line[i] = ""
	}
}

func (s *scene) render(vs []particle.Visual, b particle.Bounds, interacted bool, st styles) string {
	s.drawBackground(b)
	for r := range s.cells {
		for c := range s.cells[r] {
			s.cells[r][c] = " "
		}
	}
	for _, v := range vs {
		s.place(v.Glyph, v.X, v.Y)
	}

	hintRow := -1
	if !interacted {
		_, hintRow = s.cell(0, b.Height/2)
		if hintRow >= s.rows {
			hintRow = s.rows / 2
		}
	}

	var out strings.Builder
	for r := 0; r < s.rows; r++ {
		if r == hintRow {
			out.WriteString(lipgloss.PlaceHorizontal(s.cols, lipgloss.Center, st.hint.Render(Hint)))
		} else {
			s.writeRow(&out, r, st)
		}
		if r < s.rows-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// writeRow emits one row, styling runs of background dots together.
func (s *scene) writeRow(out *strings.Builder, r int, st styles) {
	var dots strings.Builder
	flush := func() {
		if dots.Len() > 0 {
			out.WriteString(st.sky.Render(dots.String()))
			dots.Reset()
		}
	}
	for c, g := range s.cells[r] {
		switch {
		case g == "":
		case g == " " && !s.canvas.Blank(c, r):
			dots.WriteRune(s.canvas.Grid[r][c])
		default:
			flush()
			out.WriteString(g)
		}
	}
	flush()
}
