// Package export writes world snapshots and run histories as SVG.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/emojidrop/internal/particle"
	"github.com/san-kum/emojidrop/internal/viz"
)

const (
	backgroundFill = "#f4f1ea"
	circleFill     = "rgba(255,255,255,0.12)"
	hintFill       = "rgba(0,0,0,0.6)"
	emojiFonts     = `"Apple Color Emoji","Segoe UI Emoji","Noto Color Emoji",sans-serif`
)

// SnapshotToSVG draws the background circles, every glyph at its size
// centred on its position, and the hint when nothing has been pressed yet.
// Visuals are drawn in the order given.
func SnapshotToSVG(vs []particle.Visual, b particle.Bounds, interacted bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, b.Width, b.Height, b.Width, b.Height, backgroundFill, circleFill))

	for _, c := range viz.BackgroundCircles(b) {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, c.X, c.Y, c.R))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<g text-anchor="middle" dominant-baseline="middle" font-family='%s'>
`, emojiFonts))
	for _, v := range vs {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%.1f">%s</text>
`, v.X, v.Y+1, v.Size, html.EscapeString(v.Glyph)))
	}
	sb.WriteString("</g>\n")

	if !interacted {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="Verdana,sans-serif" font-weight="700" font-size="32" fill="%s">%s</text>
`, b.Width/2, b.Height/2, hintFill, viz.Hint))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG plots values against their index as a single polyline.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
