package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/game"
)

// RenderView downsamples the engine's logical raster to the terminal using
// half-block characters: each cell carries two sample rows, top in the
// foreground and bottom in the background. Adjacent cells with the same
// color pair are grouped into one styled run to keep the ANSI output small.
func RenderView(e *game.Engine, termW, termH int) string {
	if termW <= 0 || termH <= 0 {
		return ""
	}

	imgW, imgH := e.Width(), e.Height()
	sampleH := termH * 2

	var sb strings.Builder
	sb.Grow(termW*termH*24 + termH)

	for cy := 0; cy < termH; cy++ {
		if cy > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < termW {
			top, bottom := samplePair(e, x, cy, termW, sampleH, imgW, imgH)

			// Collect consecutive cells with the same color pair.
			n := 1
			for x+n < termW {
				t2, b2 := samplePair(e, x+n, cy, termW, sampleH, imgW, imgH)
				if t2 != top || b2 != bottom {
					break
				}
				n++
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex()))
			sb.WriteString(style.Render(strings.Repeat("▀", n)))
			x += n
		}
	}
	return sb.String()
}

// samplePair returns the two stacked sample colors for one terminal cell.
func samplePair(e *game.Engine, cx, cy, termW, sampleH, imgW, imgH int) (top, bottom core.RGB) {
	sx := cx * imgW / termW
	top = e.ColorAt(sx, (cy*2)*imgH/sampleH)
	bottom = e.ColorAt(sx, (cy*2+1)*imgH/sampleH)
	return top, bottom
}
