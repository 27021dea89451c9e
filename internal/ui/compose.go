package ui

import (
	"cmp"
	"slices"

	uv "github.com/charmbracelet/ultraviolet"
)

// layer is a rendered block, the cells it covers and its stacking level.
type layer struct {
	content string
	box     Box
	z       int
}

// composite draws layers onto a width x height screen, higher z over lower.
// Layers with equal z are drawn in order. Layers are clipped to the screen.
func composite(width, height int, layers []layer) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	layers = slices.Clone(layers)
	slices.SortStableFunc(layers, func(a, b layer) int { return cmp.Compare(a.z, b.z) })
	screen := Box{W: width, H: height}
	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	for _, l := range layers {
		b := l.box.Clip(screen)
		if b.Empty() || l.content == "" {
			continue
		}
		uv.NewStyledString(l.content).Draw(scr, uv.Rect(b.X, b.Y, b.W, b.H))
	}
	return scr.Render()
}
