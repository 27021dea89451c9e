package ui

import (
	"github.com/zhubert/floatchat/internal/config"
	"github.com/zhubert/floatchat/internal/logger"
)

// Box is a rectangle of terminal cells.
type Box struct {
	X, Y, W, H int
}

// Right returns the first column past the box.
func (b Box) Right() int { return b.X + b.W }

// Bottom returns the first row past the box.
func (b Box) Bottom() int { return b.Y + b.H }

// Empty reports whether the box has no cells.
func (b Box) Empty() bool { return b.W <= 0 || b.H <= 0 }

// Clip returns the part of b inside o.
func (b Box) Clip(o Box) Box {
	x0, y0 := max(b.X, o.X), max(b.Y, o.Y)
	x1, y1 := min(b.Right(), o.Right()), min(b.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Box{}
	}
	return Box{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Layout is the geometry of one frame: page chrome, the base page text and
// one anchor box per locally anchored widget. It is recomputed on resize.
type Layout struct {
	Width, Height int

	Header Box
	Body   Box
	Footer Box

	// Page holds the base page text.
	Page Box

	// Anchors are laid out side by side under the page text.
	Anchors []Box
}

// NewLayout computes the layout for a terminal of the given size.
func NewLayout(width, height, pageLines, locals int) Layout {
	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)

	l := Layout{Width: width, Height: height}
	l.Header = Box{X: 0, Y: 0, W: width, H: HeaderHeight}
	l.Footer = Box{X: 0, Y: height - FooterHeight, W: width, H: FooterHeight}
	l.Body = Box{X: 0, Y: HeaderHeight, W: width, H: height - HeaderHeight - FooterHeight}

	pageLines = min(max(pageLines, 0), l.Body.H)
	l.Page = Box{X: l.Body.X, Y: l.Body.Y, W: l.Body.W, H: pageLines}

	if locals > 0 {
		region := Box{X: l.Body.X, Y: l.Body.Y + pageLines, W: l.Body.W, H: l.Body.H - pageLines}
		if region.H < MinAnchorHeight {
			region = l.Body
		}
		w := (region.W - AnchorGap*(locals-1)) / locals
		for i := range locals {
			l.Anchors = append(l.Anchors, Box{X: region.X + i*(w+AnchorGap), Y: region.Y, W: w, H: region.H})
		}
	}

	logger.WithComponent("ui").Debug("Layout computed",
		"width", width,
		"height", height,
		"pageLines", pageLines,
		"anchors", len(l.Anchors),
	)
	return l
}

// FloatButton places a button of the given width at the bottom-right of its
// container. slot shifts it left by whole buttons so several globally
// anchored buttons sit next to each other.
func FloatButton(container Box, width, slot int) Box {
	x := container.Right() - EdgeInset - width - slot*(width+1)
	y := container.Bottom() - EdgeInset - 1
	return Box{X: max(x, container.X), Y: max(y, container.Y), W: width, H: 1}
}

// PanelHeight resolves a panel's min and max heights against the body
// height and clamps the height its content wants. A min height larger than
// the max height wins, as in CSS.
func PanelHeight(cfg config.InstanceConfig, bodyRows, contentLines int) int {
	lo := cfg.MinHeightLength().Rows(bodyRows)
	hi := max(cfg.MaxHeightLength().Rows(bodyRows), lo)
	return min(max(contentLines+PanelChromeHeight, lo), hi)
}

// Panel places a panel at the bottom-right of its container: half the
// container wide and height rows tall, shrunk to fit.
func Panel(container Box, height int) Box {
	w := min(max(container.W/2, PanelMinWidth), container.W-EdgeInset)
	h := min(height, container.H)
	return Box{
		X: max(container.Right()-EdgeInset-w, container.X),
		Y: max(container.Bottom()-h, container.Y),
		W: w,
		H: h,
	}
}
