package ui

import (
	"testing"

	"github.com/zhubert/floatchat/internal/config"
)

func TestNewLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		pageLines     int
		locals        int
		wantBody      Box
		wantPage      Box
		wantAnchors   []Box
	}{
		{
			name:  "no anchors",
			width: 100, height: 30, pageLines: 3,
			wantBody: Box{X: 0, Y: 1, W: 100, H: 28},
			wantPage: Box{X: 0, Y: 1, W: 100, H: 3},
		},
		{
			name:  "two anchors below the page",
			width: 101, height: 30, pageLines: 3, locals: 2,
			wantBody:    Box{X: 0, Y: 1, W: 101, H: 28},
			wantPage:    Box{X: 0, Y: 1, W: 101, H: 3},
			wantAnchors: []Box{{X: 0, Y: 4, W: 50, H: 25}, {X: 51, Y: 4, W: 50, H: 25}},
		},
		{
			name:  "long page leaves anchors the whole body",
			width: 60, height: 20, pageLines: 16, locals: 1,
			wantBody:    Box{X: 0, Y: 1, W: 60, H: 18},
			wantPage:    Box{X: 0, Y: 1, W: 60, H: 16},
			wantAnchors: []Box{{X: 0, Y: 1, W: 60, H: 18}},
		},
		{
			name:  "clamped to the minimum size",
			width: 10, height: 4, pageLines: 0,
			wantBody: Box{X: 0, Y: 1, W: MinTerminalWidth, H: MinTerminalHeight - 2},
			wantPage: Box{X: 0, Y: 1, W: MinTerminalWidth, H: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.width, tt.height, tt.pageLines, tt.locals)
			if l.Body != tt.wantBody {
				t.Errorf("Body = %+v, want %+v", l.Body, tt.wantBody)
			}
			if l.Page != tt.wantPage {
				t.Errorf("Page = %+v, want %+v", l.Page, tt.wantPage)
			}
			if l.Header.Y != 0 || l.Footer.Bottom() != l.Height {
				t.Errorf("Header = %+v, Footer = %+v", l.Header, l.Footer)
			}
			if len(l.Anchors) != len(tt.wantAnchors) {
				t.Fatalf("Anchors = %+v, want %+v", l.Anchors, tt.wantAnchors)
			}
			for i := range l.Anchors {
				if l.Anchors[i] != tt.wantAnchors[i] {
					t.Errorf("Anchors[%d] = %+v, want %+v", i, l.Anchors[i], tt.wantAnchors[i])
				}
			}
		})
	}
}

func TestBoxClip(t *testing.T) {
	screen := Box{W: 10, H: 5}
	tests := []struct {
		name string
		box  Box
		want Box
	}{
		{"inside", Box{X: 1, Y: 1, W: 3, H: 2}, Box{X: 1, Y: 1, W: 3, H: 2}},
		{"overhangs", Box{X: 8, Y: 4, W: 5, H: 5}, Box{X: 8, Y: 4, W: 2, H: 1}},
		{"outside", Box{X: 20, Y: 0, W: 2, H: 2}, Box{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Clip(screen); got != tt.want {
				t.Errorf("Clip() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFloatButton(t *testing.T) {
	body := Box{X: 0, Y: 1, W: 100, H: 28}

	first := FloatButton(body, 4, 0)
	if first != (Box{X: 95, Y: 27, W: 4, H: 1}) {
		t.Errorf("slot 0 = %+v", first)
	}
	second := FloatButton(body, 4, 1)
	if second.Right() >= first.X || second.Y != first.Y {
		t.Errorf("slot 1 = %+v should sit left of %+v", second, first)
	}

	tiny := FloatButton(Box{X: 5, Y: 5, W: 2, H: 1}, 4, 3)
	if tiny.X < 5 || tiny.Y < 5 {
		t.Errorf("button escaped its container: %+v", tiny)
	}
}

func TestPanel(t *testing.T) {
	tests := []struct {
		name      string
		container Box
		height    int
		want      Box
	}{
		{"half width", Box{X: 0, Y: 1, W: 100, H: 28}, 12, Box{X: 49, Y: 17, W: 50, H: 12}},
		{"minimum width", Box{X: 10, Y: 0, W: 30, H: 20}, 8, Box{X: 15, Y: 12, W: 24, H: 8}},
		{"narrow container", Box{X: 0, Y: 0, W: 20, H: 20}, 8, Box{X: 0, Y: 12, W: 19, H: 8}},
		{"taller than container", Box{X: 0, Y: 1, W: 100, H: 10}, 40, Box{X: 49, Y: 1, W: 50, H: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Panel(tt.container, tt.height); got != tt.want {
				t.Errorf("Panel() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPanelHeight(t *testing.T) {
	defaults := mustConfig(t, config.Fields{})
	tall := mustConfig(t, config.Fields{MinHeight: "20", MaxHeight: "5"})

	tests := []struct {
		name         string
		cfg          config.InstanceConfig
		contentLines int
		want         int
	}{
		{"min height from px", defaults, 1, 11},
		{"content between bounds", defaults, 8, 12},
		{"max height from vh", defaults, 40, 14},
		{"min wins over max", tall, 1, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PanelHeight(tt.cfg, 28, tt.contentLines); got != tt.want {
				t.Errorf("PanelHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}
