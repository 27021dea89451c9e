package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// AppName is shown at the left of the header.
const AppName = "floatchat"

// Header represents the top header bar
type Header struct {
	width     int
	openCount int
	focus     string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetStatus sets the number of open panels and the title of the focused
// panel ("" for the page).
func (h *Header) SetStatus(openCount int, focus string) {
	h.openCount = openCount
	h.focus = focus
}

// View renders the header
func (h *Header) View() string {
	title := " " + AppName
	right := fmt.Sprintf("%d open ", h.openCount)
	if h.focus != "" {
		right = h.focus + " · " + right
	}

	room := h.width - len(title) - lipgloss.Width(right)
	if room < 1 {
		right = truncate(right, max(h.width-len(title)-1, 0))
		room = h.width - len(title) - lipgloss.Width(right)
	}
	content := title + strings.Repeat(" ", max(room, 0)) + right
	return renderGradient(content, len([]rune(title)))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content on a background fading from the theme's
// primary color to its background color. The first bold runes are bold.
func renderGradient(content string, bold int) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	text := lipgloss.Color(theme.Text)

	runes := []rune(content)
	width := len(runes)
	var sb strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(width)
		bg := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X",
			int(float64(startR)*(1-t)+float64(endR)*t),
			int(float64(startG)*(1-t)+float64(endG)*t),
			int(float64(startB)*(1-t)+float64(endB)*t),
		))
		sb.WriteString(lipgloss.NewStyle().
			Background(bg).
			Foreground(text).
			Bold(i < bold).
			Render(string(r)))
	}
	return sb.String()
}
