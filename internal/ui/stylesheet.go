package ui

import (
	"maps"
	"slices"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/floatchat/internal/style"
	"github.com/zhubert/floatchat/internal/widget"
)

// defaultClassStyles styles the built-in gfc-* classes for the active theme.
var defaultClassStyles map[string]lipgloss.Style

func buildDefaultClassStyles(t Theme) map[string]lipgloss.Style {
	d := style.Defaults()
	return map[string]lipgloss.Style{
		d.Get(style.Container): lipgloss.NewStyle(),
		d.Get(style.FloatButton): lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.TextInverse)).
			Background(lipgloss.Color(t.Primary)).
			Padding(0, 1),
		d.Get(style.Panel): lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Background(lipgloss.Color(t.Bg)),
		d.Get(style.PanelHeader): lipgloss.NewStyle().
			Background(lipgloss.Color(t.GetBgSelected())),
		d.Get(style.PanelTitle): lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.GetBgSelected())).
			Padding(0, 1),
		d.Get(style.PanelCloseButton): lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Background(lipgloss.Color(t.GetBgSelected())),
		d.Get(style.PanelChat): lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		d.Get(style.PanelMessageInput): lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
	}
}

// StyleSheet maps class names to Lip Gloss styles, the terminal counterpart
// of a CSS stylesheet. Classes registered on the sheet take precedence over
// the built-in gfc-* styles; classes known to neither render unstyled.
type StyleSheet struct {
	styles map[string]lipgloss.Style
}

// NewStyleSheet returns a sheet with no custom classes.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{styles: make(map[string]lipgloss.Style)}
}

// Register binds class to st, replacing any previous binding.
func (s *StyleSheet) Register(class string, st lipgloss.Style) {
	s.styles[class] = st
}

// Lookup returns the style bound to class.
func (s *StyleSheet) Lookup(class string) (lipgloss.Style, bool) {
	if st, ok := s.styles[class]; ok {
		return st, true
	}
	st, ok := defaultClassStyles[class]
	return st, ok
}

// Classes returns the custom classes in sorted order.
func (s *StyleSheet) Classes() []string {
	return slices.Sorted(maps.Keys(s.styles))
}

// For resolves the style of a node: the first of its classes that the sheet
// knows wins. Marker classes such as gfc-fixed carry no style.
func (s *StyleSheet) For(n *widget.Node) lipgloss.Style {
	if n == nil {
		return lipgloss.NewStyle()
	}
	for _, c := range n.Classes {
		if st, ok := s.Lookup(c); ok {
			return st
		}
	}
	return lipgloss.NewStyle()
}
