package ui

import (
	"slices"

	"charm.land/lipgloss/v2"
)

// Theme is the color palette of the terminal page and of the built-in
// widget classes.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary accents float buttons, panel headers and the page header.
	Primary string
	// Secondary accents key hints and streaming indicators.
	Secondary string

	Bg         string
	BgSelected string // defaults to Primary if empty

	Text        string
	TextMuted   string
	TextInverse string // text on Primary

	User      string
	Assistant string
	Error     string

	Border      string
	BorderFocus string // defaults to Primary if empty

	Code     string
	CodeBg   string
	Link     string
	ListItem string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeTokyoNight ThemeName = "tokyo-night"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:        "Dark Purple",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#F9FAFB",
		User:        "#A78BFA",
		Assistant:   "#22D3EE",
		Error:       "#EF4444",
		Border:      "#374151",
		Code:        "#67E8F9",
		CodeBg:      "#1E1E2E",
		Link:        "#67E8F9",
		ListItem:    "#06B6D4",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		User:        "#A3BE8C",
		Assistant:   "#88C0D0",
		Error:       "#BF616A",
		Border:      "#4C566A",
		Code:        "#A3BE8C",
		CodeBg:      "#242933",
		Link:        "#88C0D0",
		ListItem:    "#81A1C1",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		User:        "#FF79C6",
		Assistant:   "#8BE9FD",
		Error:       "#FF5555",
		Border:      "#44475A",
		Code:        "#50FA7B",
		CodeBg:      "#21222C",
		Link:        "#8BE9FD",
		ListItem:    "#BD93F9",
	},
	ThemeGruvbox: {
		Name:        "Gruvbox Dark",
		Primary:     "#FE8019",
		Secondary:   "#83A598",
		Bg:          "#282828",
		Text:        "#EBDBB2",
		TextMuted:   "#A89984",
		TextInverse: "#282828",
		User:        "#FABD2F",
		Assistant:   "#83A598",
		Error:       "#FB4934",
		Border:      "#504945",
		Code:        "#B8BB26",
		CodeBg:      "#1D2021",
		Link:        "#83A598",
		ListItem:    "#FE8019",
	},
	ThemeTokyoNight: {
		Name:        "Tokyo Night",
		Primary:     "#7AA2F7",
		Secondary:   "#BB9AF7",
		Bg:          "#1A1B26",
		Text:        "#C0CAF5",
		TextMuted:   "#565F89",
		TextInverse: "#1A1B26",
		User:        "#9ECE6A",
		Assistant:   "#7AA2F7",
		Error:       "#F7768E",
		Border:      "#3B4261",
		Code:        "#9ECE6A",
		CodeBg:      "#16161E",
		Link:        "#7DCFFF",
		ListItem:    "#BB9AF7",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#6366F1",
		Secondary:   "#0891B2",
		Bg:          "#FFFFFF",
		BgSelected:  "#E0E7FF",
		Text:        "#1F2937",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		User:        "#7C3AED",
		Assistant:   "#0891B2",
		Error:       "#DC2626",
		Border:      "#D1D5DB",
		BorderFocus: "#6366F1",
		Code:        "#059669",
		CodeBg:      "#F3F4F6",
		Link:        "#0891B2",
		ListItem:    "#6366F1",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeGruvbox,
		ThemeTokyoNight,
		ThemeLight,
	}
}

// ParseThemeName reports whether name is a built-in theme.
func ParseThemeName(name string) (ThemeName, bool) {
	t := ThemeName(name)
	return t, slices.Contains(ThemeNames(), t)
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme sets the active theme and regenerates all styles. Unknown names
// select the default theme.
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	currentTheme = BuiltinThemes[name]
	regenerateStyles()
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorError = lipgloss.Color(t.Error)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PageStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	AnchorStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		Foreground(ColorTextMuted)

	PanelFocusedBorder = ColorBorderFocus

	ChatUserStyle = lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	StatusStreamingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	InlineCodeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Code)).
		Background(lipgloss.Color(t.CodeBg))

	ListBulletStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.ListItem))

	LinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Link)).
		Underline(true)

	BoldStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	defaultClassStyles = buildDefaultClassStyles(t)
}
