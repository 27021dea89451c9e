package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette of the active theme. SetTheme reassigns every variable in this
// file.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorUser        color.Color
	ColorAssistant   color.Color
	ColorError       color.Color
)

// Page chrome
var (
	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style

	// PageStyle renders the base page text under the overlays.
	PageStyle lipgloss.Style

	// AnchorStyle draws the box a locally anchored widget is pinned to.
	AnchorStyle lipgloss.Style
)

// PanelFocusedBorder replaces the border color of the panel holding input
// focus.
var PanelFocusedBorder color.Color

// Conversation
var (
	ChatUserStyle        lipgloss.Style
	ChatAssistantStyle   lipgloss.Style
	ChatMessageStyle     lipgloss.Style
	StatusStreamingStyle lipgloss.Style

	InlineCodeStyle lipgloss.Style
	ListBulletStyle lipgloss.Style
	LinkStyle       lipgloss.Style
	BoldStyle       lipgloss.Style
)

func init() {
	regenerateStyles()
}
