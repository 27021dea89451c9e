package ui

import (
	"path"
	"strings"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/floatchat/internal/widget"
)

// imageIconWidth caps the label shown for an image icon.
const imageIconWidth = 12

// panelView is the terminal state of one widget's panel: the editable input
// and the scrollable history. The widget stays the source of truth for the
// input value and the history.
type panelView struct {
	w        *widget.Widget
	input    textinput.Model
	viewport viewport.Model
	focused  bool

	// content is the history as last rendered into the viewport.
	content string
}

func newPanelView(w *widget.Widget) *panelView {
	ti := textinput.New()
	ti.Placeholder = w.Components().MessageInput.Placeholder
	ti.Prompt = "> "
	ti.CharLimit = InputCharLimit
	ti.SetValue(w.Input())
	applyInputStyles(&ti)

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &panelView{w: w, input: ti, viewport: vp}
}

// applyInputStyles colors the input from the theme. The cursor does not
// blink, so typing produces no tick commands.
func applyInputStyles(ti *textinput.Model) {
	styles := ti.Styles()

	textStyle := lipgloss.NewStyle().Foreground(ColorText)
	placeholderStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)

	styles.Focused.Text = textStyle
	styles.Focused.Placeholder = placeholderStyle
	styles.Focused.Prompt = lipgloss.NewStyle().Foreground(ColorPrimary)

	styles.Blurred.Text = textStyle
	styles.Blurred.Placeholder = placeholderStyle
	styles.Blurred.Prompt = placeholderStyle

	styles.Cursor.Blink = false
	ti.SetStyles(styles)
}

// setFocused moves keyboard focus into or out of the input.
func (p *panelView) setFocused(focused bool) {
	p.focused = focused
	if focused {
		p.input.Focus()
	} else {
		p.input.Blur()
	}
}

// syncInput pulls the widget's input value into the text field.
func (p *panelView) syncInput() {
	if p.input.Value() != p.w.Input() {
		p.input.SetValue(p.w.Input())
	}
}

// updateInput forwards a key to the text field and mirrors the result on
// the widget.
func (p *panelView) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.w.SetInput(p.input.Value())
	return cmd
}

// scroll forwards a paging key to the history viewport.
func (p *panelView) scroll(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// contentLines is the height the rendered history wants at the given
// panel width.
func (p *panelView) contentLines(sheet *StyleSheet, panelWidth int, streaming bool) int {
	c := p.w.Components()
	inner := panelWidth - sheet.For(c.Panel).GetHorizontalFrameSize()
	chatWidth := inner - sheet.For(c.Chat).GetHorizontalFrameSize()
	rendered := renderHistory(p.w.History(), chatWidth, streaming)
	if rendered == "" {
		return 1
	}
	return lipgloss.Height(rendered)
}

// view renders the panel to fill box.
func (p *panelView) view(sheet *StyleSheet, box Box, streaming bool) string {
	c := p.w.Components()
	panelStyle := sheet.For(c.Panel)
	if p.focused {
		panelStyle = panelStyle.BorderForeground(PanelFocusedBorder)
	}
	innerW := max(box.W-panelStyle.GetHorizontalFrameSize(), 1)
	innerH := max(box.H-panelStyle.GetVerticalFrameSize(), 3)

	header := p.headerView(sheet, innerW)

	chatStyle := sheet.For(c.Chat)
	chatRows := max(innerH-2, 1)
	chatWidth := max(innerW-chatStyle.GetHorizontalFrameSize(), 1)
	p.viewport.SetWidth(chatWidth)
	p.viewport.SetHeight(chatRows)
	if content := renderHistory(p.w.History(), chatWidth, streaming); content != p.content {
		follow := p.content == "" || p.viewport.AtBottom()
		p.content = content
		p.viewport.SetContent(content)
		if follow {
			p.viewport.GotoBottom()
		}
	}
	chatView := chatStyle.Width(innerW).Height(chatRows).MaxHeight(chatRows).Render(p.viewport.View())

	inputStyle := sheet.For(c.MessageInput)
	p.input.SetWidth(max(innerW-inputStyle.GetHorizontalFrameSize()-lipgloss.Width(p.input.Prompt), 1))
	inputView := inputStyle.Width(innerW).MaxHeight(1).Render(p.input.View())

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, chatView, inputView))
}

// headerView renders the title row: the title on the left, truncated to
// leave room for the close button on the right.
func (p *panelView) headerView(sheet *StyleSheet, width int) string {
	c := p.w.Components()
	closeBtn := sheet.For(c.CloseButton).Render(c.CloseButton.Text)

	titleStyle := sheet.For(c.Title)
	room := width - lipgloss.Width(closeBtn) - titleStyle.GetHorizontalFrameSize()
	title := titleStyle.Render(truncate(c.Title.Text, room))

	gap := max(width-lipgloss.Width(title)-lipgloss.Width(closeBtn), 0)
	headerStyle := sheet.For(c.Header)
	return headerStyle.Width(width).MaxHeight(1).Render(title + headerStyle.Render(strings.Repeat(" ", gap)) + closeBtn)
}

// floatButtonLabel is the text drawn for a float button; an image icon is
// shown by file name.
func floatButtonLabel(n *widget.Node) string {
	if n.Image != "" {
		return "[" + truncate(path.Base(n.Image), imageIconWidth) + "]"
	}
	return n.Text
}

// floatButtonView renders a float button.
func floatButtonView(sheet *StyleSheet, n *widget.Node) string {
	return sheet.For(n).Render(floatButtonLabel(n))
}
