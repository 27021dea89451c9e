// Package markup renders widgets as HTML for a browser host and reads such
// HTML back.
//
// The rendered fragment follows the DOM contract of the terminal renderer:
// every panel is a node with a unique id, its close control is found by the
// close-button class inside that node, and the page script tracks open
// panels by id only.
package markup

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/zhubert/floatchat/internal/chat"
	ferrors "github.com/zhubert/floatchat/internal/errors"
	"github.com/zhubert/floatchat/internal/style"
	"github.com/zhubert/floatchat/internal/widget"
)

// PanelAttr is set on a widget's container and names its panel id.
const PanelAttr = "data-gfc-panel"

// RoleAttr is set on each rendered chat message.
const RoleAttr = "data-role"

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
)

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// WidgetNode converts a laid out widget into an HTML node tree.
func WidgetNode(w *widget.Widget) (*html.Node, error) {
	c := w.Components()
	if c == nil {
		return nil, ferrors.E(ferrors.Op("markup.RenderWidget"), ferrors.KindNotInitialized,
			fmt.Sprintf("%s has no layout; call CreateLayout first", w.Config().InstanceName()))
	}
	root, err := convert(c.Container, w.History())
	if err != nil {
		return nil, err
	}
	root.Attr = append(root.Attr, attr(PanelAttr, w.PanelID()))
	return root, nil
}

func convert(n *widget.Node, history chat.History) (*html.Node, error) {
	var out *html.Node
	switch n.Kind {
	case widget.KindButton:
		out = element(atom.Button, attr("type", "button"))
		if n.Image != "" {
			out.AppendChild(element(atom.Img, attr("src", n.Image), attr("alt", "")))
		}
		if n.Text != "" {
			out.AppendChild(text(n.Text))
		}
	case widget.KindInput:
		out = element(atom.Input, attr("type", "text"), attr("placeholder", n.Placeholder), attr("value", n.Text))
	case widget.KindChat:
		out = element(atom.Div, attr("role", "log"))
		for _, m := range history {
			msg, err := messageNode(m)
			if err != nil {
				return nil, err
			}
			out.AppendChild(msg)
		}
	default:
		out = element(atom.Div)
		if n.Text != "" {
			out.AppendChild(text(n.Text))
		}
	}
	if n.ID != "" {
		out.Attr = append(out.Attr, attr("id", n.ID))
	}
	if len(n.Classes) > 0 {
		out.Attr = append(out.Attr, attr("class", n.ClassAttr()))
	}
	if n.Hidden {
		out.Attr = append(out.Attr, attr("hidden", ""))
	}
	for _, child := range n.Children {
		c, err := convert(child, history)
		if err != nil {
			return nil, err
		}
		out.AppendChild(c)
	}
	return out, nil
}

// messageNode renders one message; its content is Markdown.
func messageNode(m chat.Message) (*html.Node, error) {
	div := element(atom.Div, attr(RoleAttr, string(m.Role)))
	if m.Content == nil {
		return div, nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(*m.Content), &buf); err != nil {
		return nil, fmt.Errorf("render message: %w", err)
	}
	nodes, err := html.ParseFragment(&buf, div)
	if err != nil {
		return nil, fmt.Errorf("parse message: %w", err)
	}
	for _, n := range nodes {
		div.AppendChild(n)
	}
	return div, nil
}

// RenderWidget writes the widget's HTML fragment.
func RenderWidget(out io.Writer, w *widget.Widget) error {
	n, err := WidgetNode(w)
	if err != nil {
		return err
	}
	return html.Render(out, n)
}

// panelZBase is the z-index of the lowest open panel. Global panels sit in
// the fixed layer above every anchored panel.
func panelZBase(global bool) int {
	if global {
		return style.FixedZ
	}
	return style.PanelBaseZ
}

// RenderPage writes a complete HTML document hosting the widgets, with the
// default stylesheet (when any widget uses it) and the Escape script.
func RenderPage(out io.Writer, title string, widgets ...*widget.Widget) error {
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	t := element(atom.Title)
	t.AppendChild(text(title))
	head.AppendChild(t)

	body := element(atom.Body)
	var targets []EscapeTarget
	useDefault := false
	for _, w := range widgets {
		n, err := WidgetNode(w)
		if err != nil {
			return err
		}
		body.AppendChild(n)
		cfg := w.Config()
		useDefault = useDefault || cfg.UseDefaultCSS()
		targets = append(targets, EscapeTarget{
			PanelID:          w.PanelID(),
			FloatButtonClass: firstClass(cfg.Class(style.FloatButton)),
			CloseClass:       firstClass(cfg.Class(style.PanelCloseButton)),
			Open:             !w.Collapsed(),
			ZBase:            panelZBase(cfg.IsGlobal()),
		})
	}
	if useDefault {
		css := element(atom.Style)
		css.AppendChild(text(style.DefaultCSS))
		head.AppendChild(css)
	}
	script, err := EscapeScript(targets)
	if err != nil {
		return err
	}
	s := element(atom.Script)
	s.AppendChild(text(script))
	body.AppendChild(s)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html, attr("lang", "en"))
	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)
	return html.Render(out, doc)
}

// RenderPageString is RenderPage into a string.
func RenderPageString(title string, widgets ...*widget.Widget) (string, error) {
	var b strings.Builder
	if err := RenderPage(&b, title, widgets...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func firstClass(class string) string {
	if f := strings.Fields(class); len(f) > 0 {
		return f[0]
	}
	return ""
}
