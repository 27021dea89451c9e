package widget

import (
	"slices"
	"strings"

	"github.com/zhubert/floatchat/internal/style"
)

// Kind is the element type of a layout node.
type Kind int

const (
	KindContainer Kind = iota
	KindAnchor
	KindButton
	KindPanel
	KindRow
	KindText
	KindChat
	KindInput
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindAnchor:
		return "anchor"
	case KindButton:
		return "button"
	case KindPanel:
		return "panel"
	case KindRow:
		return "row"
	case KindText:
		return "text"
	case KindChat:
		return "chat"
	case KindInput:
		return "input"
	default:
		return "unknown"
	}
}

// NoRole marks nodes that carry no style role, such as the anchor.
const NoRole style.Role = -1

// Node is one element of a widget layout. Renderers walk the tree; the
// widget only flips Hidden.
type Node struct {
	Kind        Kind
	Role        style.Role
	ID          string
	Classes     []string
	Text        string
	Image       string
	Placeholder string
	Hidden      bool
	Children    []*Node
}

// NewAnchor returns an anchor node for an anchor factory. text is the content
// the anchor shows on the page.
func NewAnchor(id, text string) *Node {
	return &Node{Kind: KindAnchor, Role: NoRole, ID: id, Text: text}
}

// ClassAttr joins the classes as in an HTML class attribute.
func (n *Node) ClassAttr() string {
	return strings.Join(n.Classes, " ")
}

// HasClass reports whether the node carries class c.
func (n *Node) HasClass(c string) bool {
	return slices.Contains(n.Classes, c)
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first descendant (or n itself) with class c.
func (n *Node) Find(c string) *Node {
	var found *Node
	n.Walk(func(x *Node) bool {
		if found != nil {
			return false
		}
		if x.HasClass(c) {
			found = x
			return false
		}
		return true
	})
	return found
}

// classList splits a class binding into a list and appends extra markers.
func classList(class string, markers ...string) []string {
	out := strings.Fields(class)
	return append(out, markers...)
}
