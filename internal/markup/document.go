package markup

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a parsed page or fragment. Panels are looked up by id only,
// never by scanning for whatever looks open.
type Document struct {
	doc *goquery.Document
}

// Parse reads HTML produced by RenderWidget or RenderPage.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// ParseString is Parse for an in-memory string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Panel returns the panel node with the given id. The selection is empty
// when there is none.
func (d *Document) Panel(id string) *goquery.Selection {
	return d.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	}).First()
}

// CloseControl returns the element with class closeClass inside the panel
// id. Elements with that class elsewhere on the page are not considered.
func (d *Document) CloseControl(id, closeClass string) *goquery.Selection {
	return d.Panel(id).Find("." + closeClass).First()
}

// IsOpen reports whether the panel exists and is not hidden.
func (d *Document) IsOpen(id string) bool {
	p := d.Panel(id)
	if p.Length() == 0 {
		return false
	}
	_, hidden := p.Attr("hidden")
	return !hidden
}

// PanelIDs returns the ids of all widget panels in document order.
func (d *Document) PanelIDs() []string {
	var ids []string
	d.doc.Find("[" + PanelAttr + "]").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr(PanelAttr); ok {
			ids = append(ids, id)
		}
	})
	return ids
}

// Messages returns the plain text of each rendered message in a panel, with
// the speaker role.
func (d *Document) Messages(id string) (roles, texts []string) {
	d.Panel(id).Find("[" + RoleAttr + "]").Each(func(_ int, s *goquery.Selection) {
		role, _ := s.Attr(RoleAttr)
		roles = append(roles, role)
		texts = append(texts, strings.TrimSpace(s.Text()))
	})
	return roles, texts
}

// Selection exposes the underlying document for callers needing other
// lookups.
func (d *Document) Selection() *goquery.Selection {
	return d.doc.Selection
}
