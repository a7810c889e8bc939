package rendering

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
)

// Element ids the page template must provide.
const (
	TemplateID    = "template"
	FullNameID    = "full_name"
	DescriptionID = "description"
	ContactID     = "contact"
)

const (
	hoverClass = "group-hover:text-gray-500"
	darkClass  = "dark"
)

//go:embed templates/index.html
var defaultTemplate []byte

// DefaultTemplate returns a copy of the built-in page template.
func DefaultTemplate() []byte {
	return bytes.Clone(defaultTemplate)
}

// Page is a parsed page template being filled in.
type Page struct {
	doc      *goquery.Document
	template *goquery.Selection
}

// ParsePage parses a page template and checks that the entry template and header targets exist.
func ParsePage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse page template",
			Cause:   err,
		}
	}

	for _, id := range []string{TemplateID, FullNameID, DescriptionID, ContactID} {
		if doc.Find("#"+id).Length() == 0 {
			return nil, &TemplateError{
				Message: fmt.Sprintf("page template has no element with id %q", id),
			}
		}
	}

	return &Page{doc: doc, template: doc.Find("#" + TemplateID).First()}, nil
}

// LoadPage reads and parses a page template file. An empty path selects the built-in template.
func LoadPage(path string) (*Page, error) {
	if path == "" {
		return ParsePage(bytes.NewReader(defaultTemplate))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", path),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", path),
			Cause:   err,
		}
	}
	return ParsePage(bytes.NewReader(content))
}

// SetFullName writes the name as text into the header and the document title.
func (p *Page) SetFullName(name string) {
	p.doc.Find("#" + FullNameID).SetText(name)

	title := p.doc.Find("head title")
	if title.Length() == 0 {
		p.doc.Find("head").AppendHtml("<title></title>")
		title = p.doc.Find("head title")
	}
	title.SetText(name)
}

// SetDescription writes the description as text.
func (p *Page) SetDescription(text string) {
	p.doc.Find("#" + DescriptionID).SetText(text)
}

// SetContact sets the inner markup of the contact line.
func (p *Page) SetContact(markup string) {
	p.doc.Find("#" + ContactID).SetHtml(markup)
}

// Title returns the document title.
func (p *Page) Title() string {
	return p.doc.Find("head title").Text()
}

// ToggleDark flips the dark-mode class on the root element.
func (p *Page) ToggleDark() {
	p.doc.Find("html").ToggleClass(darkClass)
}

// Container returns the section container with the given id.
func (p *Page) Container(id string) (Container, error) {
	sel := p.doc.Find("#" + id)
	if sel.Length() == 0 {
		return nil, &RenderError{Message: fmt.Sprintf("container %q not found", id)}
	}
	return &pageContainer{page: p, sel: sel.First()}, nil
}

// RemoveSection removes the element enclosing the container with the given id.
func (p *Page) RemoveSection(id string) error {
	sel := p.doc.Find("#" + id)
	if sel.Length() == 0 {
		return &RenderError{Message: fmt.Sprintf("container %q not found", id)}
	}
	sel.First().Parent().Remove()
	return nil
}

// HTML returns the full document markup.
func (p *Page) HTML() (string, error) {
	out, err := p.doc.Html()
	if err != nil {
		return "", &RenderError{
			Message: "failed to serialize page",
			Cause:   err,
		}
	}
	return out, nil
}

// Document exposes the underlying tree, mainly for inspection in tests.
func (p *Page) Document() *goquery.Document {
	return p.doc
}

// materialize clones the entry template and applies the fragment to the clone.
func (p *Page) materialize(f Fragment) *goquery.Selection {
	clone := p.template.Contents().Clone()

	for _, slot := range Slots {
		if !f.Has(slot) {
			clone = removeSlot(clone, slot)
			continue
		}
		if slot != SlotExternal {
			findSlot(clone, slot).SetHtml(f.Content(slot))
		}
	}

	if !f.External() {
		findSlot(clone, SlotHeading).RemoveClass(hoverClass)
	}
	return clone
}

// findSlot looks at the fragment roots as well as their descendants.
func findSlot(fragment *goquery.Selection, slot Slot) *goquery.Selection {
	selector := "#" + string(slot)
	return fragment.Filter(selector).AddSelection(fragment.Find(selector))
}

func removeSlot(fragment *goquery.Selection, slot Slot) *goquery.Selection {
	selector := "#" + string(slot)
	fragment.Find(selector).Remove()
	return fragment.Not(selector)
}

type pageContainer struct {
	page *Page
	sel  *goquery.Selection
}

func (c *pageContainer) Append(f Fragment) {
	c.sel.AppendSelection(c.page.materialize(f))
}
