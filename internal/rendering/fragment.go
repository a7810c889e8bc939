// Package rendering turns a résumé document into page markup.
package rendering

// Slot names a region of the entry template. The value is the element id inside the template.
type Slot string

// Template slots.
const (
	SlotExternal    Slot = "template_external"
	SlotHeading     Slot = "template_heading"
	SlotSubheading  Slot = "template_subheading"
	SlotDescription Slot = "template_description"
)

// Slots lists every template slot in document order.
var Slots = []Slot{SlotExternal, SlotHeading, SlotSubheading, SlotDescription}

// Fragment describes one instantiated entry: which slots survive and what they hold.
// It is immutable once built; Page turns it into markup.
type Fragment struct {
	external    bool
	heading     string
	subheading  string
	description string
}

// Instantiate builds a fragment. Empty heading, subheading or description removes that slot.
// Without an external marker the marker slot is removed and the heading loses its hover styling.
func Instantiate(external bool, heading, subheading, description string) Fragment {
	return Fragment{
		external:    external,
		heading:     heading,
		subheading:  subheading,
		description: description,
	}
}

// External reports whether the external-link marker is kept.
func (f Fragment) External() bool {
	return f.external
}

// Has reports whether slot survives in the fragment.
func (f Fragment) Has(slot Slot) bool {
	switch slot {
	case SlotExternal:
		return f.external
	case SlotHeading:
		return f.heading != ""
	case SlotSubheading:
		return f.subheading != ""
	case SlotDescription:
		return f.description != ""
	default:
		return false
	}
}

// Content returns the inner markup of a content slot. The external marker has no content.
func (f Fragment) Content(slot Slot) string {
	switch slot {
	case SlotHeading:
		return f.heading
	case SlotSubheading:
		return f.subheading
	case SlotDescription:
		return f.description
	default:
		return ""
	}
}

// Container receives instantiated fragments in order.
type Container interface {
	Append(f Fragment)
}

// FragmentList is an in-memory Container.
type FragmentList []Fragment

// Append adds f to the list.
func (l *FragmentList) Append(f Fragment) {
	*l = append(*l, f)
}
