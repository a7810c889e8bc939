// Package markup builds the HTML fragments inserted into page slots.
// Item and link text are inserted as markup; only attribute values are escaped.
package markup

import (
	"html"
	"strings"
)

const (
	listItemClass = "list-chevron"
	pillClass     = "inline-flex items-center pr-5 py-0.5 rounded-full"

	// ContactSeparator joins contact links.
	ContactSeparator = "&nbsp;&nbsp;·&nbsp;&nbsp;"
)

// BuildList wraps every item in a list item inside one unordered list.
// An empty input still yields the list wrapper.
func BuildList(items []string) string {
	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, item := range items {
		sb.WriteString(`<li class="` + listItemClass + `">`)
		sb.WriteString(item)
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>")
	return sb.String()
}

// BuildLink returns an anchor that opens href in a new browsing context.
func BuildLink(text, href string) string {
	return `<a href="` + html.EscapeString(href) + `" target="_blank">` + text + `</a>`
}

// BuildPills renders each item as a rounded badge, with no separator between them.
func BuildPills(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(`<span class="` + pillClass + `">`)
		sb.WriteString(item)
		sb.WriteString("</span>")
	}
	return sb.String()
}

// BuildContact links phone, email and website, skipping empty values.
func BuildContact(phone, email, website string) string {
	items := make([]string, 0, 3)
	if phone != "" {
		items = append(items, BuildLink(phone, "tel:"+phone))
	}
	if email != "" {
		items = append(items, BuildLink(email, "mailto:"+email))
	}
	if website != "" {
		items = append(items, BuildLink(website, website))
	}
	return strings.Join(items, ContactSeparator)
}

// BuildDescription renders a description: nothing for no items, the raw
// string for one item and a list for more.
func BuildDescription(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return BuildList(items)
	}
}
