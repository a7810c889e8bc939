// Package formatting applies capitalization styles and assembles full names.
package formatting

import (
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case styles accepted by ApplyCase. Any other value leaves the text unchanged.
const (
	CaseUpper = "upper"
	CaseLower = "lower"
	CaseFirst = "first"
	CaseTitle = "title"
)

// titleWord matches a word start (text start or one whitespace, then a word character) and the rest of the word.
// Whitespace includes the Unicode separators such as U+00A0, not only ASCII.
var titleWord = regexp.MustCompile(`(^\w|[\s\v\p{Z}\x{FEFF}]\w)([^\s\v\p{Z}\x{FEFF}]*)`)

// Formatter converts case using the rules of a single locale.
type Formatter struct {
	tag language.Tag
}

// NewFormatter returns a Formatter for the given BCP 47 locale.
// An empty or unparseable locale falls back to the root locale.
func NewFormatter(locale string) Formatter {
	if locale == "" {
		return Formatter{tag: language.Und}
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{tag: language.Und}
	}
	return Formatter{tag: tag}
}

// Locale returns the locale tag used for conversions.
func (f Formatter) Locale() language.Tag {
	return f.tag
}

// ApplyCase applies one of the case styles to text.
func (f Formatter) ApplyCase(text, style string) string {
	switch style {
	case CaseUpper:
		return f.upper(text)
	case CaseLower:
		return f.lower(text)
	case CaseFirst:
		if text == "" {
			return text
		}
		_, size := utf8.DecodeRuneInString(text)
		return f.upper(text[:size]) + f.lower(text[size:])
	case CaseTitle:
		return titleWord.ReplaceAllStringFunc(text, func(word string) string {
			m := titleWord.FindStringSubmatch(word)
			return f.upper(m[1]) + f.lower(m[2])
		})
	default:
		return text
	}
}

// Casers hold state, so each call builds its own.
func (f Formatter) upper(s string) string {
	return cases.Upper(f.tag).String(s)
}

func (f Formatter) lower(s string) string {
	return cases.Lower(f.tag).String(s)
}

// ApplyCase applies a case style using the root locale.
func ApplyCase(text, style string) string {
	return Formatter{tag: language.Und}.ApplyCase(text, style)
}
