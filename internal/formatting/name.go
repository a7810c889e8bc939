package formatting

import (
	"strings"

	"github.com/jonathan/resume-page/internal/types"
)

// Name placeholders in NameFormat.Pattern, replaced in this order. Every occurrence of these letters is
// replaced, including ones outside their intended role.
const (
	placeholderFirst  = "f"
	placeholderMiddle = "m"
	placeholderLast   = "l"
)

// ComposeFullName substitutes the name parts into the pattern and applies the configured case.
// Each placeholder is replaced over the result of the previous one, so an m or l inside an
// inserted first name is substituted again.
func (f Formatter) ComposeFullName(spec types.NameSpec) string {
	name := strings.ReplaceAll(spec.Format.Pattern, placeholderFirst, spec.FirstName)
	name = strings.ReplaceAll(name, placeholderMiddle, spec.MiddleName)
	name = strings.ReplaceAll(name, placeholderLast, spec.LastName)
	return f.ApplyCase(name, spec.Format.Case)
}

// ComposeFullName composes a full name using the root locale.
func ComposeFullName(spec types.NameSpec) string {
	return NewFormatter("").ComposeFullName(spec)
}
