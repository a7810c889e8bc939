package content

import "fmt"

// ErrorKind classifies load failures.
type ErrorKind string

// Load failure kinds.
const (
	KindFetch       ErrorKind = "fetch"
	KindParse       ErrorKind = "parse"
	KindMissingInfo ErrorKind = "missing_info"
)

// LoadError represents a failure reading, fetching or decoding a content document
type LoadError struct {
	Kind    ErrorKind
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error (%s) for %s: %s: %v", e.Kind, e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error (%s) for %s: %s", e.Kind, e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
