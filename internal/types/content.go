// Package types provides type definitions for the résumé content document rendered by resume-page.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ResumeDocument is the root of content.json.
// Info is required; every other section may be absent, which removes it from the page.
type ResumeDocument struct {
	Info           Info                   `json:"info"`
	Experiences    Section[Experience]    `json:"experiences,omitzero"`
	Education      Section[Education]     `json:"education,omitzero"`
	Projects       Section[Project]       `json:"projects,omitzero"`
	Certifications Section[Certification] `json:"certifications,omitzero"`
}

// Info holds identity, contact and the free-text description.
type Info struct {
	FullName    NameSpec    `json:"full_name"`
	Description string      `json:"description"`
	Contact     ContactInfo `json:"contact"`
}

// NameSpec describes how the full name is assembled from its parts.
type NameSpec struct {
	FirstName  string     `json:"first_name"`
	MiddleName string     `json:"middle_name"`
	LastName   string     `json:"last_name"`
	Format     NameFormat `json:"format"`
}

// NameFormat holds the substitution pattern (f, m and l are placeholders) and the case style.
type NameFormat struct {
	Pattern string `json:"pattern"`
	Case    string `json:"case"`
}

// ContactInfo fields are empty strings when not provided.
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// DateRange is a begin/end pair rendered as "begin - end".
type DateRange struct {
	Begin string `json:"begin"`
	End   string `json:"end"`
}

// Experience is one entry of the experiences section.
type Experience struct {
	Role        string      `json:"role"`
	Company     string      `json:"company"`
	Date        DateRange   `json:"date"`
	Description Description `json:"description,omitempty"`
}

// Education is one entry of the education section.
type Education struct {
	Field       string    `json:"field"`
	Institution string    `json:"institution"`
	Date        DateRange `json:"date"`
}

// Project is one entry of the projects section.
type Project struct {
	Name        string      `json:"name"`
	Link        string      `json:"link"`
	Stacks      []string    `json:"stacks"`
	Description Description `json:"description,omitempty"`
}

// CertificationDate holds the issue date and an optional expiry ("" when it never expires).
type CertificationDate struct {
	Issued string `json:"issued"`
	Expiry string `json:"expiry"`
}

// Certification is one entry of the certifications section.
type Certification struct {
	Name   string            `json:"name"`
	Issuer string            `json:"issuer"`
	Date   CertificationDate `json:"date"`
}

// Section is an optional sequence of entries.
// Present records whether the key existed in the document at all, which is distinct from an empty sequence.
type Section[T any] struct {
	Present bool
	Entries []T
}

// Of returns a present section holding entries.
func Of[T any](entries ...T) Section[T] {
	return Section[T]{Present: true, Entries: entries}
}

// UnmarshalJSON is only reached when the key exists, so it always marks the section present.
// A JSON null counts as present with no entries.
func (s *Section[T]) UnmarshalJSON(data []byte) error {
	s.Present = true
	s.Entries = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	return json.Unmarshal(data, &s.Entries)
}

// MarshalJSON encodes the entries; an empty present section encodes as [].
func (s Section[T]) MarshalJSON() ([]byte, error) {
	if s.Entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Entries)
}

// IsZero reports an absent section so omitzero drops the key.
func (s Section[T]) IsZero() bool {
	return !s.Present
}

// Len returns the number of entries.
func (s Section[T]) Len() int {
	return len(s.Entries)
}

// Description is either absent, a single string or a list of strings.
type Description []string

// UnmarshalJSON accepts a JSON string, an array of strings or null.
func (d *Description) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*d = nil
		return nil
	case len(trimmed) > 0 && trimmed[0] == '"':
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*d = Description{single}
		return nil
	case len(trimmed) > 0 && trimmed[0] == '[':
		var items []string
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*d = items
		return nil
	default:
		return fmt.Errorf("description must be a string or an array of strings, got %s", trimmed)
	}
}
