package rendering

import (
	"fmt"

	"github.com/jonathan/resume-page/internal/formatting"
	"github.com/jonathan/resume-page/internal/markup"
	"github.com/jonathan/resume-page/internal/types"
)

// Identity receives the page header values.
type Identity interface {
	SetFullName(name string)
	SetDescription(text string)
	SetContact(markup string)
}

// RenderIdentity writes the full name, description and contact links.
// It returns the composed full name.
func RenderIdentity(info types.Info, formatter formatting.Formatter, target Identity) string {
	fullName := formatter.ComposeFullName(info.FullName)
	target.SetFullName(fullName)
	target.SetDescription(info.Description)
	target.SetContact(markup.BuildContact(info.Contact.Phone, info.Contact.Email, info.Contact.Website))
	return fullName
}

// RenderExperiences appends one fragment per experience.
func RenderExperiences(entries []types.Experience, target Container) {
	for _, entry := range entries {
		subheading := fmt.Sprintf("%s | %s - %s", entry.Company, entry.Date.Begin, entry.Date.End)
		target.Append(Instantiate(false, entry.Role, subheading, markup.BuildDescription(entry.Description)))
	}
}

// RenderEducation appends one fragment per education entry. Education has no description.
func RenderEducation(entries []types.Education, target Container) {
	for _, entry := range entries {
		subheading := fmt.Sprintf("%s | %s - %s", entry.Institution, entry.Date.Begin, entry.Date.End)
		target.Append(Instantiate(false, entry.Field, subheading, ""))
	}
}

// RenderProjects appends one fragment per project. A non-empty link turns the heading
// into a hyperlink and keeps the external marker.
func RenderProjects(entries []types.Project, target Container) {
	for _, entry := range entries {
		heading := entry.Name
		if entry.Link != "" {
			heading = markup.BuildLink(entry.Name, entry.Link)
		}
		subheading := ""
		if len(entry.Stacks) > 0 {
			subheading = markup.BuildPills(entry.Stacks)
		}
		target.Append(Instantiate(entry.Link != "", heading, subheading, markup.BuildDescription(entry.Description)))
	}
}

// RenderCertifications appends one fragment per certification.
func RenderCertifications(entries []types.Certification, target Container) {
	for _, entry := range entries {
		target.Append(Instantiate(false, entry.Name, certificationSubheading(entry), ""))
	}
}

func certificationSubheading(c types.Certification) string {
	if c.Date.Expiry == "" {
		return fmt.Sprintf("%s | %s", c.Issuer, c.Date.Issued)
	}
	return fmt.Sprintf("%s | %s - %s", c.Issuer, c.Date.Issued, c.Date.Expiry)
}
