package rendering

import (
	"bytes"

	"github.com/jonathan/resume-page/internal/formatting"
	"github.com/jonathan/resume-page/internal/types"
	"go.uber.org/zap"
)

// Section container ids.
const (
	SectionExperiences    = "experiences"
	SectionEducation      = "education"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

// Options controls a single render pass.
type Options struct {
	// Locale is a BCP 47 tag used for case conversion; empty means the root locale.
	Locale string
	// Dark toggles the dark-mode class on the root element.
	Dark   bool
	Logger *zap.Logger
}

// Render fills page from doc. Present sections get one entry per document entry, in order;
// absent sections have their enclosing element removed.
func Render(doc *types.ResumeDocument, page *Page, opts Options) error {
	if doc == nil {
		return &RenderError{Message: "document is nil"}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.Dark {
		page.ToggleDark()
	}

	fullName := RenderIdentity(doc.Info, formatting.NewFormatter(opts.Locale), page)
	logger.Debug("rendered identity", zap.String("full_name", fullName))

	sections := []struct {
		id      string
		present bool
		count   int
		render  func(Container)
	}{
		{SectionExperiences, doc.Experiences.Present, doc.Experiences.Len(), func(c Container) { RenderExperiences(doc.Experiences.Entries, c) }},
		{SectionEducation, doc.Education.Present, doc.Education.Len(), func(c Container) { RenderEducation(doc.Education.Entries, c) }},
		{SectionProjects, doc.Projects.Present, doc.Projects.Len(), func(c Container) { RenderProjects(doc.Projects.Entries, c) }},
		{SectionCertifications, doc.Certifications.Present, doc.Certifications.Len(), func(c Container) { RenderCertifications(doc.Certifications.Entries, c) }},
	}

	for _, section := range sections {
		if !section.present {
			if err := page.RemoveSection(section.id); err != nil {
				return err
			}
			logger.Debug("removed absent section", zap.String("section", section.id))
			continue
		}

		container, err := page.Container(section.id)
		if err != nil {
			return err
		}
		section.render(container)
		logger.Debug("rendered section", zap.String("section", section.id), zap.Int("entries", section.count))
	}

	return nil
}

// RenderHTML parses template (the built-in one when nil), renders doc into it and returns the markup.
func RenderHTML(doc *types.ResumeDocument, template []byte, opts Options) (string, error) {
	if template == nil {
		template = defaultTemplate
	}
	page, err := ParsePage(bytes.NewReader(template))
	if err != nil {
		return "", err
	}
	if err := Render(doc, page, opts); err != nil {
		return "", err
	}
	return page.HTML()
}
