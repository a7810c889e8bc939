package rendering

import (
	"testing"

	"github.com/jonathan/resume-page/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleDocument() *types.ResumeDocument {
	return &types.ResumeDocument{
		Info: types.Info{
			FullName: types.NameSpec{
				FirstName: "Jane",
				LastName:  "Doe",
				Format:    types.NameFormat{Pattern: "f l", Case: "upper"},
			},
			Description: "Builds reliable systems.",
			Contact:     types.ContactInfo{Email: "jane@example.com", Website: "https://jane.dev"},
		},
		Experiences: types.Of(
			types.Experience{Role: "Engineer", Company: "Acme", Date: types.DateRange{Begin: "2020", End: "Present"}, Description: types.Description{"Led", "Built"}},
			types.Experience{Role: "Intern", Company: "Globex", Date: types.DateRange{Begin: "2019", End: "2019"}},
		),
		Projects: types.Of(
			types.Project{Name: "resume-page", Link: "https://github.com/jane/resume-page", Stacks: []string{"Go"}, Description: types.Description{"Static résumé"}},
		),
		Certifications: types.Of(
			types.Certification{Name: "Cloud", Issuer: "Vendor", Date: types.CertificationDate{Issued: "2021"}},
		),
	}
}

func renderSample(t *testing.T, doc *types.ResumeDocument, opts Options) *Page {
	t.Helper()
	page, err := LoadPage("")
	require.NoError(t, err)
	require.NoError(t, Render(doc, page, opts))
	return page
}

func TestRender_FullDocument(t *testing.T) {
	page := renderSample(t, sampleDocument(), Options{Logger: zap.NewNop()})
	dom := page.Document()

	assert.Equal(t, "JANE DOE", page.Title())
	assert.Equal(t, "JANE DOE", dom.Find("#full_name").Text())
	assert.Equal(t, "Builds reliable systems.", dom.Find("#description").Text())
	assert.Equal(t, 2, dom.Find("#contact a").Length())

	experiences := dom.Find("#experiences > div")
	require.Equal(t, 2, experiences.Length())
	assert.Equal(t, "Engineer", experiences.Eq(0).Find("#template_heading").Text())
	assert.Equal(t, 2, experiences.Eq(0).Find("#template_description li.list-chevron").Length())
	assert.Equal(t, "Intern", experiences.Eq(1).Find("#template_heading").Text())
	assert.Equal(t, 0, experiences.Eq(1).Find("#template_description").Length())
	assert.Equal(t, 0, experiences.Find("#template_external").Length())

	project := dom.Find("#projects > div")
	require.Equal(t, 1, project.Length())
	assert.Equal(t, 1, project.Find("#template_external").Length())
	assert.Equal(t, 1, project.Find("#template_heading a[target=_blank]").Length())
	assert.True(t, project.Find("#template_heading").HasClass("group-hover:text-gray-500"))
	assert.Equal(t, 1, project.Find("#template_subheading span.rounded-full").Length())

	cert := dom.Find("#certifications > div")
	require.Equal(t, 1, cert.Length())
	assert.Equal(t, "Vendor | 2021", cert.Find("#template_subheading").Text())

	assert.False(t, dom.Find("html").HasClass("dark"))
}

func TestRender_AbsentSectionRemovesEnclosingElement(t *testing.T) {
	page := renderSample(t, sampleDocument(), Options{})
	dom := page.Document()

	assert.Equal(t, 0, dom.Find("#education").Length())
	assert.NotContains(t, dom.Find("main").Text(), "Education")
}

func TestRender_EmptyPresentSectionStays(t *testing.T) {
	doc := sampleDocument()
	doc.Education = types.Of[types.Education]()

	page := renderSample(t, doc, Options{})
	education := page.Document().Find("#education")

	require.Equal(t, 1, education.Length())
	assert.Equal(t, 0, education.Children().Length())
}

func TestRender_Dark(t *testing.T) {
	page := renderSample(t, sampleDocument(), Options{Dark: true})
	assert.True(t, page.Document().Find("html").HasClass("dark"))
}

func TestRender_Locale(t *testing.T) {
	doc := sampleDocument()
	doc.Info.FullName = types.NameSpec{LastName: "ilkay", Format: types.NameFormat{Pattern: "l", Case: "upper"}}

	page := renderSample(t, doc, Options{Locale: "tr"})
	assert.Equal(t, "İLKAY", page.Title())
}

func TestRender_NilDocument(t *testing.T) {
	page, err := LoadPage("")
	require.NoError(t, err)

	err = Render(nil, page, Options{})
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
}

func TestRender_MissingContainer(t *testing.T) {
	page := newMinimalPage(t)

	err := Render(sampleDocument(), page, Options{})
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Contains(t, err.Error(), "experiences")
}

func TestRenderHTML_Deterministic(t *testing.T) {
	first, err := RenderHTML(sampleDocument(), nil, Options{})
	require.NoError(t, err)
	second, err := RenderHTML(sampleDocument(), nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "<title>JANE DOE</title>")
}
