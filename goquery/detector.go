package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pageport"
)

// Ensure Detector implements pageport.FrameworkDetector at compile time.
var _ pageport.FrameworkDetector = (*Detector)(nil)

// frameworkMarkers lists selectors unique to each generator, checked in order.
// VitePress comes before VuePress since it reuses some VuePress markup.
var frameworkMarkers = []struct {
	framework pageport.Framework
	selectors []string
}{
	{pageport.FrameworkDocusaurus, []string{"#__docusaurus_skipToContent_fallback", ".theme-doc-sidebar-container", "[data-rh][data-theme]"}},
	{pageport.FrameworkMkDocs, []string{"[data-md-color-scheme]", "[data-md-component]", ".md-nav--primary"}},
	{pageport.FrameworkSphinx, []string{".toctree-wrapper", ".wy-nav-side", ".wy-menu-vertical", ".sphinxsidebar"}},
	{pageport.FrameworkVitePress, []string{"#VPContent", ".VPDoc", ".VPDocAsideOutline"}},
	{pageport.FrameworkVuePress, []string{".theme-default-content", ".sidebar-links", ".vuepress-navbar"}},
	{pageport.FrameworkGitBook, []string{"[data-testid='space.sidebar']", "[data-testid='page.desktopTableOfContents']"}},
	{pageport.FrameworkNextra, []string{".nextra-navbar", ".nextra-sidebar", ".nextra-toc"}},
}

// generatorNames maps substrings of <meta name="generator"> to frameworks.
var generatorNames = []struct {
	name      string
	framework pageport.Framework
}{
	{"sphinx", pageport.FrameworkSphinx},
	{"gitbook", pageport.FrameworkGitBook},
	{"docusaurus", pageport.FrameworkDocusaurus},
	{"mkdocs", pageport.FrameworkMkDocs},
	{"vitepress", pageport.FrameworkVitePress},
	{"vuepress", pageport.FrameworkVuePress},
	{"nextra", pageport.FrameworkNextra},
}

// Detector identifies site generators from HTML content.
// It checks the meta generator tag first, then framework-specific
// classes, ids and data attributes.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified framework.
func (d *Detector) Detect(html string) pageport.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return pageport.FrameworkUnknown
	}

	if framework := d.detectFromMetaGenerator(doc); framework != pageport.FrameworkUnknown {
		return framework
	}

	for _, m := range frameworkMarkers {
		for _, sel := range m.selectors {
			if doc.Find(sel).Length() > 0 {
				return m.framework
			}
		}
	}

	if hasGitBookClasses(doc) {
		return pageport.FrameworkGitBook
	}

	return pageport.FrameworkUnknown
}

func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) pageport.Framework {
	generator := strings.ToLower(doc.Find("meta[name='generator']").Last().AttrOr("content", ""))
	if generator == "" {
		return pageport.FrameworkUnknown
	}
	for _, g := range generatorNames {
		if strings.Contains(generator, g.name) {
			return g.framework
		}
	}
	return pageport.FrameworkUnknown
}

// hasGitBookClasses requires at least two of GitBook's html element classes.
func hasGitBookClasses(doc *goquery.Document) bool {
	class := doc.Find("html").AttrOr("class", "")
	count := 0
	for _, c := range []string{"circular-corners", "theme-clean", "tint"} {
		if strings.Contains(class, c) {
			count++
		}
	}
	return count >= 2
}
