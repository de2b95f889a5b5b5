package goquery

import "github.com/fwojciec/pageport"

// DefaultPresets returns the built-in presets, one per supported generator.
// Remove lists drop permalink anchors and in-page navigation that render
// as noise in Markdown.
func DefaultPresets() []pageport.Preset {
	return []pageport.Preset{
		{
			Framework: pageport.FrameworkDocusaurus,
			Content:   "article .markdown",
			Remove:    []string{"a.hash-link", ".theme-doc-toc-mobile", "nav.pagination-nav"},
		},
		{
			Framework: pageport.FrameworkMkDocs,
			Content:   "article.md-content__inner",
			Remove:    []string{"a.headerlink", "a.md-content__button"},
		},
		{
			Framework: pageport.FrameworkSphinx,
			Content:   "div[role='main']",
			Remove:    []string{"a.headerlink"},
		},
		{
			Framework: pageport.FrameworkVitePress,
			Content:   ".vp-doc",
			Remove:    []string{"a.header-anchor"},
		},
		{
			Framework: pageport.FrameworkVuePress,
			Content:   ".theme-default-content",
			Remove:    []string{"a.header-anchor"},
		},
		{
			Framework: pageport.FrameworkGitBook,
			Content:   "main",
			Remove:    []string{"[data-testid='page.desktopTableOfContents']"},
		},
		{
			Framework: pageport.FrameworkNextra,
			Content:   "article main",
			Remove:    []string{"a.subheading-anchor", ".nextra-toc"},
		},
	}
}
