package pageport

// Framework identifies a site generator whose page structure is known.
type Framework string

// Supported site generators.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
)

// Preset is a ready-made selector configuration for a site generator.
type Preset struct {
	Framework Framework
	Content   string
	Title     string
	Remove    []string
	Inline    []string
}

// Config builds a SelectorConfig from the preset. Extra options are applied
// after the preset's own, so they can override the title or layout and
// append further remove/inline expressions.
func (p Preset) Config(opts ...Option) *SelectorConfig {
	base := []Option{
		WithTitle(p.Title),
		WithRemove(p.Remove...),
		WithInline(p.Inline...),
	}
	return NewSelectorConfig(p.Content, append(base, opts...)...)
}

// FrameworkDetector identifies site generators from HTML.
type FrameworkDetector interface {
	// Detect analyzes HTML and returns the identified framework.
	// Returns FrameworkUnknown if the framework cannot be determined.
	Detect(html string) Framework
}

// PresetRegistry manages framework-specific presets.
type PresetRegistry interface {
	// Get returns the preset for a framework.
	Get(framework Framework) (Preset, bool)

	// GetForHTML detects the framework from HTML and returns its preset.
	GetForHTML(html string) (Preset, bool)

	// Register adds or replaces the preset for its framework.
	Register(preset Preset)

	// List returns all registered frameworks.
	List() []Framework
}
