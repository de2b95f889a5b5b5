package pageport

// Defaults applied by NewSelectorConfig.
const (
	DefaultLayout    = "default"
	DefaultTitlePath = "//title"
)

// SelectorConfig holds the path expressions that drive a conversion.
// It is immutable once built and safe to share between goroutines.
type SelectorConfig struct {
	layout  string
	content PathExpr
	title   PathExpr
	inline  []PathExpr
	remove  []PathExpr
}

// Option configures a SelectorConfig.
type Option func(*SelectorConfig)

// WithLayout sets the layout written to the page front matter.
// An empty layout keeps DefaultLayout.
func WithLayout(layout string) Option {
	return func(c *SelectorConfig) {
		if layout != "" {
			c.layout = layout
		}
	}
}

// WithTitle sets the expression locating the title node.
// An empty expression keeps DefaultTitlePath.
func WithTitle(expr string) Option {
	return func(c *SelectorConfig) {
		if expr != "" {
			c.title = ParsePathExpr(expr)
		}
	}
}

// WithInline appends expressions whose matches are flattened to their text.
// Accepts a single expression or a list; repeated options accumulate in order.
func WithInline(exprs ...string) Option {
	return func(c *SelectorConfig) {
		c.inline = append(c.inline, ParsePathExprs(exprs)...)
	}
}

// WithRemove appends expressions whose matches are dropped with their subtree.
// Accepts a single expression or a list; repeated options accumulate in order.
func WithRemove(exprs ...string) Option {
	return func(c *SelectorConfig) {
		c.remove = append(c.remove, ParsePathExprs(exprs)...)
	}
}

// NewSelectorConfig returns a config for the given content expression.
// Expression syntax is not checked here; malformed expressions fail when
// they are first evaluated.
func NewSelectorConfig(content string, opts ...Option) *SelectorConfig {
	c := &SelectorConfig{
		layout:  DefaultLayout,
		content: ParsePathExpr(content),
		title:   ParsePathExpr(DefaultTitlePath),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate returns an error if the config cannot be used.
func (c *SelectorConfig) Validate() error {
	if c.content.IsZero() {
		return Errorf(EINVALID, "content path expression required")
	}
	return nil
}

// Layout returns the front-matter layout name.
func (c *SelectorConfig) Layout() string { return c.layout }

// Content returns the expression locating the content node.
func (c *SelectorConfig) Content() PathExpr { return c.content }

// Title returns the expression locating the title node.
func (c *SelectorConfig) Title() PathExpr { return c.title }

// Inline returns a copy of the inline expressions, in evaluation order.
func (c *SelectorConfig) Inline() []PathExpr { return clonePathExprs(c.inline) }

// Remove returns a copy of the removal expressions, in evaluation order.
func (c *SelectorConfig) Remove() []PathExpr { return clonePathExprs(c.remove) }

func clonePathExprs(exprs []PathExpr) []PathExpr {
	if len(exprs) == 0 {
		return nil
	}
	out := make([]PathExpr, len(exprs))
	copy(out, exprs)
	return out
}
