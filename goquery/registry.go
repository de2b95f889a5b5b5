package goquery

import (
	"sort"

	"github.com/fwojciec/pageport"
)

var _ pageport.PresetRegistry = (*Registry)(nil)

// Registry maps site generators to selector presets and picks one for a page
// using a FrameworkDetector.
type Registry struct {
	detector pageport.FrameworkDetector
	presets  map[pageport.Framework]pageport.Preset
}

// NewRegistry creates an empty Registry using detector for GetForHTML.
func NewRegistry(detector pageport.FrameworkDetector) *Registry {
	return &Registry{
		detector: detector,
		presets:  make(map[pageport.Framework]pageport.Preset),
	}
}

// NewDefaultRegistry creates a Registry holding DefaultPresets.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewDetector())
	for _, p := range DefaultPresets() {
		r.Register(p)
	}
	return r
}

// Get returns the preset registered for framework.
func (r *Registry) Get(framework pageport.Framework) (pageport.Preset, bool) {
	p, ok := r.presets[framework]
	return p, ok
}

// GetForHTML detects the framework from HTML and returns its preset.
// Returns false when the framework is unknown or has no preset.
func (r *Registry) GetForHTML(html string) (pageport.Preset, bool) {
	return r.Get(r.detector.Detect(html))
}

// Register adds a preset, replacing any existing one for the same framework.
func (r *Registry) Register(preset pageport.Preset) {
	r.presets[preset.Framework] = preset
}

// List returns all registered frameworks, sorted by name.
func (r *Registry) List() []pageport.Framework {
	frameworks := make([]pageport.Framework, 0, len(r.presets))
	for f := range r.presets {
		frameworks = append(frameworks, f)
	}
	sort.Slice(frameworks, func(i, j int) bool { return frameworks[i] < frameworks[j] })
	return frameworks
}
