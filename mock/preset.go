package mock

import "github.com/fwojciec/pageport"

var (
	_ pageport.FrameworkDetector = (*FrameworkDetector)(nil)
	_ pageport.PresetRegistry    = (*PresetRegistry)(nil)
)

// FrameworkDetector is a mock implementation of pageport.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) pageport.Framework
}

func (d *FrameworkDetector) Detect(html string) pageport.Framework {
	return d.DetectFn(html)
}

// PresetRegistry is a mock implementation of pageport.PresetRegistry.
type PresetRegistry struct {
	GetFn        func(framework pageport.Framework) (pageport.Preset, bool)
	GetForHTMLFn func(html string) (pageport.Preset, bool)
	RegisterFn   func(preset pageport.Preset)
	ListFn       func() []pageport.Framework
}

func (r *PresetRegistry) Get(framework pageport.Framework) (pageport.Preset, bool) {
	return r.GetFn(framework)
}

func (r *PresetRegistry) GetForHTML(html string) (pageport.Preset, bool) {
	return r.GetForHTMLFn(html)
}

func (r *PresetRegistry) Register(preset pageport.Preset) {
	r.RegisterFn(preset)
}

func (r *PresetRegistry) List() []pageport.Framework {
	return r.ListFn()
}
