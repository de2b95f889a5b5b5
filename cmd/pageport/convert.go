package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pageport"
	"github.com/fwojciec/pageport/fs"
	"github.com/fwojciec/pageport/importer"
	"github.com/fwojciec/pageport/yaml"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	raw, err := c.readInput(deps)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.Input, err)
	}

	// Presets are detected from the page as served; extraction strips the
	// generator markers.
	cfg, err := c.selectorConfig(deps, raw)
	if err != nil {
		return err
	}

	if c.extracting() {
		raw, err = c.extract(deps, raw)
		if err != nil {
			return fmt.Errorf("failed to extract %s: %w", c.Input, err)
		}
	}

	doc, err := deps.Parser.Parse(strings.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", c.Input, err)
	}

	imp := importer.New(cfg, deps.Converter)

	if _, ok, err := imp.LocateContent(doc); err == nil && !ok {
		deps.Logger.Warn("content node not found", "input", c.Input, "content", cfg.Content().String())
	}

	var out string
	switch c.Format {
	case FormatMarkdown:
		out, err = imp.RenderMarkdown(doc)
	case FormatHTML:
		out, err = imp.HTML(doc)
	default:
		out, err = imp.RenderPage(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", c.Input, err)
	}

	return c.writeOutput(deps, out)
}

func (c *ConvertCmd) extracting() bool {
	return c.Extract != "" && c.Extract != ExtractNone
}

// extract replaces raw with a document holding only the main content, as
// located by the selected extractor.
func (c *ConvertCmd) extract(deps *Dependencies, raw string) (string, error) {
	ext, ok := deps.Extractors[c.Extract]
	if !ok {
		return "", pageport.Errorf(pageport.EINVALID, "unknown extractor %q", c.Extract)
	}
	result, err := ext.Extract(raw)
	if err != nil {
		return "", err
	}
	deps.Logger.Debug("main content extracted", "extractor", c.Extract, "bytes", len(result.ContentHTML))
	return result.HTML(), nil
}

func (c *ConvertCmd) readInput(deps *Dependencies) (string, error) {
	switch {
	case c.Input == "-":
		b, err := io.ReadAll(deps.Stdin)
		return string(b), err
	case strings.HasPrefix(c.Input, "http://") || strings.HasPrefix(c.Input, "https://"):
		if c.Render {
			return deps.Browser.Fetch(deps.Ctx, c.Input)
		}
		return deps.Fetcher.Fetch(deps.Ctx, c.Input)
	}
	b, err := os.ReadFile(c.Input)
	return string(b), err
}

// selectorConfig merges the preset, the config file and the flags, in that
// order. Later sources override the content, title and layout, and append
// to the remove and inline lists.
func (c *ConvertCmd) selectorConfig(deps *Dependencies, raw string) (*pageport.SelectorConfig, error) {
	var file *yaml.Config
	if c.Config != "" {
		var err error
		file, err = yaml.Load(c.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", c.Config, err)
		}
	}

	presetName := c.Preset
	if presetName == "" && file != nil {
		presetName = file.Preset
	}

	var content string
	var opts []pageport.Option

	if presetName != "" {
		preset, err := c.lookupPreset(deps, presetName, raw)
		if err != nil {
			return nil, err
		}
		content = preset.Content
		opts = append(opts,
			pageport.WithTitle(preset.Title),
			pageport.WithRemove(preset.Remove...),
			pageport.WithInline(preset.Inline...),
		)
	}

	if file != nil {
		if file.Content != "" {
			content = file.Content
		}
		opts = append(opts, file.Options()...)
	}

	if c.Content != "" {
		content = c.Content
	}
	// An extracted document holds only the main content, so container
	// selectors from presets or files no longer apply.
	if c.extracting() && c.Content == "" {
		content = pageport.ExtractedContentPath
	}
	opts = append(opts,
		pageport.WithLayout(c.Layout),
		pageport.WithTitle(c.Title),
		pageport.WithRemove(c.Remove...),
		pageport.WithInline(c.Inline...),
	)

	cfg := pageport.NewSelectorConfig(content, opts...)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s (use --content, --config or --preset)", pageport.ErrorMessage(err))
	}
	return cfg, nil
}

func (c *ConvertCmd) lookupPreset(deps *Dependencies, name, raw string) (pageport.Preset, error) {
	if name == PresetAuto {
		preset, ok := deps.Presets.GetForHTML(raw)
		if !ok {
			return pageport.Preset{}, pageport.Errorf(pageport.ENOTFOUND, "could not detect a site generator for %s", c.Input)
		}
		return preset, nil
	}

	preset, ok := deps.Presets.Get(pageport.Framework(name))
	if !ok {
		var names []string
		for _, f := range deps.Presets.List() {
			names = append(names, string(f))
		}
		return pageport.Preset{}, pageport.Errorf(pageport.EINVALID, "unknown preset %q (available: %s, %s)", name, strings.Join(names, ", "), PresetAuto)
	}
	return preset, nil
}

func (c *ConvertCmd) writeOutput(deps *Dependencies, out string) error {
	if c.Output == "" {
		_, err := io.WriteString(deps.Stdout, out)
		return err
	}

	path := c.Output
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		rel, err := fs.OutputPath(c.Input)
		if err != nil {
			return err
		}
		path = filepath.Join(path, rel)
	}

	if err := fs.NewWriter(path).Write(deps.Ctx, out); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	deps.Logger.Info("page written", "path", path, "bytes", len(out))
	return nil
}
