package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pageport"
)

// Output formats.
const (
	FormatPage     = "page"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Boilerplate extractors.
const (
	ExtractNone        = "none"
	ExtractReadability = "readability"
	ExtractTrafilatura = "trafilatura"
)

// PresetAuto selects a preset by detecting the page's site generator.
const PresetAuto = "auto"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input   string        `arg:"" help:"HTML file, http(s) URL, or - for stdin"`
	Content string        `short:"c" help:"Path expression (CSS or XPath) for the content node"`
	Title   string        `help:"Path expression for the title node (default: //title)"`
	Layout  string        `short:"l" help:"Layout written to the front matter (default: default)"`
	Inline  []string      `short:"i" sep:"none" help:"Path expression of nodes to replace with their text (repeatable)"`
	Remove  []string      `short:"r" sep:"none" help:"Path expression of nodes to remove (repeatable)"`
	Config  string        `help:"YAML selector configuration file"`
	Preset  string        `short:"p" help:"Site generator preset (docusaurus, mkdocs, sphinx, vitepress, vuepress, gitbook, nextra) or 'auto'"`
	Extract string        `short:"x" enum:"none,readability,trafilatura" default:"none" help:"Locate the main content heuristically (readability, trafilatura) before applying selectors"`
	Format  string        `short:"f" enum:"page,markdown,html" default:"page" help:"Output format (page, markdown, html)"`
	Output  string        `short:"o" help:"Output file or existing directory (default: stdout)"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout for URL input"`
	Render  bool          `help:"Render URL input in headless Chrome before converting"`
	Strict  bool          `help:"Strip scripts, styles and unsafe attributes before Markdown conversion"`
	Verbose bool          `short:"v" help:"Enable debug logging"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher    pageport.Fetcher
	Browser    pageport.Fetcher
	Parser     pageport.Parser
	Converter  pageport.Converter
	Presets    pageport.PresetRegistry
	Extractors map[string]pageport.Extractor
}

// ConvertCmd converts one input page.
type ConvertCmd struct {
	Input   string
	Content string
	Title   string
	Layout  string
	Inline  []string
	Remove  []string
	Config  string
	Preset  string
	Extract string
	Format  string
	Output  string
	Render  bool
}
