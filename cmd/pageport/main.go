package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pageport"
	"github.com/fwojciec/pageport/bluemonday"
	"github.com/fwojciec/pageport/dom"
	"github.com/fwojciec/pageport/goquery"
	"github.com/fwojciec/pageport/htmlquery"
	"github.com/fwojciec/pageport/htmltomarkdown"
	pphttp "github.com/fwojciec/pageport/http"
	"github.com/fwojciec/pageport/readability"
	"github.com/fwojciec/pageport/rod"
	ppslog "github.com/fwojciec/pageport/slog"
	"github.com/fwojciec/pageport/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read when the input argument is "-".
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pageport"),
		kong.Description("Convert the content region of an HTML page to Markdown or a Jekyll page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	detector := goquery.NewDetector()
	var converter pageport.Converter = htmltomarkdown.NewConverter()
	if cli.Strict {
		converter = bluemonday.NewConverter(converter)
	}
	deps := &Dependencies{
		Ctx:     ctx,
		Stdin:   m.Stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Fetcher: ppslog.NewLoggingFetcher(pphttp.NewFetcher(pphttp.WithTimeout(cli.Timeout)), logger),
		Browser: ppslog.NewLoggingFetcher(rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout)), logger),
		Parser: ppslog.NewLoggingParser(
			dom.NewParser(goquery.NewEngine(), htmlquery.NewEngine()),
			logger,
		),
		Converter: ppslog.NewLoggingConverter(converter, logger),
		Presets:   ppslog.NewLoggingRegistry(goquery.NewDefaultRegistry(), detector, logger),
		Extractors: map[string]pageport.Extractor{
			ExtractReadability: readability.NewExtractor(),
			ExtractTrafilatura: trafilatura.NewExtractor(),
		},
	}
	defer deps.Fetcher.Close()
	defer deps.Browser.Close()

	cmd := &ConvertCmd{
		Input:   cli.Input,
		Content: cli.Content,
		Title:   cli.Title,
		Layout:  cli.Layout,
		Inline:  cli.Inline,
		Remove:  cli.Remove,
		Config:  cli.Config,
		Preset:  cli.Preset,
		Extract: cli.Extract,
		Format:  cli.Format,
		Output:  cli.Output,
		Render:  cli.Render,
	}

	return cmd.Run(deps)
}
