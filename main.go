package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"asciidraw/config"
	"asciidraw/core"
	"asciidraw/editor"
	"asciidraw/export"
	"asciidraw/logging"
	"asciidraw/persist"
	"asciidraw/render"
	"asciidraw/store"
	"asciidraw/terminal"
)

func main() {
	cfg := config.Load()

	var (
		backend  = flag.String("backend", cfg.Backend, "Storage backend: memory, file, sqlite")
		dataPath = flag.String("data", cfg.DataPath, "Storage directory (file) or database (sqlite)")
		docKey   = flag.String("doc", cfg.Document, "Document name inside the storage")
		history  = flag.Int("history", cfg.HistoryDepth, "Number of undo steps to keep")
		help     = flag.Bool("help", false, "Show help")

		// Export flags
		format     = flag.String("format", "", "Export format: text, json, png (skips the editor)")
		outputFile = flag.String("o", "", "Output file (default: stdout)")
		ascii      = flag.Bool("ascii", false, "Replace box drawing characters with ASCII")
		color      = flag.Bool("color", false, "Color text output with ANSI escapes")

		// Logging flags
		logLevel = flag.String("log-level", cfg.LogLevel, "Log level: off, debug, info, warn, error")
		logFile  = flag.String("log-file", "", "Log file (default: stderr, discarded in the editor)")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [drawing.json|drawing.txt]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A character-grid drawing editor.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                          # Edit the default drawing\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -doc notes               # Edit the drawing named notes\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s sketch.txt               # Import text art and edit it\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format text             # Print the drawing\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format png -o out.png   # Render the drawing to PNG\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -backend sqlite -data ~/drawings.db\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nExport Formats:\n")
		descriptions := export.GetFormatDescriptions()
		for _, f := range export.GetAvailableFormats() {
			fmt.Fprintf(os.Stderr, "  %-6s %s\n", f, descriptions[f])
		}
		fmt.Fprintf(os.Stderr, "\nEditor Keys:\n\n%s", terminal.GetHelpText())
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	cfg.Backend = *backend
	cfg.DataPath = *dataPath
	cfg.Document = *docKey
	cfg.HistoryDepth = *history
	cfg.LogLevel = *logLevel

	interactive := *format == "" && *outputFile == "" && term.IsTerminal(int(os.Stdout.Fd()))

	closeLog, err := setupLogging(cfg.LogLevel, *logFile, interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, flag.Args(), interactive, exportOptions{
		format: *format,
		output: *outputFile,
		ascii:  *ascii,
		color:  *color,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

type exportOptions struct {
	format string
	output string
	ascii  bool
	color  bool
}

func run(cfg *config.Config, args []string, interactive bool, opts exportOptions) error {
	kv, err := persist.Open(cfg.Backend, cfg.StoragePath())
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer kv.Close()

	s := store.New(
		store.WithPersistence(kv, cfg.Document),
		store.WithHistoryDepth(cfg.HistoryDepth),
	)
	if s.Load(context.Background()) {
		logging.Logger().Info("document loaded", "doc", cfg.Document, "shapes", s.Len())
	}

	ed := editor.New(s, nil)
	if len(args) > 0 {
		if err := importFile(ed, args[0]); err != nil {
			return err
		}
	}

	if interactive {
		return runEditor(ed)
	}

	if opts.format == "" {
		opts.format = string(export.FormatText)
	}
	return runExport(s, opts)
}

// importFile loads a JSON document, replacing the current drawing, or
// pastes any other file as text art at the origin.
func importFile(ed *editor.Editor, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	if strings.EqualFold(filepath.Ext(filename), ".json") {
		doc, err := store.DecodeDocument(data)
		if err != nil {
			return fmt.Errorf("load %s: %w", filename, err)
		}
		ed.Store().Checkpoint()
		ed.Store().Replace(doc)
		return nil
	}

	if _, ok := ed.Paste(string(data), core.Point{}); !ok {
		logging.Logger().Warn("nothing to import", "file", filename)
	}
	return nil
}

func runEditor(ed *editor.Editor) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	caps := render.DetectCapabilities(os.Getenv)
	logging.Logger().Debug("terminal detected", "term", caps.Name, "color", caps.Color, "unicode", caps.Unicode)

	app := terminal.New(screen, ed, terminal.WithCapabilities(caps))
	return app.Run()
}

func runExport(s *store.Store, opts exportOptions) error {
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}
	if te, ok := exporter.(*export.TextExporter); ok {
		te.ASCII = opts.ascii
		te.Color = opts.color
	}

	out, err := exporter.Export(s)
	if err != nil {
		return fmt.Errorf("export %s: %w", exporter.GetFormatName(), err)
	}

	outputFile := opts.output
	if outputFile == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if filepath.Ext(outputFile) == "" {
		outputFile += exporter.GetFileExtension()
	}
	if err := os.WriteFile(outputFile, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputFile, err)
	}
	fmt.Fprintf(os.Stderr, "Exported to %s\n", outputFile)
	return nil
}

// setupLogging points the shared logger at a file, at stderr, or nowhere
// while the editor owns the terminal.
func setupLogging(level, file string, interactive bool) (func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logging.Configure(w, level)
	return closeFn, nil
}
