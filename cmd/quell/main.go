package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/quellgql/quell/internal/compile"
	"github.com/quellgql/quell/internal/document"
	"github.com/quellgql/quell/internal/eventbus"
	"github.com/quellgql/quell/internal/language"
	"github.com/quellgql/quell/internal/otel"
	"github.com/quellgql/quell/internal/printer"
	"github.com/quellgql/quell/internal/schema"
)

const rootUsage = `quell — GraphQL document compiler for client codegen

USAGE:
  quell <command> [flags]

COMMANDS:
  compile          Run the transformation pipeline and print the compiled documents
  check            Run the pipeline and report diagnostics only
  help             Show help for any command
`

const compileUsage = `compile FLAGS:
  -schema <file>          GraphQL SDL schema file (required)
  -docs <dir>             Root directory of .graphql/.gql documents (default: .)
  -out <file>             Write compiled documents to file (default: stdout)
  -otel.endpoint <addr>   OTLP collector endpoint
  -otel.service <name>    OpenTelemetry service name (default: quell)
  (Advisory diagnostics go to stderr; a fatal diagnostic exits non-zero)
`

const checkUsage = `check FLAGS:
  -schema <file>   GraphQL SDL schema file (required)
  -docs <dir>      Root directory of .graphql/.gql documents (default: .)
  (Exits non-zero when a fatal diagnostic is present)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("quell", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "compile":
		return cmdCompile(cmdArgs)
	case "check":
		return cmdCheck(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "compile":
		fmt.Print(compileUsage)
	case "check":
		fmt.Print(checkUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func cmdCompile(args []string) error {
	schemaPath := ""
	docsDir := "."
	outFile := ""
	otelEndpoint := ""
	otelService := "quell"

	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&schemaPath, "schema", schemaPath, "GraphQL SDL schema file")
	fs.StringVar(&docsDir, "docs", docsDir, "Root directory of documents")
	fs.StringVar(&outFile, "out", outFile, "Write compiled documents to file")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, compileUsage)
		return err
	}
	if schemaPath == "" {
		fmt.Fprint(os.Stderr, compileUsage)
		return fmt.Errorf("-schema is required")
	}

	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	store, diags, err := runPipeline(context.Background(), schemaPath, docsDir)
	if err != nil {
		return err
	}
	reportAdvisories(diags)
	if diags.HasFatal() {
		return diags
	}

	out := printer.Print(store)
	if outFile == "" {
		fmt.Print(out)
		return nil
	}
	return os.WriteFile(outFile, []byte(out), 0644)
}

func cmdCheck(args []string) error {
	schemaPath := ""
	docsDir := "."

	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&schemaPath, "schema", schemaPath, "GraphQL SDL schema file")
	fs.StringVar(&docsDir, "docs", docsDir, "Root directory of documents")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, checkUsage)
		return err
	}
	if schemaPath == "" {
		fmt.Fprint(os.Stderr, checkUsage)
		return fmt.Errorf("-schema is required")
	}

	_, diags, err := runPipeline(context.Background(), schemaPath, docsDir)
	if err != nil {
		return err
	}
	reportAdvisories(diags)
	if diags.HasFatal() {
		return diags
	}
	return nil
}

// runPipeline loads the schema and documents and runs the full compile. The
// schema file is excluded from document discovery so it may live inside the
// documents root.
func runPipeline(ctx context.Context, schemaPath, docsDir string) (*document.Store, compile.Diagnostics, error) {
	sdl, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read schema: %w", err)
	}
	schemaDoc, err := language.ParseSchema(schemaPath, string(sdl))
	if err != nil {
		return nil, nil, fmt.Errorf("parse schema: %w", err)
	}
	sch, err := schema.BuildFromSDL(schemaDoc)
	if err != nil {
		return nil, nil, fmt.Errorf("build schema: %w", err)
	}

	disc, err := document.NewFileSystemDiscovery(ctx, docsDir, schemaPath)
	if err != nil {
		return nil, nil, err
	}
	store, err := document.Collect(ctx, disc)
	if err != nil {
		return nil, nil, fmt.Errorf("collect documents: %w", err)
	}

	diags := compile.Compile(ctx, sch, store)
	return store, diags, nil
}

func reportAdvisories(diags compile.Diagnostics) {
	for _, d := range diags {
		if d.Severity == compile.SeverityAdvisory {
			log.Printf("warning: %s", d)
		}
	}
}
