// Command deckcheck validates an input deck against a schema table.
//
//	deckcheck --schema table.json[.gz] deck.xml
//	deckcheck --schema table.json --format json deck.json
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/simware/deckschema"
	deckerrors "github.com/simware/deckschema/errors"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("deckcheck", flag.ContinueOnError)
	schemaPath := fs.String("schema", "", "path to JSON schema table (optionally gzip-compressed)")
	format := fs.String("format", "", "document format: xml or json (default: by file extension)")
	verbose := fs.Bool("verbose", false, "log informational diagnostics and debug output")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: deckcheck --schema <table.json> <deck.xml>\n\n")
		fmt.Fprintln(fs.Output(), "Validates an input deck against a schema table.")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *schemaPath == "" || fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	deckPath := fs.Arg(0)

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	schema, err := deckschema.LoadFile(*schemaPath)
	if err != nil {
		log.Errorf("loading schema table: %v", err)
		return 1
	}
	log.Debugf("schema table loaded: %d element types", len(schema.Tags()))

	root, err := readDeck(deckPath, *format)
	if err != nil {
		log.Errorf("reading deck: %v", err)
		return 1
	}

	record, violations := schema.Assemble(root)
	for _, v := range violations {
		if v.Severity == deckerrors.SeverityInfo {
			if *verbose {
				log.Infof("%s", v.Error())
			}
			continue
		}
		log.Errorf("%s", v.Error())
	}

	if violations.HasErrors() {
		log.Errorf("%s fails to validate (%d errors)", deckPath, len(violations.Errors()))
		return 1
	}
	if record != nil {
		log.Debugf("validated %d top-level children under %s", len(record.Children()), record.Tag())
	}
	log.Infof("%s validates", deckPath)
	return 0
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	logger, _ := cfg.Build()
	return logger
}

func readDeck(path, format string) (*deckschema.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck %s: %w", path, err)
	}
	defer f.Close()

	if format == "" {
		if strings.HasSuffix(path, ".json") {
			format = "json"
		} else {
			format = "xml"
		}
	}
	switch format {
	case "xml":
		return deckschema.ReadXML(f)
	case "json":
		return deckschema.ReadJSON(f)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
