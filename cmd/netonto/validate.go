package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dd0wney/cluso-netontology/pkg/constraints"
	"github.com/dd0wney/cluso-netontology/pkg/logging"
	"github.com/dd0wney/cluso-netontology/pkg/ontology"
	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

func (a *app) validate(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	shapesFile := fs.String("shapes", a.cfg.Validation.ShapesPath, "Shapes file (default: packaged network shapes)")
	ontologyFile := fs.String("ontology", a.cfg.Validation.OntologyPath, "Ontology file for inference (default: packaged ontology)")
	noInference := fs.Bool("no-inference", !a.cfg.Validation.Inference, "Disable RDFS subclass inference")
	fs.Usage = func() {
		fmt.Fprintln(a.stderr, "Usage: netonto validate [flags] data.ttl")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	dataFile := fs.Arg(0)

	timer := logging.StartTimer(a.logger, "validate finished", logging.Operation("validate"), logging.Source(dataFile))

	data, err := parseFile(dataFile)
	if err != nil {
		return a.fail("data graph not loaded", err)
	}

	var schema *constraints.Schema
	if *shapesFile != "" {
		f, err := os.Open(*shapesFile)
		if err != nil {
			return a.fail("shapes not loaded", err)
		}
		schema, err = constraints.LoadShapesWithMetrics(f, *shapesFile, a.metrics)
		f.Close()
		if err != nil {
			return a.fail("shapes not loaded", err)
		}
	}

	var onto *rdf.Graph
	if !*noInference {
		if *ontologyFile == "" {
			onto = ontology.Graph()
		} else if onto, err = parseFile(*ontologyFile); err != nil {
			return a.fail("ontology not loaded", err)
		}
	}

	result, err := constraints.Validate(data, schema, onto,
		constraints.WithLogger(a.logger),
		constraints.WithMetrics(a.metrics))
	if err != nil {
		return a.fail("validation failed", err)
	}

	timer.End(logging.Bool("conforms", result.Conforms), logging.Violations(len(result.Violations)))
	renderReport(a.stdout, dataFile, result)

	if !result.Conforms {
		return exitFailed
	}
	return exitOK
}

// parseFile reads a graph, choosing N-Triples for .nt files and Turtle
// otherwise
func parseFile(path string) (*rdf.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	format := rdf.FormatTurtle
	if strings.EqualFold(filepath.Ext(path), ".nt") {
		format = rdf.FormatNTriples
	}
	return rdf.Parse(f, format, path)
}
