package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dd0wney/cluso-netontology/pkg/logging"
	"github.com/dd0wney/cluso-netontology/pkg/model"
	"github.com/dd0wney/cluso-netontology/pkg/rdf"
	"github.com/dd0wney/cluso-netontology/pkg/serializer"
	"github.com/dd0wney/cluso-netontology/pkg/topology"
)

func (a *app) generate(args []string) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	topologyFile := fs.String("topology", "", "Topology YAML file (default: packaged example network)")
	outFile := fs.String("o", "", "Output file (default: stdout)")
	format := fs.String("format", string(a.cfg.OutputFormat()), "Output format: turtle or ntriples")
	noSchema := fs.Bool("no-schema", !a.cfg.Output.IncludeSchema, "Omit ontology triples from the output")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	outFormat, err := rdf.ParseFormat(*format)
	if err != nil {
		return a.fail("bad output format", err)
	}

	timer := logging.StartTimer(a.logger, "generate finished", logging.Operation("generate"))

	var entities []model.Entity
	source := topology.ExampleName
	if *topologyFile != "" {
		source = *topologyFile
		entities, err = topology.LoadFile(*topologyFile)
		if err != nil {
			return a.fail("topology not loaded", err)
		}
	} else {
		entities = topology.Example()
	}
	a.logger.Info("loaded topology", logging.Source(source), logging.Count(len(entities)))

	s := serializer.New(
		serializer.WithLogger(a.logger),
		serializer.WithMetrics(a.metrics),
		serializer.WithSchema(!*noSchema))
	g, err := s.Serialize(entities)
	if err != nil {
		return a.fail("serialization failed", err)
	}

	if err := writeGraph(*outFile, a.stdout, g, outFormat); err != nil {
		return a.fail("output not written", err)
	}

	timer.End(logging.Triples(g.Len()), logging.Path(*outFile))
	if *outFile != "" {
		fmt.Fprintln(a.stderr, successStyle.Render(fmt.Sprintf("✓ wrote %d triples to %s", g.Len(), *outFile)))
	}
	return exitOK
}

// writeGraph writes to path, or to stdout when path is empty
func writeGraph(path string, stdout io.Writer, g *rdf.Graph, format rdf.Format) error {
	if path == "" {
		return rdf.Write(stdout, g, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := rdf.Write(w, g, format); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
