// Command netonto generates RDF for network topologies and validates RDF
// graphs against the network shapes.
//
//	netonto [-config file] [-log-level level] generate [-topology file] [-o file] [-format turtle|ntriples] [-no-schema]
//	netonto [-config file] [-log-level level] validate [-shapes file] [-ontology file] [-no-inference] data.ttl
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-netontology/pkg/config"
	"github.com/dd0wney/cluso-netontology/pkg/logging"
	"github.com/dd0wney/cluso-netontology/pkg/metrics"
)

// Exit codes
const (
	exitOK     = 0
	exitFailed = 1 // error, or a graph that does not conform
	exitUsage  = 2
)

// app carries what every subcommand needs
type app struct {
	cfg     *config.Config
	logger  logging.Logger
	metrics *metrics.Registry
	stdout  io.Writer
	stderr  io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("netonto", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Config file (default: ./netonto.yaml or ~/.config/netonto/netonto.yaml)")
	logLevel := fs.String("log-level", "", "Log level override: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: netonto [flags] <generate|validate> [command flags]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	cfg, used, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, errorStyle.Render("✗ "+err.Error()))
		return exitFailed
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	runID := uuid.NewString()
	logger := logging.New(logging.Options{
		Level:  cfg.LogLevel(),
		Format: cfg.Log.Format,
		Writer: stderr,
	})
	defer logger.Sync()

	a := &app{
		cfg:     cfg,
		logger:  logger.With(logging.RunID(runID)),
		metrics: metrics.NewRegistry(),
		stdout:  stdout,
		stderr:  stderr,
	}
	if used != "" {
		a.logger.Debug("loaded config", logging.Path(used))
	}

	var code int
	switch cmd, rest := fs.Arg(0), fs.Args()[1:]; cmd {
	case "generate":
		code = a.generate(rest)
	case "validate":
		code = a.validate(rest)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return exitUsage
	}

	if path := cfg.Metrics.Textfile; path != "" {
		if err := a.metrics.WriteTextfile(path); err != nil {
			a.logger.Error("metrics textfile not written", logging.Path(path), logging.Error(err))
			return exitFailed
		}
	}
	return code
}

// fail reports err to the user and the log
func (a *app) fail(msg string, err error) int {
	a.logger.Error(msg, logging.Error(err))
	fmt.Fprintln(a.stderr, errorStyle.Render("✗ "+err.Error()))
	return exitFailed
}
