package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	switch args[0] {
	case "show", "validate", "export", "jsonld":
		return runCommand(args[0], args[1:], stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "sitecfg %s\n", version)
		return 0
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return 1
	}
}

type options struct {
	configPath string
	format     string
	out        string
	logLevel   string
}

func runCommand(name string, args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML file layered over the built-in configuration")
	fs.StringVar(&opts.logLevel, "log-level", os.Getenv("LOG_LEVEL"), "log level (debug, info, warn, error)")
	if name == "show" || name == "export" {
		fs.StringVar(&opts.format, "format", "json", "output format: json or yaml")
	}
	if name == "export" {
		fs.StringVar(&opts.out, "out", "", "destination file (required)")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, opts.logLevel).With().Str("cmd", name).Logger()

	var err error
	switch name {
	case "show":
		err = cmdShow(stdout, opts)
	case "validate":
		err = cmdValidate(stdout, logger, opts)
	case "export":
		err = cmdExport(logger, opts)
	case "jsonld":
		err = cmdJSONLD(stdout, opts)
	}
	if err != nil {
		logger.Error().Err(err).Str("config", opts.configPath).Msg("command failed")
		return 1
	}
	return 0
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if level != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil {
			lvl = parsed
		}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", "sitecfg").Logger()
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `sitecfg - inspect and export the blog site configuration

Usage:
  sitecfg <command> [flags]

Commands:
  show       Print the derived configuration
  validate   Build and validate the configuration
  export     Atomically write the derived configuration to -out
  jsonld     Print the WebSite JSON-LD block
  version    Print the sitecfg version
  help       Show this help message

Flags:
  -config <file>    YAML overlay on the built-in configuration
  -format json|yaml Output format for show and export
  -out <file>       Destination for export
  -log-level <lvl>  Log level (default info, or LOG_LEVEL)

Examples:
  sitecfg show -format yaml
  sitecfg validate -config site.yaml
  sitecfg export -config site.yaml -out public/site.json`)
}
