package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// defaultOutputPath is used when neither flags nor config name a destination.
const defaultOutputPath = "capnet-diagrams.pdf"

// cliFlags holds all command-line flags.
type cliFlags struct {
	output   string
	config   string
	palette  string
	htmlOnly bool
	timeout  string
	quiet    bool
	verbose  bool
	version  bool
}

// parseFlags parses command-line arguments.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("archdeck", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file path (default "+defaultOutputPath+")")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.palette, "palette", "", "palette YAML file (default: built-in palette)")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write the intermediate HTML instead of a PDF")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page progress")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	return f, nil
}
