package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: archdeck [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the CapNet architecture diagram deck to a paginated PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>    Output file path (default "+defaultOutputPath+")")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "      --palette <path>   Palette YAML file (default: built-in palette)")
	fmt.Fprintln(w, "      --html-only        Write the intermediate HTML instead of a PDF")
	fmt.Fprintln(w, "  -t, --timeout <dur>    PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show per-page progress")
	fmt.Fprintln(w, "      --version          Show version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without --config, archdeck reads .archdeck.yaml from the working")
	fmt.Fprintln(w, "directory when present. Flags override config values.")
}
