// Package archdeck renders the CapNet architecture diagram deck as a
// single paginated PDF using headless Chrome.
//
// # Quick Start
//
// Create a deck, render it, and close when done:
//
//	deck := archdeck.NewDeck()
//	defer deck.Close()
//
//	res, err := deck.RenderFile(ctx, "diagrams.pdf", archdeck.Input{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Pages: %d\n", res.PageCount)
//
// The result also carries the intermediate HTML (res.HTML) for
// debugging. Use Input.HTMLOnly to skip PDF generation entirely.
//
// # Rendering Pipeline
//
// The render proceeds in stages:
//
//  1. Each page composer draws onto a fresh canvas (normalized
//     [0,1]x[0,1] coordinates, origin bottom-left) using the box,
//     arrow, note, and badge primitives and palette style tokens.
//  2. Finalized pages are assembled into one HTML document, one
//     full-bleed 11x8.5in landscape SVG sheet per page.
//  3. Headless Chrome (go-rod) prints the document to a paginated
//     vector PDF.
//
// Composers are independent and run strictly in declared order; a
// failure in any composer aborts the whole render, and file output is
// atomic, so a partial document is never written.
//
// # Configuration
//
// Use functional options to customize the deck:
//
//	palette, err := archdeck.LoadPalette("brand.yaml")
//	deck := archdeck.NewDeck(
//	    archdeck.WithTimeout(2*time.Minute),
//	    archdeck.WithPalette(palette),
//	)
//
// # Style Tokens
//
// All colors flow through an immutable palette mapping semantic tokens
// (e.g. "proxy", "deny", "trust-zone") to fill/text color pairs. A
// composer referencing an undefined token fails the render before any
// output is produced.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run
// (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_BROWSER_BIN to specify a
// pre-installed Chrome binary.
package archdeck
