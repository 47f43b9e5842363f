package archdeck

import (
	"strings"

	"github.com/capnet-labs/archdeck/internal/svgutil"
)

// documentTitle is the HTML document title of the assembled deck.
const documentTitle = "CapNet Architecture Diagrams"

// buildDeckHTML assembles the composed pages into a single HTML
// document, one full-bleed sheet per page. Assembly is pure string
// building: identical pages produce byte-identical output.
func buildDeckHTML(pages []Page) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString("<title>" + svgutil.Esc(documentTitle) + "</title>\n")
	b.WriteString("<style>" + buildDeckCSS() + "</style>\n")
	b.WriteString("</head>\n<body>\n")

	for _, page := range pages {
		b.WriteString(`<section class="sheet" data-title="` + svgutil.Esc(page.Title) + `">` + "\n")
		b.WriteString(page.SVG)
		b.WriteString("\n</section>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// buildDeckCSS generates the print stylesheet: landscape US Letter
// sheets with no margins, one page break per sheet.
func buildDeckCSS() string {
	return `
@page {
  size: 11in 8.5in;
  margin: 0;
}
html, body {
  margin: 0;
  padding: 0;
}
.sheet {
  width: 11in;
  height: 8.5in;
  overflow: hidden;
  break-after: page;
  page-break-after: always;
}
.sheet:last-child {
  break-after: auto;
  page-break-after: auto;
}
.sheet svg {
  display: block;
  width: 100%;
  height: 100%;
}
`
}
