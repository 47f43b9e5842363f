package archdeck

import (
	"context"
	"fmt"
	"time"

	"github.com/capnet-labs/archdeck/internal/fileutil"
)

// Compile-time interface implementation checks.
var (
	_ pdfConverter = (*rodConverter)(nil)
	_ pdfRenderer  = (*rodRenderer)(nil)
)

// defaultTimeout bounds PDF generation when no timeout is configured.
const defaultTimeout = 30 * time.Second

// outputFileMode is the permission mode for written artifacts.
const outputFileMode = 0o644

// deckConfig holds internal configuration for Deck.
type deckConfig struct {
	timeout time.Duration
}

// Option configures a Deck.
type Option func(*Deck)

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("archdeck: WithTimeout duration must be positive")
	}
	return func(dk *Deck) {
		dk.cfg.timeout = d
	}
}

// WithPalette replaces the default style palette.
// Panics if p is nil.
func WithPalette(p *Palette) Option {
	if p == nil {
		panic("archdeck: WithPalette palette must not be nil")
	}
	return func(dk *Deck) {
		dk.palette = p
	}
}

// WithComposers replaces the default page sequence. Pages render in
// the given order.
func WithComposers(composers ...Composer) Option {
	return func(dk *Deck) {
		dk.composers = composers
	}
}

// Input contains per-render parameters.
type Input struct {
	// HTMLOnly skips PDF generation; the result carries only the
	// assembled HTML. Used for debugging page composition without a
	// browser.
	HTMLOnly bool
}

// RenderResult holds the rendered artifacts.
type RenderResult struct {
	HTML      []byte // assembled multi-page HTML document
	PDF       []byte // paginated PDF; nil when Input.HTMLOnly
	PageCount int
}

// Deck sequences page composers into one paginated PDF document.
// Create with NewDeck, render with Render or RenderFile, and Close
// when done to release the browser.
type Deck struct {
	cfg          deckConfig
	palette      *Palette
	composers    []Composer
	pdfConverter pdfConverter
}

// NewDeck creates a Deck with the default palette and the full diagram
// sequence. Use options to customize behavior.
func NewDeck(opts ...Option) *Deck {
	d := &Deck{
		cfg:       deckConfig{timeout: defaultTimeout},
		palette:   DefaultPalette(),
		composers: DefaultComposers(),
	}

	for _, opt := range opts {
		opt(d)
	}

	// Create PDF converter if not injected (e.g., by tests).
	if d.pdfConverter == nil {
		d.pdfConverter = newRodConverter(d.cfg.timeout)
	}

	return d
}

// Render composes every page in declared order, assembles the HTML
// document, and prints it to PDF. Any composer failure aborts the
// whole render; there is no partial document.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (d *Deck) Render(ctx context.Context, input Input) (result *RenderResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if len(d.composers) == 0 {
		return nil, ErrNoComposers
	}

	pages, err := d.composePages(ctx)
	if err != nil {
		return nil, err
	}

	htmlContent := buildDeckHTML(pages)
	res := &RenderResult{
		HTML:      []byte(htmlContent),
		PageCount: len(pages),
	}

	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := d.pdfConverter.ToPDF(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	res.PDF = pdfBytes

	return res, nil
}

// RenderFile renders the deck and writes the artifact to outputPath.
// The write is atomic: the destination either receives the complete
// document or is left untouched. With Input.HTMLOnly the assembled
// HTML is written instead of a PDF.
func (d *Deck) RenderFile(ctx context.Context, outputPath string, input Input) (*RenderResult, error) {
	if outputPath == "" {
		return nil, fmt.Errorf("%w: empty output path", ErrOutputWrite)
	}

	res, err := d.Render(ctx, input)
	if err != nil {
		return nil, err
	}

	data := res.PDF
	if input.HTMLOnly {
		data = res.HTML
	}
	if err := fileutil.WriteFileAtomic(outputPath, data, outputFileMode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	return res, nil
}

// Close releases resources (headless Chrome browser).
func (d *Deck) Close() error {
	if d.pdfConverter != nil {
		return d.pdfConverter.Close()
	}
	return nil
}

// composePages runs each composer on a fresh canvas and collects the
// finalized pages in declared order.
func (d *Deck) composePages(ctx context.Context) ([]Page, error) {
	pages := make([]Page, 0, len(d.composers))
	for _, comp := range d.composers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c := NewCanvas(d.palette)
		if err := comp.Compose(c); err != nil {
			return nil, fmt.Errorf("%w: page %q: %w", ErrComposer, comp.Name, err)
		}
		page, err := c.Finalize()
		if err != nil {
			return nil, fmt.Errorf("%w: page %q: %w", ErrComposer, comp.Name, err)
		}
		pages = append(pages, page)
	}
	return pages, nil
}
