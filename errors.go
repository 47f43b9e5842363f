package archdeck

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoComposers = errors.New("deck has no composers")
	ErrComposer    = errors.New("composer failed")
	ErrOutputWrite = errors.New("failed to write output file")

	// Drawing errors. These surface through ErrComposer when a page
	// composer issues an invalid draw call.
	ErrUnknownStyleToken = errors.New("unknown style token")
	ErrOutOfBounds       = errors.New("geometry outside drawable area")
	ErrPageNotFramed     = errors.New("composer did not call SetupPage")
	ErrPageReframed      = errors.New("SetupPage called more than once")

	// Palette loading errors.
	ErrPaletteParse = errors.New("failed to parse palette")
	ErrInvalidColor = errors.New("invalid color value")
	ErrEmptyPalette = errors.New("palette defines no styles")
	ErrPaletteLoad  = errors.New("failed to load palette file")

	// Browser errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
