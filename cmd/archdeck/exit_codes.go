package main

import (
	"errors"
	"os"

	archdeck "github.com/capnet-labs/archdeck"
	"github.com/capnet-labs/archdeck/internal/config"
)

// Exit codes for the archdeck CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or palette
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, archdeck.ErrBrowserConnect) ||
		errors.Is(err, archdeck.ErrPageCreate) ||
		errors.Is(err, archdeck.ErrPageLoad) ||
		errors.Is(err, archdeck.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, archdeck.ErrOutputWrite) ||
		errors.Is(err, archdeck.ErrPaletteLoad) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, archdeck.ErrPaletteParse) ||
		errors.Is(err, archdeck.ErrInvalidColor) ||
		errors.Is(err, archdeck.ErrEmptyPalette) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
