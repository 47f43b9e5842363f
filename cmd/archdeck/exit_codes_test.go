package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	archdeck "github.com/capnet-labs/archdeck"
	"github.com/capnet-labs/archdeck/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"generic error", errors.New("boom"), ExitGeneral},
		{"composer failure", archdeck.ErrComposer, ExitGeneral},
		{"browser connect", archdeck.ErrBrowserConnect, ExitBrowser},
		{"page load", archdeck.ErrPageLoad, ExitBrowser},
		{"pdf generation", archdeck.ErrPDFGeneration, ExitBrowser},
		{"output write", archdeck.ErrOutputWrite, ExitIO},
		{"palette load", archdeck.ErrPaletteLoad, ExitIO},
		{"file not found", os.ErrNotExist, ExitIO},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"palette parse", archdeck.ErrPaletteParse, ExitUsage},
		{"invalid color", archdeck.ErrInvalidColor, ExitUsage},
		{"invalid timeout flag", ErrInvalidTimeout, ExitUsage},
		{"wrapped browser error", fmt.Errorf("rendering PDF: %w", archdeck.ErrPDFGeneration), ExitBrowser},
		{"wrapped config error", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
