//go:build integration

package archdeck

// Notes:
// - Integration tests exercise the real headless Chrome pipeline.
// - Rod automatically downloads Chromium on first run if not found;
//   set ROD_BROWSER_BIN to use a pre-installed browser in CI.
// - A single Deck is shared across tests to reuse one browser.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testTimeout is the standard timeout for integration test operations.
const testTimeout = 60 * time.Second

// testDeck is the shared Deck for all integration tests. Initialized in
// TestMain and closed after all tests complete.
var testDeck *Deck

func TestMain(m *testing.M) {
	testDeck = NewDeck(WithTimeout(testTimeout))

	code := m.Run()

	testDeck.Close()
	os.Exit(code)
}

func assertValidPDF(t *testing.T, data []byte) {
	t.Helper()

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("data does not have PDF magic bytes, got prefix: %q", data[:min(10, len(data))])
	}
	if len(data) < 1000 {
		t.Errorf("PDF data suspiciously small: %d bytes", len(data))
	}
}

func TestRender_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	res, err := testDeck.Render(ctx, Input{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	assertValidPDF(t, res.PDF)
	if res.PageCount != len(DefaultComposers()) {
		t.Errorf("PageCount = %d, want %d", res.PageCount, len(DefaultComposers()))
	}
}

func TestRenderFile_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	outputPath := filepath.Join(t.TempDir(), "diagrams.pdf")
	if _, err := testDeck.RenderFile(ctx, outputPath, Input{}); err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	assertValidPDF(t, data)
}

func TestRender_Integration_ContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()

	if _, err := testDeck.Render(ctx, Input{}); err == nil {
		t.Error("Render() expected timeout error, got nil")
	}
}
