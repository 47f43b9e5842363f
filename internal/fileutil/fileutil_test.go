package fileutil_test

// Notes:
// - WriteTempFile: creation, cleanup, extension validation
// - WriteFileAtomic: full write, overwrite, failure leaves destination untouched
// - FileExists: regular files vs directories vs missing paths

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/capnet-labs/archdeck/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteTempFile - Temp file creation and cleanup
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	t.Run("creates file with content and extension", func(t *testing.T) {
		t.Parallel()

		path, cleanup, err := fileutil.WriteTempFile("<html></html>", "html")
		if err != nil {
			t.Fatalf("WriteTempFile() unexpected error: %v", err)
		}
		defer cleanup()

		if !strings.HasSuffix(path, ".html") {
			t.Errorf("path %q does not end in .html", path)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading temp file: %v", err)
		}
		if string(content) != "<html></html>" {
			t.Errorf("content = %q, want %q", content, "<html></html>")
		}
	})

	t.Run("cleanup removes the file", func(t *testing.T) {
		t.Parallel()

		path, cleanup, err := fileutil.WriteTempFile("x", "html")
		if err != nil {
			t.Fatalf("WriteTempFile() unexpected error: %v", err)
		}
		cleanup()
		if fileutil.FileExists(path) {
			t.Errorf("file %q still exists after cleanup", path)
		}
	})

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "empty extension", extension: "", wantErr: fileutil.ErrExtensionEmpty},
		{name: "slash in extension", extension: "ht/ml", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "backslash in extension", extension: `ht\ml`, wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "null byte in extension", extension: "html\x00", wantErr: fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := fileutil.WriteTempFile("x", tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("WriteTempFile() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - All-or-nothing output writes
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes complete content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "deck.pdf")
		if err := fileutil.WriteFileAtomic(path, []byte("%PDF-data"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if string(content) != "%PDF-data" {
			t.Errorf("content = %q, want %q", content, "%PDF-data")
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "deck.pdf")
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
		}
		content, _ := os.ReadFile(path)
		if string(content) != "new" {
			t.Errorf("content = %q, want %q", content, "new")
		}
	})

	t.Run("missing directory fails without creating destination", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "no-such-dir", "deck.pdf")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
			t.Fatal("WriteFileAtomic() error = nil, want error for missing directory")
		}
		if fileutil.FileExists(path) {
			t.Errorf("destination %q exists after failed write", path)
		}
	})

	t.Run("empty path rejected", func(t *testing.T) {
		t.Parallel()

		err := fileutil.WriteFileAtomic("", []byte("x"), 0o644)
		if !errors.Is(err, fileutil.ErrEmptyPath) {
			t.Errorf("WriteFileAtomic() error = %v, want %v", err, fileutil.ErrEmptyPath)
		}
	})

	t.Run("leaves no staging files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "deck.pdf")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".archdeck-tmp-") {
				t.Errorf("staging file %q left behind", e.Name())
			}
		}
	})
}

// ---------------------------------------------------------------------------
// TestFileExists - Path classification
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "regular file", path: file, want: true},
		{name: "directory", path: dir, want: false},
		{name: "missing path", path: filepath.Join(dir, "missing"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
