package yamlutil_test

// Notes:
// - Unmarshal/UnmarshalStrict: input validation, parse errors, strict mode
// - Size cap: inputs over MaxInputSize are rejected before parsing

import (
	"errors"
	"strings"
	"testing"

	"github.com/capnet-labs/archdeck/internal/yamlutil"
)

type testPalette struct {
	Name   string            `yaml:"name"`
	Styles map[string]string `yaml:"styles"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Parses YAML into Go structs
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("name: deck\nstyles:\n  proxy: \"#6A1B9A\""),
			dest: &testPalette{},
			check: func(t *testing.T, v any) {
				p := v.(*testPalette)
				if p.Name != "deck" {
					t.Errorf("Name = %q, want %q", p.Name, "deck")
				}
				if p.Styles["proxy"] != "#6A1B9A" {
					t.Errorf("Styles[proxy] = %q, want %q", p.Styles["proxy"], "#6A1B9A")
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testPalette{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testPalette{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: deck"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name: "malformed YAML",
			data: []byte("name: [unclosed"),
			dest: &testPalette{},
			check: func(t *testing.T, v any) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.name == "malformed YAML" {
				if err == nil {
					t.Fatal("Unmarshal() error = nil, want parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Strict mode rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown field", func(t *testing.T) {
		t.Parallel()

		var p testPalette
		err := yamlutil.UnmarshalStrict([]byte("name: deck\nbogus: field"), &p)
		if err == nil {
			t.Fatal("UnmarshalStrict() error = nil, want unknown field error")
		}
	})

	t.Run("accepts known fields", func(t *testing.T) {
		t.Parallel()

		var p testPalette
		if err := yamlutil.UnmarshalStrict([]byte("name: deck"), &p); err != nil {
			t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
		}
		if p.Name != "deck" {
			t.Errorf("Name = %q, want %q", p.Name, "deck")
		}
	})
}

// ---------------------------------------------------------------------------
// TestMaxInputSize - Size cap enforcement
// ---------------------------------------------------------------------------

func TestMaxInputSize(t *testing.T) {
	// Not parallel: mutates package-level MaxInputSize.
	orig := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 16
	defer func() { yamlutil.MaxInputSize = orig }()

	var p testPalette
	big := []byte("name: " + strings.Repeat("x", 32))
	err := yamlutil.Unmarshal(big, &p)
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Fatalf("Unmarshal() error = %v, want %v", err, yamlutil.ErrInputTooLarge)
	}
}
