package main

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    cliFlags
		wantErr bool
	}{
		{
			name: "no flags",
			args: []string{"archdeck"},
			want: cliFlags{},
		},
		{
			name: "long flags",
			args: []string{"archdeck", "--output", "deck.pdf", "--palette", "brand.yaml", "--html-only", "--timeout", "2m", "--verbose"},
			want: cliFlags{output: "deck.pdf", palette: "brand.yaml", htmlOnly: true, timeout: "2m", verbose: true},
		},
		{
			name: "short flags",
			args: []string{"archdeck", "-o", "out.pdf", "-c", "team", "-t", "45s", "-q"},
			want: cliFlags{output: "out.pdf", config: "team", timeout: "45s", quiet: true},
		},
		{
			name: "version flag",
			args: []string{"archdeck", "--version"},
			want: cliFlags{version: true},
		},
		{
			name:    "unknown flag",
			args:    []string{"archdeck", "--frobnicate"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFlags() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("parseFlags() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
