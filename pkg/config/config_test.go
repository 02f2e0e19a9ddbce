package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/archdiagram/pkg/errors"
	"github.com/matzehuels/archdiagram/pkg/fonts"
	"github.com/matzehuels/archdiagram/pkg/palette"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Output != "finance-architecture-corrected.png" {
		t.Errorf("Output = %s", cfg.Output)
	}
	if cfg.Font != fonts.DefaultPath {
		t.Errorf("Font = %s", cfg.Font)
	}
	if len(cfg.Formats) != 1 || cfg.Formats[0] != "png" {
		t.Errorf("Formats = %v", cfg.Formats)
	}
	if cfg.FontSizes != fonts.DefaultSizes() {
		t.Errorf("FontSizes = %+v", cfg.FontSizes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
output = "arch.png"
formats = ["png", "svg"]

[font_sizes]
title = 48

[palette]
Frontend = "#3366cc"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output != "arch.png" {
		t.Errorf("Output = %s", cfg.Output)
	}
	if cfg.Font != fonts.DefaultPath {
		t.Errorf("Font should keep default, got %s", cfg.Font)
	}
	if len(cfg.Formats) != 2 {
		t.Errorf("Formats = %v", cfg.Formats)
	}
	want := fonts.DefaultSizes()
	want.Title = 48
	if cfg.FontSizes != want {
		t.Errorf("FontSizes = %+v, want %+v", cfg.FontSizes, want)
	}

	pal, err := cfg.ResolvePalette()
	if err != nil {
		t.Fatal(err)
	}
	if got := palette.Hex(pal[palette.Frontend]); got != "#3366cc" {
		t.Errorf("frontend = %s", got)
	}
	if got := palette.Hex(pal[palette.Backend]); got != "#7ed321" {
		t.Errorf("backend = %s, want default", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"unknown key", `outptu = "x.png"`, errors.ErrCodeInvalidConfig},
		{"unknown nested key", "[font_sizes]\nhuge = 80", errors.ErrCodeInvalidConfig},
		{"syntax", `output = `, errors.ErrCodeInvalidConfig},
		{"bad format", `formats = ["gif"]`, errors.ErrCodeInvalidFormat},
		{"no formats", `formats = []`, errors.ErrCodeInvalidConfig},
		{"zero size", "[font_sizes]\nsmall = 0", errors.ErrCodeInvalidConfig},
		{"bad color", "[palette]\nai = \"orange\"", errors.ErrCodeInvalidColor},
		{"blank output", `output = "  "`, errors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archdiagram.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
