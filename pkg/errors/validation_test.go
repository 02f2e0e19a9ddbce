package errors

import (
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative file", "finance-architecture-corrected.png", false},
		{"absolute file", "/tmp/out/diagram.png", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"null byte", "out\x00.png", true},
		{"newline", "out\n.png", true},
		{"too long", strings.Repeat("a", maxPathLen+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath("output", tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("error code = %q, want %q", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	valid := map[string]bool{"png": true, "svg": true, "json": true}

	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"single", []string{"png"}, false},
		{"all", []string{"png", "svg", "json"}, false},
		{"empty slice", []string{}, false},
		{"unknown", []string{"gif"}, true},
		{"mixed", []string{"png", "pdf"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormats(tt.formats, valid)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormatsMessageListsChoices(t *testing.T) {
	err := ValidateFormats([]string{"bmp"}, map[string]bool{"svg": true, "png": true})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "png, svg") {
		t.Errorf("error %q should list sorted choices", err.Error())
	}
}
