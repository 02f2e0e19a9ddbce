package errors

import (
	"maps"
	"slices"
	"strings"
	"unicode"
)

// maxPathLen bounds output and font paths accepted from flags or config.
const maxPathLen = 4096

// ValidatePath checks that a user-supplied file path is usable.
// It does not touch the filesystem; existence is checked where the file is
// actually opened.
//
// Validation rules:
//   - Path cannot be empty or blank
//   - Maximum length of 4096 bytes
//   - No null bytes or control characters
func ValidatePath(what, path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "%s path cannot be empty", what)
	}
	if len(path) > maxPathLen {
		return New(ErrCodeInvalidPath, "%s path too long (max %d bytes)", what, maxPathLen)
	}
	for _, r := range path {
		if r == 0 || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "%s path contains control characters", what)
		}
	}
	return nil
}

// ValidateFormats checks every requested format against the valid set.
// An empty list is valid; callers apply their own default.
func ValidateFormats(formats []string, valid map[string]bool) error {
	for _, f := range formats {
		if !valid[f] {
			return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of %s)", f, joinKeys(valid))
		}
	}
	return nil
}

func joinKeys(m map[string]bool) string {
	return strings.Join(slices.Sorted(maps.Keys(m)), ", ")
}
