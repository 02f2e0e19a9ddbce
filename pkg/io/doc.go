// Package io writes rendered diagrams to disk.
//
// [WriteFile] creates or overwrites a single output file and returns the
// SHA-256 digest of what it wrote, so callers can log or compare outputs
// across runs. Missing parent directories are reported as
// [errors.ErrCodeInvalidPath] and are never created.
//
// [SiblingPaths] derives one file name per format from a base output path,
// for commands that write the same scene in several formats.
package io
