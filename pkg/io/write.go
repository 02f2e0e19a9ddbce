package io

import (
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/archdiagram/pkg/errors"
)

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// WriteFile writes data to path, replacing any existing file, and returns
// the digest of data.
func WriteFile(path string, data []byte) (string, error) {
	if err := errors.ValidatePath("output path", path); err != nil {
		return "", err
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "output directory %s does not exist", dir)
	case err != nil:
		return "", errors.Wrap(errors.ErrCodeWriteFailed, err, "stat %s", dir)
	case !info.IsDir():
		return "", errors.New(errors.ErrCodeInvalidPath, "output directory %s is not a directory", dir)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return Hash(data), nil
}

// SiblingPaths maps each format to base with its extension replaced by the
// format name. A single format whose extension already matches keeps base
// unchanged.
func SiblingPaths(base string, formats []string) map[string]string {
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	paths := make(map[string]string, len(formats))
	for _, f := range formats {
		paths[f] = stem + "." + f
	}
	return paths
}
