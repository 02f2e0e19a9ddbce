// Package pipeline renders the architecture scene and writes it to disk.
//
// A [Runner] executes two stages for every configured format:
//
//  1. Render: draw [scene.Architecture] through the format's renderer
//  2. Write: store the bytes at the format's output path
//
// Both stages report to [observability.Render]. The context is checked
// between stages; a canceled context stops the run before the next write.
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, config.Default())
//	for _, out := range result.Outputs {
//	    fmt.Println(out.Path)
//	}
package pipeline

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/archdiagram/pkg/io"
)

// SceneArchitecture names the architecture scene in hooks and logs.
const SceneArchitecture = "architecture"

// Output describes one written file.
type Output struct {
	Format string
	Path   string
	Size   int
	Digest string
}

// Result is the outcome of [Runner.Execute]. On error it holds the outputs
// written before the failure.
type Result struct {
	Outputs []Output

	// Font is the name of the font the text was drawn with.
	Font string
	// FontFallback reports whether the embedded font replaced the
	// configured one.
	FontFallback bool

	Stats Stats
}

// Stats holds stage timings.
type Stats struct {
	RenderTime time.Duration
	WriteTime  time.Duration
}

// OutputPaths maps each format to its output path. Every path shares output's
// stem and ends in the format's extension. A single format whose extension
// already matches output, in any case, keeps output exactly as given.
func OutputPaths(output string, formats []string) map[string]string {
	if len(formats) == 1 && strings.EqualFold(filepath.Ext(output), "."+formats[0]) {
		return map[string]string{formats[0]: output}
	}
	return io.SiblingPaths(output, formats)
}

// uniqueFormats returns formats without repeats, keeping first occurrences.
func uniqueFormats(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
