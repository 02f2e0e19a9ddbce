package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/archdiagram/pkg/config"
	"github.com/matzehuels/archdiagram/pkg/draw"
	"github.com/matzehuels/archdiagram/pkg/fonts"
	"github.com/matzehuels/archdiagram/pkg/io"
	"github.com/matzehuels/archdiagram/pkg/observability"
	"github.com/matzehuels/archdiagram/pkg/render/sink"
	"github.com/matzehuels/archdiagram/pkg/scene"
)

// Runner executes the render pipeline.
type Runner struct {
	Logger *log.Logger

	// LoadFonts builds the font set for a run. Defaults to [fonts.Load].
	LoadFonts func(path string, sizes fonts.Sizes) *fonts.Set
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger, LoadFonts: fonts.Load}
}

// Execute renders the architecture scene in every format of cfg and writes
// each to its output path.
func (r *Runner) Execute(ctx context.Context, cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pal, err := cfg.ResolvePalette()
	if err != nil {
		return nil, err
	}

	load := r.LoadFonts
	if load == nil {
		load = fonts.Load
	}
	fs := load(cfg.Font, cfg.FontSizes)
	defer fs.Close()
	if fs.Fallback {
		r.Logger.Debug("font unavailable, using embedded default", "path", cfg.Font, "font", fs.Name, "err", fs.Cause)
	} else {
		r.Logger.Debug("loaded font", "path", cfg.Font, "font", fs.Name)
	}

	result := &Result{Font: fs.Name, FontFallback: fs.Fallback}
	compose := func(d draw.Drawer) error { return scene.Architecture(d, pal) }
	opts := sink.Options{Fonts: fs, Sizes: cfg.FontSizes, FontFamily: cfg.FontFamily}
	formats := uniqueFormats(cfg.Formats)
	paths := OutputPaths(cfg.Output, formats)
	hooks := observability.Render()

	for _, format := range formats {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		start := time.Now()
		hooks.OnRenderStart(ctx, SceneArchitecture, format)
		data, err := sink.Render(format, compose, opts)
		elapsed := time.Since(start)
		hooks.OnRenderComplete(ctx, SceneArchitecture, format, len(data), elapsed, err)
		result.Stats.RenderTime += elapsed
		if err != nil {
			return result, err
		}

		if err := ctx.Err(); err != nil {
			return result, err
		}

		path := paths[format]
		start = time.Now()
		digest, err := io.WriteFile(path, data)
		result.Stats.WriteTime += time.Since(start)
		hooks.OnWrite(ctx, path, len(data), digest, err)
		if err != nil {
			return result, err
		}
		result.Outputs = append(result.Outputs, Output{Format: format, Path: path, Size: len(data), Digest: digest})
	}

	r.Logger.Debug("rendered outputs",
		"formats", formats,
		"render", result.Stats.RenderTime,
		"write", result.Stats.WriteTime)
	return result, nil
}
