package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archdiagram/pkg/config"
	"github.com/matzehuels/archdiagram/pkg/pipeline"
)

// renderOpts holds the flags of the render command. Empty values leave the
// config file (or default) in place.
type renderOpts struct {
	config  string // TOML config file
	output  string // output path, or base path for several formats
	font    string // font file for PNG text
	formats string // comma-separated: png, svg, json
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the architecture diagram",
		Long: `Render the architecture diagram to ` + config.DefaultOutput + ` in the
working directory. An existing file is overwritten.

Each file ends in its format's extension and shares the output's base name:
  archdiagram render -f svg                       # finance-architecture-corrected.svg
  archdiagram render -o docs/arch.png -f png,svg  # docs/arch.png + docs/arch.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			result, err := pipeline.NewRunner(logger).Execute(ctx, cfg)
			if result != nil {
				for _, out := range result.Outputs {
					printSaved(cmd.OutOrStdout(), out.Path)
				}
			}
			if err != nil {
				return err
			}
			prog.done("rendered architecture diagram", "formats", len(result.Outputs), "font", result.Font)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default "+config.DefaultOutput+")")
	cmd.Flags().StringVar(&opts.font, "font", "", "font file for PNG text; falls back to an embedded font")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output formats: png, svg, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file")

	return cmd
}

// resolve loads the config file, if any, and applies flag overrides.
func (o renderOpts) resolve() (config.Config, error) {
	cfg := config.Default()
	if o.config != "" {
		var err error
		if cfg, err = config.Load(o.config); err != nil {
			return config.Config{}, err
		}
	}
	if o.output != "" {
		cfg.Output = o.output
	}
	if o.font != "" {
		cfg.Font = o.font
	}
	if o.formats != "" {
		cfg.Formats = parseFormats(o.formats)
	}
	return cfg, cfg.Validate()
}

// parseFormats splits a comma-separated format list, trimming blanks.
func parseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
