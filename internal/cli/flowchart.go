package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/archdiagram/pkg/errors"
	"github.com/matzehuels/archdiagram/pkg/io"
	"github.com/matzehuels/archdiagram/pkg/render/flowchart"
	"github.com/matzehuels/archdiagram/pkg/scene"
)

const defaultFlowchartOutput = "payment-flowchart.png"

var flowchartFormats = map[string]bool{"png": true, "svg": true}

func (c *CLI) flowchartCommand() *cobra.Command {
	var (
		output string
		format string
		dot    bool
	)

	cmd := &cobra.Command{
		Use:   "flowchart",
		Short: "Render the payment-processing flowchart",
		Long: `Render the payment-processing flowchart with Graphviz.

The format defaults to the output file's extension. Use --dot to print the
Graphviz source instead of rendering it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow := scene.PaymentFlow()
			if err := flow.Validate(); err != nil {
				return err
			}
			src := flowchart.ToDOT(flow)
			if dot {
				_, err := fmt.Fprint(cmd.OutOrStdout(), src)
				return err
			}

			if format == "" {
				format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
			}
			if err := errors.ValidateFormats([]string{format}, flowchartFormats); err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			render := flowchart.RenderPNG
			if format == "svg" {
				render = flowchart.RenderSVG
			}
			data, err := render(ctx, src)
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			digest, err := io.WriteFile(output, data)
			if err != nil {
				return err
			}
			logger.Debug("wrote file", "path", output, "bytes", len(data), "sha256", digest)
			printSuccess(cmd.OutOrStdout(), "Flowchart saved as: %s", styleValue.Render(output))
			prog.done("rendered flowchart", "format", format, "nodes", len(flow.Nodes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultFlowchartOutput, "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: png or svg (default from --output)")
	cmd.Flags().BoolVar(&dot, "dot", false, "print Graphviz DOT source to stdout")

	return cmd
}
