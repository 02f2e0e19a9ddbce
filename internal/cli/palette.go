package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/archdiagram/pkg/config"
	"github.com/matzehuels/archdiagram/pkg/palette"
)

func (c *CLI) paletteCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the diagram's color palette",
		Long:  `Print every palette key with its color, after applying overrides from --config.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			pal, err := cfg.ResolvePalette()
			if err != nil {
				return err
			}
			for _, k := range pal.Keys() {
				printSwatch(cmd.OutOrStdout(), string(k), palette.Hex(pal[k]))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	return cmd
}
