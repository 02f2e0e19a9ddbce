package cli

import "github.com/spf13/cobra"

func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for archdiagram.

To load completions:

Bash:
  $ source <(archdiagram completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ archdiagram completion bash > /etc/bash_completion.d/archdiagram
  # macOS:
  $ archdiagram completion bash > $(brew --prefix)/etc/bash_completion.d/archdiagram

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ archdiagram completion zsh > "${fpath[1]}/_archdiagram"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ archdiagram completion fish | source

  # To load completions for each session, execute once:
  $ archdiagram completion fish > ~/.config/fish/completions/archdiagram.fish

PowerShell:
  PS> archdiagram completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> archdiagram completion powershell > archdiagram.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
		},
	}
}
