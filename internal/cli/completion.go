package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts. Kind names complete
// for the layout command.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for supertile.

To load completions:

Bash:
  $ source <(supertile completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ supertile completion bash > /etc/bash_completion.d/supertile
  # macOS:
  $ supertile completion bash > $(brew --prefix)/etc/bash_completion.d/supertile

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ supertile completion zsh > "${fpath[1]}/_supertile"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ supertile completion fish | source

  # To load completions for each session, execute once:
  $ supertile completion fish > ~/.config/fish/completions/supertile.fish

PowerShell:
  PS> supertile completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> supertile completion powershell > supertile.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}
