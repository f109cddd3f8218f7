package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gemchat-dev/gemchat/internal/gemchat/config"
	"github.com/gemchat-dev/gemchat/internal/gemchat/prompt"
)

// promptsCmd represents the prompts command
var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List available prompt templates",
	Long: `List the prompt template names found in the configured prompt
directories. Use a name with 'gemchat chat --prompt <name>'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		names, err := prompt.List(cfg.PromptDirs)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No prompt templates found.")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptsCmd)
}
