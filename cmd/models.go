package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gemchat-dev/gemchat/internal/gemchat/config"
	"github.com/gemchat-dev/gemchat/internal/gemini"
)

// modelsCmd represents the models command
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available at the endpoint",
	Long: `List the generation-capable models the endpoint advertises.
The currently configured model is marked with an asterisk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		client := gemini.NewClient(cfg.ClientConfig())
		models, err := client.ListModels(cmd.Context())
		if err != nil {
			return err
		}

		for _, m := range models {
			marker := "  "
			if m.ID() == cfg.Model {
				marker = "* "
			}
			desc := m.Description
			if desc == "" {
				desc = m.DisplayName
			}
			fmt.Printf("%s%-40s %s\n", marker, m.ID(), desc)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
