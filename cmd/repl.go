package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gemchat-dev/gemchat/internal/chat"
	"github.com/gemchat-dev/gemchat/internal/gemchat"
	"github.com/gemchat-dev/gemchat/internal/gemchat/config"
	"github.com/gemchat-dev/gemchat/internal/gemini"
	"github.com/gemchat-dev/gemchat/internal/tui"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session in the terminal.
The conversation lives in memory for the duration of the session:
ctrl+r resets it back to the welcome message, esc quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		store := gemchat.NewStore(cfg.WelcomeMessage)
		client := gemini.NewClient(cfg.ClientConfig())
		svc := chat.NewService(store, client, cfg.ApologyMessage, cfg.SendDelay, nil)

		p := tea.NewProgram(tui.NewModel(store, svc), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running chat screen: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
