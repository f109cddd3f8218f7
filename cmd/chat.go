/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gemchat-dev/gemchat/internal/gemchat/config"
	"github.com/gemchat-dev/gemchat/internal/gemchat/prompt"
	"github.com/gemchat-dev/gemchat/internal/gemini"
)

var (
	promptName string
	modelFlag  string
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send one message and print the reply",
	Long: `Send a message to the completion endpoint and print the reply.
This command performs a one-time API call.

For interactive multi-turn chatting, use 'gemchat repl' instead.

If no message is provided as an argument, it reads from stdin.

The prompt template (--prompt) should be a TOML file with the structure:
system = "System prompt with optional {{input}} placeholder"
user = "User prompt with optional {{input}} placeholder"
model = "optional-model-name"  # Optional: overrides the default model`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// Get message from arguments or stdin
		var message string
		if len(args) > 0 {
			message = strings.Join(args, " ")
		} else {
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading from stdin: %w", err)
			}
			message = string(input)
		}

		message = strings.TrimSpace(message)
		if message == "" {
			return fmt.Errorf("empty message")
		}

		if promptName != "" {
			path, err := prompt.Find(promptName, cfg.PromptDirs)
			if err != nil {
				return err
			}
			tmpl, err := prompt.Load(path)
			if err != nil {
				return err
			}
			if tmpl.Model != nil {
				cfg.Model = *tmpl.Model
			}
			message = tmpl.Format(message)
		}
		if modelFlag != "" {
			cfg.Model = modelFlag
		}

		log := newLogger()
		log.Info("sending message", "model", cfg.Model, "chars", len(message))

		client := gemini.NewClient(cfg.ClientConfig())
		reply, err := client.Send(cmd.Context(), message)
		if err != nil {
			var cerr *gemini.Error
			if errors.As(err, &cerr) && cerr.Kind == gemini.KindUnconfigured {
				return fmt.Errorf("%w\n\nSet token in the config file or the GEMCHAT_TOKEN environment variable", err)
			}
			return err
		}

		fmt.Println(reply)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVarP(&promptName, "prompt", "p", "", "prompt template name")
	chatCmd.Flags().StringVarP(&modelFlag, "model", "m", "", "override the configured model")
}
