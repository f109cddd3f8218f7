package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gemchat-dev/gemchat/internal/gemchat/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [field]",
	Short: "Display current configuration",
	Long: `Display the current configuration values loaded from the config file
and environment variables.

If a field name is specified, only that field's value is displayed.
Available fields: configfile, base_url, model, token, welcome_message,
apology_message, send_delay, request_timeout, prompt_dirs

Examples:
  gemchat config            # Show all configuration
  gemchat config model      # Show only model
  gemchat config token      # Show only token (masked)`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		// If a field is specified, show only that field
		if len(args) > 0 {
			field := strings.ToLower(args[0])
			switch field {
			case "configfile":
				fmt.Println(viper.ConfigFileUsed())
			case "base_url", "baseurl":
				fmt.Println(cfg.BaseURL)
			case "model":
				fmt.Println(cfg.Model)
			case "token":
				fmt.Println(maskToken(cfg.Token))
			case "welcome_message", "welcomemessage":
				fmt.Println(cfg.WelcomeMessage)
			case "apology_message", "apologymessage":
				fmt.Println(cfg.ApologyMessage)
			case "send_delay", "senddelay":
				fmt.Println(cfg.SendDelay)
			case "request_timeout", "requesttimeout":
				fmt.Println(cfg.RequestTimeout)
			case "prompt_dirs", "promptdirs":
				fmt.Println(strings.Join(cfg.PromptDirs, ","))
			default:
				fmt.Fprintf(os.Stderr, "Unknown field: %s\n", args[0])
				fmt.Fprintf(os.Stderr, "Available fields: configfile, base_url, model, token, welcome_message, apology_message, send_delay, request_timeout, prompt_dirs\n")
				os.Exit(1)
			}
			return
		}

		// Display all configuration values
		fmt.Printf("ConfigFile: %s\n", viper.ConfigFileUsed())
		fmt.Printf("BaseURL: %s\n", cfg.BaseURL)
		fmt.Printf("Model: %s\n", cfg.Model)
		fmt.Printf("Token: %s\n", maskToken(cfg.Token))
		fmt.Printf("WelcomeMessage: %s\n", cfg.WelcomeMessage)
		fmt.Printf("ApologyMessage: %s\n", cfg.ApologyMessage)
		fmt.Printf("SendDelay: %s\n", cfg.SendDelay)
		fmt.Printf("RequestTimeout: %s\n", cfg.RequestTimeout)
		fmt.Printf("PromptDirectories: %s\n", strings.Join(cfg.PromptDirs, ","))
	},
}

// maskToken returns a masked version of the token for security
func maskToken(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

func init() {
	rootCmd.AddCommand(configCmd)
}
