/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gemchat-dev/gemchat/internal/gemchat/config"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gemchat",
	Short: "A terminal chat client for a Gemini-style completion endpoint",
	Long: `gemchat sends your messages to a generative-language HTTP endpoint
and prints the reply, either one-shot (chat) or interactively (repl).
You can configure the tool using a TOML configuration file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/gemchat/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("GEMCHAT")
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	userConfigDir := filepath.Join(home, ".config", "gemchat")

	defaults := config.NewDefaultConfig(filepath.Join(userConfigDir, "prompts"))

	viper.SetDefault("base_url", defaults.BaseURL)
	viper.SetDefault("model", defaults.Model)
	viper.SetDefault("token", defaults.Token)
	viper.SetDefault("welcome_message", defaults.WelcomeMessage)
	viper.SetDefault("apology_message", defaults.ApologyMessage)
	viper.SetDefault("send_delay", defaults.SendDelay)
	viper.SetDefault("request_timeout", defaults.RequestTimeout)
	viper.SetDefault("prompt_dirs", defaults.PromptDirs)

	viper.BindEnv("base_url", "GEMCHAT_BASE_URL")
	viper.BindEnv("model", "GEMCHAT_MODEL")
	viper.BindEnv("token", "GEMCHAT_TOKEN")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(userConfigDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	} else if verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger returns the logger for command-level use: text to stderr in
// verbose mode, discarded otherwise.
func newLogger() *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
