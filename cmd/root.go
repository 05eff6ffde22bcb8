package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sitegen_server/config"
)

var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "sitegen",
	Short: "Chat-driven website generator",
	Long: `sitegen turns natural-language website descriptions into static
HTML: a heuristic intent extractor builds a structured specification from
the chat message, an optional LLM pass refines it, and a deterministic
renderer produces a self-contained document.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initializeConfig() error {
	// Load .env before viper so the variables are visible to AutomaticEnv.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file.")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	appConfig = cfg
	return nil
}
