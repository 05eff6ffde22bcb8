package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// AI Configuration (optional; only the refinement path needs it)
	OpenAIKey   string `mapstructure:"OPENAI_API_KEY"` // API key for OpenAI
	OpenAIModel string `mapstructure:"OPENAI_MODEL"`   // e.g., "gpt-4o"

	// Publishing Configuration
	PublishDir string `mapstructure:"PUBLISH_DIR"` // Root directory for published sites
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)     // Path to look for the config file in
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")
	viper.SetDefault("PUBLISH_DIR", "published")

	viper.AutomaticEnv() // Read environment variables that match keys

	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, continue: env vars and defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found, relying on environment variables and defaults.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		log.Println("WARN: OPENAI_API_KEY is not set. The AI refinement path will be unavailable.")
	}

	return
}
