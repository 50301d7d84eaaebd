package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/quillpad-dev/quillpad/internal/config"
	"github.com/quillpad-dev/quillpad/internal/logger"
)

var configFolder string

var rootCmd = &cobra.Command{
	Use:   "quillpad",
	Short: "Quillpad personal blog server",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
}

// loadConfig reads .env (if present), then the yaml configs, and initializes
// logging from them. Used by every subcommand.
func loadConfig() *config.Config {
	_ = godotenv.Load()
	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
