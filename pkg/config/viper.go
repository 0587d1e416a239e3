// Package config is responsible for initializing the application's configuration.
// It uses the Viper library to read settings from a config file, environment
// variables, and command-line flags, providing a unified configuration system.
package config

import (
	"strings"

	"github.com/alphaO4/whitehouse-archive/internal/logging"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// InitConfig initializes the application's configuration using Viper.
// It sets up default values, defines configuration search paths, and enables
// reading from environment variables. This function is designed to be called
// once at application startup so that configuration is loaded and available
// to all other packages. cfgFile, when non-empty, pins the config file and
// skips the search paths.
func InitConfig(cfgFile string) {
	// --- Set Search Paths ---
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Define the name of the config file to look for (without extension).
		viper.SetConfigName("config")
		// Add paths where Viper should look for the config file.
		viper.AddConfigPath(".")                   // Current working directory
		viper.AddConfigPath("/etc/sitearchiver/")  // System-wide configuration
		viper.AddConfigPath("$HOME/.sitearchiver") // User-specific configuration
	}

	// --- Set Defaults ---
	// Sensible defaults for key configuration parameters. These are used when
	// the values are not provided in a config file, env vars, or flags.
	const defaultUA = "Mozilla/5.0 (compatible; WhiteHouseArchiveBot/1.0; +https://github.com/alphaO4/WhiteHouse-Archive)"
	viper.SetDefault("archiver.user_agent", defaultUA)
	viper.SetDefault("archiver.output_dir", "archived")
	viper.SetDefault("archiver.max_links", 10)
	viper.SetDefault("archiver.request_timeout", "20s")
	viper.SetDefault("archiver.content_selector", "article a[href]")
	viper.SetDefault("archiver.article_markers", []string{"/news", "/briefing-room"})

	viper.SetDefault("wayback.save_endpoint", "https://web.archive.org/save/")

	// --- Environment Variables ---
	// Enable Viper to read environment variables.
	viper.SetEnvPrefix("ARCHIVE") // e.g., ARCHIVE_ARCHIVER_MAX_LINKS=25
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The user agent keeps its historical, un-prefixed variable name.
	viper.BindEnv("archiver.user_agent", "ARCHIVE_USER_AGENT") //nolint:errcheck // key is non-empty

	// --- Read Config File ---
	// Attempt to read the configuration file.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; this is not a fatal error since we can
			// proceed with defaults, environment variables, and flags.
			logging.L.Debug("Config file not found; using defaults and environment variables.")
		} else {
			// A real error occurred while parsing the config file.
			logging.L.Error("Error reading config file", zap.Error(err))
		}
	} else {
		logging.L.Info("Using config file", zap.String("path", viper.ConfigFileUsed()))
	}
}
