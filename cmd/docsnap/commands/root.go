// Package commands implements the CLI commands for docsnap.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "docsnap",
	Short: "Offline markdown snapshots of documentation sites",
	Long: `Docsnap crawls every same-domain page reachable from a start URL,
extracts the main content of each page as simplified markdown, and appends
the results to a single consolidated document.

The output is a plain-text snapshot of an entire documentation site,
suitable for search, archival, or feeding into other text tools.

Examples:
  # Snapshot a documentation site
  docsnap crawl --start-url "https://docs.example.com/" --output docs.md

  # Slow down requests and raise the per-request timeout
  docsnap crawl --start-url "https://docs.example.com/" \
      --delay 500ms --timeout 30s

  # Use site profiles for sites with unusual markup
  docsnap crawl --start-url "https://docs.example.com/" \
      --profiles sites.yaml`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.docsnap.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".docsnap")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DOCSNAP")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
