// Package main provides the entry point for the resume_page CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-page/internal/config"
	"github.com/jonathan/resume-page/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile  string
	verbose     bool
	contentPath string
	templateArg string
	locale      string
	colorScheme string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "resume_page",
	Short: "Render a résumé web page from content.json",
	Long:  "resume_page fills an HTML page template with the identity, contact and sections described by a content.json document.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		l, err := observability.NewLogger(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to JSON config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVarP(&contentPath, "content", "c", "", "Path or http(s) URL of content.json (default \"content.json\")")
	flags.StringVarP(&templateArg, "template", "t", "", "Path to the page template (default: built-in)")
	flags.StringVar(&locale, "locale", "", "BCP 47 locale used for case conversion")
	flags.StringVar(&colorScheme, "color-scheme", "", "Preferred color scheme: light or dark")
}

// resolveConfig merges CLI flags over the config file, the config file over
// fallback, and validates the result.
func resolveConfig(fallback config.Config) (config.Config, error) {
	flagCfg := config.Config{
		Content:     contentPath,
		Template:    templateArg,
		Locale:      locale,
		ColorScheme: colorScheme,
		Verbose:     verbose,
	}

	var fileCfg config.Config
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	cfg := flagCfg.MergeWithDefaults(fileCfg.MergeWithDefaults(fallback))
	cfg.Verbose = verbose || fileCfg.Verbose
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	// the logger was built from the flag alone in PersistentPreRunE
	if cfg.Verbose && !verbose {
		l, err := observability.NewLogger(true)
		if err != nil {
			return config.Config{}, err
		}
		_ = logger.Sync()
		logger = l
		logger.Debug("debug logging enabled by config file", zap.String("config", configFile))
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
