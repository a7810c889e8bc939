package main

import (
	"fmt"

	"github.com/jonathan/resume-page/internal/config"
	"github.com/jonathan/resume-page/internal/content"
	"github.com/jonathan/resume-page/internal/fetch"
	"github.com/jonathan/resume-page/internal/formatting"
	"github.com/jonathan/resume-page/internal/observability"
	"github.com/jonathan/resume-page/internal/schemas"
	"github.com/spf13/cobra"
)

var validateSchema string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check content.json and print a summary",
	Long:  "Loads content.json, checks that the required info is present and prints the sections that would be rendered.",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Additional JSON schema to validate a local content file against")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{})
	if err != nil {
		return err
	}

	source := cfg.Content
	if source == "" {
		source = content.DefaultSource
	}

	if validateSchema != "" {
		if fetch.IsURL(source) {
			return fmt.Errorf("--schema requires a local content file, got %s", source)
		}
		if err := schemas.ValidateJSON(validateSchema, source); err != nil {
			return err
		}
	}

	doc, err := content.NewLoader(logger).Load(cmd.Context(), source)
	if err != nil {
		return err
	}

	fullName := formatting.NewFormatter(cfg.Locale).ComposeFullName(doc.Info.FullName)
	observability.NewPrinter(cmd.OutOrStdout()).PrintDocumentSummary(doc, fullName)
	return nil
}
