package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-page/internal/config"
	"github.com/jonathan/resume-page/internal/content"
	"github.com/jonathan/resume-page/internal/rendering"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the résumé page to HTML",
	Long:  "Loads content.json (file or URL), fills the page template and writes the HTML to --out or stdout. Nothing is written when loading or rendering fails.",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Path to output HTML file (default: stdout)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{})
	if err != nil {
		return err
	}
	if renderOut != "" {
		cfg.Out = renderOut
	}

	html, err := renderPage(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if cfg.Out == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), html)
		return err
	}
	if err := os.WriteFile(cfg.Out, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("rendered page", zap.String("out", cfg.Out))
	return nil
}

// renderPage loads the configured content and renders it into the configured template.
func renderPage(ctx context.Context, cfg config.Config) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	template, err := readTemplate(cfg.Template)
	if err != nil {
		return "", err
	}

	doc, err := content.NewLoader(logger).Load(ctx, cfg.Content)
	if err != nil {
		return "", err
	}

	return rendering.RenderHTML(doc, template, rendering.Options{
		Locale: cfg.Locale,
		Dark:   cfg.Dark(),
		Logger: logger,
	})
}

func readTemplate(path string) ([]byte, error) {
	if path == "" {
		return rendering.DefaultTemplate(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return data, nil
}
