package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-page/internal/config"
	"github.com/jonathan/resume-page/internal/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	pdfOut       string
	pdfPageSize  string
	pdfMargin    string
	pdfLandscape bool
	pdfBrowser   string
)

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Render the résumé page and print it to PDF",
	Long:  "Renders the page like `render` and prints it with headless Chromium. Requires a local Chrome or Chromium.",
	RunE:  runExportPDF,
}

func init() {
	defaults := export.DefaultOptions()
	exportPDFCmd.Flags().StringVarP(&pdfOut, "out", "o", "", "Path to output PDF file (default \"resume.pdf\")")
	exportPDFCmd.Flags().StringVar(&pdfPageSize, "page-size", defaults.PageSize, "Paper size: A4, A5, LETTER or LEGAL; empty uses the page CSS")
	exportPDFCmd.Flags().StringVar(&pdfMargin, "margin", defaults.Margin, "Margin on every side, e.g. 0.5in or 12mm")
	exportPDFCmd.Flags().BoolVar(&pdfLandscape, "landscape", false, "Print in landscape orientation")
	exportPDFCmd.Flags().StringVar(&pdfBrowser, "browser", "", "Path to the Chrome or Chromium executable")
	rootCmd.AddCommand(exportPDFCmd)
}

func runExportPDF(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{PDFOut: "resume.pdf"})
	if err != nil {
		return err
	}
	if pdfOut != "" {
		cfg.PDFOut = pdfOut
	}

	html, err := renderPage(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	exporter := export.NewExporter(logger)
	exporter.BrowserPath = pdfBrowser
	defer exporter.Close()

	opts := export.DefaultOptions()
	opts.PageSize = pdfPageSize
	opts.Margin = pdfMargin
	opts.Landscape = pdfLandscape

	pdf, err := exporter.PDF(cmd.Context(), html, opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.PDFOut, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("exported pdf", zap.String("out", cfg.PDFOut), zap.Int("bytes", len(pdf)))
	return nil
}
