package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jonathan/resume-page/internal/config"
	"github.com/jonathan/resume-page/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the résumé page over HTTP",
	Long:  "Starts an HTTP server that renders a fresh page from content.json on every request to /.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default: $PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serveConfig()
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:     cfg.Port,
		Content:  cfg.Content,
		Template: cfg.Template,
		Locale:   cfg.Locale,
		Dark:     cfg.Dark(),
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

// serveConfig resolves flags, then the config file, then PORT and RESUME_CONTENT.
func serveConfig() (config.Config, error) {
	fallback := config.Config{Content: os.Getenv("RESUME_CONTENT")}
	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn("ignoring invalid PORT", zap.String("value", raw))
		} else {
			fallback.Port = port
		}
	}

	cfg, err := resolveConfig(fallback)
	if err != nil {
		return config.Config{}, err
	}
	if servePort != 0 {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}
