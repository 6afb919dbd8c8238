package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hellno/tiny-slither/internal/config"
	"github.com/hellno/tiny-slither/internal/preview"
)

var (
	flagHTTPAddr      string
	flagPreviewConfig string
	flagPreviewOut    string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve the social preview image over HTTP",
	Long: `Render the project's 1200x800 social preview card and serve it as
PNG over HTTP, or write it to a file with --out.

Examples:
  slither preview                      # Serve on :8080
  slither preview --http :9000         # Serve on port 9000
  slither preview --out preview.png    # Write the image and exit`,
	Args: cobra.NoArgs,
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP server address (host:port)")
	previewCmd.Flags().StringVar(&flagPreviewConfig, "config", "", "Path to custom config YAML")
	previewCmd.Flags().StringVar(&flagPreviewOut, "out", "", "Write the PNG to this path instead of serving")
}

func runPreview(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "slither-preview",
	})

	cfg, err := config.Load(flagPreviewConfig)
	if err != nil {
		logger.Warn("Could not load config, using defaults", "error", err)
		cfg = config.Default()
	}

	renderer := preview.NewRenderer(cfg.Preview)

	if flagPreviewOut != "" {
		data, renderErr := renderer.Render()
		if renderErr != nil {
			fmt.Fprintf(os.Stderr, "Error rendering preview: %v\n", renderErr)
			os.Exit(1)
		}
		if writeErr := os.WriteFile(flagPreviewOut, data, 0o644); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", flagPreviewOut, writeErr)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%d bytes)\n", flagPreviewOut, len(data))
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/preview.png", preview.NewHandler(renderer, logger))
	mux.Handle("/", http.RedirectHandler("/preview.png", http.StatusFound))

	server := &http.Server{
		Addr:              flagHTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Serving preview image", "address", flagHTTPAddr, "path", "/preview.png")
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", "error", serveErr)
		}
	}()

	<-done
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if shutdownErr := server.Shutdown(ctx); shutdownErr != nil {
		logger.Error("Shutdown error", "error", shutdownErr)
	}
}
