package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/infogenie/infogenie-go/internal/adapters/backend"
	"github.com/infogenie/infogenie-go/internal/adapters/filewatcher"
	"github.com/infogenie/infogenie-go/internal/adapters/loader"
	"github.com/infogenie/infogenie-go/internal/config"
	"github.com/infogenie/infogenie-go/internal/domain/entities"
	"github.com/infogenie/infogenie-go/internal/domain/usecases"
	"github.com/infogenie/infogenie-go/internal/infrastructure/console"
)

func main() {
	cfg := config.Load()

	var (
		baseURL   string
		uploadURL string
		timeout   int
		watchDir  string
		verbose   bool
	)

	rootCmd := &cobra.Command{
		Use:   "infogenie",
		Short: "Chat with your PDF documents from the terminal",
		Long: `InfoGenie is a terminal client for a document question-answering backend.
Upload a PDF, then ask natural-language questions about its content.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			logger, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer logger.Sync()

			client := backend.NewClient(baseURL, uploadURL, time.Duration(timeout)*time.Second)
			log := entities.NewMessageLog()
			pipeline := usecases.NewRequestPipeline(client, log)
			conv := usecases.NewConversation(pipeline, log)

			ui := console.New(conv, log, loader.NewLocalLoader(), logger)
			ui.Health = client

			if watchDir != "" {
				watcher, err := filewatcher.NewDropWatcher(nil, logger)
				if err != nil {
					return fmt.Errorf("initializing file watcher: %w", err)
				}
				defer watcher.Stop()
				ui.Watcher = watcher
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("client starting",
				zap.String("baseURL", baseURL),
				zap.String("uploadURL", uploadURL),
				zap.String("watchDir", watchDir))
			return ui.Run(ctx, watchDir)
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().StringVar(&baseURL, "base-url", cfg.BaseURL, "backend base URL for questions")
	rootCmd.Flags().StringVar(&uploadURL, "upload-url", cfg.UploadBaseURL, "backend base URL for uploads (defaults to the question base)")
	rootCmd.Flags().IntVar(&timeout, "timeout", int(cfg.RequestTimeout/time.Second), "request timeout in seconds")
	rootCmd.Flags().StringVar(&watchDir, "watch", cfg.WatchDir, "directory to watch for new PDFs to auto-upload")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
