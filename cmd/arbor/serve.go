package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/arbor/internal/catalog"
	"github.com/fyrsmithlabs/arbor/internal/config"
	"github.com/fyrsmithlabs/arbor/internal/logging"
	"github.com/fyrsmithlabs/arbor/internal/server"
)

var serveConfigPath string

// serveCmd runs the HTTP query server over a catalog of manifests.
var serveCmd = &cobra.Command{
	Use:   "serve <manifest>...",
	Short: "Serve tree queries over HTTP",
	Long: `Load the given manifests into a catalog and serve metric and find
queries over HTTP. With server.watch enabled in the config, manifests are
reloaded when they change on disk.

Examples:
  arbor serve tree.yaml
  arbor serve --config arbor.yaml trees/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "config file (default: built-in defaults plus ARBOR_* env)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cat := catalog.New(logger, catalog.WithMaxDepth(cfg.Engine.MaxDepth))
	if cfg.Server.Watch {
		watcher, err := catalog.NewWatcher(cat, logger)
		if err != nil {
			return err
		}
		defer watcher.Close()
		for _, path := range args {
			if err := watcher.Watch(path); err != nil {
				return err
			}
		}
		watcher.Start()
	} else {
		for _, path := range args {
			if _, err := cat.LoadFile(path); err != nil {
				return err
			}
		}
	}

	srv, err := server.NewServer(cat, logger, &server.Config{
		Host:      cfg.Server.Host,
		Port:      cfg.Server.Port,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
