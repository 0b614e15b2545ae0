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
	"golang.org/x/sync/errgroup"

	"github.com/adfharrison1/go-items/pkg/server"
	"github.com/adfharrison1/go-items/pkg/storage"
)

var (
	port           string
	dataFile       string
	backgroundSave time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the items HTTP API",
	Long: `Run the items HTTP API.

Items are loaded from the data file at startup and saved after every write.
With --background-save the store is instead saved on an interval and on shutdown.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "server port (overrides server.port)")
	serveCmd.Flags().StringVar(&dataFile, "data-file", "", "snapshot file (overrides storage.data_file)")
	serveCmd.Flags().DurationVar(&backgroundSave, "background-save", 0, "background save interval, e.g. 30s (overrides storage.background_save)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Server.Port = port
	}
	if dataFile != "" {
		cfg.Storage.DataFile = dataFile
	}
	if backgroundSave > 0 {
		cfg.Storage.BackgroundSave = backgroundSave
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	storageOptions := []storage.StorageOption{storage.WithDataFile(cfg.Storage.DataFile)}
	if cfg.Storage.BackgroundSave > 0 {
		storageOptions = append(storageOptions, storage.WithBackgroundSave(cfg.Storage.BackgroundSave))
		logger.Info("Background save enabled", zap.Duration("interval", cfg.Storage.BackgroundSave))
	} else {
		storageOptions = append(storageOptions, storage.WithTransactionSave(cfg.Storage.TransactionSave))
		if !cfg.Storage.TransactionSave {
			logger.Warn("Background and transaction saves disabled - data only saved on graceful shutdown")
		}
	}

	srv := server.NewServer(server.Options{
		Logger:      logger,
		ViewDefault: cfg.DefaultView(),
		MaxPageSize: cfg.View.MaxPageSize,
		Storage:     storageOptions,
	})
	if err := srv.InitDB(cfg.Storage.DataFile); err != nil {
		return err
	}
	srv.StartBackgroundWorkers()
	defer srv.StopBackgroundWorkers()

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting go-items server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	serveErr := g.Wait()

	// Save after requests have drained so no write is lost
	saveErr := srv.SaveDB(cfg.Storage.DataFile)

	if serveErr != nil {
		return serveErr
	}
	if saveErr != nil {
		return saveErr
	}
	logger.Info("Server exited")
	return nil
}
