package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/cricket-pool/internal/app"
	"github.com/riskibarqy/cricket-pool/internal/config"
	"github.com/riskibarqy/cricket-pool/internal/observability"
	"github.com/riskibarqy/cricket-pool/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Default().Error("api exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer logger.Sync() //nolint:errcheck

	uptraceShutdown, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return err
	}
	pyroscopeStop, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return err
	}
	pprofServer, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		logger.Info("http server starting", "addr", application.Server.Addr, "env", cfg.AppEnv)
		if err := application.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	})

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	wg.Wait()

	if err := application.Close(shutdownCtx); err != nil {
		logger.Error("app close failed", "error", err)
	}

	if err := observability.StopPprofServer(pprofServer, logger, shutdownTimeout); err != nil {
		logger.Error("pprof shutdown failed", "error", err)
	}
	if err := pyroscopeStop(); err != nil {
		logger.Error("pyroscope stop failed", "error", err)
	}
	if err := uptraceShutdown(shutdownCtx); err != nil {
		logger.Error("uptrace shutdown failed", "error", err)
	}

	logger.Info("api stopped")

	return nil
}
