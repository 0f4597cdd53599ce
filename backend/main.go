package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", os.Getenv("GOMOKU_CONFIG"), "path to a config file (yaml, json or toml)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gomoku: %v\n", err)
		os.Exit(1)
	}
	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gomoku: %v\n", err)
		os.Exit(1)
	}

	runErr := run(cfg, logger)
	_ = logger.Sync()
	if runErr != nil {
		os.Exit(1)
	}
}

func run(cfg Config, log *zap.SugaredLogger) error {
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	controller, err := NewGameController(cfg.GameSettings(), log)
	if err != nil {
		return err
	}
	hub := NewHub()
	go hub.Run(sigCtx.Done())

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           NewServer(controller, hub, log).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	log.Infow("backend listening", "addr", cfg.ListenAddr, "board_size", cfg.BoardSize, "stop_on_win", cfg.StopOnWin)
	var runErr error
	select {
	case <-sigCtx.Done():
		log.Infow("shutdown signal received", "reason", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			log.Errorw("server error", "error", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Warnw("graceful shutdown failed", "error", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Warnw("forced close failed", "error", closeErr)
		}
	}
	return runErr
}
