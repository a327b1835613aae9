package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asciidraw/config"
	"asciidraw/logging"
	"asciidraw/persist"
	"asciidraw/server"
)

// ============================================================
// Document Service
// ============================================================

func main() {
	cfg := config.Load()
	level := cfg.LogLevel
	if level == "off" {
		level = "info"
	}
	logging.Configure(os.Stderr, level)
	log := logging.Logger()

	kv, err := persist.Open(cfg.Backend, cfg.StoragePath())
	if err != nil {
		log.Error("open storage failed", "backend", cfg.Backend, "path", cfg.StoragePath(), "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	srv := server.New(kv, server.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		RequestLog:   level == "debug",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting document service", "addr", cfg.Addr, "backend", cfg.Backend)
		errCh <- srv.Listen(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		done := make(chan error, 1)
		go func() { done <- srv.Shutdown() }()
		select {
		case err := <-done:
			if err != nil {
				log.Error("shutdown failed", "error", err)
			}
		case <-time.After(5 * time.Second):
			log.Warn("shutdown timed out")
		}
	}
}
