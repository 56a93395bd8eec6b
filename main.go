// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/pulse-compare/cliparse"
	"github.com/danielhkuo/pulse-compare/db"
	"github.com/danielhkuo/pulse-compare/middleware"
	"github.com/danielhkuo/pulse-compare/router"
	"github.com/danielhkuo/pulse-compare/survey"
)

const shutdownTimeout = 5 * time.Second

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	if err := cliparse.SetupLogging(cfg); err != nil {
		slog.Error("Error configuring logging", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if cfg.Import {
		if err := importCSV(ctx, cfg); err != nil {
			slog.Error("import failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Load the survey once; it is read-only from here on
	store, err := loadSurvey(ctx, cfg)
	if err != nil {
		slog.Error("survey load failed", "error", err)
		os.Exit(1)
	}
	logSurvey(store)

	// Create router
	mux := router.NewRouter(store, cfg)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "url", "http://localhost:"+strconv.Itoa(cfg.Port)+"/")
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// importCSV copies the CSV survey into the configured database
func importCSV(ctx context.Context, cfg cliparse.Config) error {
	store, err := survey.LoadFile(cfg.CSVPath, cfg.MajorRegions)
	if err != nil {
		return err
	}
	logSurvey(store)

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.CreateSchema(conn); err != nil {
		return err
	}
	if err := db.ImportStore(ctx, conn, store); err != nil {
		return err
	}

	slog.Info("survey imported",
		"type", cfg.DatabaseType,
		"candidates", humanize.Comma(int64(store.Len())),
	)
	return nil
}

// loadSurvey reads the survey from the database when one is configured,
// otherwise from the CSV file
func loadSurvey(ctx context.Context, cfg cliparse.Config) (*survey.Store, error) {
	if !cfg.UseDatabase() {
		return survey.LoadFile(cfg.CSVPath, cfg.MajorRegions)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := db.CreateSchema(conn); err != nil {
		return nil, err
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	return db.LoadStore(ctx, conn, cfg.DatabaseType+" database", cfg.MajorRegions)
}

func logSurvey(store *survey.Store) {
	regions := store.Regions()
	attrs := []any{
		"source", store.Source(),
		"candidates", humanize.Comma(int64(store.Len())),
		"major_regions", len(regions.Major),
		"detailed_regions", len(regions.Detailed),
	}
	if size := store.SizeBytes(); size > 0 {
		attrs = append(attrs, "size", humanize.Bytes(uint64(size)))
	}
	slog.Info("survey loaded", attrs...)

	if dups := store.Duplicates(); len(dups) > 0 {
		slog.Warn("duplicate candidate names; first row wins", "names", dups)
	}
}
