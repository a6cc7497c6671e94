package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/planforge/internal/config"
	"github.com/claude/planforge/internal/mcp"
	"github.com/claude/planforge/internal/program"
	"github.com/claude/planforge/internal/server"
	"github.com/claude/planforge/internal/storage"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("PlanForge starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Run migrations
	dsn := cfg.Database.DSN()
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	// Connect database
	ctx := context.Background()
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	// Load program catalog
	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.Error("failed to load program catalog", "error", err)
		os.Exit(1)
	}
	log.Info("program loaded", "weeks", len(catalog.Weeks), "race_week", catalog.RaceWeek)

	startDate, raceDate, err := cfg.Plan.Dates()
	if err != nil {
		log.Error("invalid plan dates", "error", err)
		os.Exit(1)
	}

	// Create server
	plan := server.PlanSettings{StartDate: startDate, RaceDate: raceDate}
	srv := server.New(db, catalog, plan, cfg.Auth.APIKey, log)

	// Mount MCP transport
	mcpSrv := mcp.New(db, catalog, Version, log)
	srv.SetMCP(mcpserver.NewStreamableHTTPServer(mcpSrv))

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

// loadCatalog returns the configured program: a YAML catalog when
// plan.catalog_path is set, the built-in ten-week program otherwise.
// plan.race_week overrides the catalog's own taper week.
func loadCatalog(cfg *config.Config) (*program.Catalog, error) {
	catalog := program.Default()
	if cfg.Plan.CatalogPath != "" {
		var err error
		catalog, err = program.Load(cfg.Plan.CatalogPath)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Plan.RaceWeek != 0 {
		catalog.RaceWeek = cfg.Plan.RaceWeek
	}
	return catalog, nil
}
