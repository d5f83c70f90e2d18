package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealership/internal/config"
	"dealership/internal/domain"
	"dealership/internal/http/handlers"
	applog "dealership/internal/log"
	"dealership/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	vehicles, err := repos.LoadVehicles(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	applog.Info(nil, "catalog.load", map[string]any{"vehicles": vehicles.Len()})

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	deps := handlers.NewDeps(db, vehicles)
	cancel := deps.FavoritesSvc.Subscribe(func(ev domain.FavoriteEvent) {
		applog.Info(nil, "favorites.changed", map[string]any{"kind": ev.Kind, "vehicle": ev.Slug})
	})
	defer cancel()

	app := handlers.NewApp(cfg, deps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Println("[server] shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("[server] shutdown: %v", err)
		}
	}()

	log.Printf("[server] listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
