package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"markethub-be/internal/bootstrap"
	"markethub-be/internal/config"
	"markethub-be/internal/server"
	"markethub-be/internal/tracer"
	"markethub-be/pkg/database"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer shutdownTracer(context.Background())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Initialize Database (optional)
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, !cfg.IsProduction())
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(ctx, gormDB, cfg)
	if err != nil {
		log.Panicf("Unable to build container: %v", err)
	}
	defer container.Close()

	if err := container.NotificationService.Start(ctx); err != nil {
		log.Printf("[WARN] Notifications disabled: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Supervise background services and the server together
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		container.WebSocketHub.Run(gctx)
		return nil
	})
	g.Go(func() error {
		log.Println("Background: Starting Consumer Service...")
		return container.ConsumerService.Consume(gctx)
	})
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down...")
		return srv.Shutdown()
	})

	if err := g.Wait(); err != nil {
		log.Printf("[ERROR] %v", err)
	}
}
