package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/web"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/catalog"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/config"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/dashboard"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/database"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/repository"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/scheduler"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/service"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	fundRepo := repository.NewFundRepository(catalog.Funds())
	preferenceRepo := repository.NewPreferenceRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	fundService := service.NewFundService(fundRepo)
	preferenceService := service.NewPreferenceService(preferenceRepo)

	// Session sealing key
	sessionKey := cfg.Session.Key
	if sessionKey == "" {
		sessionKey, err = session.GenerateKey()
		if err != nil {
			log.Fatalf("Failed to generate session key: %v", err)
		}
		log.Println("SESSION_KEY not set, generated a temporary key; sessions will not survive a restart")
	}
	codec, err := session.NewCodec(cfg.Session.CookieName, cfg.Session.MaxAge, sessionKey)
	if err != nil {
		log.Fatalf("Failed to create session codec: %v", err)
	}

	// One dashboard per client
	registry := session.NewRegistry(func(clientID string, guard sync.Locker) (*dashboard.Controller, *dashboard.Document) {
		doc := dashboard.NewDocument(cfg.Dashboard.ChartContainerWidth, cfg.Dashboard.DefaultViewport)
		opts := dashboard.Options{
			ScrollBreakpoint: cfg.Dashboard.ScrollBreakpoint,
			ScrollDelay:      cfg.Dashboard.ScrollDelay,
			Guard:            guard,
		}
		return dashboard.NewController(fundService, preferenceService.ThemeStore(clientID), doc, opts), doc
	})
	defer registry.Close()

	templates, err := web.Templates()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	// Create router
	router := api.NewRouter(api.Dependencies{
		SystemService: systemService,
		FundService:   fundService,
		Codec:         codec,
		Sessions:      registry,
		Templates:     templates,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	maintenance, err := scheduler.New(scheduler.Config{
		Schedule:            cfg.Maintenance.Schedule,
		SessionIdleTimeout:  cfg.Session.IdleTimeout,
		PreferenceRetention: cfg.Maintenance.PreferenceRetention,
	}, registry, preferenceService)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Wait for interrupt signal for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return maintenance.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("Server stopped with error: %v", err)
		return
	}

	log.Println("Server exited")
}
