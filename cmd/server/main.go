package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrmushfiq/cloud-ide-server/internal/gateway/analytics"
	"github.com/mrmushfiq/cloud-ide-server/internal/gateway/cache"
	"github.com/mrmushfiq/cloud-ide-server/internal/gateway/generator"
	"github.com/mrmushfiq/cloud-ide-server/internal/gateway/handlers"
	"github.com/mrmushfiq/cloud-ide-server/internal/gateway/providers"
	"github.com/mrmushfiq/cloud-ide-server/internal/shared/config"
	"github.com/mrmushfiq/cloud-ide-server/internal/shared/database"
	"github.com/mrmushfiq/cloud-ide-server/internal/shared/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Starting Cloud IDE Server on port %s (env: %s)", cfg.Port, cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize provider registry
	providerMgr := providers.NewManager(cfg)
	logProviders(providerMgr)

	// Optional HTML cache. The server keeps running without it.
	var htmlCache generator.Cache
	if cfg.CacheActive() {
		redisClient, err := redis.New(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("Redis unavailable, caching disabled: %v", err)
		} else {
			defer redisClient.Close()
			htmlCache = cache.New(redisClient, cfg.CacheTTL())
			log.Println("✓ Connected to Redis (HTML cache enabled)")
		}
	}

	// Optional generation log
	var genLog handlers.GenerationLogger
	if cfg.DatabaseURL != "" {
		db, err := database.New(cfg.DatabaseURL)
		if err != nil {
			log.Printf("PostgreSQL unavailable, generation log disabled: %v", err)
		} else if err := db.EnsureSchema(ctx); err != nil {
			log.Printf("Generation log disabled: %v", err)
			db.Close()
		} else {
			defer db.Close()
			genLog = db
			log.Println("✓ Connected to PostgreSQL (generation log enabled)")
		}
	}

	recorder := analytics.New()
	gen := generator.New(providerMgr, htmlCache)

	// Initialize handlers
	siteHandler := handlers.NewSiteHandler(gen, providerMgr, recorder, genLog)
	statusHandler := handlers.NewStatusHandler(providerMgr, recorder)
	middleware := handlers.NewMiddleware(recorder)

	// HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlers.NewRouter(siteHandler, statusHandler, middleware),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("🚀 Server listening on http://localhost:%s", cfg.Port)
		log.Println("   POST /api/generate      - Generate a website from a description")
		log.Println("   POST /api/set-provider  - Switch the current provider")
		log.Println("   GET  /api/analytics     - Usage analytics")
		log.Println("   GET  /api/health        - Health check")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}

func logProviders(m *providers.Manager) {
	hasOpenAI := m.Has(providers.OpenAI)
	hasDeepSeek := m.Has(providers.DeepSeek)

	switch {
	case hasOpenAI && hasDeepSeek:
		log.Println("✓ LLM providers: OpenAI and DeepSeek enabled")
		log.Printf("   - current provider: %s", m.Current())
	case hasOpenAI:
		log.Printf("✓ LLM provider: %s enabled", m.DisplayName(providers.OpenAI))
	case hasDeepSeek:
		log.Printf("✓ LLM provider: %s enabled", m.DisplayName(providers.DeepSeek))
	default:
		log.Println("⚠ No LLM providers configured, using template fallback")
		log.Println("   Add OPENAI_API_KEY or DEEPSEEK_API_KEY to .env to enable AI generation")
	}
}
