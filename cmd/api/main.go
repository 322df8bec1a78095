package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/cutcorp-booking/internal/audit"
	"github.com/BruksfildServices01/cutcorp-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/cutcorp-booking/internal/db"
	"github.com/BruksfildServices01/cutcorp-booking/internal/infra/cache"
	"github.com/BruksfildServices01/cutcorp-booking/internal/links"
	"github.com/BruksfildServices01/cutcorp-booking/internal/logger"
	"github.com/BruksfildServices01/cutcorp-booking/internal/metrics"
	"github.com/BruksfildServices01/cutcorp-booking/internal/middleware"
	"github.com/BruksfildServices01/cutcorp-booking/internal/routes"
	"github.com/BruksfildServices01/cutcorp-booking/internal/timezone"
	"github.com/BruksfildServices01/cutcorp-booking/internal/validators"
)

func main() {

	cfg := config.Load()
	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "cutcorp-booking",
	})

	if !timezone.IsValid(cfg.ShopTimezone) {
		log.Fatal("invalid SHOP_TIMEZONE", "timezone", cfg.ShopTimezone)
	}
	if err := validators.Register(); err != nil {
		log.Fatal("failed to register validators", "error", err)
	}

	db := dbpkg.NewDB(cfg, log)
	appCache := newCache(cfg, log)

	dispatcher := audit.NewDispatcher(audit.NewGormSink(db), log)
	defer dispatcher.Close()

	m := metrics.New()
	shop := links.Shop{Name: cfg.ShopName, Address: cfg.ShopAddress, WhatsApp: cfg.ShopWhatsApp}

	r := gin.New()
	r.Use(
		middleware.Recovery(log, shop.Support()),
		middleware.RequestLogger(log),
		middleware.CORSMiddleware(cfg.CORSOrigins...),
		m.Middleware(),
	)

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Cache:   appCache,
		Audit:   dispatcher,
		Metrics: m,
		Log:     log,
		Config:  cfg,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

// newCache uses Redis when REDIS_ADDR is set and reachable, the
// in-process cache otherwise.
func newCache(cfg *config.Config, log *logger.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		log.Info("cache: in-memory")
		return cache.NewMemory()
	}

	rc := cache.NewRedis(redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		log.Warn("cache: redis unreachable, falling back to in-memory", "addr", cfg.RedisAddr, "error", err)
		return cache.NewMemory()
	}

	log.Info("cache: redis", "addr", cfg.RedisAddr)
	return rc
}
