// Command planner-server exposes the Query Facade (§4.6) as a JSON HTTP
// API: plan a route, compute isochrone times from an origin, and band
// those times the way the original Flask map pages did, wiring
// config+ingest+cache+planner (SPEC_FULL.md's MODULE LAYOUT).
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jheitmann/robust-journey-planner/cache"
	"github.com/jheitmann/robust-journey-planner/config"
	"github.com/jheitmann/robust-journey-planner/ingest"
	"github.com/jheitmann/robust-journey-planner/internal/httpapi"
	"github.com/jheitmann/robust-journey-planner/planner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	pgPool, err := newPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("failed to connect to PostgreSQL: %v", err)
	}
	defer pgPool.Close()
	log.Println("postgres connected")

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("redis connected")

	store, err := ingest.LoadStore(ctx, pgPool)
	if err != nil {
		log.Fatalf("failed to load timetable: %v", err)
	}
	log.Printf("timetable loaded: %d stations, %d connections", store.NStations(), len(store.Connections()))

	p := planner.New(store)
	planCache := cache.NewPlanCache(redisClient, cfg.Planner.CacheTTL)
	handler := httpapi.New(p, planCache)

	router := mux.NewRouter()
	router.HandleFunc("/health", httpapi.Health(map[string]func(ctx context.Context) error{
		"postgres": func(ctx context.Context) error { return pgPool.Ping(ctx) },
		"redis":    func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
	})).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/plan", handler.PlanRoute).Methods(http.MethodGet)
	api.HandleFunc("/times", handler.Times).Methods(http.MethodGet)
	api.HandleFunc("/isochrone", handler.Isochrone).Methods(http.MethodGet)

	wrapped := httpapi.RequestLogger(httpapi.Recoverer(router))

	srv := &http.Server{
		Addr:         cfg.Server.ServerAddr(),
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("planner-server listening on %s", cfg.Server.ServerAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	log.Println("server gracefully stopped")
}

func newPostgresPool(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
