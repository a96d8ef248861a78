package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"skillswap/cfg"
	"skillswap/internal/service/auth"
	"skillswap/internal/service/matching"
	"skillswap/internal/service/profile"
	"skillswap/pkg/cache"
	"skillswap/pkg/db"
	"skillswap/pkg/logger"
	"skillswap/pkg/validation"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Server holds all application dependencies
type Server struct {
	config   *cfg.Config
	router   *gin.Engine
	http     *http.Server
	logger   *logger.AppLogger
	db       *db.SQLClient
	cache    *cache.RedisCache
	shutdown func(context.Context) error

	// internal service
	authService     *auth.Service
	profileService  *profile.Service
	matchingService *matching.Service
}

// NewServer creates and initializes a new server instance
func NewServer(ctx context.Context, config *cfg.Config) (*Server, error) {
	s := &Server{
		config: config,
	}

	shutdown, err := setupObservability(ctx, &config.Observability)
	if err != nil {
		return nil, fmt.Errorf("observability setup: %w", err)
	}
	s.shutdown = shutdown

	s.logger = logger.NewLogger(config.AppEnv)
	s.logger.Info(ctx, "Initializing server...")

	if err := validation.RegisterGin(); err != nil {
		return nil, fmt.Errorf("validation init: %w", err)
	}

	if err := s.initDatabase(); err != nil {
		return nil, fmt.Errorf("database init: %w", err)
	}

	s.initCache()

	if err := s.initServicesAndRoutes(); err != nil {
		return nil, fmt.Errorf("routes init: %w", err)
	}

	s.logger.Info(ctx, "Server initialized successfully")
	return s, nil
}

func (s *Server) initDatabase() error {
	dsn := s.config.Postgres.DSN()

	dbClient, err := db.NewSQLClient("postgres", dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	s.db = dbClient

	if err := RunMigrations(dsn); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	return nil
}

func (s *Server) initCache() {
	s.cache = cache.NewRedisCache(s.config.Redis.Addr())
}

// MatchingWeights converts the configured weights for the engine.
func MatchingWeights(m cfg.MatchingConfig) matching.Weights {
	w := matching.DefaultWeights()
	w.Skill = m.WeightSkill
	w.Availability = m.WeightAvailability
	w.Location = m.WeightLocation
	w.Reputation = m.WeightReputation
	return w
}

func (s *Server) initServicesAndRoutes() error {
	mc := s.config.Matching

	weights := MatchingWeights(mc)
	if err := weights.Validate(); err != nil {
		return err
	}

	s.authService = auth.NewService(s.config.Auth.JWTSecret, s.config.Auth.TokenTTL)

	// Profile store
	profileRepo := profile.NewRepository(s.db)
	s.profileService = profile.NewService(profileRepo, s.cache, mc.ProfileCacheTTL, s.logger)

	// Matching engine
	engine := matching.NewEngine(
		matching.WithWeights(weights),
		matching.WithWorkers(mc.Workers),
		matching.WithParallelThreshold(mc.ParallelThreshold),
	)
	metrics := matching.NewMetrics(prometheus.DefaultRegisterer)
	s.matchingService = matching.NewService(s.profileService, engine, metrics, s.logger, matching.Config{
		MaxCandidates: mc.MaxCandidates,
		Timeout:       mc.Timeout,
	})

	node, err := snowflake.NewNode(1)
	if err != nil {
		return fmt.Errorf("snowflake node: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(node), accessLog(s.logger))
	routes := NewRoutes(r)
	routes.setupInfraRoutes(map[string]pinger{
		"postgres": s.db.PingContext,
		"redis":    s.cache.Ping,
	})
	// Business logic endpoints
	authHandler := auth.NewHandler(s.authService)
	routes.setupProfileRoutes(authHandler, s.profileService)
	routes.setupMatchingRoutes(authHandler, s.matchingService)

	s.router = r
	return nil
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Server listening", logger.Field{Key: "addr", Value: addr})
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		return nil
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
	}
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cache close: %w", err))
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("db close: %w", err))
		}
	}
	if s.shutdown != nil {
		if err := s.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("observability shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}
