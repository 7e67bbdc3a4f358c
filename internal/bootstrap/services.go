package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/espacosmart/portal-cliente/config"
	"github.com/espacosmart/portal-cliente/internal/backend"
	"github.com/espacosmart/portal-cliente/internal/cache"
	"github.com/espacosmart/portal-cliente/internal/session"
	"github.com/espacosmart/portal-cliente/internal/token"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Resolver *session.Resolver
	Backend  *backend.Client
	Cache    *cache.Repo
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires the session resolver, backend client, and lookup cache.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	cfg := deps.Config

	codec, err := token.NewCodec(cfg.Session.JWTSecret)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create token codec: %w", err)
	}

	resolver := session.NewResolver(codec, session.Config{
		CookieName:   cfg.Session.CookieName,
		CookieDomain: cfg.Session.CookieDomain,
		Secure:       !cfg.IsDev,
	})

	client := backend.NewClient(backend.Options{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Logger:  deps.Logger,
	})

	return ServiceContainer{
		Resolver: resolver,
		Backend:  client,
		Cache:    cache.New(deps.RedisClient),
	}, nil
}

// ConnectRedis establishes a connection to Redis. An empty address means the
// lookup cache is disabled and a nil client is returned.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support flexible.
func ConnectRedis(cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	if cfg.Addr == "" {
		if logger != nil {
			logger.Info("redis not configured, lookup cache disabled")
		}
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if logger != nil {
		logger.Info("redis connected", "addr", cfg.Addr)
	}

	return client, nil
}
