package bootstrap

import (
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/genzet/journal-ui/config"
	"github.com/genzet/journal-ui/internal/adapters/contentapi"
	"github.com/genzet/journal-ui/internal/adapters/memory"
	redisadapter "github.com/genzet/journal-ui/internal/adapters/redis"
	"github.com/genzet/journal-ui/internal/data"
	"github.com/genzet/journal-ui/internal/ports"
	"github.com/genzet/journal-ui/internal/service"
)

// ServiceContainer holds the application services built at startup.
type ServiceContainer struct {
	Articles   *service.ArticleService
	Categories *service.CategoryService
	Auth       *service.AuthService
}

// ServiceDeps bundles the dependencies NewServices needs.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient goredis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires adapters and services from configuration. The Redis
// client may be nil when the memory session store is selected; the category
// cache is then skipped as well.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	cfg := deps.Config

	client, err := contentapi.NewClient(contentapi.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Logger:  deps.Logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build content api client: %w", err)
	}

	sessions, err := buildSessionStore(deps)
	if err != nil {
		return ServiceContainer{}, err
	}

	var cache ports.CacheRepository
	if deps.RedisClient != nil {
		cache = data.NewRedisCacheRepo(deps.RedisClient)
	}

	return ServiceContainer{
		Articles: service.NewArticleService(client, deps.Logger),
		Categories: service.NewCategoryService(service.CategoryServiceOptions{
			Content: client,
			Cache:   cache,
			TTL:     cfg.API.CategoryTTL,
			Logger:  deps.Logger,
		}),
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Provider:   client,
			Sessions:   sessions,
			SessionTTL: cfg.Session.TTL,
			Logger:     deps.Logger,
		}),
	}, nil
}

//nolint:ireturn // store backend is selected at runtime from config.
func buildSessionStore(deps *ServiceDeps) (ports.SessionStore, error) {
	switch deps.Config.Session.Store {
	case "memory":
		return memory.NewSessionStore(), nil
	default:
		if deps.RedisClient == nil {
			return nil, fmt.Errorf("session store %q requires a redis connection", deps.Config.Session.Store)
		}
		return redisadapter.NewSessionStore(deps.RedisClient, deps.Logger), nil
	}
}
