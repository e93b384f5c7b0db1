package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/genzet/journal-ui/internal/domain/model"
	"github.com/genzet/journal-ui/internal/ports"
)

const categoryCacheKey = "categories:all"

// CategoryServiceOptions bundles dependencies for NewCategoryService.
type CategoryServiceOptions struct {
	Content ports.ContentClient
	Cache   ports.CacheRepository
	TTL     time.Duration
	Logger  *slog.Logger
}

// CategoryService serves the category list. Categories are assumed stable
// for a browsing session, so the list is cached with a TTL and concurrent
// cache misses collapse into a single upstream fetch.
type CategoryService struct {
	content ports.ContentClient
	cache   ports.CacheRepository
	ttl     time.Duration
	group   singleflight.Group
	logger  *slog.Logger
}

// NewCategoryService constructs a CategoryService. Cache may be nil, in
// which case every call goes upstream (still coalesced).
func NewCategoryService(opts CategoryServiceOptions) *CategoryService {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CategoryService{
		content: opts.Content,
		cache:   opts.Cache,
		ttl:     ttl,
		logger:  opts.Logger,
	}
}

func (s *CategoryService) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// List returns the category list, from cache when fresh.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	v, err, _ := s.group.Do(categoryCacheKey, func() (any, error) {
		categories, fetchErr := s.content.Categories(ctx)
		if fetchErr != nil {
			return nil, fetchErr
		}
		s.store(ctx, categories)
		return categories, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories, ok := v.([]model.Category)
	if !ok {
		return nil, fmt.Errorf("list categories: unexpected result type %T", v)
	}
	return categories, nil
}

// Invalidate drops the cached category list.
func (s *CategoryService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Delete(ctx, categoryCacheKey); err != nil {
		s.log().WarnContext(ctx, "invalidate category cache failed", slog.Any("error", err))
	}
}

func (s *CategoryService) fromCache(ctx context.Context) []model.Category {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, categoryCacheKey)
	if err != nil {
		s.log().WarnContext(ctx, "category cache read failed", slog.Any("error", err))
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	var categories []model.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		// Corrupt cache entries are dropped and refetched, never surfaced.
		s.log().WarnContext(ctx, "discarding corrupt category cache entry", slog.Any("error", err))
		s.Invalidate(ctx)
		return nil
	}
	return categories
}

func (s *CategoryService) store(ctx context.Context, categories []model.Category) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(categories)
	if err != nil {
		s.log().WarnContext(ctx, "encode category cache entry failed", slog.Any("error", err))
		return
	}
	if err := s.cache.Set(ctx, categoryCacheKey, raw, s.ttl); err != nil {
		s.log().WarnContext(ctx, "category cache write failed", slog.Any("error", err))
	}
}
