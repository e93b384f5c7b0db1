package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/genzet/journal-ui/internal/domain/model"
	"github.com/genzet/journal-ui/internal/mocks"
)

func newCategoryService(t *testing.T) (*CategoryService, *mocks.MockContentClient, *mocks.MockCacheRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	content := mocks.NewMockContentClient(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	svc := NewCategoryService(CategoryServiceOptions{
		Content: content,
		Cache:   cache,
		TTL:     5 * time.Minute,
	})
	return svc, content, cache
}

var testCategories = []model.Category{
	{ID: "cat-1", Name: "Tech"},
	{ID: "cat-2", Name: "Design"},
}

func TestCategoryService_List_CacheMiss(t *testing.T) {
	svc, content, cache := newCategoryService(t)
	ctx := context.Background()

	cache.EXPECT().Get(gomock.Any(), categoryCacheKey).Return(nil, nil)
	content.EXPECT().Categories(gomock.Any()).Return(testCategories, nil)
	cache.EXPECT().
		Set(gomock.Any(), categoryCacheKey, gomock.Any(), 5*time.Minute).
		DoAndReturn(func(_ context.Context, _ string, value []byte, _ time.Duration) error {
			var stored []model.Category
			require.NoError(t, json.Unmarshal(value, &stored))
			assert.Equal(t, testCategories, stored)
			return nil
		})

	categories, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, testCategories, categories)
}

func TestCategoryService_List_CacheHit(t *testing.T) {
	svc, _, cache := newCategoryService(t)
	ctx := context.Background()

	raw, err := json.Marshal(testCategories)
	require.NoError(t, err)
	// No Categories expectation: a fresh cache entry must not go upstream.
	cache.EXPECT().Get(gomock.Any(), categoryCacheKey).Return(raw, nil)

	categories, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, testCategories, categories)
}

func TestCategoryService_List_CorruptCacheRefetches(t *testing.T) {
	svc, content, cache := newCategoryService(t)
	ctx := context.Background()

	cache.EXPECT().Get(gomock.Any(), categoryCacheKey).Return([]byte("{not json"), nil)
	cache.EXPECT().Delete(gomock.Any(), categoryCacheKey).Return(true, nil)
	content.EXPECT().Categories(gomock.Any()).Return(testCategories, nil)
	cache.EXPECT().Set(gomock.Any(), categoryCacheKey, gomock.Any(), gomock.Any()).Return(nil)

	categories, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, testCategories, categories)
}

func TestCategoryService_List_CacheReadFailureFallsThrough(t *testing.T) {
	svc, content, cache := newCategoryService(t)
	ctx := context.Background()

	cache.EXPECT().Get(gomock.Any(), categoryCacheKey).Return(nil, errors.New("redis down"))
	content.EXPECT().Categories(gomock.Any()).Return(testCategories, nil)
	cache.EXPECT().Set(gomock.Any(), categoryCacheKey, gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	// Cache failures degrade to an upstream fetch; the write failure is
	// logged and swallowed.
	categories, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, testCategories, categories)
}

func TestCategoryService_List_UpstreamFailure(t *testing.T) {
	svc, content, cache := newCategoryService(t)
	ctx := context.Background()

	cache.EXPECT().Get(gomock.Any(), categoryCacheKey).Return(nil, nil)
	content.EXPECT().Categories(gomock.Any()).Return(nil, errors.New("boom"))

	categories, err := svc.List(ctx)

	assert.Nil(t, categories)
	assert.Error(t, err)
}

func TestCategoryService_List_NilCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	content := mocks.NewMockContentClient(ctrl)
	svc := NewCategoryService(CategoryServiceOptions{Content: content})

	content.EXPECT().Categories(gomock.Any()).Return(testCategories, nil)

	categories, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testCategories, categories)
}

func TestCategoryService_Invalidate(t *testing.T) {
	svc, _, cache := newCategoryService(t)
	ctx := context.Background()

	cache.EXPECT().Delete(gomock.Any(), categoryCacheKey).Return(true, nil)

	svc.Invalidate(ctx)
}
