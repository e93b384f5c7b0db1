package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/genzet/journal-ui/internal/domain/model"
	apperrors "github.com/genzet/journal-ui/internal/errors"
	"github.com/genzet/journal-ui/internal/mocks"
)

func newArticleService(t *testing.T) (*ArticleService, *mocks.MockContentClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	content := mocks.NewMockContentClient(ctrl)
	return NewArticleService(content, nil), content
}

func articleFixture(id, title string) model.Article {
	return model.Article{
		ID:        id,
		Title:     title,
		Content:   "<p>body</p>",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Category:  model.Category{ID: "cat-1", Name: "Tech"},
		User:      model.Author{Username: "alice"},
	}
}

func TestArticleService_List(t *testing.T) {
	svc, content := newArticleService(t)
	ctx := context.Background()
	q := model.ArticleQuery{Search: "go", Page: 2, Limit: 9}
	want := &model.ArticlePage{
		Articles: []model.Article{articleFixture("a-1", "First")},
		Meta:     model.ListMeta{Total: 12, CurrentPage: 2, LastPage: 2},
	}

	content.EXPECT().Articles(gomock.Any(), q).Return(want, nil)

	page, err := svc.List(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, want, page)
}

func TestArticleService_List_UpstreamFailure(t *testing.T) {
	svc, content := newArticleService(t)
	ctx := context.Background()

	content.EXPECT().
		Articles(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Upstream("boom"))

	page, err := svc.List(ctx, model.ArticleQuery{})

	assert.Nil(t, page)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestArticleService_List_CoalescesIdenticalQueries(t *testing.T) {
	svc, content := newArticleService(t)
	q := model.ArticleQuery{Search: "go", Limit: 9}
	want := &model.ArticlePage{Meta: model.ListMeta{Total: 0, CurrentPage: 1, LastPage: 1}}

	entered := make(chan struct{})
	release := make(chan struct{})
	content.EXPECT().
		Articles(gomock.Any(), q).
		DoAndReturn(func(context.Context, model.ArticleQuery) (*model.ArticlePage, error) {
			close(entered)
			<-release
			return want, nil
		}).
		Times(1)

	const callers = 4
	var wg sync.WaitGroup
	results := make([]*model.ArticlePage, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.List(context.Background(), q)
		}(i)
	}

	// Hold the single upstream call open long enough for the remaining
	// callers to join the in-flight fetch.
	<-entered
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}

func TestArticleService_Get(t *testing.T) {
	svc, content := newArticleService(t)
	ctx := context.Background()
	want := articleFixture("a-1", "First")

	content.EXPECT().ArticleByID(ctx, "a-1").Return(&want, nil)

	article, err := svc.Get(ctx, "a-1")

	require.NoError(t, err)
	assert.Equal(t, &want, article)
}

func TestArticleService_Get_NotFoundFlowsThrough(t *testing.T) {
	svc, content := newArticleService(t)
	ctx := context.Background()

	content.EXPECT().ArticleByID(ctx, "missing").Return(nil, apperrors.NotFound("article missing"))

	article, err := svc.Get(ctx, "missing")

	assert.Nil(t, article)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestArticleService_Delete(t *testing.T) {
	svc, content := newArticleService(t)
	ctx := context.Background()

	content.EXPECT().DeleteArticle(ctx, "a-1").Return(nil)

	assert.NoError(t, svc.Delete(ctx, "a-1"))
}

func TestArticleService_Related(t *testing.T) {
	svc, content := newArticleService(t)
	ctx := context.Background()

	page := &model.ArticlePage{
		Articles: []model.Article{
			articleFixture("a-1", "Current"),
			articleFixture("a-2", "Second"),
			articleFixture("a-3", "Third"),
			articleFixture("a-4", "Fourth"),
		},
		Meta: model.ListMeta{Total: 4, CurrentPage: 1, LastPage: 1},
	}
	content.EXPECT().
		Articles(gomock.Any(), model.ArticleQuery{Limit: relatedBatchSize}).
		Return(page, nil)

	related := svc.Related(ctx, "a-1")

	require.Len(t, related, 3)
	for _, a := range related {
		assert.NotEqual(t, "a-1", a.ID)
	}
}

func TestArticleService_Related_CapsAtRelatedCount(t *testing.T) {
	svc, content := newArticleService(t)

	page := &model.ArticlePage{
		Articles: []model.Article{
			articleFixture("a-2", "Second"),
			articleFixture("a-3", "Third"),
			articleFixture("a-4", "Fourth"),
			articleFixture("a-5", "Fifth"),
		},
		Meta: model.ListMeta{Total: 4, CurrentPage: 1, LastPage: 1},
	}
	content.EXPECT().Articles(gomock.Any(), gomock.Any()).Return(page, nil)

	related := svc.Related(context.Background(), "a-1")

	assert.Len(t, related, RelatedCount)
}

func TestArticleService_Related_DegradesToNilOnFailure(t *testing.T) {
	svc, content := newArticleService(t)

	content.EXPECT().
		Articles(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Upstream("boom"))

	assert.Nil(t, svc.Related(context.Background(), "a-1"))
}
