package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/genzet/journal-ui/internal/domain/model"
	"github.com/genzet/journal-ui/internal/ports"
)

// relatedBatchSize is how many articles are fetched when building the
// "other articles" section. The current article is filtered out after the
// fetch, so one extra row covers the case where it appears in the page.
const relatedBatchSize = 4

// RelatedCount is how many related articles the detail view shows.
const RelatedCount = 3

// ArticleService reads and deletes articles through the remote API.
// Identical concurrent list fetches are coalesced so a burst of equivalent
// queries costs a single upstream request.
type ArticleService struct {
	content ports.ContentClient
	group   singleflight.Group
	logger  *slog.Logger
}

// NewArticleService constructs an ArticleService.
func NewArticleService(content ports.ContentClient, logger *slog.Logger) *ArticleService {
	return &ArticleService{content: content, logger: logger}
}

func (s *ArticleService) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// List fetches one page of articles for the query. Responses replace prior
// state wholesale; pagination metadata is the API's and is authoritative.
func (s *ArticleService) List(ctx context.Context, q model.ArticleQuery) (*model.ArticlePage, error) {
	v, err, _ := s.group.Do(q.Key(), func() (any, error) {
		return s.content.Articles(ctx, q)
	})
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	page, ok := v.(*model.ArticlePage)
	if !ok {
		return nil, fmt.Errorf("list articles: unexpected result type %T", v)
	}
	return page, nil
}

// Get fetches a single article by id. A NotFound error flows through
// unwrapped in meaning so the handler can render the dedicated view.
func (s *ArticleService) Get(ctx context.Context, id string) (*model.Article, error) {
	article, err := s.content.ArticleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

// Delete removes an article by id. Callers re-fetch the list afterwards so
// totals and page counts stay authoritative from the server.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.content.DeleteArticle(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	s.log().InfoContext(ctx, "article deleted", slog.String("article_id", id))
	return nil
}

// Related returns up to RelatedCount other articles for the detail view.
// Failures degrade to an empty slice; the related section is optional and
// must never take down the detail page.
func (s *ArticleService) Related(ctx context.Context, currentID string) []model.Article {
	page, err := s.List(ctx, model.ArticleQuery{Limit: relatedBatchSize})
	if err != nil {
		s.log().WarnContext(ctx, "related articles fetch failed",
			slog.String("article_id", currentID),
			slog.Any("error", err),
		)
		return nil
	}

	related := make([]model.Article, 0, RelatedCount)
	for _, a := range page.Articles {
		if a.ID == currentID {
			continue
		}
		related = append(related, a)
		if len(related) == RelatedCount {
			break
		}
	}
	return related
}
