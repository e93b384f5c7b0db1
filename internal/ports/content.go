package ports

import (
	"context"

	"github.com/genzet/journal-ui/internal/domain/model"
)

// ContentClient reads and deletes content through the remote journal API.
// All article and category data is owned upstream; responses are transient
// views, never merged locally.
type ContentClient interface {
	// Categories fetches the full category list.
	Categories(ctx context.Context) ([]model.Category, error)

	// Articles fetches one page of articles for the given query.
	Articles(ctx context.Context, q model.ArticleQuery) (*model.ArticlePage, error)

	// ArticleByID fetches a single article. A missing article yields an
	// apperrors.NotFound error, distinct from transport failures.
	ArticleByID(ctx context.Context, id string) (*model.Article, error)

	// DeleteArticle removes an article by id. Callers re-fetch the list
	// afterwards; no response body is relied upon.
	DeleteArticle(ctx context.Context, id string) error
}
