package mock

import (
	"context"

	"github.com/fwojciec/nyhetsindex"
)

var _ nyhetsindex.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of nyhetsindex.ArticleService.
type ArticleService struct {
	CreateRunFn    func(ctx context.Context, articles []*nyhetsindex.Article) (string, error)
	FindArticlesFn func(ctx context.Context, filter nyhetsindex.ArticleFilter) ([]*nyhetsindex.ArchivedArticle, error)
}

func (s *ArticleService) CreateRun(ctx context.Context, articles []*nyhetsindex.Article) (string, error) {
	return s.CreateRunFn(ctx, articles)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter nyhetsindex.ArticleFilter) ([]*nyhetsindex.ArchivedArticle, error) {
	return s.FindArticlesFn(ctx, filter)
}

var _ nyhetsindex.SnapshotWriter = (*SnapshotWriter)(nil)

// SnapshotWriter is a mock implementation of nyhetsindex.SnapshotWriter.
type SnapshotWriter struct {
	WriteSnapshotFn func(ctx context.Context, articles []*nyhetsindex.Article) error
}

func (w *SnapshotWriter) WriteSnapshot(ctx context.Context, articles []*nyhetsindex.Article) error {
	return w.WriteSnapshotFn(ctx, articles)
}
