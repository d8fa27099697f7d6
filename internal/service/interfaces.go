package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/hxfsina/migu-video/internal/domain"
)

// Source provides paginated catalog access. Both calls are idempotent
// GETs and already carry their own retry budget.
type Source interface {
	FetchPage(ctx context.Context, job domain.Job, page int) ([]domain.CatalogItem, error)
	FetchDetail(ctx context.Context, pID string) (string, error)
}

type VideoStore interface {
	GetByExternalID(ctx context.Context, pID string) (*domain.Video, error)
	GetExistingByCategory(ctx context.Context, job domain.Job) ([]domain.Video, error)
	Upsert(ctx context.Context, video *domain.Video) (int64, error)
}

type EpisodeStore interface {
	ReplaceBatch(ctx context.Context, videoID int64, episodes []domain.Episode) error
}

// SearchIndexStore is the best-effort secondary write; its failure
// never rolls back the primary record.
type SearchIndexStore interface {
	Index(ctx context.Context, videoID int64, name, keywords string) error
}

type SyncStatusStore interface {
	MarkSyncing(ctx context.Context, categoryID, syncType string) error
	MarkCompleted(ctx context.Context, categoryID string, totalVideos int64, lastPage int) error
	MarkError(ctx context.Context, categoryID, message string) error
	CountByCategory(ctx context.Context, job domain.Job) (int64, error)
	List(ctx context.Context) ([]domain.SyncStatus, error)
}

// FingerprintCache short-circuits existence lookups within a run. It is
// an optimization only: the sync must stay correct with a nil cache.
type FingerprintCache interface {
	Get(ctx context.Context, pID string) (*domain.Video, bool)
	Put(ctx context.Context, video *domain.Video)
}

type Publisher interface {
	Publish(ctx context.Context, video *domain.Video, isNew bool) error
	Close() error
}
