package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type SearchIndexStore struct {
	db *sqlx.DB
}

func NewSearchIndexStore(db *sqlx.DB) *SearchIndexStore {
	return &SearchIndexStore{db: db}
}

// Index upserts the denormalized search row for one video.
func (s *SearchIndexStore) Index(ctx context.Context, videoID int64, name, keywords string) error {
	query := `
		INSERT INTO search_index (video_id, name, keywords)
		VALUES ($1, $2, $3)
		ON CONFLICT (video_id) DO UPDATE SET
			name = EXCLUDED.name,
			keywords = EXCLUDED.keywords`

	_, err := s.db.ExecContext(ctx, query, videoID, name, keywords)
	return err
}
