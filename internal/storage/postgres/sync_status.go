package postgres

import (
	"context"
	"strconv"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"

	"github.com/hxfsina/migu-video/internal/domain"
)

// maxErrorLength bounds the persisted error message.
const maxErrorLength = 500

type SyncStatusStore struct {
	db *sqlx.DB
}

func NewSyncStatusStore(db *sqlx.DB) *SyncStatusStore {
	return &SyncStatusStore{db: db}
}

// MarkSyncing transitions a category to the syncing state, clearing any
// previous error.
func (s *SyncStatusStore) MarkSyncing(ctx context.Context, categoryID, syncType string) error {
	query := `
		INSERT INTO sync_status (category_id, status, sync_type, last_sync)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (category_id) DO UPDATE SET
			status = EXCLUDED.status,
			sync_type = EXCLUDED.sync_type,
			error_message = NULL,
			last_sync = now()`

	_, err := s.db.ExecContext(ctx, query, categoryID, domain.StateSyncing.String(), syncType)
	return err
}

// MarkCompleted records a clean finish with the authoritative count.
func (s *SyncStatusStore) MarkCompleted(ctx context.Context, categoryID string, totalVideos int64, lastPage int) error {
	query := `
		UPDATE sync_status
		SET status = $2, total_videos = $3, last_page = $4, last_sync = now()
		WHERE category_id = $1`

	_, err := s.db.ExecContext(ctx, query, categoryID, domain.StateCompleted.String(), totalVideos, lastPage)
	return err
}

// MarkError records a failed job with a truncated error message.
func (s *SyncStatusStore) MarkError(ctx context.Context, categoryID, message string) error {
	if len(message) > maxErrorLength {
		// Error text carries multi-byte Chinese; never cut mid-rune.
		cut := maxErrorLength
		for cut > 0 && !utf8.RuneStart(message[cut]) {
			cut--
		}
		message = message[:cut]
	}

	query := `
		UPDATE sync_status
		SET status = $2, error_message = $3, last_sync = now()
		WHERE category_id = $1`

	_, err := s.db.ExecContext(ctx, query, categoryID, domain.StateError.String(), message)
	return err
}

// CountByCategory recounts the stored records in a job's scope.
func (s *SyncStatusStore) CountByCategory(ctx context.Context, job domain.Job) (int64, error) {
	query := `SELECT COUNT(*) FROM videos WHERE cont_display_type = $1`
	args := []interface{}{job.CategoryID}

	if job.Year != "" {
		query += ` AND TRIM(year) = $2`
		args = append(args, job.Year)
	}
	if job.PayType != "" {
		query += ` AND way = $` + strconv.Itoa(len(args)+1)
		args = append(args, job.PayType)
	}

	var count int64
	err := s.db.GetContext(ctx, &count, query, args...)
	return count, err
}

// List returns the status rows for all categories.
func (s *SyncStatusStore) List(ctx context.Context) ([]domain.SyncStatus, error) {
	query := `
		SELECT category_id, status, sync_type, total_videos, last_page, error_message, last_sync
		FROM sync_status
		ORDER BY category_id`

	var statuses []domain.SyncStatus
	err := s.db.SelectContext(ctx, &statuses, query)
	return statuses, err
}
