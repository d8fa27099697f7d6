package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/hxfsina/migu-video/internal/domain"
)

type VideoStore struct {
	db *sqlx.DB
}

func NewVideoStore(db *sqlx.DB) *VideoStore {
	return &VideoStore{db: db}
}

// GetByExternalID returns the stored record for pID, or nil when the
// item was never synced.
func (s *VideoStore) GetByExternalID(ctx context.Context, pID string) (*domain.Video, error) {
	query := `
		SELECT id, p_id, name, detail, pic_url, score, year, way,
		       cont_display_type, update_ep, total_episodes, created_at, updated_at
		FROM videos
		WHERE p_id = $1`

	var video domain.Video
	err := s.db.GetContext(ctx, &video, query, pID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Upsert inserts or replaces the record keyed by p_id and returns the
// synthetic id used for child rows and the search index. Re-invoking
// with identical fields yields the same row, never a duplicate.
func (s *VideoStore) Upsert(ctx context.Context, video *domain.Video) (int64, error) {
	query := `
		INSERT INTO videos (
			p_id, name, detail, pic_url, score, year, way,
			cont_display_type, update_ep, total_episodes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT (p_id) DO UPDATE SET
			name = EXCLUDED.name,
			detail = EXCLUDED.detail,
			pic_url = EXCLUDED.pic_url,
			score = EXCLUDED.score,
			year = EXCLUDED.year,
			way = EXCLUDED.way,
			cont_display_type = EXCLUDED.cont_display_type,
			update_ep = EXCLUDED.update_ep,
			total_episodes = EXCLUDED.total_episodes,
			updated_at = now()
		RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		video.PID,
		video.Name,
		video.Detail,
		video.PicURL,
		video.Score,
		video.Year,
		video.Way,
		video.CategoryID,
		video.UpdateEP,
		video.TotalEpisodes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetExistingByCategory returns the freshness fingerprints of all
// stored records in a job's scope, used to prime the run cache.
func (s *VideoStore) GetExistingByCategory(ctx context.Context, job domain.Job) ([]domain.Video, error) {
	query := `
		SELECT id, p_id, name, detail, pic_url, score, year, way,
		       cont_display_type, update_ep, total_episodes, created_at, updated_at
		FROM videos
		WHERE cont_display_type = $1`
	args := []interface{}{job.CategoryID}

	if job.Year != "" {
		query += ` AND TRIM(year) = $2`
		args = append(args, job.Year)
	}
	if job.PayType != "" {
		query += ` AND way = $` + strconv.Itoa(len(args)+1)
		args = append(args, job.PayType)
	}

	var videos []domain.Video
	err := s.db.SelectContext(ctx, &videos, query, args...)
	return videos, err
}
