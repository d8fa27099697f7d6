package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/hxfsina/migu-video/internal/domain"
)

// chunkSize bounds the number of rows per multi-row upsert. The remote
// store rejects oversized statements, hence the per-row fallback.
const chunkSize = 100

type EpisodeStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewEpisodeStore(db *sqlx.DB, logger *slog.Logger) *EpisodeStore {
	return &EpisodeStore{db: db, logger: logger}
}

// ReplaceBatch writes the full child set for one video in chunks. A
// failed chunk degrades to row-by-row inserts; partial success is
// acceptable, and only a chunk whose every row fails is an error.
// Upsert semantics per (video_id, ep_id) keep re-runs duplicate-free.
func (s *EpisodeStore) ReplaceBatch(ctx context.Context, videoID int64, episodes []domain.Episode) error {
	if len(episodes) == 0 {
		return nil
	}

	for start := 0; start < len(episodes); start += chunkSize {
		end := start + chunkSize
		if end > len(episodes) {
			end = len(episodes)
		}
		chunk := episodes[start:end]

		if err := s.insertChunk(ctx, videoID, chunk); err != nil {
			s.logger.Warn("episode batch write failed, falling back to row-by-row",
				"video_id", videoID,
				"chunk_size", len(chunk),
				"error", err,
			)
			if err := s.insertRows(ctx, videoID, chunk); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *EpisodeStore) insertChunk(ctx context.Context, videoID int64, chunk []domain.Episode) error {
	var sb strings.Builder
	sb.WriteString("INSERT INTO episodes (video_id, ep_id, name, ord) VALUES ")
	args := make([]interface{}, 0, len(chunk)*4)

	for i, ep := range chunk {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 4
		sb.WriteString("($")
		sb.WriteString(strconv.Itoa(base + 1))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(base + 2))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(base + 3))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(base + 4))
		sb.WriteString(")")
		args = append(args, videoID, ep.EpID, ep.Name, ep.Ord)
	}
	sb.WriteString(" ON CONFLICT (video_id, ep_id) DO UPDATE SET name = EXCLUDED.name, ord = EXCLUDED.ord")

	_, err := s.db.ExecContext(ctx, sb.String(), args...)
	return err
}

func (s *EpisodeStore) insertRows(ctx context.Context, videoID int64, chunk []domain.Episode) error {
	query := `
		INSERT INTO episodes (video_id, ep_id, name, ord)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (video_id, ep_id) DO UPDATE SET name = EXCLUDED.name, ord = EXCLUDED.ord`

	var failed int
	var lastErr error
	for _, ep := range chunk {
		if _, err := s.db.ExecContext(ctx, query, videoID, ep.EpID, ep.Name, ep.Ord); err != nil {
			failed++
			lastErr = err
			s.logger.Warn("episode row write failed",
				"video_id", videoID,
				"ep_id", ep.EpID,
				"error", err,
			)
		}
	}

	if failed == len(chunk) {
		return fmt.Errorf("all %d episode rows failed: %w", failed, lastErr)
	}
	return nil
}
