package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hxfsina/migu-video/internal/domain"
)

// Config holds fingerprint cache settings.
type Config struct {
	URL string
	TTL time.Duration
}

// Fingerprint is a short-TTL cache of stored-record fingerprints keyed
// by external id. It only short-circuits existence lookups during a
// run; every miss or decode error falls through to the store, so the
// sync stays correct with the cache unavailable or disabled.
type Fingerprint struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewFingerprint(cfg Config, logger *slog.Logger) (*Fingerprint, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Fingerprint{
		rdb:    rdb,
		ttl:    cfg.TTL,
		logger: logger,
	}, nil
}

func key(pID string) string {
	return "video:fp:" + pID
}

// Get returns the cached record for pID. Any cache error is a miss.
func (f *Fingerprint) Get(ctx context.Context, pID string) (*domain.Video, bool) {
	data, err := f.rdb.Get(ctx, key(pID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			f.logger.Debug("cache read failed", "p_id", pID, "error", err)
		}
		return nil, false
	}

	var video domain.Video
	if err := json.Unmarshal(data, &video); err != nil {
		f.logger.Debug("cache decode failed", "p_id", pID, "error", err)
		return nil, false
	}
	return &video, true
}

// Put stores the record fingerprint with the configured TTL.
// Best-effort: failures are logged and dropped.
func (f *Fingerprint) Put(ctx context.Context, video *domain.Video) {
	data, err := json.Marshal(video)
	if err != nil {
		return
	}
	if err := f.rdb.Set(ctx, key(video.PID), data, f.ttl).Err(); err != nil {
		f.logger.Debug("cache write failed", "p_id", video.PID, "error", err)
	}
}

func (f *Fingerprint) Close() error {
	return f.rdb.Close()
}
