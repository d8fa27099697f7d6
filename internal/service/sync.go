package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hxfsina/migu-video/internal/config"
	"github.com/hxfsina/migu-video/internal/domain"
	"github.com/hxfsina/migu-video/internal/metrics"
)

// SyncService drives one sync run: jobs strictly in order, pages
// strictly in order within a job, fixed sleeps between both. The remote
// store offers per-statement atomicity only, so primary and secondary
// writes are independently retryable rather than transactional.
type SyncService struct {
	source    Source
	videos    VideoStore
	episodes  EpisodeStore
	search    SearchIndexStore
	status    SyncStatusStore
	cache     FingerprintCache // optional
	publisher Publisher        // optional
	metrics   *metrics.Metrics
	logger    *slog.Logger
	config    config.SyncConfig
	jobs      []domain.Job

	sleep func(ctx context.Context, d time.Duration) error
}

func NewSyncService(
	source Source,
	videos VideoStore,
	episodes EpisodeStore,
	search SearchIndexStore,
	status SyncStatusStore,
	cache FingerprintCache,
	publisher Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
	cfg config.SyncConfig,
	jobs []domain.Job,
) *SyncService {
	return &SyncService{
		source:    source,
		videos:    videos,
		episodes:  episodes,
		search:    search,
		status:    status,
		cache:     cache,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		config:    cfg,
		jobs:      jobs,
		sleep:     sleepCtx,
	}
}

// Run executes every configured job once. A failing job records its
// error status and never aborts the run; every started job ends with a
// status row.
func (s *SyncService) Run(ctx context.Context) (*domain.RunSummary, error) {
	startTime := time.Now()
	summary := &domain.RunSummary{}

	s.logger.Info("starting sync run", "jobs", len(s.jobs))

	for i, job := range s.jobs {
		stats := s.syncJob(ctx, job)
		summary.Add(stats)

		if err := ctx.Err(); err != nil {
			summary.Duration = time.Since(startTime)
			return summary, err
		}

		if i < len(s.jobs)-1 {
			if err := s.sleep(ctx, s.config.JobDelay); err != nil {
				summary.Duration = time.Since(startTime)
				return summary, err
			}
		}
	}

	summary.Duration = time.Since(startTime)
	s.metrics.LastRunUnix.SetToCurrentTime()

	s.logger.Info("sync run completed",
		"new", summary.New,
		"updated", summary.Updated,
		"unchanged", summary.Unchanged,
		"failed", summary.Failed,
		"duration", summary.Duration,
	)
	s.logStatuses(ctx)
	return summary, nil
}

// logStatuses reports the persisted per-category status rows after a
// run, including rows left in the error state by earlier runs.
func (s *SyncService) logStatuses(ctx context.Context) {
	statuses, err := s.status.List(ctx)
	if err != nil {
		s.logger.Warn("failed to read sync statuses", "error", err)
		return
	}
	for _, st := range statuses {
		attrs := []any{
			"category", st.CategoryID,
			"status", st.Status,
			"total_videos", st.TotalVideos,
			"last_page", st.LastPage,
		}
		if st.ErrorMessage != nil {
			attrs = append(attrs, "error", *st.ErrorMessage)
		}
		s.logger.Info("category status", attrs...)
	}
}

func (s *SyncService) syncJob(ctx context.Context, job domain.Job) domain.JobStats {
	startTime := time.Now()
	logger := s.logger.With("category", job.CategoryID, "job", job.Name)
	logger.Info("starting job", "sync_type", job.SyncType)

	stats := domain.JobStats{
		CategoryID: job.CategoryID,
		Name:       job.Name,
		Status:     domain.StateSyncing,
	}

	if err := s.status.MarkSyncing(ctx, job.CategoryID, job.SyncType); err != nil {
		return s.failJob(ctx, job, stats, startTime, err)
	}

	if s.cache != nil {
		s.primeCache(ctx, job)
	}

	detectorOpts := []DetectorOption{}
	if job.ScoreDelta {
		detectorOpts = append(detectorOpts, WithScoreDelta(0.1))
	}
	detector := NewDetector(detectorOpts...)

	pager := NewPager(s.source, job)
	for {
		batch, err := pager.Next(ctx)
		if err != nil {
			// Partial progress stays persisted; the job itself is
			// marked error so a spent retry budget never reports as a
			// clean completion.
			stats.Pages = pager.Pages()
			return s.failJob(ctx, job, stats, startTime, err)
		}
		if batch == nil {
			break
		}

		details := s.prefetchDetails(ctx, batch)

		for _, item := range batch {
			item.Detail = details[item.PID]
			outcome, err := s.processItem(ctx, job, detector, item)
			if err != nil {
				stats.Failed++
				s.metrics.ItemsTotal.WithLabelValues(job.CategoryID, "failed").Inc()
				logger.Warn("item failed", "p_id", item.PID, "error", err)
				continue
			}
			switch outcome {
			case OutcomeNew:
				stats.New++
			case OutcomeUpdated:
				stats.Updated++
			default:
				stats.Unchanged++
			}
			s.metrics.ItemsTotal.WithLabelValues(job.CategoryID, outcome.String()).Inc()
		}

		s.metrics.PagesTotal.WithLabelValues(job.CategoryID).Inc()

		if err := s.sleep(ctx, s.config.PageDelay); err != nil {
			stats.Pages = pager.Pages()
			return s.failJob(ctx, job, stats, startTime, err)
		}
	}
	stats.Pages = pager.Pages()

	// Recount from the store so the completed row carries the
	// authoritative total, not a running tally.
	total, err := s.status.CountByCategory(ctx, job)
	if err != nil {
		return s.failJob(ctx, job, stats, startTime, err)
	}
	if err := s.status.MarkCompleted(ctx, job.CategoryID, total, stats.Pages); err != nil {
		return s.failJob(ctx, job, stats, startTime, err)
	}

	stats.Status = domain.StateCompleted
	stats.Duration = time.Since(startTime)
	logger.Info("job completed",
		"new", stats.New,
		"updated", stats.Updated,
		"unchanged", stats.Unchanged,
		"failed", stats.Failed,
		"pages", stats.Pages,
		"total_videos", total,
		"duration", stats.Duration,
	)
	return stats
}

func (s *SyncService) failJob(ctx context.Context, job domain.Job, stats domain.JobStats, startTime time.Time, err error) domain.JobStats {
	s.logger.Error("job failed", "category", job.CategoryID, "error", err)
	s.metrics.JobErrors.WithLabelValues(job.CategoryID).Inc()

	if merr := s.status.MarkError(ctx, job.CategoryID, err.Error()); merr != nil {
		s.logger.Error("failed to record job error", "category", job.CategoryID, "error", merr)
	}

	stats.Status = domain.StateError
	stats.Duration = time.Since(startTime)
	return stats
}

func (s *SyncService) processItem(ctx context.Context, job domain.Job, detector *Detector, item domain.CatalogItem) (Outcome, error) {
	existing, err := s.lookupExisting(ctx, item.PID)
	if err != nil {
		return OutcomeUnchanged, err
	}

	outcome := detector.Classify(item, existing)
	if outcome == OutcomeUnchanged {
		return outcome, nil
	}

	video := buildVideo(job, item)
	id, err := s.videos.Upsert(ctx, video)
	if err != nil {
		return outcome, err
	}
	video.ID = id

	if err := s.episodes.ReplaceBatch(ctx, id, buildEpisodes(id, item, video.TotalEpisodes)); err != nil {
		return outcome, err
	}

	// Secondary writes are best-effort: the record is already durable.
	if err := s.search.Index(ctx, id, video.Name, searchKeywords(video.Name)); err != nil {
		s.logger.Warn("search index write failed", "p_id", item.PID, "error", err)
	}

	if s.cache != nil {
		s.cache.Put(ctx, video)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, video, outcome == OutcomeNew); err != nil {
			s.logger.Warn("publish failed", "p_id", item.PID, "error", err)
		}
	}

	return outcome, nil
}

// primeCache loads the stored fingerprints of the job's scope in one
// query so per-item lookups hit the cache instead of the store.
// Best-effort: a failed priming just means cold lookups.
func (s *SyncService) primeCache(ctx context.Context, job domain.Job) {
	existing, err := s.videos.GetExistingByCategory(ctx, job)
	if err != nil {
		s.logger.Warn("cache priming failed", "category", job.CategoryID, "error", err)
		return
	}
	for i := range existing {
		s.cache.Put(ctx, &existing[i])
	}
	s.logger.Debug("cache primed", "category", job.CategoryID, "records", len(existing))
}

func (s *SyncService) lookupExisting(ctx context.Context, pID string) (*domain.Video, error) {
	if s.cache != nil {
		if video, ok := s.cache.Get(ctx, pID); ok {
			return video, nil
		}
	}
	video, err := s.videos.GetByExternalID(ctx, pID)
	if err != nil {
		return nil, err
	}
	if video != nil && s.cache != nil {
		s.cache.Put(ctx, video)
	}
	return video, nil
}

// prefetchDetails scatter/gathers the per-item synopsis lookups with
// bounded concurrency. Failures map to "no detail available" and never
// abort the batch.
func (s *SyncService) prefetchDetails(ctx context.Context, items []domain.CatalogItem) map[string]string {
	details := make(map[string]string, len(items))
	if !s.config.FetchDetails {
		return details
	}

	results := make([]string, len(items))
	g := new(errgroup.Group)
	g.SetLimit(s.config.DetailConcurrency)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			detail, err := s.source.FetchDetail(ctx, item.PID)
			if err != nil {
				s.logger.Debug("detail fetch failed", "p_id", item.PID, "error", err)
				return nil
			}
			results[i] = detail
			return nil
		})
	}
	_ = g.Wait()

	for i, item := range items {
		if results[i] != "" {
			details[item.PID] = results[i]
		}
	}
	return details
}

func buildVideo(job domain.Job, item domain.CatalogItem) *domain.Video {
	return &domain.Video{
		PID:           item.PID,
		Name:          item.Name,
		Detail:        item.Detail,
		PicURL:        item.PicURL,
		Score:         item.Score,
		Year:          strings.TrimSpace(item.Year),
		Way:           item.Way,
		CategoryID:    job.CategoryID,
		UpdateEP:      item.UpdateEP,
		TotalEpisodes: TotalEpisodes(item.UpdateEP),
	}
}

// buildEpisodes materializes the child rows. Source-provided episode
// ids are kept verbatim with their source ordinals; otherwise ids are
// generated as "<pID>_<n>" with dense ordinals from 1, so re-running a
// sync regenerates the identical set.
func buildEpisodes(videoID int64, item domain.CatalogItem, total int) []domain.Episode {
	if len(item.EpisodeIDs) > 0 {
		episodes := make([]domain.Episode, 0, len(item.EpisodeIDs))
		for i, epID := range item.EpisodeIDs {
			episodes = append(episodes, domain.Episode{
				VideoID: videoID,
				EpID:    epID,
				Name:    episodeName(i + 1),
				Ord:     i + 1,
			})
		}
		return episodes
	}

	episodes := make([]domain.Episode, 0, total)
	for i := 1; i <= total; i++ {
		episodes = append(episodes, domain.Episode{
			VideoID: videoID,
			EpID:    item.PID + "_" + strconv.Itoa(i),
			Name:    episodeName(i),
			Ord:     i,
		})
	}
	return episodes
}

func episodeName(n int) string {
	return "第" + strconv.Itoa(n) + "集"
}

// searchKeywords produces the denormalized keyword list for the search
// index: the full title plus its whitespace- and punctuation-separated
// fragments.
func searchKeywords(name string) string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		switch r {
		case ' ', '　', '：', ':', '·', '-', '—', '(', ')', '（', '）':
			return true
		}
		return false
	})

	keywords := make([]string, 0, len(fields)+1)
	keywords = append(keywords, name)
	for _, f := range fields {
		if f != name {
			keywords = append(keywords, f)
		}
	}
	return strings.Join(keywords, ",")
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
