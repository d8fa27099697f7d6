package domain

import "time"

// SyncState is the per-job status machine: idle → syncing → {completed, error}.
type SyncState int

const (
	StateIdle SyncState = iota
	StateSyncing
	StateCompleted
	StateError
)

// String serializes the state for the storage boundary and logs.
func (s SyncState) String() string {
	switch s {
	case StateSyncing:
		return "syncing"
	case StateCompleted:
		return "completed"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// SyncStatus is the persisted status row for one category.
type SyncStatus struct {
	CategoryID   string     `db:"category_id"`
	Status       string     `db:"status"`
	SyncType     string     `db:"sync_type"`
	TotalVideos  int64      `db:"total_videos"`
	LastPage     int        `db:"last_page"`
	ErrorMessage *string    `db:"error_message"`
	LastSync     *time.Time `db:"last_sync"`
}

// JobStats holds counters for one job of a sync run.
type JobStats struct {
	CategoryID string
	Name       string
	Status     SyncState
	New        int
	Updated    int
	Unchanged  int
	Failed     int
	Pages      int
	Duration   time.Duration
}

// RunSummary aggregates all jobs of one sync run. Every job that was
// started appears here exactly once, whatever its outcome.
type RunSummary struct {
	Jobs      []JobStats
	New       int
	Updated   int
	Unchanged int
	Failed    int
	Duration  time.Duration
}

// Add folds one job's counters into the run totals.
func (r *RunSummary) Add(stats JobStats) {
	r.Jobs = append(r.Jobs, stats)
	r.New += stats.New
	r.Updated += stats.Updated
	r.Unchanged += stats.Unchanged
	r.Failed += stats.Failed
}
