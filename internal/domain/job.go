package domain

import "strings"

// Job is one (category, filter-set) unit of sync work. Jobs are built
// from configuration at the start of a run and mutated only in memory.
type Job struct {
	CategoryID string // contDisplayType, e.g. "1001"
	Name       string // human label, e.g. "电视剧"
	SyncType   string // recorded in sync_status, e.g. "incremental"
	Year       string // optional post-fetch filter: keep only this year
	PayType    string // optional source-side filter, e.g. "2" for member
	MaxPages   int    // 0 means no page cap
	ScoreDelta bool   // refresh policy: re-rate on score change
}

// Filtered reports whether the job applies a post-fetch predicate.
func (j Job) Filtered() bool {
	return j.Year != ""
}

// Matches applies the job's post-fetch predicate to one item.
func (j Job) Matches(item CatalogItem) bool {
	if j.Year == "" {
		return true
	}
	return strings.TrimSpace(item.Year) == j.Year
}
