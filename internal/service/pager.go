package service

import (
	"context"

	"github.com/hxfsina/migu-video/internal/domain"
)

// blankStreakLimit bounds scanning of sparse filtered subsets: after
// this many consecutive pages with zero predicate matches the job is
// treated as exhausted even though the category keeps returning data.
const blankStreakLimit = 3

// Pager iterates the pages of one job until exhaustion. It always
// starts at page 1 and is not restartable. The pager imposes no delays
// of its own; pacing between pages is orchestrator policy.
type Pager struct {
	source      Source
	job         domain.Job
	page        int
	fetched     int
	blankStreak int
	done        bool
}

func NewPager(source Source, job domain.Job) *Pager {
	return &Pager{
		source: source,
		job:    job,
		page:   1,
	}
}

// Next returns the next batch of filter-matching items. A (nil, nil)
// return means the job is exhausted. A non-nil error also terminates
// the iteration; progress made so far stays valid.
func (p *Pager) Next(ctx context.Context) ([]domain.CatalogItem, error) {
	for !p.done {
		if p.job.MaxPages > 0 && p.page > p.job.MaxPages {
			p.done = true
			break
		}

		batch, err := p.source.FetchPage(ctx, p.job, p.page)
		if err != nil {
			// A spent retry budget ends pagination like an empty page
			// would, but the caller still sees the error marker.
			p.done = true
			return nil, err
		}
		p.fetched++
		if len(batch) == 0 {
			p.done = true
			break
		}
		p.page++

		if !p.job.Filtered() {
			return batch, nil
		}

		matched := batch[:0:0]
		for _, item := range batch {
			if p.job.Matches(item) {
				matched = append(matched, item)
			}
		}
		if len(matched) == 0 {
			p.blankStreak++
			if p.blankStreak >= blankStreakLimit {
				p.done = true
				break
			}
			continue
		}
		p.blankStreak = 0
		return matched, nil
	}
	return nil, nil
}

// Pages reports how many pages have been fetched so far, including
// filtered-out blank pages and the final empty page.
func (p *Pager) Pages() int {
	return p.fetched
}
