package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hxfsina/migu-video/internal/domain"
)

// Outcome is the three-way classification of an incoming catalog item
// against its stored counterpart.
type Outcome int

const (
	OutcomeNew Outcome = iota
	OutcomeUpdated
	OutcomeUnchanged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNew:
		return "new"
	case OutcomeUpdated:
		return "updated"
	default:
		return "unchanged"
	}
}

var (
	completedKeywords = []string{"全集", "已完结", "集全", "全"}
	updatingKeywords  = []string{"更新", "更新至", "连载", "热播"}

	fullEpisodesRe = regexp.MustCompile(`(\d+)集全`)
	upToEpisodeRe  = regexp.MustCompile(`更新至(\d+)集`)
	anyEpisodesRe  = regexp.MustCompile(`(\d+)集`)
)

// Detector classifies items by their freshness fingerprint (updateEP
// text, derived episode total, score). It is pure and total: any
// fingerprint, including an empty one, yields exactly one Outcome.
type Detector struct {
	scoreDelta     bool
	scoreThreshold float64
}

type DetectorOption func(*Detector)

// WithScoreDelta additionally treats a score change beyond threshold as
// an update, independent of the fingerprint. Used by catalog-wide
// refresh jobs to catch re-rated items whose episode state never moves.
func WithScoreDelta(threshold float64) DetectorOption {
	return func(d *Detector) {
		d.scoreDelta = true
		d.scoreThreshold = threshold
	}
}

func NewDetector(opts ...DetectorOption) *Detector {
	d := &Detector{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Classify decides whether incoming is new, needs an update, or can be
// skipped. existing == nil means the item was never synced.
func (d *Detector) Classify(incoming domain.CatalogItem, existing *domain.Video) Outcome {
	if existing == nil {
		return OutcomeNew
	}

	if d.scoreDelta && math.Abs(incoming.Score-existing.Score) > d.scoreThreshold {
		return OutcomeUpdated
	}

	// Completed series are immutable: never re-diff them, however much
	// the raw wording drifts. This bounds write amplification to items
	// that can still plausibly change.
	if IsCompleted(incoming.UpdateEP) {
		return OutcomeUnchanged
	}

	// In-progress series and non-serial items (films) share the same
	// comparison: any fingerprint or episode-total drift is an update.
	if incoming.UpdateEP != existing.UpdateEP {
		return OutcomeUpdated
	}
	if TotalEpisodes(incoming.UpdateEP) != existing.TotalEpisodes {
		return OutcomeUpdated
	}
	return OutcomeUnchanged
}

// IsCompleted reports whether the fingerprint marks a finished series.
func IsCompleted(updateEP string) bool {
	for _, kw := range completedKeywords {
		if strings.Contains(updateEP, kw) {
			return true
		}
	}
	return false
}

// IsUpdating reports whether the fingerprint marks an airing series.
func IsUpdating(updateEP string) bool {
	for _, kw := range updatingKeywords {
		if strings.Contains(updateEP, kw) {
			return true
		}
	}
	return false
}

// TotalEpisodes derives the episode count from the fingerprint text.
// Precedence: "N集全" (complete) > "更新至N集" (updated through) > any
// "N集" digit > 1. Malformed fingerprints default to a single episode.
func TotalEpisodes(updateEP string) int {
	if m := fullEpisodesRe.FindStringSubmatch(updateEP); m != nil {
		return atoiOr1(m[1])
	}
	if m := upToEpisodeRe.FindStringSubmatch(updateEP); m != nil {
		return atoiOr1(m[1])
	}
	if m := anyEpisodesRe.FindStringSubmatch(updateEP); m != nil {
		return atoiOr1(m[1])
	}
	return 1
}

func atoiOr1(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
