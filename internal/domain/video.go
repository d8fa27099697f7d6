package domain

import "time"

// Video is the persisted catalog record, keyed by the external pID.
type Video struct {
	ID            int64     `db:"id"`
	PID           string    `db:"p_id"`
	Name          string    `db:"name"`
	Detail        string    `db:"detail"`
	PicURL        string    `db:"pic_url"`
	Score         float64   `db:"score"`
	Year          string    `db:"year"`
	Way           string    `db:"way"` // pay tier: "1" free, "2" member
	CategoryID    string    `db:"cont_display_type"`
	UpdateEP      string    `db:"update_ep"`
	TotalEpisodes int       `db:"total_episodes"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// Episode is one child row of a Video, keyed by (video_id, ep_id).
type Episode struct {
	VideoID int64  `db:"video_id"`
	EpID    string `db:"ep_id"`
	Name    string `db:"name"`
	Ord     int    `db:"ord"`
}

// CatalogItem is one item of a category page as returned by the source.
// It is consumed once by classification and never retained.
type CatalogItem struct {
	PID        string
	Name       string
	UpdateEP   string
	Score      float64
	Year       string
	Way        string
	PicURL     string
	Detail     string
	EpisodeIDs []string // source-provided episode ids, may be empty
}
