package migu

// categoryResponse is the /search/v3/category envelope.
type categoryResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Body    struct {
		Data []categoryItem `json:"data"`
	} `json:"body"`
}

type categoryItem struct {
	PID      string   `json:"pID"`
	Name     string   `json:"name"`
	UpdateEP string   `json:"updateEP"`
	Score    string   `json:"score"`
	Year     string   `json:"year"`
	Way      string   `json:"way"`
	Pics     pics     `json:"pics"`
	EpsID    []string `json:"epsID"`
}

type pics struct {
	HighResolutionH string `json:"highResolutionH"`
	HighResolution  string `json:"highResolution"`
	LowResolutionH  string `json:"lowResolutionH"`
	LowResolution   string `json:"lowResolution"`
}

// preferred returns the best available poster URL.
func (p pics) preferred() string {
	for _, u := range []string{p.HighResolutionH, p.HighResolution, p.LowResolutionH, p.LowResolution} {
		if u != "" {
			return u
		}
	}
	return ""
}

// detailResponse is the playing-info envelope.
type detailResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Body    *struct {
		Detail string `json:"detail"`
	} `json:"body"`
}
