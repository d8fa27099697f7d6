package migu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hxfsina/migu-video/internal/domain"
	"github.com/hxfsina/migu-video/internal/retry"
)

const (
	// packIds is the fixed content-pack filter the catalog endpoint expects.
	packIDs           = "1002581,1003861,1003863,1003866,1002601,1004761,1004121,1004641,1005521,1005261,1015768"
	copyrightTerminal = "3"
)

// Config holds migu source configuration.
type Config struct {
	BaseURL        string
	DetailURL      string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client fetches category pages and per-item details from the migu
// catalog API. All requests are idempotent GETs and go through the
// retry executor.
type Client struct {
	httpClient *http.Client
	baseURL    string
	detailURL  string
	pageSize   int
	retrier    *retry.Executor
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	logger = logger.With("source", "migu")
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		detailURL: strings.TrimRight(cfg.DetailURL, "/"),
		pageSize:  cfg.PageSize,
		retrier:   retry.New(cfg.MaxAttempts, cfg.InitialBackoff, cfg.MaxBackoff, logger),
		logger:    logger,
	}
}

// FetchPage fetches one page of a category listing. Pages start at 1.
// An empty slice means the category is exhausted.
func (c *Client) FetchPage(ctx context.Context, job domain.Job, page int) ([]domain.CatalogItem, error) {
	params := url.Values{}
	params.Set("packId", packIDs)
	params.Set("copyrightTerminal", copyrightTerminal)
	params.Set("pageStart", strconv.Itoa(page))
	params.Set("pageNum", strconv.Itoa(c.pageSize))
	params.Set("contDisplayType", job.CategoryID)
	if job.PayType != "" {
		params.Set("payType", job.PayType)
	}
	reqURL := fmt.Sprintf("%s/search/v3/category?%s", c.baseURL, params.Encode())

	resp, err := retry.Do(ctx, c.retrier, func() (*categoryResponse, error) {
		body, err := c.get(ctx, reqURL)
		if err != nil {
			return nil, err
		}
		return decodeCategory(body)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch category %s page %d: %w", job.CategoryID, page, err)
	}

	items := c.transform(resp.Body.Data)
	c.logger.Debug("fetched page",
		"category", job.CategoryID,
		"page", page,
		"items", len(items),
	)
	return items, nil
}

// FetchDetail fetches the playing-info synopsis for one item. A missing
// detail is reported as an empty string, not an error.
func (c *Client) FetchDetail(ctx context.Context, pID string) (string, error) {
	reqURL := fmt.Sprintf("%s/program/v3/cont/playing-info/%s", c.detailURL, url.PathEscape(pID))

	resp, err := retry.Do(ctx, c.retrier, func() (*detailResponse, error) {
		body, err := c.get(ctx, reqURL)
		if err != nil {
			return nil, err
		}
		return decodeDetail(body)
	})
	if err != nil {
		return "", fmt.Errorf("fetch detail %s: %w", pID, err)
	}
	if resp.Body == nil {
		return "", nil
	}
	return resp.Body.Detail, nil
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// The catalog endpoint rejects requests without browser headers.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Origin", "https://www.miguvideo.com")
	req.Header.Set("Referer", "https://www.miguvideo.com/")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &retry.StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

func decodeCategory(body []byte) (*categoryResponse, error) {
	var resp categoryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("api error %d: %s", resp.Code, resp.Message)
	}
	return &resp, nil
}

func decodeDetail(body []byte) (*detailResponse, error) {
	var resp detailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("api error %d: %s", resp.Code, resp.Message)
	}
	return &resp, nil
}

func (c *Client) transform(items []categoryItem) []domain.CatalogItem {
	result := make([]domain.CatalogItem, 0, len(items))
	for _, it := range items {
		if it.PID == "" {
			continue
		}

		score := 0.0
		if it.Score != "" {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(it.Score), 64)
			if err != nil {
				c.logger.Warn("failed to parse score", "p_id", it.PID, "score", it.Score)
			} else {
				score = parsed
			}
		}

		result = append(result, domain.CatalogItem{
			PID:        it.PID,
			Name:       it.Name,
			UpdateEP:   it.UpdateEP,
			Score:      score,
			Year:       it.Year,
			Way:        it.Way,
			PicURL:     it.Pics.preferred(),
			EpisodeIDs: it.EpsID,
		})
	}
	return result
}
