package migu

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxfsina/migu-video/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Config{
		BaseURL:        srv.URL,
		DetailURL:      srv.URL,
		PageSize:       20,
		Timeout:        5 * time.Second,
		MaxAttempts:    2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     10 * time.Millisecond,
	}, testLogger())
}

const categoryBody = `{
	"code": 200,
	"body": {
		"data": [
			{
				"pID": "900001",
				"name": "测试剧集",
				"updateEP": "更新至12集",
				"score": "8.4",
				"year": "2025",
				"way": "2",
				"pics": {"highResolutionH": "https://img.example/h.jpg", "lowResolution": "https://img.example/l.jpg"},
				"epsID": ["ep1", "ep2"]
			},
			{
				"pID": "900002",
				"name": "测试电影",
				"updateEP": "",
				"score": "",
				"year": "2024",
				"way": "1",
				"pics": {"lowResolution": "https://img.example/m.jpg"}
			}
		]
	}
}`

func TestFetchPage_ParsesItems(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"pageStart":       q.Get("pageStart"),
			"pageNum":         q.Get("pageNum"),
			"contDisplayType": q.Get("contDisplayType"),
			"payType":         q.Get("payType"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(categoryBody))
	}))

	job := domain.Job{CategoryID: "1001", PayType: "2"}
	items, err := client.FetchPage(context.Background(), job, 3)
	require.NoError(t, err)

	assert.Equal(t, "3", gotQuery["pageStart"])
	assert.Equal(t, "20", gotQuery["pageNum"])
	assert.Equal(t, "1001", gotQuery["contDisplayType"])
	assert.Equal(t, "2", gotQuery["payType"])

	require.Len(t, items, 2)
	assert.Equal(t, "900001", items[0].PID)
	assert.Equal(t, "更新至12集", items[0].UpdateEP)
	assert.InDelta(t, 8.4, items[0].Score, 1e-9)
	assert.Equal(t, "https://img.example/h.jpg", items[0].PicURL)
	assert.Equal(t, []string{"ep1", "ep2"}, items[0].EpisodeIDs)

	assert.Equal(t, "900002", items[1].PID)
	assert.Zero(t, items[1].Score)
	assert.Equal(t, "https://img.example/m.jpg", items[1].PicURL)
	assert.Empty(t, items[1].EpisodeIDs)
}

func TestFetchPage_EmptyPage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code": 200, "body": {"data": []}}`))
	}))

	items, err := client.FetchPage(context.Background(), domain.Job{CategoryID: "1000"}, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFetchPage_RetriesServerErrors(t *testing.T) {
	var calls int
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(categoryBody))
	}))

	items, err := client.FetchPage(context.Background(), domain.Job{CategoryID: "1000"}, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, items, 2)
}

func TestFetchPage_ClientErrorNotRetried(t *testing.T) {
	var calls int
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.FetchPage(context.Background(), domain.Job{CategoryID: "1000"}, 1)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestFetchPage_APIErrorCode(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code": 500, "message": "内部错误"}`))
	}))

	_, err := client.FetchPage(context.Background(), domain.Job{CategoryID: "1000"}, 1)
	assert.ErrorContains(t, err, "api error 500")
}

func TestFetchDetail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/program/v3/cont/playing-info/900001", r.URL.Path)
		_, _ = w.Write([]byte(`{"code": 200, "body": {"detail": "一部测试剧"}}`))
	}))

	detail, err := client.FetchDetail(context.Background(), "900001")
	require.NoError(t, err)
	assert.Equal(t, "一部测试剧", detail)
}

func TestFetchDetail_MissingBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code": 200}`))
	}))

	detail, err := client.FetchDetail(context.Background(), "900001")
	require.NoError(t, err)
	assert.Empty(t, detail)
}
