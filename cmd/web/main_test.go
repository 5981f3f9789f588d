package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"butuhkidul/internal/common/pagination"
	"butuhkidul/internal/config"
	"butuhkidul/internal/handler/http/middleware"
	"butuhkidul/internal/infra/villageapi"
)

// upstreamRoutes は村 API の最小限のフェイク応答
var upstreamRoutes = map[string]string{
	"/v1/villages": `{"data":{"villages":[{"id":"v1","name":"Butuh Kidul","address":"Kec. Kalikajar"}]},"success":true}`,
	"/v1/articles": `{"data":{"articles":[
		{"id":"a1","title":"Musyawarah Desa","content":"Warga **berkumpul** di balai desa.","slug":"musyawarah-desa","active":true,"published_at":"2025-01-10T08:00:00Z","created_at":"2025-01-09T08:00:00Z","created_by":"admin"}
	],"total_data":1,"total_page":1}}`,
	"/v1/articles/musyawarah-desa": `{"data":{"id":"a1","title":"Musyawarah Desa","content":"# Hasil\n\nDisepakati.","slug":"musyawarah-desa","active":true,"created_at":"2025-01-09T08:00:00Z","created_by":"admin"}}`,
	"/v1/units":                    `{"data":{"units":[{"id":"u1","name":"Badan Permusyawaratan Desa","created_at":"","created_by":""}]}}`,
	"/v1/units-members":            `{"data":{"unit_members":[{"id":"m1","name":"Jane Doe","position":"Ketua","unit_id":"u1","unit_name":"Badan Permusyawaratan Desa","created_at":"","created_by":""}]}}`,
	"/v1/populations":              `{"data":{"population":[{"hamlet":"Krajan","male":10,"female":12,"households":7,"total_population":22,"toddlers":2,"children":3,"elderly":4,"wives":5}]}}`,
}

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := upstreamRoutes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T, rateLimit config.RateLimitConfig) (*httptest.Server, *ServerComponents) {
	t.Helper()
	upstream := newUpstream(t)

	api := villageapi.DefaultConfig()
	api.BaseURL = upstream.URL

	cfg := &appConfig{
		App: &config.AppConfig{
			Version:        "test",
			RequestTimeout: 5 * time.Second,
			RateLimit:      rateLimit,
			Probe:          config.ProbeConfig{Schedule: "@every 1h", Timeout: time.Second},
		},
		API:        api,
		Site:       config.DefaultSiteConfig(),
		Proxy:      &middleware.TrustedProxyConfig{},
		Pagination: pagination.DefaultConfig(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	components := setupServer(logger, cfg)
	srv := httptest.NewServer(components.Handler)
	t.Cleanup(srv.Close)
	return srv, components
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestServer_Pages(t *testing.T) {
	srv, _ := newTestServer(t, config.RateLimitConfig{})

	t.Run("home", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/pages/home")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "public, max-age=300, s-maxage=600", resp.Header.Get("Cache-Control"))
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
		assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))

		var home map[string]json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(body), &home))
		assert.Contains(t, string(home["village_data"]), "Butuh Kidul")
		assert.Contains(t, string(home["articles_data"]), "musyawarah-desa")
		assert.Equal(t, "null", string(home["village_error"]))
		assert.Equal(t, "null", string(home["articles_error"]))
	})

	t.Run("organization by member slug", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/pages/organizations/jane-doe")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `"type":"member"`)
		assert.Contains(t, body, `"organization_members":[]`)
	})

	t.Run("organization by unit slug", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/pages/organizations/badan-permusyawaratan-desa")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `"type":"organization"`)
	})

	t.Run("unknown slug", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/pages/organizations/nobody")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Member or organization not found: nobody"}`, body)
	})

	t.Run("article detail", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/pages/articles/musyawarah-desa")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var article struct {
			ContentHTML string `json:"content_html"`
			Excerpt     string `json:"excerpt"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &article))
		assert.Contains(t, article.ContentHTML, "<h1>Hasil</h1>")
		assert.Equal(t, "Hasil\nDisepakati.", article.Excerpt)
	})

	t.Run("missing article", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/pages/articles/tidak-ada")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Article not found"}`, body)
	})

	t.Run("invalid page", func(t *testing.T) {
		resp, _ := get(t, srv.URL+"/pages/articles?page=-1")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("population", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/pages/population")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `"total_population":22`)
	})

	t.Run("feed", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/feed.xml")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "application/rss+xml"))

		feed, err := gofeed.NewParser().ParseString(body)
		require.NoError(t, err)
		require.Len(t, feed.Items, 1)
		assert.Equal(t, "https://butuhkidul.my.id/articles/musyawarah-desa", feed.Items[0].Link)
	})

	t.Run("unknown route", func(t *testing.T) {
		resp, _ := get(t, srv.URL+"/wp-login.php")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("post rejected", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/pages/home", "application/json", strings.NewReader("{}"))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestServer_ReadinessFollowsProbe(t *testing.T) {
	srv, components := newTestServer(t, config.RateLimitConfig{})

	resp, _ := get(t, srv.URL+"/ready")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, "not ready before the first probe")

	require.NoError(t, components.Probe.Check(context.Background()))

	resp, _ = get(t, srv.URL+"/ready")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := get(t, srv.URL+"/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"status":"healthy"`)
	assert.Contains(t, body, `"version":"test"`)
}

func TestServer_RateLimit(t *testing.T) {
	srv, components := newTestServer(t, config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2, CleanupInterval: time.Minute})
	require.NotNil(t, components.Limiter)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, _ := get(t, srv.URL+"/live")
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
}
