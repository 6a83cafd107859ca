package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-blog/internal/config"
)

func newCacheEnv(t *testing.T) (*echo.Echo, *redis.Client, config.CacheConfig) {
	t.Helper()
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(s.Close)

	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.CacheConfig{
		Enabled: true,
		Methods: map[string]bool{"GET": true},
		TTL:     time.Minute,
		Prefix:  "test",
	}
	return echo.New(), rdb, cfg
}

func TestRedisCacheHit(t *testing.T) {
	e, rdb, cfg := newCacheEnv(t)

	hits := 0
	h := NewRedisCache(cfg, rdb)(func(c echo.Context) error {
		hits++
		return c.JSON(http.StatusOK, echo.Map{"items": []string{"hello"}})
	})
	e.GET("/", func(c echo.Context) error { return h(c) })

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, hits, "second response came from the cache")
}

func TestRedisCacheKeysOnConcretePath(t *testing.T) {
	e, rdb, cfg := newCacheEnv(t)

	e.GET("/blog/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "post-"+c.Param("id"))
	}, NewRedisCache(cfg, rdb))

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/blog/1", nil))
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "post-1", first.Body.String())

	// A different id on the same route must not reuse the first entry.
	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/blog/2", nil))
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "MISS", second.Header().Get("X-Cache"))
	assert.Equal(t, "post-2", second.Body.String())

	// Repeating the first id is still a hit with its own body.
	again := httptest.NewRecorder()
	e.ServeHTTP(again, httptest.NewRequest(http.MethodGet, "/blog/1", nil))
	require.Equal(t, http.StatusOK, again.Code)
	assert.Equal(t, "HIT", again.Header().Get("X-Cache"))
	assert.Equal(t, "post-1", again.Body.String())
}

func TestRedisCacheSkipsUncachedMethods(t *testing.T) {
	e, rdb, cfg := newCacheEnv(t)

	hits := 0
	h := NewRedisCache(cfg, rdb)(func(c echo.Context) error {
		hits++
		return c.NoContent(http.StatusOK)
	})
	e.POST("/", func(c echo.Context) error { return h(c) })

	for range 2 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 2, hits)
}

func TestRedisCacheDisabledWithoutClient(t *testing.T) {
	e, _, cfg := newCacheEnv(t)

	hits := 0
	h := NewRedisCache(cfg, nil)(func(c echo.Context) error {
		hits++
		return c.NoContent(http.StatusOK)
	})
	e.GET("/", func(c echo.Context) error { return h(c) })

	for range 2 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 2, hits, "nil client means pass-through")
}
