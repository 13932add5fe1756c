package retriever

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/redis"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/retrieve", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req fetchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "how are triggers converted", req.Query)

		_, _ = w.Write([]byte(`{"context":"Triggers are rewritten as PL/SQL.","matches":3,"debug":{"k":1}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "/retrieve", time.Second, testLogger(), nil)
	rc := c.Fetch(context.Background(), "how are triggers converted")

	require.NotNil(t, rc)
	assert.True(t, rc.HasText())
	assert.Equal(t, "Triggers are rewritten as PL/SQL.", rc.Text)
	require.NotNil(t, rc.Matches)
	assert.Equal(t, 3, *rc.Matches)
	assert.NotNil(t, rc.Debug)
}

func TestFetchMissingContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"matches":"n/a"}`))
	}))
	defer srv.Close()

	rc := NewClient(srv.URL, "retrieve", time.Second, testLogger(), nil).Fetch(context.Background(), "q")

	require.NotNil(t, rc)
	assert.False(t, rc.HasText())
	assert.Nil(t, rc.Matches)
}

func TestFetchSoftFailures(t *testing.T) {
	t.Run("non-success status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()
		assert.Nil(t, NewClient(srv.URL, "/retrieve", time.Second, testLogger(), nil).Fetch(context.Background(), "q"))
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()
		assert.Nil(t, NewClient(srv.URL, "/retrieve", time.Second, testLogger(), nil).Fetch(context.Background(), "q"))
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()
		assert.Nil(t, NewClient(srv.URL, "/retrieve", 20*time.Millisecond, testLogger(), nil).Fetch(context.Background(), "q"))
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()
		assert.Nil(t, NewClient(url, "/retrieve", time.Second, testLogger(), nil).Fetch(context.Background(), "q"))
	})
}

type memRedis struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemRedis() *memRedis {
	return &memRedis{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memRedis) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return nil, redis.ErrNil
	}
	return b, nil
}

func (m *memRedis) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memRedis) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memRedis) Ping(context.Context) error { return nil }
func (m *memRedis) Close() error              { return nil }

func TestFetchWithCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"context":"Cached text","matches":1}`))
	}))
	defer srv.Close()

	rdb := newMemRedis()
	c := NewClient(srv.URL, "/retrieve", time.Second, testLogger(), NewRedisCache(rdb, 600, testLogger()))

	first := c.Fetch(context.Background(), "Cache me")
	second := c.Fetch(context.Background(), "  cache ME ")

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, first.Text, second.Text)
	require.NotNil(t, second.Matches)
	assert.Equal(t, 1, *second.Matches)

	ttl := rdb.ttls[cacheKey("cache me")]
	assert.GreaterOrEqual(t, ttl, 600*time.Second)
}

func TestFetchDoesNotCacheEmptyContext(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "/retrieve", time.Second, testLogger(), NewRedisCache(newMemRedis(), 600, testLogger()))
	c.Fetch(context.Background(), "q")
	c.Fetch(context.Background(), "q")

	assert.Equal(t, int32(2), calls.Load())
}
