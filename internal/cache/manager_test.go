package cache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feed = `{"type":"FeatureCollection","features":[]}`

func TestFetchDownloadsOnce(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Contains(t, r.Header.Get("User-Agent"), "dotglobe")
		w.Write([]byte(feed))
	}))
	defer srv.Close()

	m, err := NewManager(t.TempDir())
	require.NoError(t, err)
	file := LandFeed(srv.URL)

	data, err := m.Fetch(context.Background(), file)
	require.NoError(t, err)
	assert.JSONEq(t, feed, string(data))

	data, err = m.Fetch(context.Background(), file)
	require.NoError(t, err)
	assert.JSONEq(t, feed, string(data))

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.FileExists(t, m.GetDataPath(file.File))
}

func TestEnsureRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	m, err := NewManager(t.TempDir())
	require.NoError(t, err)
	file := LandFeed(srv.URL)

	_, err = m.Ensure(context.Background(), file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	_, statErr := os.Stat(m.GetDataPath(file.File))
	assert.True(t, os.IsNotExist(statErr), "failed download must not be cached")

	entries, err := os.ReadDir(m.GetCacheDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetcherHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feed))
	}))
	defer srv.Close()

	m, err := NewManager(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.Fetcher(LandFeed(srv.URL))(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchRecoversFromInvalidDownload(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.Write([]byte("<html>captive portal</html>"))
			return
		}
		w.Write([]byte(feed))
	}))
	defer srv.Close()

	m, err := NewManager(t.TempDir())
	require.NoError(t, err)
	file := LandFeed(srv.URL)

	_, err = m.Fetch(context.Background(), file)
	require.Error(t, err)
	assert.NoFileExists(t, m.GetDataPath(file.File))

	data, err := m.Fetch(context.Background(), file)
	require.NoError(t, err)
	assert.JSONEq(t, feed, string(data))
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestFetchDropsStaleInvalidCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feed))
	}))
	defer srv.Close()

	m, err := NewManager(t.TempDir())
	require.NoError(t, err)
	file := LandFeed(srv.URL)
	require.NoError(t, os.WriteFile(m.GetDataPath(file.File), []byte("<html>"), 0644))

	_, err = m.Fetch(context.Background(), file)
	require.Error(t, err)

	data, err := m.Fetch(context.Background(), file)
	require.NoError(t, err)
	assert.JSONEq(t, feed, string(data))
}

func TestInvalidateMissingFile(t *testing.T) {
	m, err := NewManager(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, m.Invalidate(LandFeed("http://example.invalid")))
}
