package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8" ?>
<rss version="2.0">
<channel>
 <title>Test Markets Feed</title>
 <item>
  <title>Dow closes higher</title>
  <link>http://example.com/dow</link>
  <description>The Dow rose 0.4%.</description>
 </item>
 <item>
  <title>Oil climbs on supply concerns</title>
  <link>http://example.com/oil</link>
  <description>Crude gained 2.3%.</description>
 </item>
</channel>
</rss>`

func TestFetchRSS(t *testing.T) {
	t.Setenv("ALLOW_LOCAL_URLS", "true")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testFeed))
	}))
	defer server.Close()

	items, err := FetchRSS(context.Background(), server.URL)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Dow closes higher", items[0].Title)
	assert.Equal(t, "http://example.com/dow", items[0].Link)
}

func TestFetchHeadlines(t *testing.T) {
	t.Setenv("ALLOW_LOCAL_URLS", "true")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testFeed))
	}))
	defer server.Close()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer dead.Close()

	t.Run("aggregates and skips dead feeds", func(t *testing.T) {
		out, err := FetchHeadlines(context.Background(), []string{dead.URL, server.URL}, 5)
		assert.NoError(t, err)
		assert.Contains(t, out, "Dow closes higher")
		assert.Contains(t, out, "http://example.com/oil")
	})

	t.Run("respects per-feed cap", func(t *testing.T) {
		out, err := FetchHeadlines(context.Background(), []string{server.URL}, 1)
		assert.NoError(t, err)
		assert.Contains(t, out, "Dow closes higher")
		assert.NotContains(t, out, "Oil climbs")
	})

	t.Run("errors when nothing is reachable", func(t *testing.T) {
		_, err := FetchHeadlines(context.Background(), []string{dead.URL}, 5)
		assert.Error(t, err)
	})
}
