package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTavilySearch(t *testing.T) {
	var gotPayload tavilySearchRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		_ = json.NewEncoder(w).Encode(tavilySearchResponse{
			Answer: "Markets closed mixed.",
			Results: []tavilySearchResult{
				{Title: "Dow rises", URL: "https://example.com/dow", Content: "The Dow Jones rose 0.4% on Thursday."},
				{Title: "Nasdaq slips", URL: "https://example.com/nasdaq", Content: "Tech stocks faced pressure."},
			},
		})
	}))
	defer server.Close()

	c := NewTavilyClient("test-key")
	c.baseURL = server.URL

	out, err := c.Search(context.Background(), "US financial news")
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotPayload.APIKey)
	assert.Equal(t, "US financial news", gotPayload.Query)
	assert.Equal(t, "advanced", gotPayload.SearchDepth)
	assert.True(t, gotPayload.IncludeAnswer)
	assert.Equal(t, 5, gotPayload.MaxResults)

	assert.Contains(t, out, "ANSWER: Markets closed mixed.")
	assert.Contains(t, out, "1. Dow rises")
	assert.Contains(t, out, "URL: https://example.com/dow")
	assert.Contains(t, out, "2. Nasdaq slips")
}

func TestTavilySearchMissingKey(t *testing.T) {
	t.Parallel()
	c := NewTavilyClient("")

	_, err := c.Search(context.Background(), "anything")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TAVILY_API_KEY")
}

func TestTavilySearchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	c := NewTavilyClient("bad-key")
	c.baseURL = server.URL

	_, err := c.Search(context.Background(), "anything")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestTavilySearchEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(tavilySearchResponse{})
	}))
	defer server.Close()

	c := NewTavilyClient("test-key")
	c.baseURL = server.URL

	_, err := c.Search(context.Background(), "obscure query")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no results")
}

func TestFormatTavilyResultsCapsAtThree(t *testing.T) {
	t.Parallel()
	resp := tavilySearchResponse{
		Results: []tavilySearchResult{
			{Title: "One"}, {Title: "Two"}, {Title: "Three"}, {Title: "Four"},
		},
	}

	out := formatTavilyResults(resp)
	assert.Contains(t, out, "3. Three")
	assert.NotContains(t, out, "Four")
}
