package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmcdole/gofeed"
)

// FinanceFeeds are the default headline sources for the research agent.
var FinanceFeeds = []string{
	"https://feeds.content.dowjones.io/public/rss/mw_topstories",
	"https://www.cnbc.com/id/100003114/device/rss/rss.html",
	"https://finance.yahoo.com/news/rssindex",
}

type RSSItem struct {
	Title       string
	Link        string
	Description string
}

func FetchRSS(ctx context.Context, url string) ([]RSSItem, error) {
	fp := gofeed.NewParser()
	feed, err := fp.ParseURLWithContext(url, ctx)
	if err != nil {
		// If it's a 404 or other HTTP error, we want the agent to know so it can try another URL.
		return nil, fmt.Errorf("RSS source at %s returned an error: %w", url, err)
	}

	var items []RSSItem
	for _, item := range feed.Items {
		items = append(items, RSSItem{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
		})
	}

	return items, nil
}

// FetchHeadlines aggregates the latest items from every configured finance
// feed. Unreachable feeds are logged and skipped; the call only fails when
// no feed produced anything.
func FetchHeadlines(ctx context.Context, feeds []string, perFeed int) (string, error) {
	if perFeed <= 0 {
		perFeed = 5
	}

	var sb strings.Builder
	for _, feedURL := range feeds {
		items, err := FetchRSS(ctx, feedURL)
		if err != nil {
			slog.Warn("Skipping unreachable feed", "url", feedURL, "error", err)
			continue
		}

		for i, item := range items {
			if i >= perFeed {
				break
			}
			sb.WriteString(fmt.Sprintf("- %s\n  %s\n", item.Title, item.Link))
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no headlines available from any configured feed")
	}
	return sb.String(), nil
}
