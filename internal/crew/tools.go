package crew

import (
	"context"
	"fmt"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"marketbrief/internal/tools"
)

// toolResult wraps a tool outcome for the model. Failures are reported as a
// payload rather than an error so the researcher can try another source.
func toolResult(text string, err error) (map[string]interface{}, error) {
	if err != nil {
		return map[string]interface{}{"error": err.Error()}, nil
	}
	return map[string]interface{}{"result": text}, nil
}

// researchTools builds the tool set available to the researcher stage.
func (c *Crew) researchTools() []tool.Tool {
	tavily, _ := functiontool.New(
		functiontool.Config{
			Name:        "tavily_search",
			Description: "Search the web for relevant information using the Tavily API.",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			return c.tavilySearch(ctx, args)
		})

	web, _ := functiontool.New(
		functiontool.Config{
			Name:        "web_search",
			Description: "Keyless DuckDuckGo web search. Use when tavily_search is unavailable.",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			return c.webSearch(ctx, args)
		})

	headlines, _ := functiontool.New(
		functiontool.Config{
			Name:        "fetch_headlines",
			Description: "Fetch the latest headlines from the configured financial news feeds.",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			return c.fetchHeadlines(ctx, args)
		})

	return []tool.Tool{tavily, web, headlines}
}

func (c *Crew) tavilySearch(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
	query, ok := args["query"].(string)
	if !ok || query == "" {
		return toolResult("", fmt.Errorf("query argument is required"))
	}
	return toolResult(c.search.Search(ctx, query))
}

func (c *Crew) webSearch(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
	query, ok := args["query"].(string)
	if !ok || query == "" {
		return toolResult("", fmt.Errorf("query argument is required"))
	}
	results, err := tools.DuckDuckGoSearch(ctx, query, 5)
	if err != nil {
		return toolResult("", err)
	}
	return toolResult(tools.FormatSearchResults(results), nil)
}

func (c *Crew) fetchHeadlines(ctx context.Context, _ map[string]interface{}) (map[string]interface{}, error) {
	return toolResult(tools.FetchHeadlines(ctx, c.feeds, 5))
}
