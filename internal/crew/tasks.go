package crew

import (
	"fmt"
	"time"
)

// stage describes one step of the briefing workflow: the agent persona and
// the task it performs. Stages run strictly in order, each one receiving the
// previous stage's output as context.
type stage struct {
	name      string
	role      string
	goal      string
	backstory string
	task      string
	expected  string
	useTools  bool
}

func (s stage) instruction() string {
	return fmt.Sprintf("You are a %s.\n\nYour goal: %s\n\n%s\n\nExpected output: %s",
		s.role, s.goal, s.backstory, s.expected)
}

// searchDate returns the previous trading day the researcher should cover.
func searchDate(now time.Time) string {
	return now.AddDate(0, 0, -1).Format("2006-01-02")
}

func stages(date string) []stage {
	return []stage{
		{
			name: "researcher",
			role: "Financial News Researcher",
			goal: "Find the most relevant US financial news from the last trading day",
			backstory: "You are an expert financial researcher with deep knowledge of markets and economics. " +
				"You know how to find the most impactful news that moves markets.",
			task: fmt.Sprintf("Search for the most important US financial news and market movements from %s. "+
				"Focus on major indices (DJIA, S&P 500, NASDAQ), key economic indicators, "+
				"significant corporate earnings, and Federal Reserve announcements. "+
				"Use your search and headline tools to find relevant information from reputable "+
				"financial sources like Bloomberg, Reuters, CNBC, and Financial Times.", date),
			expected: "A comprehensive list of the day's most important financial news with sources and URLs.",
			useTools: true,
		},
		{
			name: "analyst",
			role: "Financial Markets Analyst",
			goal: "Create a concise summary (under 500 words) of the most important financial news and trading activity",
			backstory: "You are a seasoned financial analyst who can distill complex market information into " +
				"clear, actionable insights for traders and investors.",
			task: "Create a concise summary (under 500 words) of the financial markets based on the research. " +
				"Highlight the most important news, market movements, and potential implications. " +
				"Structure the summary with clear sections: Market Overview, Key News, and Outlook. " +
				"Include key data points like index performance percentages.",
			expected: "A well-structured financial markets summary under 500 words with clear sections.",
		},
		{
			name: "formatter",
			role: "Content Formatter for Telegram",
			goal: "Format the financial summary for optimal presentation on Telegram with proper formatting",
			backstory: "You are a content specialist who knows how to format messages for Telegram with " +
				"proper HTML formatting, emojis, and structure that works well on mobile devices.",
			task: "Format the financial summary for Telegram using HTML formatting. " +
				"Use bold for headings, emojis to make it visually appealing, and proper line breaks. " +
				"Ensure the message is optimized for mobile viewing. " +
				"Include relevant emojis like 📈, 📉, 💰, 🏦 to make it engaging.",
			expected: "A beautifully formatted Telegram message with HTML tags and emojis.",
		},
		{
			name: "translator",
			role: "Multilingual Financial Translator",
			goal: "Translate financial summaries into Arabic, Hindi, and Hebrew while maintaining format and accuracy",
			backstory: "You are a professional translator specializing in financial content with fluency in " +
				"Arabic, Hindi, Hebrew, and English. You understand financial terminology in all these languages.",
			task: "Translate the formatted financial summary into Arabic, Hindi, and Hebrew. " +
				"Maintain the original format, structure, and financial terminology accuracy. " +
				"Provide all three translations along with the original English version.",
			expected: "The financial summary translated into Arabic, Hindi, and Hebrew while maintaining the original format.",
		},
	}
}
