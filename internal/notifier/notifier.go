package notifier

import (
	"context"
	"strings"
	"unicode/utf8"
)

// MaxMessageLength is Telegram's hard limit for a single sendMessage call.
const MaxMessageLength = 4096

// Notifier delivers a briefing to a channel. Publish reports success as a
// plain boolean; delivery errors are logged, never returned, so the caller's
// only decision is whether to fall back to local display.
type Notifier interface {
	Publish(ctx context.Context, text string) bool
	Name() string
}

// SplitMessage splits text into ordered parts of at most limit bytes each.
// It prefers to cut at the last newline inside the window, then the last
// space, and hard-cuts at the limit when a part contains neither. Leading
// whitespace is stripped from the remainder after every cut.
func SplitMessage(text string, limit int) []string {
	var parts []string
	for len(text) > limit {
		index := strings.LastIndex(text[:limit], "\n")
		if index <= 0 {
			index = strings.LastIndex(text[:limit], " ")
		}
		if index <= 0 {
			// No usable boundary, cut mid-word but never mid-rune: the
			// translated briefings are mostly multi-byte text.
			index = limit
			for index > 0 && !utf8.RuneStart(text[index]) {
				index--
			}
			if index == 0 {
				index = limit
			}
		}
		parts = append(parts, text[:index])
		text = strings.TrimLeft(text[index:], " \t\n\r")
	}
	if len(text) > 0 {
		parts = append(parts, text)
	}
	return parts
}
