package notifier

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// ConsoleNotifier writes the briefing to a local writer. It is the fallback
// display when channel delivery fails, so Publish always succeeds.
type ConsoleNotifier struct {
	out io.Writer
}

func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{out: os.Stdout}
}

func (c *ConsoleNotifier) Publish(_ context.Context, text string) bool {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(c.out, "%s\nDAILY MARKETS BRIEFING (undelivered)\n%s\n%s\n%s\n", rule, rule, text, rule)
	return true
}

func (c *ConsoleNotifier) Name() string {
	return "Console"
}
