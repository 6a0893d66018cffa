package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// DiscordNotifier mirrors briefings to a Discord channel. It is an optional
// secondary channel; delivery failures here never affect the Telegram outcome.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(token, channelID string) (*DiscordNotifier, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize discord session: %w", err)
	}
	return &DiscordNotifier{session: dg, channelID: channelID}, nil
}

func (d *DiscordNotifier) Publish(_ context.Context, text string) bool {
	// Discord has a 2000 character limit
	const limit = 1900

	msgRunes := []rune(text)
	for i := 0; i < len(msgRunes); i += limit {
		end := i + limit
		if end > len(msgRunes) {
			end = len(msgRunes)
		}

		if _, err := d.session.ChannelMessageSend(d.channelID, string(msgRunes[i:end])); err != nil {
			slog.Error("Failed to send discord message", "error", err)
			return false
		}
	}

	return true
}

func (d *DiscordNotifier) Name() string {
	return "Discord"
}
