package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/raythurman2386/cronlib"

	"marketbrief/internal/config"
	"marketbrief/internal/crew"
	"marketbrief/internal/notifier"
)

func main() {
	once := flag.Bool("once", false, "generate and deliver one briefing, then exit")
	flag.Parse()

	// Root context for the application
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	c, err := crew.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create crew: %v", err)
	}

	telegram, err := notifier.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChannelID)
	if err != nil {
		log.Fatalf("Failed to create telegram notifier: %v", err)
	}

	var mirror notifier.Notifier
	if cfg.DiscordBotToken != "" && cfg.DiscordChannelID != "" {
		discord, err := notifier.NewDiscordNotifier(cfg.DiscordBotToken, cfg.DiscordChannelID)
		if err != nil {
			slog.Error("Failed to create discord notifier", "error", err)
		} else {
			mirror = discord
		}
	}

	console := notifier.NewConsoleNotifier()

	briefingFunc := func(ctx context.Context) {
		slog.Info("Starting daily briefing run")

		brief, err := c.Run(ctx)
		if err != nil {
			slog.Error("Briefing run failed", "error", err)
			return
		}

		if !telegram.Publish(ctx, brief) {
			// Channel delivery failed; show the briefing locally instead.
			console.Publish(ctx, brief)
		}

		if mirror != nil && !mirror.Publish(ctx, brief) {
			slog.Error("Mirror delivery failed", "channel", mirror.Name())
		}
	}

	if *once {
		briefingFunc(ctx)
		return
	}

	scheduler := cronlib.NewCron()
	_, err = scheduler.AddJobWithOptions(cfg.Schedule, briefingFunc, cronlib.JobOptions{
		Overlap: cronlib.OverlapForbid, // Skip if previous one is still running
	})
	if err != nil {
		log.Fatalf("Failed to schedule briefing: %v", err)
	}

	scheduler.Start()
	slog.Info("marketbrief started", "schedule", cfg.Schedule)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	slog.Info("Shutting down marketbrief")
	scheduler.Stop()
	cancel()
}
