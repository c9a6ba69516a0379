package main

import (
	"context"
	"log/slog"
	"os"

	"lottowatch-backend/lib/configutil"
	"lottowatch-backend/lib/scrapers/nationallottery"
	"lottowatch-backend/lib/serviceutil"
	"lottowatch-backend/lib/telemetry"
	"lottowatch-backend/services/watcher"
	"lottowatch-backend/services/watcher/notify"
	"lottowatch-backend/services/watcher/store"
)

type Config struct {
	PageUrl string        `json:"page_url"`
	Verbose bool          `json:"verbose"`
	Games   []string      `json:"games"`
	Store   store.Config  `json:"store"`
	Notify  notify.Config `json:"notify"`
}

// one watch cycle per invocation, scheduling is left to cron
func main() {
	ctx := serviceutil.SignalContext()

	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	if webhook := os.Getenv("WEBHOOK"); webhook != "" {
		config.Notify.Webhook = webhook
	}

	telemetry.InitSlog(config.Verbose)

	t, err := telemetry.SetupFromEnv(ctx, "watcher")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	if err == nil {
		defer t.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)
	}

	source, err := nationallottery.NewHttpSource(config.PageUrl)
	if err != nil {
		serviceutil.Fatal("failed to initialize page source", err)
	}

	tracked := make([]nationallottery.GameID, len(config.Games))
	for i, id := range config.Games {
		tracked[i] = nationallottery.GameID(id)
	}
	fetcher := nationallottery.NewFetcher(source, tracked)

	repository, err := config.Store.Open()
	if err != nil {
		serviceutil.Fatal("failed to open snapshot store", err)
	}

	service := watcher.NewService(fetcher, repository, config.Notify.Notifiers())
	err = service.Run(ctx)
	if err != nil {
		serviceutil.Fatal("watch run failed", err)
	}

	slog.Info("watch run complete")
}
