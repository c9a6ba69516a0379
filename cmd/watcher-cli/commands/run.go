package commands

import (
	"log/slog"
	"os"
	"time"

	"lottowatch-backend/lib/scrapers/nationallottery"
	"lottowatch-backend/lib/serviceutil"
	"lottowatch-backend/services/watcher"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs one watch cycle: fetch, compare, persist, notify.",
	Run: func(cmd *cobra.Command, args []string) {
		config := readConfig()
		if webhook := os.Getenv("WEBHOOK"); webhook != "" {
			config.Notify.Webhook = webhook
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

		t1 := time.Now()
		err = service.Run(cmd.Context())
		if err != nil {
			serviceutil.Fatal("watch run failed", err)
		}
		slog.Info("watch run complete", "seconds", time.Since(t1).Seconds())
	},
}
