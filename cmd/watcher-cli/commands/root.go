package commands

import (
	"context"
	"fmt"
	"os"

	"lottowatch-backend/lib/configutil"
	"lottowatch-backend/services/watcher/notify"
	"lottowatch-backend/services/watcher/store"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "watcher-cli",
	Short: "watcher-cli runs and inspects the lottery games watcher.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type Config struct {
	PageUrl string        `json:"page_url"`
	Verbose bool          `json:"verbose"`
	Games   []string      `json:"games"`
	Store   store.Config  `json:"store"`
	Notify  notify.Config `json:"notify"`
}

func readConfig() Config {
	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	return config
}
