package commands

import (
	"os"

	"lottowatch-backend/lib/scrapers/nationallottery"
	"lottowatch-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Prints the last persisted snapshot of every game.",
	Run: func(cmd *cobra.Command, args []string) {
		config := readConfig()

		repository, err := config.Store.Open()
		if err != nil {
			serviceutil.Fatal("failed to open snapshot store", err)
		}
		games, err := repository.GetAll(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to read snapshots", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Game", "Next draw", "Jackpot", "Roll count"})

		for _, id := range nationallottery.TrackedGames() {
			game, ok := games[id]
			if !ok {
				continue
			}
			rollCount := ""
			if game.RollCount != nil {
				rollCount = formatInt(*game.RollCount)
			}
			t.AppendRow(table.Row{
				nationallottery.DisplayNames[id],
				game.NextDrawDate.Format("2006-01-02"),
				"£" + formatInt(game.Jackpot),
				rollCount,
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
