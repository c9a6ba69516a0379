package commands

import (
	"fmt"
	"os"
	"strconv"

	"lottowatch-backend/lib/scrapers/nationallottery"
	"lottowatch-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var parseFile *string

func init() {
	parseFile = parseCmd.Flags().String("file", "", "Parse a saved copy of the games page instead of fetching it.")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse [--file <path/to/page.html>]",
	Short: "Extracts and prints every game the page reports, without touching the store.",
	Run: func(cmd *cobra.Command, args []string) {
		config := readConfig()

		var content string
		if *parseFile != "" {
			raw, err := os.ReadFile(*parseFile)
			if err != nil {
				serviceutil.Fatal("failed to read page file", err)
			}
			content = string(raw)
		} else {
			source, err := nationallottery.NewHttpSource(config.PageUrl)
			if err != nil {
				serviceutil.Fatal("failed to initialize page source", err)
			}
			content, err = source.Get(cmd.Context())
			if err != nil {
				serviceutil.Fatal("failed to fetch games page", err)
			}
		}

		games, err := nationallottery.ParseGamesPage(cmd.Context(), content)
		if err != nil {
			serviceutil.Fatal("failed to parse games page", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Game", "Next draw", "Draw day", "Jackpot", "Price", "Roll count"})

		for _, id := range nationallottery.TrackedGames() {
			fields := games[id]

			drawDate := ""
			if fields.DrawDate != nil {
				drawDate = fields.DrawDate.Format("2006-01-02")
			}
			jackpot := ""
			if fields.Jackpot != nil {
				if fields.Jackpot.Ok {
					jackpot = "£" + formatInt(fields.Jackpot.Units)
				} else {
					jackpot = fmt.Sprintf("%s (unparsed)", fields.Jackpot.Raw)
				}
			}
			rollCount := ""
			if fields.RollCount != nil {
				rollCount = formatInt(*fields.RollCount)
			}

			t.AppendRow(table.Row{
				fields.DisplayName,
				drawDate,
				fields.DrawDay,
				jackpot,
				fields.Price,
				rollCount,
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
