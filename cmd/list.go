package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ravener/Flowtime/internal/model"
	"github.com/ravener/Flowtime/internal/timecalc"
)

var listWeek bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked days",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listWeek, "week", false, "Show only this week's days")
}

func runList(cmd *cobra.Command, args []string) error {
	stats, now := loadStatistics()

	days := stats.Days()
	if listWeek {
		from, to := timecalc.WeekRange(now)
		var filtered []model.Day
		for _, d := range days {
			date := d.Date()
			if !date.Before(from) && !date.After(to) {
				filtered = append(filtered, d)
			}
		}
		days = filtered
	}

	printDays(days)
	return nil
}

// printDays prints one line per day record in document order.
func printDays(days []model.Day) {
	if len(days) == 0 {
		fmt.Println("No days found.")
		return
	}

	for _, d := range days {
		fmt.Printf("%s  work %-9s break %s\n",
			d.Date().Format("2006-01-02"),
			timecalc.FormatDuration(d.Worktime()),
			timecalc.FormatDuration(d.Breaktime()),
		)
	}
}
