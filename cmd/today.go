package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ravener/Flowtime/internal/timecalc"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's tracked time",
	Args:  cobra.NoArgs,
	RunE:  runToday,
}

func runToday(cmd *cobra.Command, args []string) error {
	stats, _ := loadStatistics()

	day := stats.Today()
	if day.Worktime() == 0 && day.Breaktime() == 0 {
		fmt.Println("Nothing tracked yet today.")
	}
	fmt.Printf("Date: %s\n", day.Date().Format("2006-01-02"))
	fmt.Printf("Worktime:  %s\n", timecalc.FormatDurationHHMMSS(day.Worktime()))
	fmt.Printf("Breaktime: %s\n", timecalc.FormatDurationHHMMSS(day.Breaktime()))

	if label := stats.ProductiveDay(); label != "" {
		fmt.Printf("Most productive day: %s\n", label)
	}
	return nil
}
