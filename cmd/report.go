package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ravener/Flowtime/internal/timecalc"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show this week's aggregated time report",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
}

func runReport(cmd *cobra.Command, args []string) error {
	stats, now := loadStatistics()

	from, to := timecalc.WeekRange(now)
	label := timecalc.ISOWeekLabel(now)

	var worktime, breaktime int64
	var tracked int
	for _, d := range stats.Days() {
		date := d.Date()
		if date.Before(from) || date.After(to) {
			continue
		}
		worktime += d.Worktime()
		breaktime += d.Breaktime()
		tracked++
	}

	switch reportFormat {
	case "csv":
		fmt.Println("week,days,worktime_minutes,breaktime_minutes")
		fmt.Printf("%s,%d,%d,%d\n", label, tracked, worktime/60, breaktime/60)
	case "json":
		fmt.Println("{")
		fmt.Printf("  \"week\": %q,\n", label)
		fmt.Printf("  \"days\": %d,\n", tracked)
		fmt.Printf("  \"worktime_minutes\": %d,\n", worktime/60)
		fmt.Printf("  \"breaktime_minutes\": %d\n", breaktime/60)
		fmt.Println("}")
	default: // md
		fmt.Printf("Week %s\n", label)
		fmt.Println("--------------------------------")
		fmt.Printf("%-20s%s\n", "Worktime", timecalc.FormatDuration(worktime))
		fmt.Printf("%-20s%s\n", "Breaktime", timecalc.FormatDuration(breaktime))
		fmt.Println("--------------------------------")
		fmt.Printf("%-20s%d\n", "Days tracked", tracked)
	}

	return nil
}
