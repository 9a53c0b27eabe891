package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ravener/Flowtime/internal/model"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full day history to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, md")
}

// exportedDay is the wire shape of one day record.
type exportedDay struct {
	Date             string `json:"date"`
	WorktimeSeconds  int64  `json:"worktime_seconds"`
	BreaktimeSeconds int64  `json:"breaktime_seconds"`
}

func runExport(cmd *cobra.Command, args []string) error {
	stats, _ := loadStatistics()
	days := stats.Days()

	switch exportFormat {
	case "json":
		out := make([]exportedDay, 0, len(days))
		for _, d := range days {
			out = append(out, exportedDay{
				Date:             d.Date().Format("2006-01-02"),
				WorktimeSeconds:  d.Worktime(),
				BreaktimeSeconds: d.Breaktime(),
			})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	case "md":
		printDays(days)
	default: // csv
		printCSV(days)
	}

	return nil
}

func printCSV(days []model.Day) {
	fmt.Println("date,worktime_seconds,breaktime_seconds")
	for _, d := range days {
		fmt.Printf("%s,%d,%d\n",
			csvEscape(d.Date().Format("2006-01-02")),
			d.Worktime(),
			d.Breaktime(),
		)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	quoted := ""
	for _, c := range s {
		if c == '"' {
			quoted += `""`
		} else {
			quoted += string(c)
		}
	}
	return `"` + quoted + `"`
}
