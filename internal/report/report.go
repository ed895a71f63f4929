package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Egor213/LogAnalyzer/internal/domain"
	errorsUtils "github.com/Egor213/LogAnalyzer/pkg/errors"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// WriteHourlyCounts dumps the hourly table as "Hr: Count" followed by one
// "hour: count" line per slot.
func WriteHourlyCounts(w io.Writer, counts []int) error {
	if _, err := fmt.Fprintln(w, "Hr: Count"); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	for hour, count := range counts {
		if _, err := fmt.Fprintf(w, "%d: %d\n", hour, count); err != nil {
			return errorsUtils.WrapPathErr(err)
		}
	}
	return nil
}

func WriteSummary(w io.Writer, r domain.Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Statistic", "Value"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(summaryRows(r))
	table.Render()
}

func summaryRows(r domain.Report) [][]string {
	generated := "-"
	if !r.GeneratedAt.IsZero() {
		generated = r.GeneratedAt.Format(time.RFC3339)
	}

	return [][]string{
		{"Source", r.Source},
		{"Generated at", generated},
		{"Number of accesses", humanize.Comma(int64(r.NumberOfAccesses))},
		{"Skipped lines", humanize.Comma(int64(r.Skipped))},
		{"Busiest hour", strconv.Itoa(r.BusiestHour)},
		{"Quietest hour", strconv.Itoa(r.QuietestHour)},
		{"Busiest two hours", fmt.Sprintf("%d-%d", r.BusiestTwoHour, (r.BusiestTwoHour+2)%24)},
		{"Busiest day", strconv.Itoa(r.BusiestDay)},
		{"Quietest day", strconv.Itoa(r.QuietestDay)},
		{"Busiest month", strconv.Itoa(r.BusiestMonth)},
		{"Quietest month", strconv.Itoa(r.QuietestMonth)},
		{"Total accesses per month", humanize.Comma(int64(r.TotalAccessesPerMonth))},
		{"Average accesses per month", humanize.Comma(int64(r.AverageAccessesPerMonth))},
	}
}
