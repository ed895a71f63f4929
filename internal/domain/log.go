package domain

import (
	"fmt"
	"time"
)

// LogEntry is one access-log line reduced to the fields the analyzer buckets on.
type LogEntry struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

func (e LogEntry) GetHour() int  { return e.Hour }
func (e LogEntry) GetDay() int   { return e.Day }
func (e LogEntry) GetMonth() int { return e.Month }

// String renders the entry in weblog format: "year month day hour minute".
func (e LogEntry) String() string {
	return fmt.Sprintf("%d %02d %02d %02d %02d", e.Year, e.Month, e.Day, e.Hour, e.Minute)
}

type Period string

const (
	PeriodHour  Period = "hour"
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
)

type PeriodCount struct {
	Period int `json:"period"`
	Count  int `json:"count"`
}

type Report struct {
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`

	NumberOfAccesses int `json:"number_of_accesses"`
	Skipped          int `json:"skipped"`
	BusiestHour      int `json:"busiest_hour"`
	QuietestHour     int `json:"quietest_hour"`
	BusiestTwoHour   int `json:"busiest_two_hour"`

	BusiestDay  int `json:"busiest_day"`
	QuietestDay int `json:"quietest_day"`

	BusiestMonth            int `json:"busiest_month"`
	QuietestMonth           int `json:"quietest_month"`
	TotalAccessesPerMonth   int `json:"total_accesses_per_month"`
	AverageAccessesPerMonth int `json:"average_accesses_per_month"`

	Hourly  []int `json:"hourly"`
	Daily   []int `json:"daily"`
	Monthly []int `json:"monthly"`
}

// Counts returns the table for p as period/count rows.
func (r Report) Counts(p Period) []PeriodCount {
	var table []int
	switch p {
	case PeriodHour:
		table = r.Hourly
	case PeriodDay:
		table = r.Daily
	case PeriodMonth:
		table = r.Monthly
	}

	rows := make([]PeriodCount, 0, len(table))
	for i, c := range table {
		rows = append(rows, PeriodCount{Period: i, Count: c})
	}
	return rows
}
