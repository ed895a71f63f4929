// Package analyzer counts web accesses per hour, day and month and answers
// busiest/quietest queries over the counts.
//
// Tables have fixed sizes: 24 hour slots, 29 day slots and 13 month slots.
// A pass fails with ErrIndexOutOfRange on a value outside its table, so days
// 29-31 cannot be analyzed. Queries read whatever the last pass left in the
// table and return degenerate results (index 0, total 0) before any pass.
package analyzer

import (
	"fmt"
	"io"

	"github.com/Egor213/LogAnalyzer/internal/domain"
	errorsUtils "github.com/Egor213/LogAnalyzer/pkg/errors"
)

const (
	HoursInDay = 24
	DaySlots   = 29
	MonthSlots = 13
)

type Source interface {
	Reset() error
	HasNext() bool
	Next() (domain.LogEntry, error)
	Close() error
}

// skipCounter is implemented by sources that drop malformed entries instead
// of returning them as errors.
type skipCounter interface {
	Skipped() int
}

// Provider opens the source identified by name.
type Provider func(name string) (Source, error)

type Analyzer struct {
	name   string
	source Source

	hourly  CountTable
	daily   CountTable
	monthly CountTable
}

func New(name string, provider Provider) (*Analyzer, error) {
	source, err := provider(name)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, name, err))
	}

	return &Analyzer{
		name:    name,
		source:  source,
		hourly:  newCountTable(HoursInDay),
		daily:   newCountTable(DaySlots),
		monthly: newCountTable(MonthSlots),
	}, nil
}

func (a *Analyzer) Name() string {
	return a.name
}

func (a *Analyzer) AnalyzeHourly() error {
	return a.analyze(domain.PeriodHour, a.hourly, domain.LogEntry.GetHour)
}

func (a *Analyzer) AnalyzeDaily() error {
	return a.analyze(domain.PeriodDay, a.daily, domain.LogEntry.GetDay)
}

func (a *Analyzer) AnalyzeMonthly() error {
	return a.analyze(domain.PeriodMonth, a.monthly, domain.LogEntry.GetMonth)
}

func (a *Analyzer) analyze(p domain.Period, table CountTable, value func(domain.LogEntry) int) error {
	if a.source == nil {
		return errorsUtils.WrapPathErr(ErrClosed)
	}
	table.reset()
	if err := a.source.Reset(); err != nil {
		return errorsUtils.WrapPathErrf(err, "reset %s", a.name)
	}

	for a.source.HasNext() {
		entry, err := a.source.Next()
		if err != nil {
			return errorsUtils.WrapPathErrf(err, "%s pass", p)
		}

		v := value(entry)
		if !table.inRange(v) {
			return errorsUtils.WrapPathErr(fmt.Errorf("%w: %s %d not in [0,%d) for entry %q",
				ErrIndexOutOfRange, p, v, len(table), entry))
		}
		table[v]++
	}
	return nil
}

func (a *Analyzer) NumberOfAccesses() int { return a.hourly.Sum() }
func (a *Analyzer) BusiestHour() int      { return a.hourly.Busiest() }
func (a *Analyzer) QuietestHour() int     { return a.hourly.Quietest() }

// BusiestTwoHour returns the first hour of the busiest two-hour window.
// Hour 23 pairs with hour 0.
func (a *Analyzer) BusiestTwoHour() int { return a.hourly.BusiestPair() }

func (a *Analyzer) BusiestDay() int  { return a.daily.Busiest() }
func (a *Analyzer) QuietestDay() int { return a.daily.Quietest() }

func (a *Analyzer) BusiestMonth() int          { return a.monthly.Busiest() }
func (a *Analyzer) QuietestMonth() int         { return a.monthly.Quietest() }
func (a *Analyzer) TotalAccessesPerMonth() int { return a.monthly.Sum() }

// AverageAccessesPerMonth divides by the table length (13), not by the number
// of months that saw traffic.
func (a *Analyzer) AverageAccessesPerMonth() int {
	return a.monthly.Sum() / len(a.monthly)
}

// Skipped is the number of entries the source dropped during the last pass.
// It is 0 for sources that never drop entries.
func (a *Analyzer) Skipped() int {
	if sc, ok := a.source.(skipCounter); ok {
		return sc.Skipped()
	}
	return 0
}

func (a *Analyzer) HourlyCounts() []int  { return a.hourly.clone() }
func (a *Analyzer) DailyCounts() []int   { return a.daily.clone() }
func (a *Analyzer) MonthlyCounts() []int { return a.monthly.clone() }

// PrintData writes every entry of the source, one per line.
func (a *Analyzer) PrintData(w io.Writer) error {
	if a.source == nil {
		return errorsUtils.WrapPathErr(ErrClosed)
	}
	if err := a.source.Reset(); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	for a.source.HasNext() {
		entry, err := a.source.Next()
		if err != nil {
			return errorsUtils.WrapPathErr(err)
		}
		if _, err := fmt.Fprintln(w, entry); err != nil {
			return errorsUtils.WrapPathErr(err)
		}
	}
	return nil
}

func (a *Analyzer) Close() error {
	if a.source == nil {
		return nil
	}
	err := a.source.Close()
	a.source = nil
	return errorsUtils.WrapPathErr(err)
}
