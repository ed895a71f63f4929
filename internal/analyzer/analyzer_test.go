package analyzer_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Egor213/LogAnalyzer/internal/analyzer"
	"github.com/Egor213/LogAnalyzer/internal/domain"
	"github.com/Egor213/LogAnalyzer/internal/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(month, day, hour int) domain.LogEntry {
	return domain.LogEntry{Year: 2015, Month: month, Day: day, Hour: hour}
}

func repeat(n int, e domain.LogEntry) []domain.LogEntry {
	out := make([]domain.LogEntry, n)
	for i := range out {
		out[i] = e
	}
	return out
}

func newAnalyzer(t *testing.T, entries ...domain.LogEntry) (*analyzer.Analyzer, *reader.SliceSource) {
	t.Helper()
	src := reader.NewSliceSource(entries...)
	a, err := analyzer.New("memory", func(string) (analyzer.Source, error) { return src, nil })
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a, src
}

type failingSource struct {
	resetErr error
	nextErr  error
	served   bool
}

func (s *failingSource) HasNext() bool { return !s.served }
func (s *failingSource) Close() error  { return nil }

func (s *failingSource) Reset() error {
	s.served = false
	return s.resetErr
}

func (s *failingSource) Next() (domain.LogEntry, error) {
	s.served = true
	return domain.LogEntry{}, s.nextErr
}

func TestNew_SourceUnavailable(t *testing.T) {
	errOpen := errors.New("no such file")

	a, err := analyzer.New("missing.log", func(string) (analyzer.Source, error) { return nil, errOpen })

	assert.Nil(t, a)
	assert.ErrorIs(t, err, analyzer.ErrSourceUnavailable)
	assert.ErrorIs(t, err, errOpen)
	assert.Contains(t, err.Error(), "missing.log")
}

func TestNew_TablesZeroed(t *testing.T) {
	a, src := newAnalyzer(t, at(1, 1, 1))

	assert.Equal(t, make([]int, analyzer.HoursInDay), a.HourlyCounts())
	assert.Equal(t, make([]int, analyzer.DaySlots), a.DailyCounts())
	assert.Equal(t, make([]int, analyzer.MonthSlots), a.MonthlyCounts())
	assert.Zero(t, src.Resets())
	assert.Equal(t, "memory", a.Name())
}

func TestAnalyzeHourly_Scenario(t *testing.T) {
	var entries []domain.LogEntry
	entries = append(entries, repeat(3, at(6, 1, 9))...)
	entries = append(entries, repeat(2, at(6, 2, 9))...)
	entries = append(entries, at(6, 3, 14))
	a, _ := newAnalyzer(t, entries...)

	require.NoError(t, a.AnalyzeHourly())

	hourly := a.HourlyCounts()
	assert.Equal(t, 5, hourly[9])
	assert.Equal(t, 1, hourly[14])
	assert.Equal(t, 6, a.NumberOfAccesses())
	assert.Equal(t, 9, a.BusiestHour())
}

func TestAnalyzeHourly_CountEqualsEntries(t *testing.T) {
	var entries []domain.LogEntry
	for h := 0; h < 24; h++ {
		entries = append(entries, repeat(h%5, at(1, 1, h))...)
	}
	a, _ := newAnalyzer(t, entries...)

	require.NoError(t, a.AnalyzeHourly())

	assert.Equal(t, len(entries), a.NumberOfAccesses())
}

func TestAnalyzeHourly_Idempotent(t *testing.T) {
	a, src := newAnalyzer(t, at(1, 1, 3), at(1, 1, 3), at(1, 1, 20))

	require.NoError(t, a.AnalyzeHourly())
	first := a.HourlyCounts()
	require.NoError(t, a.AnalyzeHourly())

	assert.Equal(t, first, a.HourlyCounts())
	assert.Equal(t, 3, a.NumberOfAccesses())
	assert.Equal(t, 2, src.Resets())
}

func TestEmptySource_DegenerateResults(t *testing.T) {
	a, _ := newAnalyzer(t)

	require.NoError(t, a.AnalyzeHourly())
	require.NoError(t, a.AnalyzeDaily())
	require.NoError(t, a.AnalyzeMonthly())

	assert.Equal(t, 0, a.NumberOfAccesses())
	assert.Equal(t, 0, a.BusiestHour())
	assert.Equal(t, 0, a.QuietestHour())
	assert.Equal(t, 0, a.BusiestTwoHour())
	assert.Equal(t, 0, a.BusiestDay())
	assert.Equal(t, 0, a.QuietestDay())
	assert.Equal(t, 0, a.BusiestMonth())
	assert.Equal(t, 0, a.QuietestMonth())
	assert.Equal(t, 0, a.AverageAccessesPerMonth())
}

func TestQueriesBeforeAnalysis(t *testing.T) {
	a, _ := newAnalyzer(t, repeat(4, at(5, 10, 12))...)

	// tables stay zero until the matching pass runs
	assert.Equal(t, 0, a.NumberOfAccesses())
	assert.Equal(t, 0, a.BusiestHour())

	require.NoError(t, a.AnalyzeHourly())
	assert.Equal(t, 4, a.NumberOfAccesses())
	assert.Equal(t, 0, a.BusiestDay())
	assert.Equal(t, 0, a.TotalAccessesPerMonth())
}

func TestBusiestHour_FirstMaxWins(t *testing.T) {
	var entries []domain.LogEntry
	entries = append(entries, repeat(5, at(1, 1, 0))...)
	entries = append(entries, repeat(5, at(1, 1, 1))...)
	entries = append(entries, repeat(3, at(1, 1, 2))...)
	a, _ := newAnalyzer(t, entries...)

	require.NoError(t, a.AnalyzeHourly())

	assert.Equal(t, 0, a.BusiestHour())
}

func TestQuietestHour(t *testing.T) {
	var entries []domain.LogEntry
	for h := 0; h < 24; h++ {
		n := 2
		if h == 7 || h == 15 {
			n = 1
		}
		entries = append(entries, repeat(n, at(1, 1, h))...)
	}
	a, _ := newAnalyzer(t, entries...)

	require.NoError(t, a.AnalyzeHourly())

	assert.Equal(t, 7, a.QuietestHour())
}

func TestBusiestTwoHour_WrapsAround(t *testing.T) {
	var entries []domain.LogEntry
	entries = append(entries, repeat(10, at(1, 1, 23))...)
	entries = append(entries, repeat(10, at(1, 1, 0))...)
	a, _ := newAnalyzer(t, entries...)

	require.NoError(t, a.AnalyzeHourly())

	assert.Equal(t, 23, a.BusiestTwoHour())
}

func TestBusiestTwoHour_AdjacentPair(t *testing.T) {
	var entries []domain.LogEntry
	entries = append(entries, repeat(6, at(1, 1, 4))...)
	entries = append(entries, repeat(4, at(1, 1, 11))...)
	entries = append(entries, repeat(4, at(1, 1, 12))...)
	a, _ := newAnalyzer(t, entries...)

	require.NoError(t, a.AnalyzeHourly())

	assert.Equal(t, 4, a.BusiestHour())
	assert.Equal(t, 11, a.BusiestTwoHour())
}

func TestAnalyzeDaily(t *testing.T) {
	var entries []domain.LogEntry
	for d := 0; d < analyzer.DaySlots; d++ {
		entries = append(entries, repeat(3, at(1, d, 0))...)
	}
	entries = append(entries, repeat(2, at(1, 17, 0))...)
	entries = append(entries, repeat(2, at(1, 21, 0))...)
	a, _ := newAnalyzer(t, entries...)

	require.NoError(t, a.AnalyzeDaily())

	assert.Equal(t, 17, a.BusiestDay())
	assert.Equal(t, 0, a.QuietestDay())
	assert.Equal(t, 5, a.DailyCounts()[21])
}

func TestAnalyzeDaily_DayOutOfRange(t *testing.T) {
	a, _ := newAnalyzer(t, at(1, 3, 0), at(1, 30, 0))

	err := a.AnalyzeDaily()

	require.ErrorIs(t, err, analyzer.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "day 30")
}

func TestAnalyzeHourly_HourOutOfRange(t *testing.T) {
	a, _ := newAnalyzer(t, at(1, 1, 24))

	assert.ErrorIs(t, a.AnalyzeHourly(), analyzer.ErrIndexOutOfRange)
}

func TestAnalyzeMonthly(t *testing.T) {
	var entries []domain.LogEntry
	for m := 1; m <= 12; m++ {
		entries = append(entries, repeat(m, at(m, 1, 0))...)
	}
	a, _ := newAnalyzer(t, entries...)

	require.NoError(t, a.AnalyzeMonthly())

	assert.Equal(t, 12, a.BusiestMonth())
	// slot 0 never receives entries, so it is always the quietest
	assert.Equal(t, 0, a.QuietestMonth())
	assert.Equal(t, 78, a.TotalAccessesPerMonth())
	assert.Equal(t, 6, a.AverageAccessesPerMonth())
}

func TestAverageAccessesPerMonth_DividesByTableLength(t *testing.T) {
	var entries []domain.LogEntry
	entries = append(entries, repeat(100, at(3, 1, 0))...)
	entries = append(entries, repeat(30, at(4, 1, 0))...)
	a, _ := newAnalyzer(t, entries...)

	require.NoError(t, a.AnalyzeMonthly())

	assert.Equal(t, 130, a.TotalAccessesPerMonth())
	assert.Equal(t, 10, a.AverageAccessesPerMonth())
}

func TestAnalyzeMonthly_MonthOutOfRange(t *testing.T) {
	a, _ := newAnalyzer(t, at(13, 1, 0))

	assert.ErrorIs(t, a.AnalyzeMonthly(), analyzer.ErrIndexOutOfRange)
}

func TestAnalyze_SourceErrors(t *testing.T) {
	errReset := errors.New("seek failed")
	errNext := errors.New("read failed")

	testCases := []struct {
		name    string
		source  *failingSource
		wantErr error
	}{
		{name: "reset", source: &failingSource{resetErr: errReset}, wantErr: errReset},
		{name: "next", source: &failingSource{nextErr: errNext}, wantErr: errNext},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := analyzer.New("broken", func(string) (analyzer.Source, error) { return tc.source, nil })
			require.NoError(t, err)

			assert.ErrorIs(t, a.AnalyzeHourly(), tc.wantErr)
			assert.ErrorIs(t, a.AnalyzeDaily(), tc.wantErr)
			assert.ErrorIs(t, a.AnalyzeMonthly(), tc.wantErr)
		})
	}
}

func TestCountsAreCopies(t *testing.T) {
	a, _ := newAnalyzer(t, at(1, 1, 5))
	require.NoError(t, a.AnalyzeHourly())

	hourly := a.HourlyCounts()
	hourly[5] = 100

	assert.Equal(t, 1, a.HourlyCounts()[5])
}

func TestPrintData(t *testing.T) {
	a, _ := newAnalyzer(t,
		domain.LogEntry{Year: 2015, Month: 6, Day: 1, Hour: 1, Minute: 15},
		domain.LogEntry{Year: 2015, Month: 6, Day: 2, Hour: 14, Minute: 3},
	)
	buf := &bytes.Buffer{}

	require.NoError(t, a.PrintData(buf))

	assert.Equal(t, "2015 06 01 01 15\n2015 06 02 14 03\n", buf.String())
}

func TestClose(t *testing.T) {
	a, src := newAnalyzer(t, at(1, 1, 1))

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())

	assert.True(t, src.Closed())
	assert.ErrorIs(t, a.AnalyzeHourly(), analyzer.ErrClosed)
	assert.ErrorIs(t, a.PrintData(&bytes.Buffer{}), analyzer.ErrClosed)
}

func TestSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	require.NoError(t, os.WriteFile(path, []byte("2015 06 01 09 00\nnot a log line\n2015 06 01 10 00\n2015 06\n"), 0o644))

	a, err := analyzer.New(path, reader.NewProvider())
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.AnalyzeHourly())
	assert.Equal(t, 2, a.NumberOfAccesses())
	assert.Equal(t, 2, a.Skipped())

	require.NoError(t, a.AnalyzeHourly())
	assert.Equal(t, 2, a.Skipped())
}

func TestSkipped_SourceWithoutCounter(t *testing.T) {
	a, _ := newAnalyzer(t, at(6, 1, 9))

	require.NoError(t, a.AnalyzeHourly())

	assert.Zero(t, a.Skipped())
	require.NoError(t, a.Close())
	assert.Zero(t, a.Skipped())
}
