package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Egor213/LogAnalyzer/internal/broker"
	logginghelper "github.com/Egor213/LogAnalyzer/internal/controller/common/logging"
	"github.com/Egor213/LogAnalyzer/internal/domain"
	"github.com/Egor213/LogAnalyzer/internal/metrics"
	errorsUtils "github.com/Egor213/LogAnalyzer/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// StatsService owns the analyzer. The mutex makes it the single user of the
// analyzer even when HTTP handlers call in concurrently.
type StatsService struct {
	mu       sync.Mutex
	analyzer Analyzer
	counters *metrics.Counters
	producer broker.Producer
	now      func() time.Time

	last    domain.Report
	hasLast bool
}

// NewStatsService accepts a nil producer; reports are then only cached.
func NewStatsService(a Analyzer, cnt *metrics.Counters, p broker.Producer) *StatsService {
	return &StatsService{
		analyzer: a,
		counters: cnt,
		producer: p,
		now:      time.Now,
	}
}

type pass struct {
	period  domain.Period
	analyze func() error
	counts  func() []int
}

func (s *StatsService) Analyze(ctx context.Context) (domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	passes := []pass{
		{domain.PeriodHour, s.analyzer.AnalyzeHourly, s.analyzer.HourlyCounts},
		{domain.PeriodDay, s.analyzer.AnalyzeDaily, s.analyzer.DailyCounts},
		{domain.PeriodMonth, s.analyzer.AnalyzeMonthly, s.analyzer.MonthlyCounts},
	}

	for _, p := range passes {
		if err := ctx.Err(); err != nil {
			return domain.Report{}, errorsUtils.WrapPathErr(err)
		}
		if err := s.runPass(p); err != nil {
			return domain.Report{}, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrCannotAnalyze, err))
		}
	}

	r := s.buildReport()
	s.last, s.hasLast = r, true
	logginghelper.LogReportReady(r)

	if s.producer != nil {
		if err := s.publish(ctx, r); err != nil {
			log.Warnf("Report not published: %v", err)
		}
	}

	return r, nil
}

func (s *StatsService) runPass(p pass) error {
	name := s.analyzer.Name()
	if err := p.analyze(); err != nil {
		s.counters.Passes.Inc(string(p.period), "failed")
		logginghelper.LogPassFailed(name, p.period, err)
		return err
	}

	entries := 0
	for _, c := range p.counts() {
		entries += c
	}
	skipped := s.analyzer.Skipped()

	s.counters.Passes.Inc(string(p.period), "ok")
	s.counters.EntriesProcessed.Add(float64(entries), string(p.period))
	s.counters.EntriesSkipped.Add(float64(skipped), string(p.period))
	logginghelper.LogPassFinished(name, p.period, entries, skipped)
	return nil
}

func (s *StatsService) buildReport() domain.Report {
	a := s.analyzer
	return domain.Report{
		Source:      a.Name(),
		GeneratedAt: s.now().UTC(),

		NumberOfAccesses: a.NumberOfAccesses(),
		Skipped:          a.Skipped(),
		BusiestHour:      a.BusiestHour(),
		QuietestHour:     a.QuietestHour(),
		BusiestTwoHour:   a.BusiestTwoHour(),

		BusiestDay:  a.BusiestDay(),
		QuietestDay: a.QuietestDay(),

		BusiestMonth:            a.BusiestMonth(),
		QuietestMonth:           a.QuietestMonth(),
		TotalAccessesPerMonth:   a.TotalAccessesPerMonth(),
		AverageAccessesPerMonth: a.AverageAccessesPerMonth(),

		Hourly:  a.HourlyCounts(),
		Daily:   a.DailyCounts(),
		Monthly: a.MonthlyCounts(),
	}
}

func (s *StatsService) publish(ctx context.Context, r domain.Report) error {
	payload, err := json.Marshal(r)
	if err != nil {
		s.counters.ReportsPublished.Inc("failed")
		return errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrCannotPublish, err))
	}

	if err := s.producer.SendMessage(ctx, []byte(r.Source), payload); err != nil {
		s.counters.ReportsPublished.Inc("failed")
		return errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrCannotPublish, err))
	}

	s.counters.ReportsPublished.Inc("ok")
	return nil
}

func (s *StatsService) LastReport() (domain.Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.hasLast
}
