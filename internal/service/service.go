package service

import (
	"context"

	"github.com/Egor213/LogAnalyzer/internal/broker"
	"github.com/Egor213/LogAnalyzer/internal/domain"
	"github.com/Egor213/LogAnalyzer/internal/metrics"
)

type Stats interface {
	Analyze(ctx context.Context) (domain.Report, error)
	LastReport() (domain.Report, bool)
}

// Analyzer is the part of *analyzer.Analyzer the service drives.
type Analyzer interface {
	Name() string

	AnalyzeHourly() error
	AnalyzeDaily() error
	AnalyzeMonthly() error

	NumberOfAccesses() int
	BusiestHour() int
	QuietestHour() int
	BusiestTwoHour() int
	BusiestDay() int
	QuietestDay() int
	BusiestMonth() int
	QuietestMonth() int
	TotalAccessesPerMonth() int
	AverageAccessesPerMonth() int
	Skipped() int

	HourlyCounts() []int
	DailyCounts() []int
	MonthlyCounts() []int
}

type Services struct {
	Stats
}

type ServicesDependencies struct {
	Analyzer       Analyzer
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Stats: NewStatsService(deps.Analyzer, deps.Counters, deps.BrokerProducer),
	}
}
