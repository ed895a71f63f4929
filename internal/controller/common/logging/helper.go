package logginghelper

import (
	"github.com/Egor213/LogAnalyzer/internal/domain"
	log "github.com/sirupsen/logrus"
)

func LogPassFinished(source string, period domain.Period, entries, skipped int) {
	entry := log.WithFields(log.Fields{
		"source":  source,
		"period":  period,
		"entries": entries,
		"skipped": skipped,
	})
	if skipped > 0 {
		entry.Warn("Analysis pass skipped malformed lines")
		return
	}
	entry.Debug("Analysis pass finished")
}

func LogPassFailed(source string, period domain.Period, err error) {
	log.WithFields(log.Fields{
		"source": source,
		"period": period,
		"error":  err,
	}).Error("Analysis pass failed")
}

func LogReportReady(r domain.Report) {
	log.WithFields(log.Fields{
		"source":        r.Source,
		"accesses":      r.NumberOfAccesses,
		"busiest_hour":  r.BusiestHour,
		"busiest_day":   r.BusiestDay,
		"busiest_month": r.BusiestMonth,
	}).Info("Report ready")
}

func LogRequestFailed(handler string, err error) {
	log.WithFields(log.Fields{
		"handler": handler,
		"error":   err,
	}).Error("Request failed")
}
