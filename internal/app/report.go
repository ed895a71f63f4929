package app

import (
	"context"
	"fmt"
	"io"

	"github.com/Egor213/LogAnalyzer/internal/report"
	"github.com/Egor213/LogAnalyzer/internal/service"
	errorsUtils "github.com/Egor213/LogAnalyzer/pkg/errors"
)

func writeReport(ctx context.Context, stats service.Stats, w io.Writer) error {
	r, err := stats.Analyze(ctx)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if err := report.WriteHourlyCounts(w, r.Hourly); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	report.WriteSummary(w, r)
	return nil
}
