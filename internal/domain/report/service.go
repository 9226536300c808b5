package report

import "context"

// ReportService reads computed period data only; it never triggers a
// recalculation. The narrative 941/940/W-2 text generators consume
// these aggregates outside the engine.
type ReportService interface {
	Quarterly(ctx context.Context, quarter int) (QuarterlyReport, error)
	Annual(ctx context.Context) (AnnualReport, error)
}
