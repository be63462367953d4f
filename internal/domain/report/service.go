package report

import (
	"context"

	"github.com/xuri/excelize/v2"
)

// Service builds on-screen summaries and spreadsheet exports. Export calls
// are terminal: each produces one downloadable workbook and returns.
type Service interface {
	Summary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
	ExportDay(ctx context.Context, req ExportDayRequest) (*excelize.File, string, error)
	ExportMonth(ctx context.Context, req ExportMonthRequest) (*excelize.File, string, error)
}
