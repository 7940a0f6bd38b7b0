package services

import (
	"context"
	"sort"
	"time"

	"timebill-api/ent"
	"timebill-api/internal/storage"
	"timebill-api/internal/storage/postgres"
	"timebill-api/internal/transport/dto"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type reportService struct {
	invoiceRepo storage.InvoiceRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(db *ent.Client) ReportService {
	return &reportService{
		invoiceRepo: postgres.NewInvoiceRepo(db),
	}
}

// MonthlyRevenue aggregates paid invoices by the month of their issue date,
// newest month first. An optional year narrows the window.
func (s *reportService) MonthlyRevenue(ctx context.Context, req *dto.MonthlyRevenueRequest) (*dto.RevenueReportResponse, error) {
	var from, to time.Time
	if req.Year != nil {
		from = time.Date(*req.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(1, 0, 0)
	}

	paid, err := s.invoiceRepo.ListPaidBetween(ctx, from, to)
	if err != nil {
		return nil, mapRepoError(err, "listing paid invoices")
	}

	byMonth := lo.GroupBy(paid, func(inv *ent.Invoice) string {
		return inv.IssueDate.Format("2006-01")
	})

	months := lo.Keys(byMonth)
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	report := &dto.RevenueReportResponse{
		Months:    make([]dto.MonthlyRevenueEntry, 0, len(months)),
		TotalPaid: decimal.Zero,
	}
	for _, month := range months {
		invoices := byMonth[month]
		total := lo.Reduce(invoices, func(sum decimal.Decimal, inv *ent.Invoice, _ int) decimal.Decimal {
			return sum.Add(inv.FinalAmount)
		}, decimal.Zero)

		report.Months = append(report.Months, dto.MonthlyRevenueEntry{
			Month:        month,
			Total:        total,
			InvoiceCount: len(invoices),
		})
		report.TotalPaid = report.TotalPaid.Add(total)
	}

	return report, nil
}
