package services_test

import (
	"context"
	"testing"
	"time"

	"timebill-api/ent"
	"timebill-api/ent/customer"
	"timebill-api/ent/invoice"
	"timebill-api/internal/services"
	"timebill-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedInvoice inserts an invoice directly with the given status, issue date
// and final amount. Report tests care about persisted rows, not composition.
func seedInvoice(t *testing.T, ctx context.Context, db *ent.Client, clientID uuid.UUID, status invoice.Status, issue time.Time, final decimal.Decimal) *ent.Invoice {
	t.Helper()
	inv, err := db.Invoice.Create().
		SetInvoiceNumber("INV-TEST").
		SetClientID(clientID).
		SetStatus(status).
		SetIssueDate(issue).
		SetDueDate(issue.Add(14 * 24 * time.Hour)).
		SetFinalAmount(final).
		Save(ctx)
	require.NoError(t, err)
	return inv
}

func TestReportService_MonthlyRevenue(t *testing.T) {
	ctx := context.Background()

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("Success_GroupsByMonthNewestFirst", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))

		seedInvoice(t, ctx, db, client.ID, invoice.StatusPaid, day(2025, time.January, 5), decimal.NewFromInt(500))
		seedInvoice(t, ctx, db, client.ID, invoice.StatusPaid, day(2025, time.January, 20), decimal.NewFromInt(250))
		seedInvoice(t, ctx, db, client.ID, invoice.StatusPaid, day(2025, time.March, 2), decimal.NewFromInt(1000))
		// Unpaid invoices are not revenue
		seedInvoice(t, ctx, db, client.ID, invoice.StatusSent, day(2025, time.March, 15), decimal.NewFromInt(9999))
		seedInvoice(t, ctx, db, client.ID, invoice.StatusDraft, day(2025, time.February, 1), decimal.NewFromInt(9999))

		svc := services.NewReportService(db)
		report, err := svc.MonthlyRevenue(ctx, &dto.MonthlyRevenueRequest{})
		require.NoError(t, err)

		require.Len(t, report.Months, 2)
		assert.Equal(t, "2025-03", report.Months[0].Month)
		assert.Equal(t, 1, report.Months[0].InvoiceCount)
		assert.True(t, decimal.NewFromInt(1000).Equal(report.Months[0].Total), "march total: %s", report.Months[0].Total)

		assert.Equal(t, "2025-01", report.Months[1].Month)
		assert.Equal(t, 2, report.Months[1].InvoiceCount)
		assert.True(t, decimal.NewFromInt(750).Equal(report.Months[1].Total), "january total: %s", report.Months[1].Total)

		assert.True(t, decimal.NewFromInt(1750).Equal(report.TotalPaid), "total paid: %s", report.TotalPaid)
	})

	t.Run("Success_YearFilter", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))

		seedInvoice(t, ctx, db, client.ID, invoice.StatusPaid, day(2024, time.December, 31), decimal.NewFromInt(400))
		seedInvoice(t, ctx, db, client.ID, invoice.StatusPaid, day(2025, time.June, 1), decimal.NewFromInt(600))

		svc := services.NewReportService(db)
		year := 2025
		report, err := svc.MonthlyRevenue(ctx, &dto.MonthlyRevenueRequest{Year: &year})
		require.NoError(t, err)

		require.Len(t, report.Months, 1)
		assert.Equal(t, "2025-06", report.Months[0].Month)
		assert.True(t, decimal.NewFromInt(600).Equal(report.TotalPaid), "total paid: %s", report.TotalPaid)
	})

	t.Run("Success_EmptyHistory", func(t *testing.T) {
		db := newTestDB(t)

		svc := services.NewReportService(db)
		report, err := svc.MonthlyRevenue(ctx, &dto.MonthlyRevenueRequest{})
		require.NoError(t, err)

		assert.Empty(t, report.Months)
		assert.True(t, report.TotalPaid.IsZero())
	})
}
