// internal/transport/dto/report_dto.go
package dto

import (
	"github.com/shopspring/decimal"
)

// MonthlyRevenueRequest defines parameters for the payment-history report.
type MonthlyRevenueRequest struct {
	Year *int `form:"year" validate:"omitempty,min=2000,max=2100"`
}

// MonthlyRevenueEntry is the paid total for one calendar month.
type MonthlyRevenueEntry struct {
	Month        string          `json:"month"` // YYYY-MM
	Total        decimal.Decimal `json:"total"`
	InvoiceCount int             `json:"invoice_count"`
}

// RevenueReportResponse aggregates paid invoices by month, newest first.
type RevenueReportResponse struct {
	Months    []MonthlyRevenueEntry `json:"months"`
	TotalPaid decimal.Decimal       `json:"total_paid"`
}
