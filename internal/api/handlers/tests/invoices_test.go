package routes_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"timebill-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceRoutes_RequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInvoiceRoutes_FullLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	// Register a client over the API
	rec := doJSON(t, router, http.MethodPost, "/api/v1/clients/", map[string]any{
		"name":        "Acme Corp",
		"email":       "billing@acme.test",
		"hourly_rate": 100,
		"currency":    "USD",
	})
	requireStatus(t, rec, http.StatusCreated)
	var client dto.ClientResponse
	decodeBody(t, rec, &client)

	// Log two billable tasks
	taskIDs := make([]uuid.UUID, 0, 2)
	for i, desc := range []string{"API work", "Code review"} {
		rec = doJSON(t, router, http.MethodPost, "/api/v1/tasks/", map[string]any{
			"client_id":   client.ID,
			"description": desc,
			"hours":       i + 2,
			"date":        "2025-03-10T00:00:00Z",
			"platform":    "Web",
		})
		requireStatus(t, rec, http.StatusCreated)
		var task dto.TaskResponse
		decodeBody(t, rec, &task)
		taskIDs = append(taskIDs, task.ID)
	}

	// The picker shows both
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/clients/%s/tasks/unbilled", client.ID), nil)
	requireStatus(t, rec, http.StatusOK)
	var unbilled []dto.TaskResponse
	decodeBody(t, rec, &unbilled)
	require.Len(t, unbilled, 2)

	// Preview prices without persisting: 5h * 100 = 500 + 10% tax
	rec = doJSON(t, router, http.MethodPost, "/api/v1/invoices/preview", map[string]any{
		"client_id": client.ID,
		"task_ids":  taskIDs,
	})
	requireStatus(t, rec, http.StatusOK)
	var preview dto.InvoicePreviewResponse
	decodeBody(t, rec, &preview)
	assert.True(t, decimal.NewFromInt(550).Equal(preview.FinalAmount), "preview final: %s", preview.FinalAmount)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/clients/%s/tasks/unbilled", client.ID), nil)
	requireStatus(t, rec, http.StatusOK)
	decodeBody(t, rec, &unbilled)
	require.Len(t, unbilled, 2, "preview must not bill tasks")

	// Create the invoice
	rec = doJSON(t, router, http.MethodPost, "/api/v1/invoices/", map[string]any{
		"client_id": client.ID,
		"task_ids":  taskIDs,
	})
	requireStatus(t, rec, http.StatusCreated)
	var created dto.InvoiceResponse
	decodeBody(t, rec, &created)
	assert.Equal(t, "draft", created.Status)
	assert.True(t, decimal.NewFromInt(550).Equal(created.FinalAmount), "final: %s", created.FinalAmount)
	require.Len(t, created.Items, 2)

	// Tasks are captured now
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/clients/%s/tasks/unbilled", client.ID), nil)
	requireStatus(t, rec, http.StatusOK)
	decodeBody(t, rec, &unbilled)
	require.Empty(t, unbilled)

	// Re-billing the same tasks conflicts
	rec = doJSON(t, router, http.MethodPost, "/api/v1/invoices/", map[string]any{
		"client_id": client.ID,
		"task_ids":  taskIDs,
	})
	requireStatus(t, rec, http.StatusConflict)

	// Lifecycle: draft -> paid is not a legal step
	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/invoices/%s/status", created.ID), map[string]any{
		"status": "paid",
	})
	requireStatus(t, rec, http.StatusBadRequest)

	// draft -> sent -> paid is
	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/invoices/%s/status", created.ID), map[string]any{
		"status": "sent",
	})
	requireStatus(t, rec, http.StatusOK)
	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/invoices/%s/status", created.ID), map[string]any{
		"status": "paid",
	})
	requireStatus(t, rec, http.StatusOK)

	// Paid invoices cannot be voided
	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/invoices/%s", created.ID), nil)
	requireStatus(t, rec, http.StatusConflict)

	// The payment lands in the revenue report
	rec = doJSON(t, router, http.MethodGet, "/api/v1/reports/revenue", nil)
	requireStatus(t, rec, http.StatusOK)
	var report dto.RevenueReportResponse
	decodeBody(t, rec, &report)
	require.Len(t, report.Months, 1)
	assert.True(t, decimal.NewFromInt(550).Equal(report.TotalPaid), "total paid: %s", report.TotalPaid)
}

func TestInvoiceRoutes_VoidReleasesTasks(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/clients/", map[string]any{
		"name":        "Acme Corp",
		"email":       "billing@acme.test",
		"hourly_rate": 80,
	})
	requireStatus(t, rec, http.StatusCreated)
	var client dto.ClientResponse
	decodeBody(t, rec, &client)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/tasks/", map[string]any{
		"client_id":   client.ID,
		"description": "Maintenance",
		"hours":       3,
		"date":        "2025-05-01T00:00:00Z",
	})
	requireStatus(t, rec, http.StatusCreated)
	var task dto.TaskResponse
	decodeBody(t, rec, &task)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/invoices/", map[string]any{
		"client_id": client.ID,
		"task_ids":  []uuid.UUID{task.ID},
	})
	requireStatus(t, rec, http.StatusCreated)
	var created dto.InvoiceResponse
	decodeBody(t, rec, &created)

	// Billed tasks are frozen while the invoice exists
	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%s", task.ID), nil)
	requireStatus(t, rec, http.StatusConflict)

	// Voiding the draft releases them
	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/invoices/%s", created.ID), nil)
	requireStatus(t, rec, http.StatusNoContent)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/clients/%s/tasks/unbilled", client.ID), nil)
	requireStatus(t, rec, http.StatusOK)
	var unbilled []dto.TaskResponse
	decodeBody(t, rec, &unbilled)
	require.Len(t, unbilled, 1)
}

func TestInvoiceRoutes_InvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/invoices/not-a-uuid", nil)
	requireStatus(t, rec, http.StatusBadRequest)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/invoices/%s", uuid.New()), nil)
	requireStatus(t, rec, http.StatusNotFound)
}
