package services_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"timebill-api/ent/customer"
	"timebill-api/ent/invoice"
	"timebill-api/ent/task"
	"timebill-api/internal/services"
	"timebill-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceService_PreviewInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DefaultRateUSD", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		t1 := createTestTask(t, ctx, db, client.ID, "API work", decimal.NewFromInt(3))
		t2 := createTestTask(t, ctx, db, client.ID, "Code review", decimal.NewFromInt(2))

		svc := services.NewInvoiceService(db)
		draft, err := svc.PreviewInvoice(ctx, &dto.PreviewInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID, t2.ID},
		})
		require.NoError(t, err)

		// 5h * 100/h = 500, 10% default for USD
		assert.True(t, decimal.NewFromInt(500).Equal(draft.Subtotal), "subtotal: %s", draft.Subtotal)
		assert.True(t, decimal.NewFromInt(50).Equal(draft.Tax), "tax: %s", draft.Tax)
		assert.True(t, decimal.NewFromInt(550).Equal(draft.Total), "total: %s", draft.Total)
		assert.Equal(t, client.Name, draft.ClientName)
		require.Len(t, draft.Items, 2)
		assert.Equal(t, t1.ID, draft.Items[0].TaskID)
		assert.Equal(t, t2.ID, draft.Items[1].TaskID)
		assert.Regexp(t, regexp.MustCompile(`^INV-\d{4}-\d{4}$`), draft.InvoiceNumber)
		assert.Equal(t, draft.IssueDate.Add(14*24*time.Hour), draft.DueDate)

		// Preview never bills anything
		unbilled, err := db.Task.Query().Where(task.Billed(false)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, unbilled)
	})

	t.Run("Success_DefaultRateINR", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyINR, decimal.NewFromInt(1000))
		t1 := createTestTask(t, ctx, db, client.ID, "Design pass", decimal.NewFromInt(4))

		svc := services.NewInvoiceService(db)
		draft, err := svc.PreviewInvoice(ctx, &dto.PreviewInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID},
		})
		require.NoError(t, err)

		// 4h * 1000 = 4000, 18% GST for INR
		assert.True(t, decimal.NewFromInt(18).Equal(draft.TaxRate))
		assert.True(t, decimal.NewFromInt(720).Equal(draft.Tax), "tax: %s", draft.Tax)
		assert.True(t, decimal.NewFromInt(4720).Equal(draft.Total), "total: %s", draft.Total)
	})

	t.Run("Success_ExplicitRateOverridesDefault", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(80))
		t1 := createTestTask(t, ctx, db, client.ID, "Consulting", decimal.NewFromInt(10))

		svc := services.NewInvoiceService(db)
		draft, err := svc.PreviewInvoice(ctx, &dto.PreviewInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID},
			TaxRate:  ptrDecimal(decimal.Zero),
		})
		require.NoError(t, err)

		assert.True(t, draft.Tax.IsZero(), "tax: %s", draft.Tax)
		assert.True(t, decimal.NewFromInt(800).Equal(draft.Total), "total: %s", draft.Total)
	})

	t.Run("Error_CrossClientSelection", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		other, err := db.Customer.Create().
			SetName("Other Co").
			SetEmail("other@other.test").
			SetHourlyRate(decimal.NewFromInt(50)).
			Save(ctx)
		require.NoError(t, err)
		t1 := createTestTask(t, ctx, db, client.ID, "Mine", decimal.NewFromInt(1))
		t2 := createTestTask(t, ctx, db, other.ID, "Theirs", decimal.NewFromInt(1))

		svc := services.NewInvoiceService(db)
		_, err = svc.PreviewInvoice(ctx, &dto.PreviewInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID, t2.ID},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("Error_TaskAlreadyBilled", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		t1 := createTestTask(t, ctx, db, client.ID, "Captured", decimal.NewFromInt(1))
		_, err := db.Task.UpdateOneID(t1.ID).SetBilled(true).Save(ctx)
		require.NoError(t, err)

		svc := services.NewInvoiceService(db)
		_, err = svc.PreviewInvoice(ctx, &dto.PreviewInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("Error_InvalidTaxRate", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		t1 := createTestTask(t, ctx, db, client.ID, "Work", decimal.NewFromInt(1))

		svc := services.NewInvoiceService(db)
		_, err := svc.PreviewInvoice(ctx, &dto.PreviewInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID},
			TaxRate:  ptrDecimal(decimal.NewFromInt(-5)),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("Error_UnknownTask", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))

		svc := services.NewInvoiceService(db)
		_, err := svc.PreviewInvoice(ctx, &dto.PreviewInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{uuid.New()},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("Error_ClientNotFound", func(t *testing.T) {
		db := newTestDB(t)

		svc := services.NewInvoiceService(db)
		_, err := svc.PreviewInvoice(ctx, &dto.PreviewInvoiceRequest{
			ClientID: uuid.New(),
			TaskIDs:  []uuid.UUID{uuid.New()},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestInvoiceService_CreateInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_BillsSelectedTasks", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		t1 := createTestTask(t, ctx, db, client.ID, "API work", decimal.NewFromFloat(2.5))
		t2 := createTestTask(t, ctx, db, client.ID, "Code review", decimal.NewFromFloat(1.5))
		t3 := createTestTask(t, ctx, db, client.ID, "Not selected", decimal.NewFromInt(8))

		svc := services.NewInvoiceService(db)
		created, err := svc.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID, t2.ID},
			Notes:    "March work",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, invoice.StatusDraft, created.Status)
		assert.Equal(t, client.Name, created.ClientName)
		assert.Equal(t, "March work", created.Notes)
		// 4h * 100 = 400, 10% tax
		assert.True(t, decimal.NewFromInt(400).Equal(created.TotalAmount), "subtotal: %s", created.TotalAmount)
		assert.True(t, decimal.NewFromInt(40).Equal(created.TaxAmount), "tax: %s", created.TaxAmount)
		assert.True(t, decimal.NewFromInt(440).Equal(created.FinalAmount), "final: %s", created.FinalAmount)
		require.Len(t, created.Edges.Items, 2)
		assert.Equal(t, "API work", created.Edges.Items[0].Description)
		assert.Equal(t, "Code review", created.Edges.Items[1].Description)

		// Selected tasks flipped to billed, the rest untouched
		for _, id := range []uuid.UUID{t1.ID, t2.ID} {
			got, err := db.Task.Get(ctx, id)
			require.NoError(t, err)
			assert.True(t, got.Billed, "task %s should be billed", id)
		}
		got3, err := db.Task.Get(ctx, t3.ID)
		require.NoError(t, err)
		assert.False(t, got3.Billed)
	})

	t.Run("Error_RebillingRollsBackEverything", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		t1 := createTestTask(t, ctx, db, client.ID, "Work", decimal.NewFromInt(3))

		svc := services.NewInvoiceService(db)
		_, err := svc.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID},
		})
		require.NoError(t, err)

		// Same selection again must fail and leave exactly one invoice
		_, err = svc.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrConflict)

		count, err := db.Invoice.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Success_CallerSuppliedDetails", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		t1 := createTestTask(t, ctx, db, client.ID, "Work", decimal.NewFromInt(1))

		issue := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		due := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)

		svc := services.NewInvoiceService(db)
		created, err := svc.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
			ClientID:      client.ID,
			TaskIDs:       []uuid.UUID{t1.ID},
			InvoiceNumber: "INV-2025-0042",
			IssueDate:     &issue,
			DueDate:       &due,
			TaxRate:       ptrDecimal(decimal.NewFromInt(5)),
		})
		require.NoError(t, err)

		assert.Equal(t, "INV-2025-0042", created.InvoiceNumber)
		assert.True(t, issue.Equal(created.IssueDate), "issue date: %s", created.IssueDate)
		assert.True(t, due.Equal(created.DueDate), "due date: %s", created.DueDate)
		assert.True(t, decimal.NewFromInt(5).Equal(created.TaxRate))
		assert.True(t, decimal.NewFromInt(105).Equal(created.FinalAmount), "final: %s", created.FinalAmount)
	})
}

func TestInvoiceService_UpdateInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_SelectionSwapReconcilesBilledFlags", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		t1 := createTestTask(t, ctx, db, client.ID, "Kept", decimal.NewFromInt(2))
		t2 := createTestTask(t, ctx, db, client.ID, "Dropped", decimal.NewFromInt(3))
		t3 := createTestTask(t, ctx, db, client.ID, "Added", decimal.NewFromInt(5))

		svc := services.NewInvoiceService(db)
		created, err := svc.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID, t2.ID},
		})
		require.NoError(t, err)

		updated, err := svc.UpdateInvoice(ctx, &dto.UpdateInvoiceRequest{
			ID:      created.ID,
			TaskIDs: []uuid.UUID{t1.ID, t3.ID},
		})
		require.NoError(t, err)

		// 7h * 100 = 700, 10% tax kept from the original
		assert.True(t, decimal.NewFromInt(700).Equal(updated.TotalAmount), "subtotal: %s", updated.TotalAmount)
		assert.True(t, decimal.NewFromInt(770).Equal(updated.FinalAmount), "final: %s", updated.FinalAmount)
		require.Len(t, updated.Edges.Items, 2)

		// Dropped task returns to the unbilled pool, added task is captured
		got1, _ := db.Task.Get(ctx, t1.ID)
		got2, _ := db.Task.Get(ctx, t2.ID)
		got3, _ := db.Task.Get(ctx, t3.ID)
		assert.True(t, got1.Billed)
		assert.False(t, got2.Billed)
		assert.True(t, got3.Billed)
	})

	t.Run("Success_OwnTasksExemptFromBilledCheck", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		t1 := createTestTask(t, ctx, db, client.ID, "Work", decimal.NewFromInt(2))

		svc := services.NewInvoiceService(db)
		created, err := svc.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID},
		})
		require.NoError(t, err)

		// Re-submitting the invoice's own (now billed) task is fine
		updated, err := svc.UpdateInvoice(ctx, &dto.UpdateInvoiceRequest{
			ID:      created.ID,
			TaskIDs: []uuid.UUID{t1.ID},
			Notes:   ptrString("updated notes"),
		})
		require.NoError(t, err)
		assert.Equal(t, "updated notes", updated.Notes)
	})

	t.Run("Error_ForeignBilledTaskRejected", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		t1 := createTestTask(t, ctx, db, client.ID, "First", decimal.NewFromInt(2))
		t2 := createTestTask(t, ctx, db, client.ID, "Second", decimal.NewFromInt(3))

		svc := services.NewInvoiceService(db)
		first, err := svc.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID},
		})
		require.NoError(t, err)
		_, err = svc.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t2.ID},
		})
		require.NoError(t, err)

		// t2 belongs to the second invoice; the first cannot steal it
		_, err = svc.UpdateInvoice(ctx, &dto.UpdateInvoiceRequest{
			ID:      first.ID,
			TaskIDs: []uuid.UUID{t1.ID, t2.ID},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("Error_PaidInvoiceImmutable", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		t1 := createTestTask(t, ctx, db, client.ID, "Work", decimal.NewFromInt(2))

		svc := services.NewInvoiceService(db)
		created, err := svc.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID},
		})
		require.NoError(t, err)

		_, err = svc.UpdateInvoiceStatus(ctx, &dto.UpdateInvoiceStatusRequest{ID: created.ID, NewStatus: invoice.StatusSent})
		require.NoError(t, err)
		_, err = svc.UpdateInvoiceStatus(ctx, &dto.UpdateInvoiceStatusRequest{ID: created.ID, NewStatus: invoice.StatusPaid})
		require.NoError(t, err)

		_, err = svc.UpdateInvoice(ctx, &dto.UpdateInvoiceRequest{
			ID:      created.ID,
			TaskIDs: []uuid.UUID{t1.ID},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidState)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db := newTestDB(t)
		svc := services.NewInvoiceService(db)
		_, err := svc.UpdateInvoice(ctx, &dto.UpdateInvoiceRequest{
			ID:      uuid.New(),
			TaskIDs: []uuid.UUID{uuid.New()},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestInvoiceService_UpdateInvoiceStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		path        []invoice.Status // Transitions applied before the attempt
		newStatus   invoice.Status
		expectedErr error
	}{
		{name: "Draft_To_Sent", path: nil, newStatus: invoice.StatusSent, expectedErr: nil},
		{name: "Draft_To_Paid_Invalid", path: nil, newStatus: invoice.StatusPaid, expectedErr: services.ErrInvalidTransition},
		{name: "Draft_To_Overdue_Invalid", path: nil, newStatus: invoice.StatusOverdue, expectedErr: services.ErrInvalidTransition},
		{name: "Sent_To_Paid", path: []invoice.Status{invoice.StatusSent}, newStatus: invoice.StatusPaid, expectedErr: nil},
		{name: "Sent_To_Overdue", path: []invoice.Status{invoice.StatusSent}, newStatus: invoice.StatusOverdue, expectedErr: nil},
		{name: "Sent_To_Draft_Invalid", path: []invoice.Status{invoice.StatusSent}, newStatus: invoice.StatusDraft, expectedErr: services.ErrInvalidTransition},
		{name: "Overdue_To_Paid", path: []invoice.Status{invoice.StatusSent, invoice.StatusOverdue}, newStatus: invoice.StatusPaid, expectedErr: nil},
		{name: "Paid_Is_Terminal", path: []invoice.Status{invoice.StatusSent, invoice.StatusPaid}, newStatus: invoice.StatusOverdue, expectedErr: services.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
			t1 := createTestTask(t, ctx, db, client.ID, "Work", decimal.NewFromInt(1))

			svc := services.NewInvoiceService(db)
			created, err := svc.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
				ClientID: client.ID,
				TaskIDs:  []uuid.UUID{t1.ID},
			})
			require.NoError(t, err)

			for _, step := range tt.path {
				_, err := svc.UpdateInvoiceStatus(ctx, &dto.UpdateInvoiceStatusRequest{ID: created.ID, NewStatus: step})
				require.NoError(t, err, "setup transition to %s", step)
			}

			updated, err := svc.UpdateInvoiceStatus(ctx, &dto.UpdateInvoiceStatusRequest{ID: created.ID, NewStatus: tt.newStatus})
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.newStatus, updated.Status)
			}
		})
	}
}

func TestInvoiceService_DeleteInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_VoidReleasesTasks", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		t1 := createTestTask(t, ctx, db, client.ID, "Work", decimal.NewFromInt(2))
		t2 := createTestTask(t, ctx, db, client.ID, "More work", decimal.NewFromInt(3))

		svc := services.NewInvoiceService(db)
		created, err := svc.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID, t2.ID},
		})
		require.NoError(t, err)

		err = svc.DeleteInvoice(ctx, &dto.DeleteInvoiceRequest{ID: created.ID})
		require.NoError(t, err)

		// Invoice gone, items gone, tasks billable again
		count, err := db.Invoice.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
		items, err := db.InvoiceItem.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, items)
		for _, id := range []uuid.UUID{t1.ID, t2.ID} {
			got, err := db.Task.Get(ctx, id)
			require.NoError(t, err)
			assert.False(t, got.Billed, "task %s should be released", id)
		}
	})

	t.Run("Error_PaidInvoiceCannotBeVoided", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		t1 := createTestTask(t, ctx, db, client.ID, "Work", decimal.NewFromInt(2))

		svc := services.NewInvoiceService(db)
		created, err := svc.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
			ClientID: client.ID,
			TaskIDs:  []uuid.UUID{t1.ID},
		})
		require.NoError(t, err)
		_, err = svc.UpdateInvoiceStatus(ctx, &dto.UpdateInvoiceStatusRequest{ID: created.ID, NewStatus: invoice.StatusSent})
		require.NoError(t, err)
		_, err = svc.UpdateInvoiceStatus(ctx, &dto.UpdateInvoiceStatusRequest{ID: created.ID, NewStatus: invoice.StatusPaid})
		require.NoError(t, err)

		err = svc.DeleteInvoice(ctx, &dto.DeleteInvoiceRequest{ID: created.ID})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidState)

		// Invoice and billed flags untouched
		got, err := db.Invoice.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, invoice.StatusPaid, got.Status)
		gotTask, err := db.Task.Get(ctx, t1.ID)
		require.NoError(t, err)
		assert.True(t, gotTask.Billed)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db := newTestDB(t)
		svc := services.NewInvoiceService(db)
		err := svc.DeleteInvoice(ctx, &dto.DeleteInvoiceRequest{ID: uuid.New()})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
