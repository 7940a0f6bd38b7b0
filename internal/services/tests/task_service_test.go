package services_test

import (
	"context"
	"testing"
	"time"

	"timebill-api/ent/customer"
	"timebill-api/internal/services"
	"timebill-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))

		svc := services.NewTaskService(db)
		created, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{
			ClientID:    client.ID,
			Description: "Build login flow",
			Hours:       decimal.NewFromFloat(3.5),
			Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			Platform:    "Web",
		})
		require.NoError(t, err)
		assert.Equal(t, client.ID, created.ClientID)
		assert.False(t, created.Billed)
		assert.True(t, decimal.NewFromFloat(3.5).Equal(created.Hours))
	})

	t.Run("Error_NonPositiveHours", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))

		svc := services.NewTaskService(db)
		_, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{
			ClientID:    client.ID,
			Description: "Free work",
			Hours:       decimal.Zero,
			Date:        time.Now(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("Error_UnknownClient", func(t *testing.T) {
		db := newTestDB(t)

		svc := services.NewTaskService(db)
		_, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{
			ClientID:    uuid.New(),
			Description: "Orphan work",
			Hours:       decimal.NewFromInt(1),
			Date:        time.Now(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestTaskService_ListUnbilledTasks(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
	t1 := createTestTask(t, ctx, db, client.ID, "Open", decimal.NewFromInt(1))
	t2 := createTestTask(t, ctx, db, client.ID, "Captured", decimal.NewFromInt(2))
	_, err := db.Task.UpdateOneID(t2.ID).SetBilled(true).Save(ctx)
	require.NoError(t, err)

	svc := services.NewTaskService(db)
	tasks, err := svc.ListUnbilledTasks(ctx, &dto.ListUnbilledTasksRequest{ClientID: client.ID})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, t1.ID, tasks[0].ID)
}

func TestTaskService_UpdateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_UnbilledTaskEditable", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		task := createTestTask(t, ctx, db, client.ID, "Before", decimal.NewFromInt(1))

		svc := services.NewTaskService(db)
		updated, err := svc.UpdateTask(ctx, &dto.UpdateTaskRequest{
			ID:          task.ID,
			Description: ptrString("After"),
			Hours:       ptrDecimal(decimal.NewFromInt(4)),
		})
		require.NoError(t, err)
		assert.Equal(t, "After", updated.Description)
		assert.True(t, decimal.NewFromInt(4).Equal(updated.Hours))
	})

	t.Run("Error_BilledTaskFrozen", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		task := createTestTask(t, ctx, db, client.ID, "On invoice", decimal.NewFromInt(1))
		_, err := db.Task.UpdateOneID(task.ID).SetBilled(true).Save(ctx)
		require.NoError(t, err)

		svc := services.NewTaskService(db)
		_, err = svc.UpdateTask(ctx, &dto.UpdateTaskRequest{
			ID:          task.ID,
			Description: ptrString("Tampered"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidState)
	})

	t.Run("Error_NonPositiveHours", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		task := createTestTask(t, ctx, db, client.ID, "Work", decimal.NewFromInt(1))

		svc := services.NewTaskService(db)
		_, err := svc.UpdateTask(ctx, &dto.UpdateTaskRequest{
			ID:    task.ID,
			Hours: ptrDecimal(decimal.NewFromInt(-2)),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		task := createTestTask(t, ctx, db, client.ID, "Disposable", decimal.NewFromInt(1))

		svc := services.NewTaskService(db)
		err := svc.DeleteTask(ctx, &dto.DeleteTaskRequest{ID: task.ID})
		require.NoError(t, err)

		count, err := db.Task.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Error_BilledTaskFrozen", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		task := createTestTask(t, ctx, db, client.ID, "On invoice", decimal.NewFromInt(1))
		_, err := db.Task.UpdateOneID(task.ID).SetBilled(true).Save(ctx)
		require.NoError(t, err)

		svc := services.NewTaskService(db)
		err = svc.DeleteTask(ctx, &dto.DeleteTaskRequest{ID: task.ID})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidState)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db := newTestDB(t)
		svc := services.NewTaskService(db)
		err := svc.DeleteTask(ctx, &dto.DeleteTaskRequest{ID: uuid.New()})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
