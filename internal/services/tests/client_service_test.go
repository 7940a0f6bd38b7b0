package services_test

import (
	"context"
	"testing"

	"timebill-api/ent/customer"
	"timebill-api/internal/services"
	"timebill-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientService_CreateClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_WithServices", func(t *testing.T) {
		db := newTestDB(t)
		design, err := db.Service.Create().SetName("Design").Save(ctx)
		require.NoError(t, err)

		svc := services.NewClientService(db)
		created, err := svc.CreateClient(ctx, &dto.CreateClientRequest{
			Name:       "Acme Corp",
			Email:      "billing@acme.test",
			HourlyRate: decimal.NewFromInt(120),
			Currency:   "INR",
			ServiceIDs: []uuid.UUID{design.ID},
		})
		require.NoError(t, err)

		assert.Equal(t, customer.CurrencyINR, created.Currency)
		assert.Equal(t, customer.StatusActive, created.Status)
		assert.True(t, decimal.NewFromInt(120).Equal(created.HourlyRate))

		got, err := svc.GetClientByID(ctx, &dto.GetClientByIDRequest{ID: created.ID})
		require.NoError(t, err)
		require.Len(t, got.Edges.Services, 1)
		assert.Equal(t, "Design", got.Edges.Services[0].Name)
	})

	t.Run("Error_NegativeHourlyRate", func(t *testing.T) {
		db := newTestDB(t)

		svc := services.NewClientService(db)
		_, err := svc.CreateClient(ctx, &dto.CreateClientRequest{
			Name:       "Acme Corp",
			Email:      "billing@acme.test",
			HourlyRate: decimal.NewFromInt(-10),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestClientService_UpdateClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_PartialUpdate", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))

		svc := services.NewClientService(db)
		updated, err := svc.UpdateClient(ctx, &dto.UpdateClientRequest{
			ID:         client.ID,
			Name:       ptrString("Acme Renamed"),
			HourlyRate: ptrDecimal(decimal.NewFromInt(150)),
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme Renamed", updated.Name)
		assert.True(t, decimal.NewFromInt(150).Equal(updated.HourlyRate))
		// Untouched fields survive
		assert.Equal(t, client.Email, updated.Email)
	})

	t.Run("Error_NegativeHourlyRate", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))

		svc := services.NewClientService(db)
		_, err := svc.UpdateClient(ctx, &dto.UpdateClientRequest{
			ID:         client.ID,
			HourlyRate: ptrDecimal(decimal.NewFromInt(-1)),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db := newTestDB(t)
		svc := services.NewClientService(db)
		_, err := svc.UpdateClient(ctx, &dto.UpdateClientRequest{
			ID:   uuid.New(),
			Name: ptrString("Ghost"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestClientService_SetClientStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DeactivationKeepsHistory", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
		task := createTestTask(t, ctx, db, client.ID, "Past work", decimal.NewFromInt(2))

		svc := services.NewClientService(db)
		updated, err := svc.SetClientStatus(ctx, &dto.SetClientStatusRequest{
			ID:     client.ID,
			Status: customer.StatusInactive,
		})
		require.NoError(t, err)
		assert.Equal(t, customer.StatusInactive, updated.Status)

		// Deactivation is not deletion
		got, err := db.Task.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, client.ID, got.ClientID)
	})

	t.Run("Success_Reactivation", func(t *testing.T) {
		db := newTestDB(t)
		client := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))

		svc := services.NewClientService(db)
		_, err := svc.SetClientStatus(ctx, &dto.SetClientStatusRequest{ID: client.ID, Status: customer.StatusInactive})
		require.NoError(t, err)
		updated, err := svc.SetClientStatus(ctx, &dto.SetClientStatusRequest{ID: client.ID, Status: customer.StatusActive})
		require.NoError(t, err)
		assert.Equal(t, customer.StatusActive, updated.Status)
	})
}

func TestClientService_ListClients(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	active := createTestClient(t, ctx, db, customer.CurrencyUSD, decimal.NewFromInt(100))
	inactive, err := db.Customer.Create().
		SetName("Dormant Ltd").
		SetEmail("dormant@dormant.test").
		SetHourlyRate(decimal.NewFromInt(60)).
		SetStatus(customer.StatusInactive).
		Save(ctx)
	require.NoError(t, err)

	svc := services.NewClientService(db)

	all, err := svc.ListClients(ctx, &dto.ListClientsRequest{Limit: 50})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	status := customer.StatusActive
	activeOnly, err := svc.ListClients(ctx, &dto.ListClientsRequest{Limit: 50, Status: &status})
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, active.ID, activeOnly[0].ID)
	assert.NotEqual(t, inactive.ID, activeOnly[0].ID)
}
