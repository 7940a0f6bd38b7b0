package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"timebill-api/ent"
	"timebill-api/ent/customer"
	"timebill-api/ent/enttest"

	_ "github.com/mattn/go-sqlite3"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Helper to create a pointer to a string
func ptrString(s string) *string { return &s }

// Helper to create a pointer to a decimal
func ptrDecimal(d decimal.Decimal) *decimal.Decimal { return &d }

// newTestDB opens an isolated in-memory database with the schema applied.
// Each test gets its own database, named after the test, so runs cannot
// interfere with each other.
func newTestDB(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestClient seeds a client with the given currency and hourly rate.
func createTestClient(t *testing.T, ctx context.Context, db *ent.Client, currency customer.Currency, rate decimal.Decimal) *ent.Customer {
	t.Helper()
	c, err := db.Customer.Create().
		SetName("Acme Corp").
		SetEmail("billing@acme.test").
		SetHourlyRate(rate).
		SetCurrency(currency).
		Save(ctx)
	require.NoError(t, err, "Failed to create test client")
	return c
}

// createTestTask seeds an unbilled task for the given client.
func createTestTask(t *testing.T, ctx context.Context, db *ent.Client, clientID uuid.UUID, description string, hours decimal.Decimal) *ent.Task {
	t.Helper()
	task, err := db.Task.Create().
		SetClientID(clientID).
		SetDescription(description).
		SetHours(hours).
		SetDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)).
		Save(ctx)
	require.NoError(t, err, "Failed to create test task %q", description)
	return task
}
