package billing

import (
	"regexp"
	"testing"
	"time"

	"timebill-api/ent"
	"timebill-api/ent/customer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(rate string) *ent.Customer {
	return &ent.Customer{
		ID:         uuid.New(),
		Name:       "Acme Corp",
		HourlyRate: decimal.RequireFromString(rate),
		Currency:   customer.CurrencyUSD,
	}
}

func newTestTask(clientID uuid.UUID, hours string, billed bool) *ent.Task {
	return &ent.Task{
		ID:          uuid.New(),
		ClientID:    clientID,
		Description: "development work",
		Hours:       decimal.RequireFromString(hours),
		Billed:      billed,
	}
}

func TestCompose_Amounts(t *testing.T) {
	c := newTestClient("75")
	tasks := []*ent.Task{
		newTestTask(c.ID, "5", false),
		newTestTask(c.ID, "8", false),
	}

	draft, err := Compose(c, tasks, Options{TaxRate: decimal.NewFromInt(10)})
	require.NoError(t, err)

	assert.Equal(t, "975", draft.Subtotal.String())
	assert.Equal(t, "97.5", draft.Tax.String())
	assert.Equal(t, "1072.5", draft.Total.String())
	assert.Equal(t, "975.00", draft.Subtotal.StringFixed(2))
	assert.Equal(t, "97.50", draft.Tax.StringFixed(2))
	assert.Equal(t, "1072.50", draft.Total.StringFixed(2))

	require.Len(t, draft.Items, 2)
	assert.Equal(t, tasks[0].ID, draft.Items[0].TaskID)
	assert.Equal(t, tasks[1].ID, draft.Items[1].TaskID)
	assert.Equal(t, c.ID, draft.ClientID)
	assert.Equal(t, c.Name, draft.ClientName)
}

func TestCompose_FullPrecisionCarried(t *testing.T) {
	// 1.33h at 33.33/hr: the exact product must be carried, not a
	// pre-rounded intermediate, so repeated edits cannot drift.
	c := newTestClient("33.33")
	tasks := []*ent.Task{newTestTask(c.ID, "1.33", false)}

	draft, err := Compose(c, tasks, Options{TaxRate: decimal.NewFromInt(18)})
	require.NoError(t, err)

	assert.Equal(t, "44.3289", draft.Subtotal.String())
	assert.True(t, draft.Total.Equal(draft.Subtotal.Add(draft.Tax)))
	assert.Equal(t, draft.Subtotal.Add(draft.Tax).Round(2), draft.Total.Round(2))
}

func TestCompose_ZeroTaxRate(t *testing.T) {
	c := newTestClient("50")
	tasks := []*ent.Task{newTestTask(c.ID, "2", false)}

	draft, err := Compose(c, tasks, Options{})
	require.NoError(t, err)
	assert.True(t, draft.Tax.IsZero())
	assert.True(t, draft.Total.Equal(draft.Subtotal))
}

func TestCompose_EmptySelection(t *testing.T) {
	c := newTestClient("75")
	_, err := Compose(c, nil, Options{TaxRate: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestCompose_CrossClientSelection(t *testing.T) {
	c := newTestClient("75")
	tasks := []*ent.Task{
		newTestTask(c.ID, "5", false),
		newTestTask(uuid.New(), "3", false), // belongs to someone else
	}
	_, err := Compose(c, tasks, Options{TaxRate: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ErrCrossClientSelection)
}

func TestCompose_AlreadyBilled(t *testing.T) {
	c := newTestClient("75")
	billedTask := newTestTask(c.ID, "5", true)

	_, err := Compose(c, []*ent.Task{billedTask}, Options{TaxRate: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ErrTaskAlreadyBilled)

	// Edit mode: the invoice's own tasks are exempt from the check.
	draft, err := Compose(c, []*ent.Task{billedTask}, Options{
		TaxRate: decimal.NewFromInt(10),
		Exempt:  map[uuid.UUID]struct{}{billedTask.ID: {}},
	})
	require.NoError(t, err)
	assert.Equal(t, "375", draft.Subtotal.String())
}

func TestCompose_TaxRateBounds(t *testing.T) {
	c := newTestClient("75")
	tasks := []*ent.Task{newTestTask(c.ID, "5", false)}

	_, err := Compose(c, tasks, Options{TaxRate: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, ErrInvalidTaxRate)

	_, err = Compose(c, tasks, Options{TaxRate: decimal.NewFromInt(101)})
	assert.ErrorIs(t, err, ErrInvalidTaxRate)

	_, err = Compose(c, tasks, Options{TaxRate: decimal.NewFromInt(100)})
	assert.NoError(t, err)
}

func TestCompose_Defaults(t *testing.T) {
	c := newTestClient("75")
	tasks := []*ent.Task{newTestTask(c.ID, "1", false)}

	before := time.Now()
	draft, err := Compose(c, tasks, Options{TaxRate: decimal.NewFromInt(10)})
	require.NoError(t, err)

	assert.WithinDuration(t, before, draft.IssueDate, 2*time.Second)
	assert.Equal(t, draft.IssueDate.Add(DueDateOffset), draft.DueDate)
	assert.Regexp(t, regexp.MustCompile(`^INV-\d{4}-\d{4}$`), draft.InvoiceNumber)
}

func TestCompose_CallerSuppliedFields(t *testing.T) {
	c := newTestClient("75")
	tasks := []*ent.Task{newTestTask(c.ID, "1", false)}
	issue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	due := issue.AddDate(0, 1, 0)

	draft, err := Compose(c, tasks, Options{
		TaxRate:       decimal.NewFromInt(10),
		InvoiceNumber: "INV-2026-0001",
		IssueDate:     issue,
		DueDate:       due,
		Notes:         "net 30",
		PaymentLink:   "https://rzp.io/i/abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0001", draft.InvoiceNumber)
	assert.Equal(t, issue, draft.IssueDate)
	assert.Equal(t, due, draft.DueDate)
	assert.Equal(t, "net 30", draft.Notes)
	assert.Equal(t, "https://rzp.io/i/abc", draft.PaymentLink)
}

func TestCompose_ErrorLeavesNoPartialState(t *testing.T) {
	c := newTestClient("75")
	tasks := []*ent.Task{
		newTestTask(c.ID, "5", false),
		newTestTask(c.ID, "8", true), // trips the billed check after the first task
	}

	_, err := Compose(c, tasks, Options{TaxRate: decimal.NewFromInt(10)})
	require.Error(t, err)
	for _, task := range tasks[:1] {
		assert.False(t, task.Billed, "compose must not mutate its inputs")
	}
}

func TestDefaultTaxRate(t *testing.T) {
	assert.Equal(t, "18", DefaultTaxRate(customer.CurrencyINR).String())
	assert.Equal(t, "10", DefaultTaxRate(customer.CurrencyUSD).String())
}
