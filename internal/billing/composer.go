// Package billing turns a client and a selection of their unbilled tasks into
// a priced invoice draft. Everything here is pure computation; persistence and
// the billed-flag transition live in the invoice service.
package billing

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"timebill-api/ent"
	"timebill-api/ent/customer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptySelection       = errors.New("no tasks selected")
	ErrCrossClientSelection = errors.New("selected tasks span more than one client")
	ErrTaskAlreadyBilled    = errors.New("selected task is already billed")
	ErrInvalidTaxRate       = errors.New("tax rate must be between 0 and 100")
)

// DueDateOffset is the default payment window applied when no due date is given.
const DueDateOffset = 14 * 24 * time.Hour

var oneHundred = decimal.NewFromInt(100)

// LineItem is a frozen copy of a task's description and hours at composition
// time. Later edits to the task do not flow back into the item.
type LineItem struct {
	TaskID      uuid.UUID
	Description string
	Hours       decimal.Decimal
}

// Draft is a computed-but-not-yet-persisted invoice. Amounts are carried at
// full precision; round to 2 decimal places only when presenting or storing.
type Draft struct {
	InvoiceNumber string
	ClientID      uuid.UUID
	ClientName    string
	Items         []LineItem
	TaxRate       decimal.Decimal
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	IssueDate     time.Time
	DueDate       time.Time
	Notes         string
	PaymentLink   string
}

// Options carries the caller-controlled parts of a composition. Zero values
// fall back to sensible defaults (generated number, issue = now, due = now +
// DueDateOffset). Exempt lists task IDs allowed to be billed already: when an
// existing invoice is edited, its own tasks must not trip the re-billing check.
type Options struct {
	TaxRate       decimal.Decimal
	InvoiceNumber string
	IssueDate     time.Time
	DueDate       time.Time
	Notes         string
	PaymentLink   string
	Exempt        map[uuid.UUID]struct{}
}

// Compose prices the selected tasks against the client's hourly rate and
// returns an invoice draft. It has no side effects: tasks stay unbilled and
// nothing is persisted until the invoice service commits the draft.
func Compose(c *ent.Customer, tasks []*ent.Task, opts Options) (*Draft, error) {
	if len(tasks) == 0 {
		return nil, ErrEmptySelection
	}
	if opts.TaxRate.IsNegative() || opts.TaxRate.GreaterThan(oneHundred) {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidTaxRate, opts.TaxRate)
	}

	items := make([]LineItem, 0, len(tasks))
	subtotal := decimal.Zero
	for _, t := range tasks {
		if t.ClientID != c.ID {
			return nil, fmt.Errorf("%w: task %s belongs to client %s", ErrCrossClientSelection, t.ID, t.ClientID)
		}
		if t.Billed {
			if _, ok := opts.Exempt[t.ID]; !ok {
				return nil, fmt.Errorf("%w: task %s", ErrTaskAlreadyBilled, t.ID)
			}
		}
		items = append(items, LineItem{
			TaskID:      t.ID,
			Description: t.Description,
			Hours:       t.Hours,
		})
		subtotal = subtotal.Add(t.Hours.Mul(c.HourlyRate))
	}

	tax := subtotal.Mul(opts.TaxRate).Div(oneHundred)

	issue := opts.IssueDate
	if issue.IsZero() {
		issue = time.Now()
	}
	due := opts.DueDate
	if due.IsZero() {
		due = issue.Add(DueDateOffset)
	}
	number := opts.InvoiceNumber
	if number == "" {
		number = NextInvoiceNumber(issue)
	}

	return &Draft{
		InvoiceNumber: number,
		ClientID:      c.ID,
		ClientName:    c.Name,
		Items:         items,
		TaxRate:       opts.TaxRate,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal.Add(tax),
		IssueDate:     issue,
		DueDate:       due,
		Notes:         opts.Notes,
		PaymentLink:   opts.PaymentLink,
	}, nil
}

// DefaultTaxRate returns the tax rate preselected for a client's currency:
// 18% GST for INR clients, 10% otherwise.
func DefaultTaxRate(currency customer.Currency) decimal.Decimal {
	if currency == customer.CurrencyINR {
		return decimal.NewFromInt(18)
	}
	return decimal.NewFromInt(10)
}

// NextInvoiceNumber generates a human-facing number like INV-2026-4821.
// Collisions are tolerated: invoice numbers are not unique keys.
func NextInvoiceNumber(at time.Time) string {
	return fmt.Sprintf("INV-%d-%04d", at.Year(), rand.Intn(9000)+1000)
}
