package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice holds the schema definition for the Invoice entity.
type Invoice struct {
	ent.Schema
}

// Fields of the Invoice.
func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		// Human-facing number. Uniqueness is intentionally not enforced.
		field.String("invoice_number").NotEmpty(),

		field.UUID("client_id", uuid.UUID{}).StorageKey("client_id").Immutable(),

		// Snapshot of the client's name at creation time.
		field.String("client_name").Default(""),

		// Pre-tax subtotal, tax portion and grand total. final_amount is
		// always total_amount + tax_amount; amounts never recompute after
		// creation except through a full invoice edit.
		field.Other("total_amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
				dialect.SQLite:   "numeric(12,2)",
			}).
			Default(decimal.Zero),
		field.Other("tax_amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
				dialect.SQLite:   "numeric(12,2)",
			}).
			Default(decimal.Zero),
		field.Other("final_amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
				dialect.SQLite:   "numeric(12,2)",
			}).
			Default(decimal.Zero),
		field.Other("tax_rate", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(5,2)",
				dialect.SQLite:   "numeric(5,2)",
			}).
			Default(decimal.Zero),

		field.Enum("status").
			Values("draft", "sent", "paid", "overdue").
			Default("draft"),

		field.Time("issue_date"),
		field.Time("due_date"),

		field.String("payment_link").Default(""),
		field.Text("notes").Default(""),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Invoice.
func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// Invoice bills exactly one client. Required edge.
		edge.From("client", Customer.Type).
			Ref("invoices").
			Required().
			Unique().
			Immutable().
			Field("client_id"),

		// Frozen line items. Deleting the invoice removes them.
		edge.To("items", InvoiceItem.Type).Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
