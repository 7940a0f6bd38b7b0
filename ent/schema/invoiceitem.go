package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceItem holds the schema definition for an invoice line item: a frozen
// copy of a task's description and hours at invoice-creation time. The task's
// authoritative record may change later without touching the invoice.
type InvoiceItem struct {
	ent.Schema
}

// Fields of the InvoiceItem.
func (InvoiceItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("invoice_id", uuid.UUID{}).StorageKey("invoice_id").Immutable(),

		// Reference back to the source task. Not an edge: the snapshot must
		// survive even if the task row is ever removed out-of-band.
		field.UUID("task_id", uuid.UUID{}).StorageKey("task_id"),

		field.String("description"),

		field.Other("hours", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(6,2)",
				dialect.SQLite:   "numeric(6,2)",
			}),

		// Preserves the order tasks were selected in.
		field.Int("position").Default(0),
	}
}

func (InvoiceItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_items"},
	}
}

// Edges of the InvoiceItem.
func (InvoiceItem) Edges() []ent.Edge {
	return []ent.Edge{
		// Item belongs to exactly one invoice. Required edge.
		edge.From("invoice", Invoice.Type).
			Ref("items").
			Required().
			Unique().
			Immutable().
			Field("invoice_id"),
	}
}
