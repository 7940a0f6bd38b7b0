package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer holds the schema definition for a billing client. The entity is
// named Customer because ent reserves "Client" for the generated database
// handle; the table and the HTTP surface keep the client vocabulary.
type Customer struct {
	ent.Schema
}

// Annotations of the Customer.
func (Customer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "clients"},
	}
}

// Fields of the Customer.
func (Customer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("name").NotEmpty(),
		field.String("owner").Default(""),
		field.String("email").NotEmpty(),
		field.String("mobile").Default(""),
		field.String("project_name").Default(""),

		// Single billing rate for the client. Must not be negative.
		field.Other("hourly_rate", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
				dialect.SQLite:   "numeric(12,2)",
			}).
			Default(decimal.Zero),

		field.Enum("currency").
			Values("USD", "INR").
			Default("USD"),

		// Soft lifecycle: clients are deactivated, never hard-deleted.
		field.Enum("status").
			Values("active", "inactive").
			Default("active"),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Customer.
func (Customer) Edges() []ent.Edge {
	return []ent.Edge{
		// Client has multiple billable tasks.
		edge.To("tasks", Task.Type).Annotations(entsql.OnDelete(entsql.Cascade)),

		// Client has multiple invoices.
		edge.To("invoices", Invoice.Type).Annotations(entsql.OnDelete(entsql.Cascade)),

		// Services offered to this client.
		edge.To("services", Service.Type),
	}
}
