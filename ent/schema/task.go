package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Task holds the schema definition for the Task entity: a unit of billable work.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("client_id", uuid.UUID{}).StorageKey("client_id").Immutable(),

		field.String("description").NotEmpty(),

		// Hours worked. Must be positive; validated at the DTO layer as well.
		field.Other("hours", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(6,2)",
				dialect.SQLite:   "numeric(6,2)",
			}),

		// Calendar date the work happened.
		field.Time("date"),

		field.UUID("service_id", uuid.UUID{}).StorageKey("service_id").Optional(),

		field.Enum("platform").
			Values("Mobile", "Web", "Other").
			Default("Other"),

		// Set exactly when the task is captured by an invoice.
		field.Bool("billed").Default(false),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		// Task belongs to exactly one client. Required edge.
		edge.From("client", Customer.Type).
			Ref("tasks").
			Required().
			Unique().
			Immutable().
			Field("client_id"),

		// Task may reference a service from the catalog. Optional edge.
		edge.From("service", Service.Type).
			Ref("tasks").
			Unique().
			Field("service_id"),
	}
}
