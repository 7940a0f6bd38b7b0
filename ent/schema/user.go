package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity: an account that can
// sign in. Admin accounts manage everything; client accounts are scoped to a
// single client record for the portal.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("name").NotEmpty(),

		field.String("email").Unique().NotEmpty(),

		// Mark as Sensitive to prevent logging.
		field.Text("password_hash").Sensitive().NotEmpty(),

		field.Enum("role").
			Values("admin", "client").
			Default("admin"),

		// Set for portal accounts: the client whose data this user may see.
		field.UUID("client_id", uuid.UUID{}).StorageKey("client_id").Optional(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
