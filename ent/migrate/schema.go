// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClientsColumns holds the columns for the "clients" table.
	ClientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "owner", Type: field.TypeString, Default: ""},
		{Name: "email", Type: field.TypeString},
		{Name: "mobile", Type: field.TypeString, Default: ""},
		{Name: "project_name", Type: field.TypeString, Default: ""},
		{Name: "hourly_rate", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)", "sqlite3": "numeric(12,2)"}},
		{Name: "currency", Type: field.TypeEnum, Enums: []string{"USD", "INR"}, Default: "USD"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ClientsTable holds the schema information for the "clients" table.
	ClientsTable = &schema.Table{
		Name:       "clients",
		Columns:    ClientsColumns,
		PrimaryKey: []*schema.Column{ClientsColumns[0]},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "invoice_number", Type: field.TypeString},
		{Name: "client_name", Type: field.TypeString, Default: ""},
		{Name: "total_amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)", "sqlite3": "numeric(12,2)"}},
		{Name: "tax_amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)", "sqlite3": "numeric(12,2)"}},
		{Name: "final_amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)", "sqlite3": "numeric(12,2)"}},
		{Name: "tax_rate", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(5,2)", "sqlite3": "numeric(5,2)"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "sent", "paid", "overdue"}, Default: "draft"},
		{Name: "issue_date", Type: field.TypeTime},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "payment_link", Type: field.TypeString, Default: ""},
		{Name: "notes", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeUUID},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_clients_invoices",
				Columns:    []*schema.Column{InvoicesColumns[14]},
				RefColumns: []*schema.Column{ClientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// InvoiceItemsColumns holds the columns for the "invoice_items" table.
	InvoiceItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "task_id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString},
		{Name: "hours", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(6,2)", "sqlite3": "numeric(6,2)"}},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// InvoiceItemsTable holds the schema information for the "invoice_items" table.
	InvoiceItemsTable = &schema.Table{
		Name:       "invoice_items",
		Columns:    InvoiceItemsColumns,
		PrimaryKey: []*schema.Column{InvoiceItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_items_invoices_items",
				Columns:    []*schema.Column{InvoiceItemsColumns[5]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ServicesColumns holds the columns for the "services" table.
	ServicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ServicesTable holds the schema information for the "services" table.
	ServicesTable = &schema.Table{
		Name:       "services",
		Columns:    ServicesColumns,
		PrimaryKey: []*schema.Column{ServicesColumns[0]},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString},
		{Name: "hours", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(6,2)", "sqlite3": "numeric(6,2)"}},
		{Name: "date", Type: field.TypeTime},
		{Name: "platform", Type: field.TypeEnum, Enums: []string{"Mobile", "Web", "Other"}, Default: "Other"},
		{Name: "billed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "service_id", Type: field.TypeUUID, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_clients_tasks",
				Columns:    []*schema.Column{TasksColumns[8]},
				RefColumns: []*schema.Column{ClientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "tasks_services_tasks",
				Columns:    []*schema.Column{TasksColumns[9]},
				RefColumns: []*schema.Column{ServicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString, Size: 2147483647},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "client"}, Default: "admin"},
		{Name: "client_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// CustomerServicesColumns holds the columns for the "customer_services" table.
	CustomerServicesColumns = []*schema.Column{
		{Name: "customer_id", Type: field.TypeUUID},
		{Name: "service_id", Type: field.TypeUUID},
	}
	// CustomerServicesTable holds the schema information for the "customer_services" table.
	CustomerServicesTable = &schema.Table{
		Name:       "customer_services",
		Columns:    CustomerServicesColumns,
		PrimaryKey: []*schema.Column{CustomerServicesColumns[0], CustomerServicesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "customer_services_customer_id",
				Columns:    []*schema.Column{CustomerServicesColumns[0]},
				RefColumns: []*schema.Column{ClientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "customer_services_service_id",
				Columns:    []*schema.Column{CustomerServicesColumns[1]},
				RefColumns: []*schema.Column{ServicesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClientsTable,
		InvoicesTable,
		InvoiceItemsTable,
		ServicesTable,
		TasksTable,
		UsersTable,
		CustomerServicesTable,
	}
)

func init() {
	ClientsTable.Annotation = &entsql.Annotation{
		Table: "clients",
	}
	InvoicesTable.ForeignKeys[0].RefTable = ClientsTable
	InvoiceItemsTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceItemsTable.Annotation = &entsql.Annotation{
		Table: "invoice_items",
	}
	TasksTable.ForeignKeys[0].RefTable = ClientsTable
	TasksTable.ForeignKeys[1].RefTable = ServicesTable
	CustomerServicesTable.ForeignKeys[0].RefTable = ClientsTable
	CustomerServicesTable.ForeignKeys[1].RefTable = ServicesTable
}
