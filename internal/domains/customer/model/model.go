package model

import "frontdesk/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID           = "customer_id"
	FieldCustomerName = "customer_name"
	FieldPhone        = "phone"
	FieldEmail        = "email"
	FieldAddress      = "address"
	FieldTaxID        = "tax_id"
)

// Customer is deduplicated by phone number.
type Customer struct {
	CustomerID   int64  `db:"customer_id"`
	CustomerName string `db:"customer_name"`
	Phone        string `db:"phone"`
	Email        string `db:"email"`
	Address      string `db:"address"`
	TaxID        string `db:"tax_id"`
	model.Metadata
}
