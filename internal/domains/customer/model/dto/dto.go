package dto

import (
	"strings"

	"frontdesk/internal/domains/customer/model"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CustomerRequest struct {
	CustomerName string `json:"customer_name" validate:"required,notblank,max=150"`
	Phone        string `json:"phone"         validate:"required,notblank,max=30"`
	Email        string `json:"email"         validate:"omitempty,email,max=150"`
	Address      string `json:"address"       validate:"omitempty,max=500"`
	TaxID        string `json:"tax_id"        validate:"omitempty,max=50"`
}

func (c *CustomerRequest) ToModel(user string) model.Customer {
	now := timezone.Now()

	return model.Customer{
		CustomerName: strings.TrimSpace(c.CustomerName),
		Phone:        strings.TrimSpace(c.Phone),
		Email:        strings.TrimSpace(c.Email),
		Address:      strings.TrimSpace(c.Address),
		TaxID:        strings.TrimSpace(c.TaxID),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CustomerResponse struct {
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
	TaxID        string `json:"tax_id,omitempty"`
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.CustomerID = model.CustomerID
	r.CustomerName = model.CustomerName
	r.Phone = model.Phone
	r.Email = model.Email
	r.Address = model.Address
	r.TaxID = model.TaxID
}
