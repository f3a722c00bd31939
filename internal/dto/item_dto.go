package dto

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type CreateItemRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Metadata datatypes.JSON  `json:"metadata,omitempty"`
}

// UpdateItemRequest uses pointers so absent fields are left untouched.
type UpdateItemRequest struct {
	Name     *string          `json:"name,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Quantity *int             `json:"quantity,omitempty"`
	Metadata datatypes.JSON   `json:"metadata,omitempty"`
}
