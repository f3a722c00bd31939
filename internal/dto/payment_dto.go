package dto

import "github.com/shopspring/decimal"

type CreatePaymentIntentRequest struct {
	Price decimal.Decimal `json:"price"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
