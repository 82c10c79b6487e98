package dto

import "time"

type InitiatePaymentRequestDTO struct {
	Amount      float64 `json:"amount" example:"500"`
	Description string  `json:"description,omitempty" example:"monthly settle-up"`
	OrderID     *int    `json:"order_id,omitempty" example:"41"`
}

type InitiatePaymentResponseDTO struct {
	PaymentID       int     `json:"payment_id" example:"17"`
	GatewayOrderRef string  `json:"gateway_order_ref" example:"order_N5vJhYqk"`
	Amount          float64 `json:"amount" example:"500"`
	Status          string  `json:"status" example:"PENDING"`
}

type VerifyPaymentRequestDTO struct {
	GatewayOrderRef   string `json:"gateway_order_ref" example:"order_N5vJhYqk"`
	GatewayPaymentRef string `json:"gateway_payment_ref" example:"pay_N5vKx2mP"`
	Signature         string `json:"signature" example:"9ef4dcf9..."`
}

type PaymentResponseDTO struct {
	ID              int        `json:"id" example:"17"`
	Amount          float64    `json:"amount" example:"500"`
	Status          string     `json:"status" example:"SUCCESS"`
	PaymentMethod   string     `json:"payment_method" example:"ONLINE"`
	GatewayOrderRef string     `json:"gateway_order_ref" example:"order_N5vJhYqk"`
	Description     string     `json:"description,omitempty" example:"monthly settle-up"`
	CreatedAt       time.Time  `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
	PaymentDate     *time.Time `json:"payment_date,omitempty" example:"2024-12-09T16:12:03+03:00"`
}
