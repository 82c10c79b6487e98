package dto

import "time"

type OrderItemDTO struct {
	ItemID    int     `json:"item_id" example:"12"`
	Quantity  int     `json:"quantity" example:"2"`
	UnitPrice float64 `json:"unit_price,omitempty" example:"60"`
}

type PlaceOrderRequestDTO struct {
	ProviderID          int            `json:"provider_id" example:"3"`
	PaymentMethod       string         `json:"payment_method,omitempty" example:"CREDIT"`
	SpecialInstructions string         `json:"special_instructions,omitempty" example:"less spicy"`
	Items               []OrderItemDTO `json:"items"`
}

type OrderItemResponseDTO struct {
	ItemID     int     `json:"item_id" example:"12"`
	Quantity   int     `json:"quantity" example:"2"`
	UnitPrice  float64 `json:"unit_price" example:"60"`
	TotalPrice float64 `json:"total_price" example:"120"`
}

type OrderResponseDTO struct {
	ID            int                    `json:"id" example:"41"`
	OrderNumber   string                 `json:"order_number" example:"ORD1733754597000A1B2C3D4"`
	ProviderID    int                    `json:"provider_id" example:"3"`
	TotalAmount   float64                `json:"total_amount" example:"120"`
	Status        string                 `json:"status" example:"PLACED"`
	PaymentMethod string                 `json:"payment_method" example:"CREDIT"`
	CreatedAt     time.Time              `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
	Items         []OrderItemResponseDTO `json:"items"`
}

type AdvanceOrderStatusRequestDTO struct {
	Status string `json:"status" example:"PREPARING"`
}
