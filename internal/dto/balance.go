package dto

import "time"

type BalanceResponseDTO struct {
	CreditLimit     float64 `json:"credit_limit" example:"5000"`
	CurrentBalance  float64 `json:"current_balance" example:"1200.5"`
	AvailableCredit float64 `json:"available_credit" example:"3799.5"`
}

type LedgerEventResponseDTO struct {
	Delta            float64   `json:"delta" example:"-500"`
	ResultingBalance float64   `json:"resulting_balance" example:"700.5"`
	IdempotencyKey   string    `json:"idempotency_key" example:"order_N5vJhYqk"`
	CreatedAt        time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}
