package domain

import "time"

const (
	RoleStudent  string = "STUDENT"
	RoleProvider string = "PROVIDER"
	RoleAdmin    string = "ADMIN"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Role         string    `db:"role"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

type Balance struct {
	ID             int     `db:"id"`
	UserID         int     `db:"user_id"`
	CreditLimit    float64 `db:"credit_limit"`
	CurrentBalance float64 `db:"current_balance"`
}

// Available is the credit headroom left before the limit is hit.
func (b *Balance) Available() float64 {
	if b.CreditLimit < b.CurrentBalance {
		return 0
	}
	return b.CreditLimit - b.CurrentBalance
}

type MenuItem struct {
	ID          int     `db:"id"`
	ProviderID  int     `db:"provider_id"`
	Name        string  `db:"name"`
	Price       float64 `db:"price"`
	IsAvailable bool    `db:"is_available"`
}

const (
	PlacedOrderStatus    string = "PLACED"
	PreparingOrderStatus string = "PREPARING"
	DeliveredOrderStatus string = "DELIVERED"
	CancelledOrderStatus string = "CANCELLED"
)

const (
	CreditPaymentMethod string = "CREDIT"
	OnlinePaymentMethod string = "ONLINE"
)

type Order struct {
	ID                  int         `db:"id"`
	OrderNumber         string      `db:"order_number"`
	UserID              int         `db:"user_id"`
	ProviderID          int         `db:"provider_id"`
	TotalAmount         float64     `db:"total_amount"`
	Status              string      `db:"status"`
	PaymentMethod       string      `db:"payment_method"`
	SpecialInstructions string      `db:"special_instructions"`
	CreatedAt           time.Time   `db:"created_at"`
	Items               []OrderItem `db:"-"`
}

type OrderItem struct {
	ID         int     `db:"id"`
	OrderID    int     `db:"order_id"`
	ItemID     int     `db:"item_id"`
	Quantity   int     `db:"quantity"`
	UnitPrice  float64 `db:"unit_price"`
	TotalPrice float64 `db:"total_price"`
}

const (
	PendingPaymentStatus string = "PENDING"
	SuccessPaymentStatus string = "SUCCESS"
	FailedPaymentStatus  string = "FAILED"
)

type Payment struct {
	ID                int        `db:"id"`
	UserID            int        `db:"user_id"`
	OrderID           *int       `db:"order_id"`
	Amount            float64    `db:"amount"`
	Status            string     `db:"status"`
	PaymentMethod     string     `db:"payment_method"`
	GatewayOrderRef   string     `db:"gateway_order_ref"`
	GatewayPaymentRef string     `db:"gateway_payment_ref"`
	GatewaySignature  string     `db:"gateway_signature"`
	Description       string     `db:"description"`
	CreatedAt         time.Time  `db:"created_at"`
	PaymentDate       *time.Time `db:"payment_date"`
}

// LedgerEvent is one immutable balance-affecting delta. The idempotency key
// is unique, so a replayed operation can be detected and absorbed.
type LedgerEvent struct {
	ID               int       `db:"id"`
	UserID           int       `db:"user_id"`
	Delta            float64   `db:"delta"`
	ResultingBalance float64   `db:"resulting_balance"`
	IdempotencyKey   string    `db:"idempotency_key"`
	CreatedAt        time.Time `db:"created_at"`
}

// DeltaResult reports the outcome of one ledger delta application.
// Applied is false when the idempotency key had already been recorded and
// the stored event is returned instead. Rejected is set when a debit was
// refused by the credit-limit guard; no event exists in that case.
type DeltaResult struct {
	Event    *LedgerEvent
	Applied  bool
	Rejected bool
}

type Notification struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}
