package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/mealtab/mealtab/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (user_id, order_id, amount, status, payment_method, gateway_order_ref, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		payment.UserID, payment.OrderID, payment.Amount, payment.Status,
		payment.PaymentMethod, payment.GatewayOrderRef, payment.Description, payment.CreatedAt).
		Scan(&payment.ID)
	if err != nil {
		zap.L().Error("can't create payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) FindByGatewayOrderRef(ctx context.Context, gatewayOrderRef string) (*domain.Payment, error) {
	query := `
        SELECT id, user_id, order_id, amount, status, payment_method, gateway_order_ref, gateway_payment_ref, gateway_signature, description, created_at, payment_date
        FROM payments
        WHERE gateway_order_ref = $1
    `
	row := r.db.QueryRow(ctx, query, gatewayOrderRef)

	var payment domain.Payment
	err := row.Scan(&payment.ID, &payment.UserID, &payment.OrderID, &payment.Amount, &payment.Status,
		&payment.PaymentMethod, &payment.GatewayOrderRef, &payment.GatewayPaymentRef,
		&payment.GatewaySignature, &payment.Description, &payment.CreatedAt, &payment.PaymentDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &payment, nil
}

// MarkSuccess performs the PENDING to SUCCESS transition as a compare-and-set
// on the current status. It returns nil without error when the payment was
// already finalized, which is how duplicate confirmations are detected.
func (r *Repository) MarkSuccess(ctx context.Context, gatewayOrderRef, gatewayPaymentRef, signature string, paymentDate time.Time) (*domain.Payment, error) {
	query := `
		UPDATE payments
		SET status = $2, gateway_payment_ref = $3, gateway_signature = $4, payment_date = $5
		WHERE gateway_order_ref = $1 AND status = $6
		RETURNING id, user_id, order_id, amount, status, payment_method, gateway_order_ref, gateway_payment_ref, gateway_signature, description, created_at, payment_date
	`
	row := r.db.QueryRow(ctx, query, gatewayOrderRef,
		domain.SuccessPaymentStatus, gatewayPaymentRef, signature, paymentDate, domain.PendingPaymentStatus)

	var payment domain.Payment
	err := row.Scan(&payment.ID, &payment.UserID, &payment.OrderID, &payment.Amount, &payment.Status,
		&payment.PaymentMethod, &payment.GatewayOrderRef, &payment.GatewayPaymentRef,
		&payment.GatewaySignature, &payment.Description, &payment.CreatedAt, &payment.PaymentDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to mark payment success", zap.Error(err))
		return nil, err
	}
	return &payment, nil
}

// MarkFailed flips a still-PENDING payment to FAILED; already-finalized
// payments are left untouched.
func (r *Repository) MarkFailed(ctx context.Context, gatewayOrderRef string) (bool, error) {
	query := `
		UPDATE payments
		SET status = $2
		WHERE gateway_order_ref = $1 AND status = $3
	`
	tag, err := r.db.Exec(ctx, query, gatewayOrderRef, domain.FailedPaymentStatus, domain.PendingPaymentStatus)
	if err != nil {
		zap.L().Error("failed to mark payment failed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindPaymentsByUserID(ctx context.Context, userID int) ([]domain.Payment, error) {
	query := `
        SELECT id, user_id, order_id, amount, status, payment_method, gateway_order_ref, gateway_payment_ref, gateway_signature, description, created_at, payment_date
        FROM payments
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(&payment.ID, &payment.UserID, &payment.OrderID, &payment.Amount, &payment.Status,
			&payment.PaymentMethod, &payment.GatewayOrderRef, &payment.GatewayPaymentRef,
			&payment.GatewaySignature, &payment.Description, &payment.CreatedAt, &payment.PaymentDate)
		if err != nil {
			zap.L().Error("failed to scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, nil
}
