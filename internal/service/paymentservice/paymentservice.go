package paymentservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/mealtab/mealtab/internal/pg"
	"github.com/mealtab/mealtab/pkg/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paymentservice.go -destination=paymentservice_mock.go -package=paymentservice

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByGatewayOrderRef(ctx context.Context, gatewayOrderRef string) (*domain.Payment, error)
	MarkSuccess(ctx context.Context, gatewayOrderRef, gatewayPaymentRef, signature string, paymentDate time.Time) (*domain.Payment, error)
	MarkFailed(ctx context.Context, gatewayOrderRef string) (bool, error)
	FindPaymentsByUserID(ctx context.Context, userID int) ([]domain.Payment, error)
}

type Gateway interface {
	CreateIntent(ctx context.Context, amount float64, receipt string) (string, error)
	VerifySignature(gatewayOrderRef, gatewayPaymentRef, signature string) bool
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount float64, idempotencyKey string) (*domain.LedgerEvent, error)
}

type Notifier interface {
	PaymentSettled(payment *domain.Payment)
}

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrSignatureInvalid = errors.New("payment signature invalid")
	ErrAlreadyFinalized = errors.New("payment already finalized as failed")
)

type Confirmation struct {
	GatewayOrderRef   string
	GatewayPaymentRef string
	Signature         string
}

type Service struct {
	paymentRepo PaymentRepo
	gateway     Gateway
	ledger      Ledger
	txManager   pg.TXManager
	notifier    Notifier
}

func New(paymentRepo PaymentRepo, gateway Gateway, ledger Ledger, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		ledger:      ledger,
		txManager:   txManager,
		notifier:    notifier,
	}
}

// InitiatePayment creates the gateway intent and a PENDING payment bound to
// it. A PENDING payment has no ledger effect: the user may abandon the flow
// and only a verified confirmation ever touches the balance.
func (s *Service) InitiatePayment(ctx context.Context, userID int, amount float64, description string, orderID *int) (*domain.Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	receipt := "receipt_" + uuid.NewString()
	gatewayOrderRef, err := s.gateway.CreateIntent(ctx, amount, receipt)
	if err != nil {
		zap.L().Error("failed to create gateway intent", zap.Error(err))
		return nil, err
	}

	payment := &domain.Payment{
		UserID:          userID,
		OrderID:         orderID,
		Amount:          amount,
		Status:          domain.PendingPaymentStatus,
		PaymentMethod:   domain.OnlinePaymentMethod,
		GatewayOrderRef: gatewayOrderRef,
		Description:     description,
		CreatedAt:       time.Now(),
	}
	if _, err := s.paymentRepo.Create(ctx, payment); err != nil {
		zap.L().Error("failed to create payment record", zap.Error(err))
		return nil, err
	}

	return payment, nil
}

// VerifyPayment settles a confirmation. The signature check decides whether
// money moved; the PENDING->SUCCESS compare-and-set and the ledger credit
// share one transaction, and the credit's idempotency key (the gateway
// order ref) is the backstop against double application. Duplicate
// confirmations of a settled payment return the stored record unchanged.
func (s *Service) VerifyPayment(ctx context.Context, confirmation Confirmation) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByGatewayOrderRef(ctx, confirmation.GatewayOrderRef)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	if !s.gateway.VerifySignature(confirmation.GatewayOrderRef, confirmation.GatewayPaymentRef, confirmation.Signature) {
		metrics.SettlementsRejected.Inc()
		zap.L().Warn("payment signature mismatch",
			zap.String("gateway_order_ref", confirmation.GatewayOrderRef))
		if _, err := s.paymentRepo.MarkFailed(ctx, confirmation.GatewayOrderRef); err != nil {
			return nil, err
		}
		return nil, ErrSignatureInvalid
	}

	var settled *domain.Payment
	var applied bool
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		updated, err := s.paymentRepo.MarkSuccess(ctx,
			confirmation.GatewayOrderRef, confirmation.GatewayPaymentRef, confirmation.Signature, time.Now())
		if err != nil {
			return err
		}
		if updated == nil {
			// Lost the compare-and-set: the payment is already terminal.
			current, err := s.paymentRepo.FindByGatewayOrderRef(ctx, confirmation.GatewayOrderRef)
			if err != nil {
				return err
			}
			if current == nil {
				return ErrPaymentNotFound
			}
			if current.Status == domain.SuccessPaymentStatus {
				zap.L().Info("duplicate confirmation absorbed",
					zap.String("gateway_order_ref", confirmation.GatewayOrderRef))
				settled = current
				return nil
			}
			return ErrAlreadyFinalized
		}

		if _, err := s.ledger.Credit(ctx, updated.UserID, updated.Amount, updated.GatewayOrderRef); err != nil {
			return err
		}
		settled = updated
		applied = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if applied {
		metrics.SettlementsVerified.Inc()
		s.notifier.PaymentSettled(settled)
	}
	return settled, nil
}

func (s *Service) GetPayments(ctx context.Context, userID int) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindPaymentsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}
