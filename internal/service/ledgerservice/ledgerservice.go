package ledgerservice

import (
	"context"
	"errors"
	"math"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/mealtab/mealtab/pkg/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=ledgerservice_mock.go -package=ledgerservice

type LedgerRepo interface {
	ApplyDelta(ctx context.Context, userID int, delta float64, idempotencyKey string) (*domain.DeltaResult, error)
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateUserBalance(ctx context.Context, userID int, creditLimit float64) (*domain.Balance, error)
	FindEventByKey(ctx context.Context, idempotencyKey string) (*domain.LedgerEvent, error)
	ListEventsByUserID(ctx context.Context, userID int) ([]domain.LedgerEvent, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

var (
	ErrCreditLimitExceeded = errors.New("credit limit exceeded")
	ErrBalanceNotFound     = errors.New("balance not found")
	ErrUserInactive        = errors.New("user is not active")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

// Service is the sole gatekeeper of balance mutation. Debits and credits
// for the same user are serialized by the repository's row lock; calls
// carrying an already-applied idempotency key are absorbed and return the
// previously recorded event.
type Service struct {
	ledgerRepo LedgerRepo
	userRepo   UserRepo
}

func New(ledgerRepo LedgerRepo, userRepo UserRepo) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
		userRepo:   userRepo,
	}
}

// Debit admits the amount against the user's credit limit and applies it.
// Inactive users are refused before any ledger access.
func (s *Service) Debit(ctx context.Context, userID int, amount float64, idempotencyKey string) (*domain.LedgerEvent, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user for admission", zap.Error(err))
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrUserInactive
	}

	result, err := s.ledgerRepo.ApplyDelta(ctx, userID, amount, idempotencyKey)
	if err != nil {
		zap.L().Error("failed to apply debit", zap.Error(err))
		return nil, err
	}
	if result == nil {
		return nil, ErrBalanceNotFound
	}
	if result.Rejected {
		metrics.DebitsRejected.Inc()
		zap.L().Info("debit rejected by credit limit",
			zap.Int("user_id", userID), zap.Float64("amount", amount))
		return nil, ErrCreditLimitExceeded
	}
	if !result.Applied {
		metrics.DuplicatesAbsorbed.Inc()
		zap.L().Info("duplicate debit absorbed", zap.String("idempotency_key", idempotencyKey))
		return result.Event, nil
	}

	metrics.DebitsAccepted.Inc()
	return result.Event, nil
}

// Credit decrements the balance, clamped at zero. A credit never fails on
// admission grounds; only storage failures propagate.
func (s *Service) Credit(ctx context.Context, userID int, amount float64, idempotencyKey string) (*domain.LedgerEvent, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	result, err := s.ledgerRepo.ApplyDelta(ctx, userID, -amount, idempotencyKey)
	if err != nil {
		zap.L().Error("failed to apply credit", zap.Error(err))
		return nil, err
	}
	if result == nil {
		return nil, ErrBalanceNotFound
	}
	if !result.Applied {
		metrics.DuplicatesAbsorbed.Inc()
		zap.L().Info("duplicate credit absorbed", zap.String("idempotency_key", idempotencyKey))
	}
	return result.Event, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.ledgerRepo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return nil, ErrBalanceNotFound
	}
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID int, creditLimit float64) (*domain.Balance, error) {
	balance, err := s.ledgerRepo.CreateUserBalance(ctx, userID, creditLimit)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) GetHistory(ctx context.Context, userID int) ([]domain.LedgerEvent, error) {
	events, err := s.ledgerRepo.ListEventsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch ledger events", zap.Error(err))
		return nil, err
	}
	return events, nil
}

// Reconcile replays the user's event history from zero and checks that the
// running sum matches both the per-event resulting balances and the stored
// balance.
func (s *Service) Reconcile(ctx context.Context, userID int) (bool, error) {
	balance, err := s.GetBalance(ctx, userID)
	if err != nil {
		return false, err
	}
	events, err := s.ledgerRepo.ListEventsByUserID(ctx, userID)
	if err != nil {
		return false, err
	}

	var replayed float64
	for _, event := range events {
		replayed += event.Delta
		if !amountsEqual(replayed, event.ResultingBalance) {
			return false, nil
		}
	}
	return amountsEqual(replayed, balance.CurrentBalance), nil
}

const amountEpsilon = 1e-6

func amountsEqual(a, b float64) bool {
	return math.Abs(a-b) < amountEpsilon
}
