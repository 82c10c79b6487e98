package ledgerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/mealtab/mealtab/internal/pg"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

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

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, credit_limit, current_balance
        FROM balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CreditLimit, &balance.CurrentBalance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateUserBalance(ctx context.Context, userID int, creditLimit float64) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, credit_limit, current_balance)
        VALUES ($1, $2, 0)
        RETURNING id, user_id, credit_limit, current_balance
    `
	row := r.db.QueryRow(ctx, query, userID, creditLimit)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CreditLimit, &balance.CurrentBalance)
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// ApplyDelta is the single write path for balances. The idempotency lookup,
// the locked balance update and the event append run in one transaction:
// a positive delta (debit) is refused when it would push the balance past
// the credit limit, a negative delta (credit) is clamped at zero. The
// unique index on idempotency_key is the backstop for concurrent replays
// that both pass the initial lookup.
func (r *Repository) ApplyDelta(ctx context.Context, userID int, delta float64, idempotencyKey string) (*domain.DeltaResult, error) {
	var result *domain.DeltaResult

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := r.findEventByKey(ctx, idempotencyKey)
		if err != nil {
			return err
		}
		if existing != nil {
			result = &domain.DeltaResult{Event: existing, Applied: false}
			return nil
		}

		lockQuery := `
			SELECT id, user_id, credit_limit, current_balance
			FROM balances
			WHERE user_id = $1
			FOR UPDATE
		`
		var balance domain.Balance
		err = r.db.QueryRow(ctx, lockQuery, userID).
			Scan(&balance.ID, &balance.UserID, &balance.CreditLimit, &balance.CurrentBalance)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				result = nil
				return nil
			}
			zap.L().Error("failed to lock user balance", zap.Error(err))
			return err
		}

		if delta > 0 && balance.CurrentBalance+delta > balance.CreditLimit {
			result = &domain.DeltaResult{Rejected: true}
			return nil
		}

		newBalance := balance.CurrentBalance + delta
		if newBalance < 0 {
			newBalance = 0
		}
		effectiveDelta := newBalance - balance.CurrentBalance

		updateQuery := `
			UPDATE balances
			SET current_balance = $1
			WHERE user_id = $2
		`
		if _, err := r.db.Exec(ctx, updateQuery, newBalance, userID); err != nil {
			zap.L().Error("failed to update user balance", zap.Error(err))
			return err
		}

		event := &domain.LedgerEvent{
			UserID:           userID,
			Delta:            effectiveDelta,
			ResultingBalance: newBalance,
			IdempotencyKey:   idempotencyKey,
			CreatedAt:        time.Now(),
		}
		insertQuery := `
			INSERT INTO ledger_events (user_id, delta, resulting_balance, idempotency_key, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		err = r.db.QueryRow(ctx, insertQuery,
			event.UserID, event.Delta, event.ResultingBalance, event.IdempotencyKey, event.CreatedAt).
			Scan(&event.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				// A concurrent call with the same key won the race.
				applied, findErr := r.findEventByKey(ctx, idempotencyKey)
				if findErr != nil {
					return findErr
				}
				result = &domain.DeltaResult{Event: applied, Applied: false}
				return nil
			}
			zap.L().Error("failed to append ledger event", zap.Error(err))
			return err
		}

		result = &domain.DeltaResult{Event: event, Applied: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repository) findEventByKey(ctx context.Context, idempotencyKey string) (*domain.LedgerEvent, error) {
	query := `
        SELECT id, user_id, delta, resulting_balance, idempotency_key, created_at
        FROM ledger_events
        WHERE idempotency_key = $1
    `
	row := r.db.QueryRow(ctx, query, idempotencyKey)
	var event domain.LedgerEvent
	err := row.Scan(&event.ID, &event.UserID, &event.Delta, &event.ResultingBalance, &event.IdempotencyKey, &event.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find ledger event", zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *Repository) FindEventByKey(ctx context.Context, idempotencyKey string) (*domain.LedgerEvent, error) {
	return r.findEventByKey(ctx, idempotencyKey)
}

func (r *Repository) ListEventsByUserID(ctx context.Context, userID int) ([]domain.LedgerEvent, error) {
	query := `
        SELECT id, user_id, delta, resulting_balance, idempotency_key, created_at
        FROM ledger_events
        WHERE user_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch ledger events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.LedgerEvent
	for rows.Next() {
		var event domain.LedgerEvent
		err := rows.Scan(&event.ID, &event.UserID, &event.Delta, &event.ResultingBalance, &event.IdempotencyKey, &event.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger event row", zap.Error(err))
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
