package orderrepo

import (
	"context"
	"errors"

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

// Save persists the order together with its line items.
func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
			INSERT INTO orders (order_number, user_id, provider_id, total_amount, status, payment_method, special_instructions, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`
		err := r.db.QueryRow(ctx, query,
			order.OrderNumber, order.UserID, order.ProviderID, order.TotalAmount,
			order.Status, order.PaymentMethod, order.SpecialInstructions, order.CreatedAt).
			Scan(&order.ID)
		if err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}

		itemQuery := `
			INSERT INTO order_items (order_id, item_id, quantity, unit_price, total_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID
			err := r.db.QueryRow(ctx, itemQuery,
				item.OrderID, item.ItemID, item.Quantity, item.UnitPrice, item.TotalPrice).
				Scan(&item.ID)
			if err != nil {
				zap.L().Error("can't save order item", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, orderID int) (*domain.Order, error) {
	query := `
        SELECT id, order_number, user_id, provider_id, total_amount, status, payment_method, special_instructions, created_at
        FROM orders
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, orderID)

	var order domain.Order
	err := row.Scan(&order.ID, &order.OrderNumber, &order.UserID, &order.ProviderID, &order.TotalAmount,
		&order.Status, &order.PaymentMethod, &order.SpecialInstructions, &order.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) FindOrdersByUserID(ctx context.Context, userID int, limit, offset int) ([]domain.Order, error) {
	query := `
        SELECT id, order_number, user_id, provider_id, total_amount, status, payment_method, special_instructions, created_at
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.OrderNumber, &order.UserID, &order.ProviderID, &order.TotalAmount,
			&order.Status, &order.PaymentMethod, &order.SpecialInstructions, &order.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// UpdateStatus moves the order to a new status only when it is currently in
// one of the expected statuses, and reports whether the transition happened.
func (r *Repository) UpdateStatus(ctx context.Context, orderID int, status string, expected []string) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1
        WHERE id = $2 AND status = ANY($3)
    `
	tag, err := r.db.Exec(ctx, query, status, orderID, expected)
	if err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindItemsByOrderID(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	query := `
        SELECT id, order_id, item_id, quantity, unit_price, total_price
        FROM order_items
        WHERE order_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ItemID, &item.Quantity, &item.UnitPrice, &item.TotalPrice)
		if err != nil {
			zap.L().Error("can't scan order item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
