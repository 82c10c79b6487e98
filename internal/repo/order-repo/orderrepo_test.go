package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/mealtab/mealtab/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var orderColumns = []string{
	"id", "order_number", "user_id", "provider_id", "total_amount",
	"status", "payment_method", "special_instructions", "created_at",
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)

	orderQuery := regexp.QuoteMeta(`
		INSERT INTO orders (order_number, user_id, provider_id, total_amount, status, payment_method, special_instructions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`)
	itemQuery := regexp.QuoteMeta(`
		INSERT INTO order_items (order_id, item_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`)

	createdAt := time.Now()

	newOrder := func() *domain.Order {
		return &domain.Order{
			OrderNumber:   "ORD1",
			UserID:        1,
			ProviderID:    3,
			TotalAmount:   120.0,
			Status:        domain.PlacedOrderStatus,
			PaymentMethod: domain.CreditPaymentMethod,
			CreatedAt:     createdAt,
			Items: []domain.OrderItem{
				{ItemID: 12, Quantity: 2, UnitPrice: 60.0, TotalPrice: 120.0},
			},
		}
	}

	inTx := func() {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
	}

	t.Run("Order and items saved together", func(t *testing.T) {
		order := newOrder()
		inTx()
		mock.ExpectQuery(orderQuery).
			WithArgs("ORD1", 1, 3, 120.0, domain.PlacedOrderStatus, domain.CreditPaymentMethod, "", createdAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(41))
		mock.ExpectQuery(itemQuery).
			WithArgs(41, 12, 2, 60.0, 120.0).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(101))

		err := repo.Save(context.Background(), order)
		assert.NoError(t, err)
		assert.Equal(t, 41, order.ID)
		assert.Equal(t, 41, order.Items[0].OrderID)
		assert.Equal(t, 101, order.Items[0].ID)
	})

	t.Run("Item insert failure aborts the save", func(t *testing.T) {
		order := newOrder()
		inTx()
		mock.ExpectQuery(orderQuery).
			WithArgs("ORD1", 1, 3, 120.0, domain.PlacedOrderStatus, domain.CreditPaymentMethod, "", createdAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(41))
		mock.ExpectQuery(itemQuery).
			WithArgs(41, 12, 2, 60.0, 120.0).
			WillReturnError(errors.New("database error"))

		err := repo.Save(context.Background(), order)
		assert.Error(t, err)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, order_number, user_id, provider_id, total_amount, status, payment_method, special_instructions, created_at FROM orders WHERE id = $1`)
	createdAt := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Order
	}{
		{
			name: "Order found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(41).
					WillReturnRows(pgxmock.NewRows(orderColumns).
						AddRow(41, "ORD1", 1, 3, 120.0, domain.PlacedOrderStatus, domain.CreditPaymentMethod, "", createdAt))
			},
			result: &domain.Order{
				ID: 41, OrderNumber: "ORD1", UserID: 1, ProviderID: 3, TotalAmount: 120.0,
				Status: domain.PlacedOrderStatus, PaymentMethod: domain.CreditPaymentMethod, CreatedAt: createdAt,
			},
		},
		{
			name: "Missing order returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(41).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(41).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), 41)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindOrdersByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, order_number, user_id, provider_id, total_amount, status, payment_method, special_instructions, created_at FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`)
	createdAt := time.Now()

	t.Run("Orders paginated", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1, 10, 0).
			WillReturnRows(pgxmock.NewRows(orderColumns).
				AddRow(42, "ORD2", 1, 3, 60.0, domain.PlacedOrderStatus, domain.CreditPaymentMethod, "", createdAt).
				AddRow(41, "ORD1", 1, 3, 120.0, domain.DeliveredOrderStatus, domain.CreditPaymentMethod, "", createdAt))

		orders, err := repo.FindOrdersByUserID(context.Background(), 1, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, orders, 2)
		assert.Equal(t, "ORD2", orders[0].OrderNumber)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1, 10, 0).WillReturnError(errors.New("database error"))

		orders, err := repo.FindOrdersByUserID(context.Background(), 1, 10, 0)
		assert.Error(t, err)
		assert.Nil(t, orders)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
		UPDATE orders
		SET status = $1
		WHERE id = $2 AND status = ANY($3)`)
	expected := []string{domain.PlacedOrderStatus, domain.PreparingOrderStatus}

	tests := []struct {
		name      string
		mockSetup func()
		updated   bool
		expectErr bool
	}{
		{
			name: "Transition applied",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(domain.CancelledOrderStatus, 41, expected).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			updated: true,
		},
		{
			name: "Status no longer in expected set",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(domain.CancelledOrderStatus, 41, expected).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			updated: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(domain.CancelledOrderStatus, 41, expected).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.UpdateStatus(context.Background(), 41, domain.CancelledOrderStatus, expected)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.updated, updated)
		})
	}
}

func TestRepository_FindItemsByOrderID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, order_id, item_id, quantity, unit_price, total_price FROM order_items WHERE order_id = $1 ORDER BY id ASC`)

	t.Run("Items in insertion order", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(41).
			WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "item_id", "quantity", "unit_price", "total_price"}).
				AddRow(101, 41, 12, 2, 60.0, 120.0))

		items, err := repo.FindItemsByOrderID(context.Background(), 41)
		assert.NoError(t, err)
		assert.Equal(t, []domain.OrderItem{{ID: 101, OrderID: 41, ItemID: 12, Quantity: 2, UnitPrice: 60.0, TotalPrice: 120.0}}, items)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(41).WillReturnError(errors.New("database error"))

		items, err := repo.FindItemsByOrderID(context.Background(), 41)
		assert.Error(t, err)
		assert.Nil(t, items)
	})
}
