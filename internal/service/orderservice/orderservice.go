package orderservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/mealtab/mealtab/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orderservice.go -destination=orderservice_mock.go -package=orderservice

type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, orderID int) (*domain.Order, error)
	FindOrdersByUserID(ctx context.Context, userID int, limit, offset int) ([]domain.Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int) ([]domain.OrderItem, error)
	UpdateStatus(ctx context.Context, orderID int, status string, expected []string) (bool, error)
}

type CatalogRepo interface {
	FindItemByID(ctx context.Context, itemID int) (*domain.MenuItem, error)
}

type Ledger interface {
	Debit(ctx context.Context, userID int, amount float64, idempotencyKey string) (*domain.LedgerEvent, error)
	Credit(ctx context.Context, userID int, amount float64, idempotencyKey string) (*domain.LedgerEvent, error)
}

type Notifier interface {
	OrderPlaced(order *domain.Order)
}

var (
	ErrEmptyOrder          = errors.New("order has no items")
	ErrInvalidQuantity     = errors.New("item quantity must be positive")
	ErrItemUnavailable     = errors.New("item is not available")
	ErrPriceMismatch       = errors.New("item price does not match catalog")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
	ErrInvalidTransition   = errors.New("invalid order status transition")
)

type OrderItemInput struct {
	ItemID    int
	Quantity  int
	UnitPrice float64
}

type Service struct {
	orderRepo   OrderRepo
	catalogRepo CatalogRepo
	ledger      Ledger
	txManager   pg.TXManager
	notifier    Notifier
}

func New(orderRepo OrderRepo, catalogRepo CatalogRepo, ledger Ledger, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		ledger:      ledger,
		txManager:   txManager,
		notifier:    notifier,
	}
}

// PlaceOrder prices the line items from the catalog, admits the total
// against the user's credit limit and persists the order. The debit and the
// order insert run in one transaction keyed by the order number, so a
// rejected debit leaves no order behind and a retried request is absorbed.
func (s *Service) PlaceOrder(ctx context.Context, userID, providerID int, items []OrderItemInput, paymentMethod, instructions string) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	var totalAmount float64
	for _, input := range items {
		if input.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		item, err := s.catalogRepo.FindItemByID(ctx, input.ItemID)
		if err != nil {
			zap.L().Error("failed to look up menu item", zap.Error(err))
			return nil, err
		}
		if item == nil || !item.IsAvailable || item.ProviderID != providerID {
			return nil, ErrItemUnavailable
		}
		// The catalog price is authoritative; a client-sent price is only
		// ever cross-checked, never applied.
		if input.UnitPrice != 0 && input.UnitPrice != item.Price {
			return nil, ErrPriceMismatch
		}

		lineTotal := item.Price * float64(input.Quantity)
		totalAmount += lineTotal
		orderItems = append(orderItems, domain.OrderItem{
			ItemID:     item.ID,
			Quantity:   input.Quantity,
			UnitPrice:  item.Price,
			TotalPrice: lineTotal,
		})
	}

	order := &domain.Order{
		OrderNumber:         newOrderNumber(),
		UserID:              userID,
		ProviderID:          providerID,
		TotalAmount:         totalAmount,
		Status:              domain.PlacedOrderStatus,
		PaymentMethod:       paymentMethod,
		SpecialInstructions: instructions,
		CreatedAt:           time.Now(),
		Items:               orderItems,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if order.PaymentMethod == domain.CreditPaymentMethod {
			key := debitKey(order.OrderNumber)
			if _, err := s.ledger.Debit(ctx, userID, totalAmount, key); err != nil {
				return err
			}
		}
		return s.orderRepo.Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.OrderPlaced(order)
	return order, nil
}

// CancelOrder reverses the order's debit and moves it to CANCELLED. Repeated
// cancellations are absorbed: the status compare-and-set loses and the
// credit's idempotency key has already been applied.
func (s *Service) CancelOrder(ctx context.Context, userID, orderID int) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil || order.UserID != userID {
		return ErrOrderNotFound
	}
	if order.Status == domain.DeliveredOrderStatus {
		return ErrOrderNotCancellable
	}
	if order.Status == domain.CancelledOrderStatus {
		zap.L().Info("duplicate cancellation absorbed", zap.String("order_number", order.OrderNumber))
		return nil
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		updated, err := s.orderRepo.UpdateStatus(ctx, orderID, domain.CancelledOrderStatus,
			[]string{domain.PlacedOrderStatus, domain.PreparingOrderStatus})
		if err != nil {
			return err
		}
		if !updated {
			// Lost the race to another cancellation or a delivery.
			current, err := s.orderRepo.FindByID(ctx, orderID)
			if err != nil {
				return err
			}
			if current != nil && current.Status == domain.CancelledOrderStatus {
				return nil
			}
			return ErrOrderNotCancellable
		}

		if order.PaymentMethod == domain.CreditPaymentMethod {
			if _, err := s.ledger.Credit(ctx, userID, order.TotalAmount, cancelKey(order.OrderNumber)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) GetOrders(ctx context.Context, userID, page, limit int) ([]domain.Order, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	orders, err := s.orderRepo.FindOrdersByUserID(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	for i := range orders {
		items, err := s.orderRepo.FindItemsByOrderID(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

var statusTransitions = map[string]string{
	domain.PlacedOrderStatus:    domain.PreparingOrderStatus,
	domain.PreparingOrderStatus: domain.DeliveredOrderStatus,
}

// AdvanceStatus moves the order along PLACED -> PREPARING -> DELIVERED on
// behalf of its provider.
func (s *Service) AdvanceStatus(ctx context.Context, providerID, orderID int, status string) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil || order.ProviderID != providerID {
		return ErrOrderNotFound
	}

	var expected []string
	for from, to := range statusTransitions {
		if to == status {
			expected = append(expected, from)
		}
	}
	if len(expected) == 0 {
		return ErrInvalidTransition
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, orderID, status, expected)
	if err != nil {
		return err
	}
	if !updated {
		return ErrInvalidTransition
	}
	return nil
}

func newOrderNumber() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("ORD%d%s", time.Now().UnixMilli(), strings.ToUpper(suffix))
}

func debitKey(orderNumber string) string {
	return fmt.Sprintf("order:%s", orderNumber)
}

func cancelKey(orderNumber string) string {
	return fmt.Sprintf("order:%s:cancel", orderNumber)
}
