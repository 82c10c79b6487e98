package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/mealtab/mealtab/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=notify.go -destination=notify_mock.go -package=notify

const deliveryTimeout = time.Second * 5

const (
	OrderNotificationType   string = "ORDER"
	PaymentNotificationType string = "PAYMENT"
)

type Repo interface {
	Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
}

// NotifierI delivers fire-and-forget events. Delivery failures are logged
// and never surfaced to the caller: ledger state must not depend on them.
type NotifierI interface {
	OrderPlaced(order *domain.Order)
	PaymentSettled(payment *domain.Payment)
	Close()
}

type Notifier struct {
	repo       Repo
	workerPool WorkerPoolI
}

func New(repo Repo, workers int) *Notifier {
	return &Notifier{
		repo:       repo,
		workerPool: NewWorkerPool(workers),
	}
}

// OrderPlaced notifies the provider about the new order and the user about
// its acceptance.
func (n *Notifier) OrderPlaced(order *domain.Order) {
	notifications := []*domain.Notification{
		{
			UserID:  order.ProviderID,
			Title:   "New Order Received",
			Message: fmt.Sprintf("You have a new order #%s", order.OrderNumber),
			Type:    OrderNotificationType,
		},
		{
			UserID:  order.UserID,
			Title:   "Order Placed",
			Message: fmt.Sprintf("Your order #%s has been placed", order.OrderNumber),
			Type:    OrderNotificationType,
		},
	}
	n.enqueue(notifications)
}

func (n *Notifier) PaymentSettled(payment *domain.Payment) {
	notifications := []*domain.Notification{
		{
			UserID:  payment.UserID,
			Title:   "Payment Settled",
			Message: fmt.Sprintf("Your payment of %.2f has been verified", payment.Amount),
			Type:    PaymentNotificationType,
		},
	}
	n.enqueue(notifications)
}

func (n *Notifier) enqueue(notifications []*domain.Notification) {
	err := n.workerPool.AddTask(context.Background(), func() error {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		defer cancel()

		var g errgroup.Group
		for _, notification := range notifications {
			notification := notification
			notification.CreatedAt = time.Now()
			g.Go(func() error {
				_, err := n.repo.Create(ctx, notification)
				return err
			})
		}
		return g.Wait()
	})
	if err != nil {
		zap.L().Error("failed to enqueue notification", zap.Error(err))
	}
}

func (n *Notifier) Close() {
	n.workerPool.Close()
}
