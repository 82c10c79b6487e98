package notify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mealtab/mealtab/internal/domain"
)

func NewMock(t *testing.T) (*Notifier, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	notifier := New(repo, 2)
	defer ctrl.Finish()
	return notifier, repo
}

func TestOrderPlaced(t *testing.T) {
	notifier, repo := NewMock(t)
	defer notifier.Close()

	var mu sync.Mutex
	var recipients []int
	var wg sync.WaitGroup
	wg.Add(2)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, n *domain.Notification) (*domain.Notification, error) {
			defer wg.Done()
			mu.Lock()
			recipients = append(recipients, n.UserID)
			mu.Unlock()
			assert.Equal(t, OrderNotificationType, n.Type)
			assert.False(t, n.CreatedAt.IsZero())
			return n, nil
		}).Times(2)

	notifier.OrderPlaced(&domain.Order{OrderNumber: "ORD1", UserID: 1, ProviderID: 3})
	wg.Wait()

	assert.ElementsMatch(t, []int{1, 3}, recipients)
}

func TestPaymentSettled(t *testing.T) {
	notifier, repo := NewMock(t)
	defer notifier.Close()

	var wg sync.WaitGroup
	wg.Add(1)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, n *domain.Notification) (*domain.Notification, error) {
			defer wg.Done()
			assert.Equal(t, 1, n.UserID)
			assert.Equal(t, PaymentNotificationType, n.Type)
			assert.Contains(t, n.Message, "500.00")
			return n, nil
		})

	notifier.PaymentSettled(&domain.Payment{UserID: 1, Amount: 500})
	wg.Wait()
}

func TestDeliveryFailureIsSwallowed(t *testing.T) {
	notifier, repo := NewMock(t)
	defer notifier.Close()

	var wg sync.WaitGroup
	wg.Add(1)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, n *domain.Notification) (*domain.Notification, error) {
			defer wg.Done()
			return nil, assert.AnError
		})

	notifier.PaymentSettled(&domain.Payment{UserID: 1, Amount: 500})
	wg.Wait()
}
