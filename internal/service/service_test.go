package service

import (
	"testing"

	"github.com/mealtab/mealtab/internal/config"
	"github.com/mealtab/mealtab/internal/gateway"
	"github.com/mealtab/mealtab/internal/notify"
	"github.com/mealtab/mealtab/internal/pg"
	"github.com/mealtab/mealtab/internal/repo"
	"github.com/mealtab/mealtab/internal/service/authservice"
	"github.com/mealtab/mealtab/internal/service/ledgerservice"
	"github.com/mealtab/mealtab/internal/service/orderservice"
	"github.com/mealtab/mealtab/internal/service/paymentservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		UserRepo:         authservice.NewMockRepo(ctrl),
		LedgerRepo:       ledgerservice.NewMockLedgerRepo(ctrl),
		OrderRepo:        orderservice.NewMockOrderRepo(ctrl),
		CatalogRepo:      orderservice.NewMockCatalogRepo(ctrl),
		PaymentRepo:      paymentservice.NewMockPaymentRepo(ctrl),
		NotificationRepo: notify.NewMockRepo(ctrl),
	}

	cfg := &config.Config{JWTSecret: "test-secret", DefaultCreditLimit: 5000}
	services := New(cfg, repos, pg.NewMockTXManager(ctrl), gateway.NewMockClientI(ctrl), notify.NewMockNotifierI(ctrl))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.OrderService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.LedgerService)
}
