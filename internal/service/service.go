package service

import (
	"github.com/mealtab/mealtab/internal/config"
	"github.com/mealtab/mealtab/internal/gateway"
	authhandlers "github.com/mealtab/mealtab/internal/handlers/auth"
	balancehandlers "github.com/mealtab/mealtab/internal/handlers/balance"
	ordershandlers "github.com/mealtab/mealtab/internal/handlers/orders"
	paymenthandlers "github.com/mealtab/mealtab/internal/handlers/payments"
	"github.com/mealtab/mealtab/internal/notify"
	"github.com/mealtab/mealtab/internal/pg"
	"github.com/mealtab/mealtab/internal/repo"
	"github.com/mealtab/mealtab/internal/service/authservice"
	"github.com/mealtab/mealtab/internal/service/ledgerservice"
	"github.com/mealtab/mealtab/internal/service/orderservice"
	"github.com/mealtab/mealtab/internal/service/paymentservice"

	pkgauth "github.com/mealtab/mealtab/pkg/auth"
)

type Services struct {
	AuthService    authhandlers.Service
	OrderService   ordershandlers.Service
	PaymentService paymenthandlers.Service
	LedgerService  balancehandlers.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, gatewayClient gateway.ClientI, notifier notify.NotifierI) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, repo.UserRepo)
	orderService := orderservice.New(repo.OrderRepo, repo.CatalogRepo, ledgerService, txManager, notifier)
	paymentService := paymentservice.New(repo.PaymentRepo, gatewayClient, ledgerService, txManager, notifier)
	authService := authservice.New(repo.UserRepo, ledgerService, &pkgauth.HashService{},
		pkgauth.NewJWTService(cfg.JWTSecret), cfg.DefaultCreditLimit)

	return &Services{
		AuthService:    authService,
		OrderService:   orderService,
		PaymentService: paymentService,
		LedgerService:  ledgerService,
	}
}
