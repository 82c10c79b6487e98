package repo

import (
	"github.com/mealtab/mealtab/internal/notify"
	"github.com/mealtab/mealtab/internal/pg"
	catalogrepo "github.com/mealtab/mealtab/internal/repo/catalog-repo"
	ledgerrepo "github.com/mealtab/mealtab/internal/repo/ledger-repo"
	notificationrepo "github.com/mealtab/mealtab/internal/repo/notification-repo"
	orderrepo "github.com/mealtab/mealtab/internal/repo/order-repo"
	paymentrepo "github.com/mealtab/mealtab/internal/repo/payment-repo"
	userrepo "github.com/mealtab/mealtab/internal/repo/user-repo"
	"github.com/mealtab/mealtab/internal/service/authservice"
	"github.com/mealtab/mealtab/internal/service/ledgerservice"
	"github.com/mealtab/mealtab/internal/service/orderservice"
	"github.com/mealtab/mealtab/internal/service/paymentservice"
)

type Repositories struct {
	UserRepo         authservice.Repo
	LedgerRepo       ledgerservice.LedgerRepo
	OrderRepo        orderservice.OrderRepo
	CatalogRepo      orderservice.CatalogRepo
	PaymentRepo      paymentservice.PaymentRepo
	NotificationRepo notify.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		LedgerRepo:       ledgerrepo.New(conn, txManager),
		OrderRepo:        orderrepo.New(conn, txManager),
		CatalogRepo:      catalogrepo.New(conn),
		PaymentRepo:      paymentrepo.New(conn, txManager),
		NotificationRepo: notificationrepo.New(conn),
	}
}
