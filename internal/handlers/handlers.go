package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mealtab/mealtab/docs"
	authhandlers "github.com/mealtab/mealtab/internal/handlers/auth"
	balancehandlers "github.com/mealtab/mealtab/internal/handlers/balance"
	ordershandlers "github.com/mealtab/mealtab/internal/handlers/orders"
	paymenthandlers "github.com/mealtab/mealtab/internal/handlers/payments"
	"github.com/mealtab/mealtab/internal/service"
	"github.com/mealtab/mealtab/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	PlaceOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	CancelOrder(w http.ResponseWriter, r *http.Request)
	AdvanceStatus(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	InitiatePayment(w http.ResponseWriter, r *http.Request)
	VerifyPayment(w http.ResponseWriter, r *http.Request)
	GetPayments(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	OrderHandler   OrderHandler
	PaymentHandler PaymentHandler
	BalanceHandler BalanceHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		OrderHandler:   ordershandlers.New(s.OrderService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		BalanceHandler: balancehandlers.New(s.LedgerService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.PlaceOrder)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Post("/{id}/cancel", h.OrderHandler.CancelOrder)
				r.Post("/{id}/status", h.OrderHandler.AdvanceStatus)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Post("/initiate", h.PaymentHandler.InitiatePayment)
				r.Post("/verify", h.PaymentHandler.VerifyPayment)
				r.Get("/", h.PaymentHandler.GetPayments)
			})
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Get("/history", h.BalanceHandler.GetHistory)
			})
		})
	})

	return r
}
