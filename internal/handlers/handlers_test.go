package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/mealtab/mealtab/docs"
	authhandlers "github.com/mealtab/mealtab/internal/handlers/auth"
	balancehandlers "github.com/mealtab/mealtab/internal/handlers/balance"
	ordershandlers "github.com/mealtab/mealtab/internal/handlers/orders"
	paymenthandlers "github.com/mealtab/mealtab/internal/handlers/payments"
	"github.com/mealtab/mealtab/internal/service"
	"github.com/mealtab/mealtab/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    authhandlers.NewMockService(ctrl),
		OrderService:   ordershandlers.NewMockService(ctrl),
		PaymentService: paymenthandlers.NewMockService(ctrl),
		LedgerService:  balancehandlers.NewMockService(ctrl),
	}

	h := New(services, auth.NewMockJWTServiceInterface(ctrl))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().CancelOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().AdvanceStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().InitiatePayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().GetPayments(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		OrderHandler:   mockOrderHandler,
		PaymentHandler: mockPaymentHandler,
		BalanceHandler: mockBalanceHandler,
		jwtService:     auth.NewJWTService("test-secret"),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/user/orders", http.StatusUnauthorized},
		{"GET", "/api/user/orders", http.StatusUnauthorized},
		{"POST", "/api/user/orders/41/cancel", http.StatusUnauthorized},
		{"POST", "/api/user/orders/41/status", http.StatusUnauthorized},
		{"POST", "/api/user/payments/initiate", http.StatusUnauthorized},
		{"POST", "/api/user/payments/verify", http.StatusUnauthorized},
		{"GET", "/api/user/payments", http.StatusUnauthorized},
		{"GET", "/api/user/balance", http.StatusUnauthorized},
		{"GET", "/api/user/balance/history", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
