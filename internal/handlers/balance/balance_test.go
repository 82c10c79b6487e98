package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/mealtab/mealtab/internal/dto"
	"github.com/mealtab/mealtab/internal/service/ledgerservice"
	"github.com/mealtab/mealtab/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetBalance(ctx, 1).Return(&domain.Balance{
					CreditLimit:    5000,
					CurrentBalance: 1200.50,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{
				CreditLimit:     5000,
				CurrentBalance:  1200.50,
				AvailableCredit: 3799.50,
			},
		},
		{
			name: "Balance not found",
			prepareMock: func() {
				service.EXPECT().GetBalance(ctx, 1).Return(nil, ledgerservice.ErrBalanceNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetBalance(ctx, 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/balance", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)

	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Events returned in application order",
			prepareMock: func() {
				service.EXPECT().GetHistory(ctx, 1).Return([]domain.LedgerEvent{
					{Delta: 120, ResultingBalance: 120, IdempotencyKey: "order:ORD1"},
					{Delta: -120, ResultingBalance: 0, IdempotencyKey: "order:ORD1:cancel"},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No events recorded",
			prepareMock: func() {
				service.EXPECT().GetHistory(ctx, 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetHistory(ctx, 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/balance/history", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()
			handler.GetHistory(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.LedgerEventResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}
