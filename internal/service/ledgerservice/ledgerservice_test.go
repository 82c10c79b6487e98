package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockLedgerRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)

	service := New(ledgerRepo, userRepo)
	defer ctrl.Finish()
	return service, ledgerRepo, userRepo
}

func TestDebit(t *testing.T) {
	service, ledgerRepo, userRepo := NewMock(t)
	ctx := context.Background()

	activeUser := &domain.User{ID: 1, IsActive: true}

	tests := []struct {
		name          string
		userID        int
		amount        float64
		key           string
		prepareMock   func()
		expectedEvent *domain.LedgerEvent
		expectedError error
	}{
		{
			name:   "Debit within available credit",
			userID: 1,
			amount: 90,
			key:    "order:ORD1",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(ctx, 1).Return(activeUser, nil)
				ledgerRepo.EXPECT().ApplyDelta(ctx, 1, 90.0, "order:ORD1").Return(&domain.DeltaResult{
					Event:   &domain.LedgerEvent{UserID: 1, Delta: 90, ResultingBalance: 4990, IdempotencyKey: "order:ORD1"},
					Applied: true,
				}, nil)
			},
			expectedEvent: &domain.LedgerEvent{UserID: 1, Delta: 90, ResultingBalance: 4990, IdempotencyKey: "order:ORD1"},
		},
		{
			name:   "Debit rejected by credit limit",
			userID: 1,
			amount: 150,
			key:    "order:ORD2",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(ctx, 1).Return(activeUser, nil)
				ledgerRepo.EXPECT().ApplyDelta(ctx, 1, 150.0, "order:ORD2").Return(&domain.DeltaResult{
					Rejected: true,
				}, nil)
			},
			expectedError: ErrCreditLimitExceeded,
		},
		{
			name:   "Duplicate debit absorbed",
			userID: 1,
			amount: 90,
			key:    "order:ORD1",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(ctx, 1).Return(activeUser, nil)
				ledgerRepo.EXPECT().ApplyDelta(ctx, 1, 90.0, "order:ORD1").Return(&domain.DeltaResult{
					Event:   &domain.LedgerEvent{UserID: 1, Delta: 90, ResultingBalance: 4990, IdempotencyKey: "order:ORD1"},
					Applied: false,
				}, nil)
			},
			expectedEvent: &domain.LedgerEvent{UserID: 1, Delta: 90, ResultingBalance: 4990, IdempotencyKey: "order:ORD1"},
		},
		{
			name:          "Non-positive amount",
			userID:        1,
			amount:        0,
			key:           "order:ORD3",
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Inactive user refused before ledger access",
			userID: 2,
			amount: 50,
			key:    "order:ORD4",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(ctx, 2).Return(&domain.User{ID: 2, IsActive: false}, nil)
			},
			expectedError: ErrUserInactive,
		},
		{
			name:   "Unknown user refused",
			userID: 3,
			amount: 50,
			key:    "order:ORD5",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(ctx, 3).Return(nil, nil)
			},
			expectedError: ErrUserInactive,
		},
		{
			name:   "No balance row",
			userID: 1,
			amount: 50,
			key:    "order:ORD6",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(ctx, 1).Return(activeUser, nil)
				ledgerRepo.EXPECT().ApplyDelta(ctx, 1, 50.0, "order:ORD6").Return(nil, nil)
			},
			expectedError: ErrBalanceNotFound,
		},
		{
			name:   "Repo error propagates",
			userID: 1,
			amount: 50,
			key:    "order:ORD7",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(ctx, 1).Return(activeUser, nil)
				ledgerRepo.EXPECT().ApplyDelta(ctx, 1, 50.0, "order:ORD7").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			event, err := service.Debit(ctx, tt.userID, tt.amount, tt.key)
			if tt.expectedError != nil {
				assert.Nil(t, event)
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEvent, event)
			}
		})
	}
}

func TestCredit(t *testing.T) {
	service, ledgerRepo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		userID        int
		amount        float64
		key           string
		prepareMock   func()
		expectedEvent *domain.LedgerEvent
		expectedError error
	}{
		{
			name:   "Credit reduces balance",
			userID: 1,
			amount: 500,
			key:    "order_N5vJhYqk",
			prepareMock: func() {
				ledgerRepo.EXPECT().ApplyDelta(ctx, 1, -500.0, "order_N5vJhYqk").Return(&domain.DeltaResult{
					Event:   &domain.LedgerEvent{UserID: 1, Delta: -500, ResultingBalance: 700, IdempotencyKey: "order_N5vJhYqk"},
					Applied: true,
				}, nil)
			},
			expectedEvent: &domain.LedgerEvent{UserID: 1, Delta: -500, ResultingBalance: 700, IdempotencyKey: "order_N5vJhYqk"},
		},
		{
			name:   "Duplicate credit absorbed",
			userID: 1,
			amount: 500,
			key:    "order_N5vJhYqk",
			prepareMock: func() {
				ledgerRepo.EXPECT().ApplyDelta(ctx, 1, -500.0, "order_N5vJhYqk").Return(&domain.DeltaResult{
					Event:   &domain.LedgerEvent{UserID: 1, Delta: -500, ResultingBalance: 700, IdempotencyKey: "order_N5vJhYqk"},
					Applied: false,
				}, nil)
			},
			expectedEvent: &domain.LedgerEvent{UserID: 1, Delta: -500, ResultingBalance: 700, IdempotencyKey: "order_N5vJhYqk"},
		},
		{
			name:          "Non-positive amount",
			userID:        1,
			amount:        -10,
			key:           "order_X",
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "No balance row",
			userID: 9,
			amount: 100,
			key:    "order_Y",
			prepareMock: func() {
				ledgerRepo.EXPECT().ApplyDelta(ctx, 9, -100.0, "order_Y").Return(nil, nil)
			},
			expectedError: ErrBalanceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			event, err := service.Credit(ctx, tt.userID, tt.amount, tt.key)
			if tt.expectedError != nil {
				assert.Nil(t, event)
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEvent, event)
			}
		})
	}
}

func TestGetBalance(t *testing.T) {
	service, ledgerRepo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name            string
		userID          int
		prepareMock     func()
		expectedBalance *domain.Balance
		expectedError   error
	}{
		{
			name:   "Balance found",
			userID: 1,
			prepareMock: func() {
				ledgerRepo.EXPECT().GetUserBalance(ctx, 1).Return(&domain.Balance{UserID: 1, CreditLimit: 5000, CurrentBalance: 4900}, nil)
			},
			expectedBalance: &domain.Balance{UserID: 1, CreditLimit: 5000, CurrentBalance: 4900},
		},
		{
			name:   "Balance missing",
			userID: 2,
			prepareMock: func() {
				ledgerRepo.EXPECT().GetUserBalance(ctx, 2).Return(nil, nil)
			},
			expectedError: ErrBalanceNotFound,
		},
		{
			name:   "Repo error",
			userID: 1,
			prepareMock: func() {
				ledgerRepo.EXPECT().GetUserBalance(ctx, 1).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			balance, err := service.GetBalance(ctx, tt.userID)
			if tt.expectedError != nil {
				assert.Nil(t, balance)
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestAvailableHeadroom(t *testing.T) {
	balance := &domain.Balance{CreditLimit: 5000, CurrentBalance: 4900}
	assert.InDelta(t, 100, balance.Available(), 1e-9)

	over := &domain.Balance{CreditLimit: 5000, CurrentBalance: 5100}
	assert.Zero(t, over.Available())
}

func TestReconcile(t *testing.T) {
	service, ledgerRepo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		expectedOK  bool
		wantErr     bool
	}{
		{
			name: "History replays to stored balance",
			prepareMock: func() {
				ledgerRepo.EXPECT().GetUserBalance(ctx, 1).Return(&domain.Balance{UserID: 1, CreditLimit: 5000, CurrentBalance: 250}, nil)
				ledgerRepo.EXPECT().ListEventsByUserID(ctx, 1).Return([]domain.LedgerEvent{
					{Delta: 500, ResultingBalance: 500},
					{Delta: 250, ResultingBalance: 750},
					{Delta: -500, ResultingBalance: 250},
				}, nil)
			},
			expectedOK: true,
		},
		{
			name: "Intermediate balance drifted",
			prepareMock: func() {
				ledgerRepo.EXPECT().GetUserBalance(ctx, 1).Return(&domain.Balance{UserID: 1, CurrentBalance: 250}, nil)
				ledgerRepo.EXPECT().ListEventsByUserID(ctx, 1).Return([]domain.LedgerEvent{
					{Delta: 500, ResultingBalance: 500},
					{Delta: 250, ResultingBalance: 800},
				}, nil)
			},
			expectedOK: false,
		},
		{
			name: "Stored balance drifted",
			prepareMock: func() {
				ledgerRepo.EXPECT().GetUserBalance(ctx, 1).Return(&domain.Balance{UserID: 1, CurrentBalance: 300}, nil)
				ledgerRepo.EXPECT().ListEventsByUserID(ctx, 1).Return([]domain.LedgerEvent{
					{Delta: 500, ResultingBalance: 500},
					{Delta: -250, ResultingBalance: 250},
				}, nil)
			},
			expectedOK: false,
		},
		{
			name: "Balance missing",
			prepareMock: func() {
				ledgerRepo.EXPECT().GetUserBalance(ctx, 1).Return(nil, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			ok, err := service.Reconcile(ctx, 1)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOK, ok)
		})
	}
}

func TestGetHistory(t *testing.T) {
	service, ledgerRepo, _ := NewMock(t)
	ctx := context.Background()

	events := []domain.LedgerEvent{
		{ID: 1, UserID: 1, Delta: 120, ResultingBalance: 120, IdempotencyKey: "order:ORD1"},
		{ID: 2, UserID: 1, Delta: -120, ResultingBalance: 0, IdempotencyKey: "order:ORD1:cancel"},
	}
	ledgerRepo.EXPECT().ListEventsByUserID(ctx, 1).Return(events, nil)

	got, err := service.GetHistory(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestCreateBalance(t *testing.T) {
	service, ledgerRepo, _ := NewMock(t)
	ctx := context.Background()

	ledgerRepo.EXPECT().CreateUserBalance(ctx, 1, 5000.0).Return(&domain.Balance{UserID: 1, CreditLimit: 5000}, nil)

	balance, err := service.CreateBalance(ctx, 1, 5000)
	assert.NoError(t, err)
	assert.Equal(t, &domain.Balance{UserID: 1, CreditLimit: 5000}, balance)
}
