package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/mealtab/mealtab/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockLedger, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, ledger, hashService, jwtService, 5000)
	defer ctrl.Finish()
	return service, repo, ledger, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, ledger, passwordHasher, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		login         string
		role          string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:  "Successful registration with default role",
			login: "s.kumar",
			role:  "",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(ctx, "s.kumar").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("secret").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				ledger.EXPECT().CreateBalance(ctx, 1, 5000.0).Return(&domain.Balance{UserID: 1, CreditLimit: 5000}, nil)
			},
			expectedUser: &domain.User{
				ID:           1,
				Login:        "s.kumar",
				PasswordHash: "hashedpassword",
				Role:         domain.RoleStudent,
			},
		},
		{
			name:  "Provider registration",
			login: "canteen.3",
			role:  domain.RoleProvider,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(ctx, "canteen.3").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("secret").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 2
					return user, nil
				})
				ledger.EXPECT().CreateBalance(ctx, 2, 5000.0).Return(&domain.Balance{UserID: 2}, nil)
			},
			expectedUser: &domain.User{
				ID:           2,
				Login:        "canteen.3",
				PasswordHash: "hashedpassword",
				Role:         domain.RoleProvider,
			},
		},
		{
			name:          "Unknown role",
			login:         "s.kumar",
			role:          "JANITOR",
			prepareMock:   func() {},
			expectedError: ErrUnknownRole,
		},
		{
			name:  "Login already taken",
			login: "s.kumar",
			role:  domain.RoleStudent,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(ctx, "s.kumar").Return(&domain.User{Login: "s.kumar"}, nil)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name:  "Balance creation failure propagates",
			login: "s.kumar",
			role:  domain.RoleStudent,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(ctx, "s.kumar").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("secret").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 3
					return user, nil
				})
				ledger.EXPECT().CreateBalance(ctx, 3, 5000.0).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(ctx, tt.login, "secret", "Sanjay", "Kumar", tt.role)
			if tt.expectedError != nil {
				assert.Nil(t, user)
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser.ID, user.ID)
				assert.Equal(t, tt.expectedUser.Login, user.Login)
				assert.Equal(t, tt.expectedUser.Role, user.Role)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _, passwordHasher, _ := NewMock(t)
	ctx := context.Background()

	activeUser := &domain.User{ID: 1, Login: "s.kumar", PasswordHash: "hashedpassword", IsActive: true}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name: "Valid credentials",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(ctx, "s.kumar").Return(activeUser, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "secret").Return(true)
			},
			expectedUser: activeUser,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(ctx, "s.kumar").Return(activeUser, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "secret").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(ctx, "s.kumar").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Deactivated user",
			prepareMock: func() {
				inactive := *activeUser
				inactive.IsActive = false
				userRepo.EXPECT().FindByLogin(ctx, "s.kumar").Return(&inactive, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "secret").Return(true)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Authenticate(ctx, "s.kumar", "secret")
			if tt.expectedError != nil {
				assert.Nil(t, user)
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedToken string
		wantErr       bool
	}{
		{
			name: "Token issued",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, domain.RoleStudent, gomock.Any()).Return("token", nil)
			},
			expectedToken: "token",
		},
		{
			name: "Signing failure",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, domain.RoleStudent, gomock.Any()).Return("", errors.New("signing error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			token, err := service.GenerateToken(1, domain.RoleStudent)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
