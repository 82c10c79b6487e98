package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/mealtab/mealtab/internal/dto"
	"github.com/mealtab/mealtab/internal/service/authservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"login":"s.kumar","password":"secret","first_name":"Sanjay","last_name":"Kumar"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "s.kumar", "secret", "Sanjay", "Kumar", "").
					Return(&domain.User{ID: 1, Login: "s.kumar", Role: domain.RoleStudent}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleStudent).Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"login":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Login already taken",
			body: `{"login":"s.kumar","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "s.kumar", "secret", "", "", "").
					Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Unknown role",
			body: `{"login":"s.kumar","password":"secret","role":"JANITOR"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "s.kumar", "secret", "", "", "JANITOR").
					Return(nil, authservice.ErrUnknownRole)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Token generation failure",
			body: `{"login":"s.kumar","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "s.kumar", "secret", "", "", "").
					Return(&domain.User{ID: 1, Role: domain.RoleStudent}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleStudent).Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
				var body dto.AuthResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "token", body.Token)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"login":"s.kumar","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "s.kumar", "secret").
					Return(&domain.User{ID: 1, Login: "s.kumar", Role: domain.RoleStudent}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleStudent).Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"login":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"s.kumar","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "s.kumar", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
