package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/mealtab/mealtab/internal/domain"
	"github.com/mealtab/mealtab/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Ledger interface {
	CreateBalance(ctx context.Context, userID int, creditLimit float64) (*domain.Balance, error)
}

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("unknown role")
)

var validRoles = map[string]struct{}{
	domain.RoleStudent:  {},
	domain.RoleProvider: {},
	domain.RoleAdmin:    {},
}

type Service struct {
	userRepo           Repo
	ledger             Ledger
	hashService        auth.HashServiceInterface
	jwtService         auth.JWTServiceInterface
	defaultCreditLimit float64
}

func New(repo Repo, ledger Ledger, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, defaultCreditLimit float64) *Service {
	return &Service{
		userRepo:           repo,
		ledger:             ledger,
		hashService:        hashService,
		jwtService:         jwtService,
		defaultCreditLimit: defaultCreditLimit,
	}
}

// Register creates the user together with its ledger balance, carrying the
// configured default credit limit.
func (s *Service) Register(ctx context.Context, login, password, firstName, lastName, role string) (*domain.User, error) {
	if role == "" {
		role = domain.RoleStudent
	}
	if _, ok := validRoles[role]; !ok {
		return nil, ErrUnknownRole
	}

	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	_, err = s.ledger.CreateBalance(ctx, newUser.ID, s.defaultCreditLimit)
	if err != nil {
		zap.L().Error("can't create balance: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
