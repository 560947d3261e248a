package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrSessionReplaced    = errors.New("session expired (logged in on another device)")
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
}

type LoginResponse struct {
	Token      string             `json:"token"`
	User       model.UserResponse `json:"user"`
	Role       model.Role         `json:"role"`
	Privileges []string           `json:"privileges"`
}

type TokenValidationResponse struct {
	User       model.UserResponse `json:"user"`
	Role       model.Role         `json:"role"`
	Privileges []string           `json:"privileges"`
}

// authService keeps operators in memory; they are configured at startup.
type authService struct {
	mu      sync.Mutex
	byEmail map[string]*model.User
	byID    map[uuid.UUID]*model.User
	tokens  *jwt.Manager
}

func NewAuthService(tokens *jwt.Manager, users ...model.User) AuthService {
	s := &authService{
		byEmail: make(map[string]*model.User, len(users)),
		byID:    make(map[uuid.UUID]*model.User, len(users)),
		tokens:  tokens,
	}
	for i := range users {
		u := users[i]
		s.byEmail[normalizeEmail(u.Email)] = &u
		s.byID[u.ID] = &u
	}
	return s
}

// NewOperator builds an active operator with a hashed password and one of the built-in roles.
func NewOperator(email, password, fullName, roleCode string) (model.User, error) {
	u := model.User{
		ID:       uuid.New(),
		Email:    strings.TrimSpace(email),
		FullName: fullName,
		Role:     model.DefaultRole(roleCode),
		IsActive: true,
	}
	if err := u.SetPassword(password); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// Single session: a new login invalidates earlier tokens
	user.TokenVersion = uuid.New().String()

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.FullName, user.Role.Code, user.GetPrivilegeCodes(), user.TokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:      token,
		User:       user.ToResponse(),
		Role:       user.Role,
		Privileges: user.GetPrivilegeCodes(),
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[claims.UserID]
	if !ok {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, ErrSessionReplaced
	}

	return &TokenValidationResponse{
		User:       user.ToResponse(),
		Role:       user.Role,
		Privileges: user.GetPrivilegeCodes(),
	}, nil
}
