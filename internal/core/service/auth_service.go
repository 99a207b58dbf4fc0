package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/applyflow/outreach-system/internal/core/domain"
	"github.com/applyflow/outreach-system/internal/core/ports"
	"github.com/applyflow/outreach-system/internal/secret"
)

// AuthService implements registration, login, and token resolution.
type AuthService struct {
	users     ports.UserRepository
	box       *secret.Box
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, box *secret.Box, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, box: box, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", domain.ErrBadInput)
	}
	if !domain.IsValidEmail(input.Email) {
		return nil, fmt.Errorf("%w: malformed email address", domain.ErrBadInput)
	}
	if !domain.IsValidPassword(input.Password) {
		return nil, fmt.Errorf("%w: password needs upper, lower, digit and at least 8 characters", domain.ErrBadInput)
	}
	if input.LinkedinLink != "" && !domain.IsLinkedinProfileLink(input.LinkedinLink) {
		return nil, fmt.Errorf("%w: not a linkedin profile link", domain.ErrBadInput)
	}
	if input.EmailPassword != "" && !domain.IsCredentialStructure(input.EmailPassword) {
		return nil, fmt.Errorf("%w: email password must look like \"xxxx xxxx xxxx xxxx\"", domain.ErrBadInput)
	}

	// Checked before insert; the unique index on email backs this up under
	// concurrent registration.
	exists, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var sealed string
	if input.EmailPassword != "" {
		sealed, err = s.box.Seal(input.EmailPassword)
		if err != nil {
			return nil, fmt.Errorf("seal email credential: %w", err)
		}
	}

	user := &domain.User{
		ID:              uuid.NewString(),
		Username:        input.Username,
		Email:           input.Email,
		LinkedinLink:    input.LinkedinLink,
		PasswordHash:    string(hash),
		PhoneNumber:     input.PhoneNumber,
		EmailCredential: sealed,
		CreatedAt:       time.Now().UTC(),
	}

	return s.users.Create(ctx, user)
}

// Login verifies the password and issues a signed access token with the
// user id as subject. Unknown emails and wrong passwords are deliberately
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// ResolveUser validates the token against the shared secret and loads its
// subject. Expired or tampered tokens and vanished subjects all resolve to
// ErrInvalidToken.
func (s *AuthService) ResolveUser(ctx context.Context, token string) (*domain.User, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, sub)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

// EmailCredential returns the user's decrypted SMTP app password. An unset
// credential and a credential sealed under a different key fail with
// distinct errors.
func (s *AuthService) EmailCredential(user *domain.User) (string, error) {
	if user.EmailCredential == "" {
		return "", domain.ErrCredentialMissing
	}
	return s.box.Open(user.EmailCredential)
}
