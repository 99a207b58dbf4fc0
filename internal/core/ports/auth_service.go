package ports

import (
	"context"

	"github.com/applyflow/outreach-system/internal/core/domain"
)

// RegisterInput carries all fields for creating an account. LinkedinLink
// and EmailPassword are optional; when present they must be well-formed.
type RegisterInput struct {
	Username      string
	Email         string
	LinkedinLink  string
	Password      string
	PhoneNumber   string
	EmailPassword string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the password and returns a signed access token.
	Login(ctx context.Context, email, password string) (string, error)
	// ResolveUser validates an access token and loads its subject.
	ResolveUser(ctx context.Context, token string) (*domain.User, error)
	// EmailCredential returns the user's decrypted SMTP app password.
	EmailCredential(user *domain.User) (string, error)
}
