package ports

import (
	"context"

	"github.com/hbstore/product-catalog/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, firstname, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
