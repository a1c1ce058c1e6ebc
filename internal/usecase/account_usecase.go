package usecase

import (
	"context"

	"github.com/wichananm65/account-service/internal/domain/entity"
)

// AccountUsecase exposes application-level operations for Account.
type AccountUsecase interface {
	Create(ctx context.Context, input CreateAccountInput) (*entity.Account, error)
	GetByID(ctx context.Context, id int64) (*entity.Account, error)
	List(ctx context.Context) ([]*entity.Account, error)
	Update(ctx context.Context, id int64, input UpdateAccountInput) (*entity.Account, error)
	Delete(ctx context.Context, id int64) error
}

// CreateAccountInput carries data required to create an account.
type CreateAccountInput struct {
	Name        string
	Email       string
	Address     string
	PhoneNumber string
}

// UpdateAccountInput carries a partial update; nil fields are left unchanged.
type UpdateAccountInput struct {
	Name        *string
	Email       *string
	Address     *string
	PhoneNumber *string
}
