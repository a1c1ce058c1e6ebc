package repository

import (
	"context"
	"errors"

	"github.com/wichananm65/account-service/internal/domain/entity"
)

// ErrAccountNotFound is returned when no account has the requested id.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines persistence behavior for the Account entity.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) (*entity.Account, error)
	GetByID(ctx context.Context, id int64) (*entity.Account, error)
	List(ctx context.Context) ([]*entity.Account, error)
	Update(ctx context.Context, id int64, patch entity.AccountPatch) (*entity.Account, error)
	Delete(ctx context.Context, id int64) error
}
