package usecase

import (
	"context"

	"github.com/wichananm65/account-service/internal/domain/entity"
	"github.com/wichananm65/account-service/internal/domain/repository"
)

// AccountService implements AccountUsecase with repository dependency.
type AccountService struct {
	repo repository.AccountRepository
}

var _ AccountUsecase = (*AccountService)(nil)

func NewAccountService(repo repository.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

func (s *AccountService) Create(ctx context.Context, input CreateAccountInput) (*entity.Account, error) {
	account := &entity.Account{
		Name:        input.Name,
		Email:       input.Email,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
	}
	return s.repo.Create(ctx, account)
}

func (s *AccountService) GetByID(ctx context.Context, id int64) (*entity.Account, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]*entity.Account, error) {
	return s.repo.List(ctx)
}

// Update applies only the fields present in input. An update that carries no
// fields still confirms the account exists.
func (s *AccountService) Update(ctx context.Context, id int64, input UpdateAccountInput) (*entity.Account, error) {
	patch := entity.AccountPatch{
		Name:        input.Name,
		Email:       input.Email,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
	}
	if patch.Empty() {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *AccountService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
