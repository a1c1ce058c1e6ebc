package inmemory

import (
	"context"
	"sync"

	"github.com/wichananm65/account-service/internal/domain/entity"
	"github.com/wichananm65/account-service/internal/domain/repository"
)

// AccountRepository is an in-memory implementation of AccountRepository.
type AccountRepository struct {
	mu     sync.RWMutex
	nextID int64
	store  map[int64]*entity.Account
	order  []int64 // insertion order
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(seed ...entity.Account) *AccountRepository {
	r := &AccountRepository{
		nextID: 1,
		store:  make(map[int64]*entity.Account),
	}

	for _, a := range seed {
		a := a
		if a.ID == 0 {
			a.ID = r.nextID
		}
		r.store[a.ID] = &a
		r.order = append(r.order, a.ID)
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return r
}

func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accountCopy := *account
	accountCopy.ID = r.nextID
	r.nextID++
	r.store[accountCopy.ID] = &accountCopy
	r.order = append(r.order, accountCopy.ID)

	result := accountCopy
	return &result, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.store[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	copy := *account
	return &copy, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Account, 0, len(r.order))
	for _, id := range r.order {
		copy := *r.store[id]
		result = append(result, &copy)
	}
	return result, nil
}

func (r *AccountRepository) Update(ctx context.Context, id int64, patch entity.AccountPatch) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.store[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	account.Apply(patch)
	result := *account
	return &result, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return repository.ErrAccountNotFound
	}
	delete(r.store, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
