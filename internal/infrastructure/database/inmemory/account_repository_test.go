package inmemory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/wichananm65/account-service/internal/domain/entity"
	"github.com/wichananm65/account-service/internal/domain/repository"
)

func TestAccountRepository_CreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, &entity.Account{Name: "Alice"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := repo.Create(ctx, &entity.Account{ID: 99, Name: "Bob"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestAccountRepository_SeedMovesCounterPastMaxID(t *testing.T) {
	repo := NewAccountRepository(entity.Account{ID: 7, Name: "Seeded"})

	created, _ := repo.Create(context.Background(), &entity.Account{Name: "New"})
	if created.ID != 8 {
		t.Fatalf("expected id 8 after seed, got %d", created.ID)
	}
}

func TestAccountRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()
	for _, name := range []string{"c", "a", "b"} {
		if _, err := repo.Create(ctx, &entity.Account{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	if err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Name != "c" || list[1].Name != "b" {
		t.Fatalf("unexpected list order: %+v, %+v", list[0], list[1])
	}
}

func TestAccountRepository_ListEmptyIsNotNil(t *testing.T) {
	list, err := NewAccountRepository().List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestAccountRepository_ReturnsCopies(t *testing.T) {
	repo := NewAccountRepository(entity.Account{ID: 1, Name: "Alice"})
	ctx := context.Background()

	got, _ := repo.GetByID(ctx, 1)
	got.Name = "mutated"

	again, _ := repo.GetByID(ctx, 1)
	if again.Name != "Alice" {
		t.Fatalf("stored account was mutated through a returned value: %q", again.Name)
	}
}

func TestAccountRepository_UpdatePartial(t *testing.T) {
	repo := NewAccountRepository(entity.Account{ID: 1, Name: "Alice", Email: "a@x.com", Address: "1 Main", PhoneNumber: "555-0100"})
	name := "Bob"

	updated, err := repo.Update(context.Background(), 1, entity.AccountPatch{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Bob" || updated.Email != "a@x.com" || updated.Address != "1 Main" || updated.PhoneNumber != "555-0100" {
		t.Fatalf("unexpected account after update: %+v", updated)
	}
}

func TestAccountRepository_NotFound(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 42); !errors.Is(err, repository.ErrAccountNotFound) {
		t.Fatalf("get: expected ErrAccountNotFound, got %v", err)
	}
	if _, err := repo.Update(ctx, 42, entity.AccountPatch{}); !errors.Is(err, repository.ErrAccountNotFound) {
		t.Fatalf("update: expected ErrAccountNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, 42); !errors.Is(err, repository.ErrAccountNotFound) {
		t.Fatalf("delete: expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_ConcurrentCreate(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, &entity.Account{Name: "x"})
		}()
	}
	wg.Wait()

	list, _ := repo.List(ctx)
	seen := map[int64]bool{}
	for _, a := range list {
		if seen[a.ID] {
			t.Fatalf("duplicate id %d", a.ID)
		}
		seen[a.ID] = true
	}
	if len(seen) != 50 {
		t.Fatalf("expected 50 accounts, got %d", len(seen))
	}
}
