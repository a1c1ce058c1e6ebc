package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/wichananm65/account-service/internal/domain/entity"
	"github.com/wichananm65/account-service/internal/domain/repository"
)

const (
	insertAccountQuery = `
		INSERT INTO accounts (name, email, address, phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	getAccountByIDQuery = `
		SELECT id, name, email, address, phone_number
		FROM accounts
		WHERE id = $1
	`
	listAccountsQuery = `
		SELECT id, name, email, address, phone_number
		FROM accounts
		ORDER BY id
	`
	// COALESCE keeps the stored value for every NULL (absent) argument.
	updateAccountQuery = `
		UPDATE accounts
		SET name = COALESCE($2, name),
			email = COALESCE($3, email),
			address = COALESCE($4, address),
			phone_number = COALESCE($5, phone_number)
		WHERE id = $1
		RETURNING id, name, email, address, phone_number
	`
	deleteAccountQuery = `DELETE FROM accounts WHERE id = $1`
)

// accountRow is the column mapping of the accounts table.
type accountRow struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Email       string `db:"email"`
	Address     string `db:"address"`
	PhoneNumber string `db:"phone_number"`
}

func (r accountRow) toEntity() *entity.Account {
	return &entity.Account{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
	}
}

// AccountRepository is a PostgreSQL implementation of AccountRepository.
type AccountRepository struct {
	db *sqlx.DB
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, insertAccountQuery,
		account.Name, account.Email, account.Address, account.PhoneNumber,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	created := *account
	created.ID = id
	return &created, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*entity.Account, error) {
	var row accountRow
	err := r.db.GetContext(ctx, &row, getAccountByIDQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return row.toEntity(), nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var rows []accountRow
	if err := r.db.SelectContext(ctx, &rows, listAccountsQuery); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	out := make([]*entity.Account, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *AccountRepository) Update(ctx context.Context, id int64, patch entity.AccountPatch) (*entity.Account, error) {
	var row accountRow
	err := r.db.QueryRowxContext(ctx, updateAccountQuery,
		id, patch.Name, patch.Email, patch.Address, patch.PhoneNumber,
	).StructScan(&row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return row.toEntity(), nil
}

func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, deleteAccountQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrAccountNotFound
	}
	return nil
}
