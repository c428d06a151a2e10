package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sitebooks/ledger/internal/domain"
	"github.com/sitebooks/ledger/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, name, kind, balance, version, halted,
	minimum_stock_level, maximum_stock_level, reorder_point,
	created_at, updated_at`

// Create creates a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		account.ID,
		account.Name,
		string(account.Kind),
		decimalToNumeric(account.Balance),
		account.Version,
		account.Halted,
		decimalToNumeric(account.MinimumStockLevel),
		decimalToNumeric(account.MaximumStockLevel),
		decimalToNumeric(account.ReorderPoint),
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)

	return err
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.get(ctx, nil, id, "")
}

// GetByIDForUpdate retrieves an account by ID with a FOR UPDATE lock. The row
// lock serializes every writer touching this account's ledger.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	return r.get(ctx, tx, id, " FOR UPDATE")
}

func (r *AccountRepository) get(ctx context.Context, tx usecase.Transaction, id, suffix string) (*domain.Account, error) {
	row := querier(r.pool, tx).QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = $1`+suffix, id)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

// UpdateBalance updates the cached balance with an optimistic version guard.
func (r *AccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, expectedVersion int64, updatedAt time.Time) error {
	tag, err := tx.(*Tx).PgxTx().Exec(ctx, `
		UPDATE accounts
		SET balance = $1, version = version + 1, updated_at = $2
		WHERE id = $3 AND version = $4`,
		decimalToNumeric(balance),
		timeToPgTimestamptz(updatedAt),
		id,
		expectedVersion,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentModification
	}

	return nil
}

// SetHalted flips the write halt flag.
func (r *AccountRepository) SetHalted(ctx context.Context, id string, halted bool, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET halted = $1, updated_at = $2
		WHERE id = $3`,
		halted,
		timeToPgTimestamptz(updatedAt),
		id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// List lists accounts with pagination, optionally filtered by kind.
func (r *AccountRepository) List(ctx context.Context, kind *domain.AccountKind, limit, offset int) ([]*domain.Account, error) {
	var (
		rows pgx.Rows
		err  error
	)

	if kind != nil {
		rows, err = r.pool.Query(ctx, `
			SELECT `+accountColumns+`
			FROM accounts
			WHERE kind = $1
			ORDER BY id
			LIMIT $2 OFFSET $3`,
			string(*kind), limit, offset)
	} else {
		rows, err = r.pool.Query(ctx, `
			SELECT `+accountColumns+`
			FROM accounts
			ORDER BY id
			LIMIT $1 OFFSET $2`,
			limit, offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var (
		account              domain.Account
		kind                 string
		balance              pgtype.Numeric
		minLevel             pgtype.Numeric
		maxLevel             pgtype.Numeric
		reorderPoint         pgtype.Numeric
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&account.ID,
		&account.Name,
		&kind,
		&balance,
		&account.Version,
		&account.Halted,
		&minLevel,
		&maxLevel,
		&reorderPoint,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Kind = domain.AccountKind(kind)
	account.Balance = numericToDecimal(balance)
	account.MinimumStockLevel = numericToDecimal(minLevel)
	account.MaximumStockLevel = numericToDecimal(maxLevel)
	account.ReorderPoint = numericToDecimal(reorderPoint)
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}
