package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sitebooks/ledger/internal/domain"
	"github.com/sitebooks/ledger/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// EntryRepository implements usecase.EntryRepository. The entries table has a
// unique (account_id, seq) constraint; it is the last line of defense that
// makes lost updates impossible even if every lock failed.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

const entryColumns = `id, account_id, seq, type, amount, delta, balance_after,
	occurred_at, recorded_at, due_date, reference, description, created_by`

// Append inserts the entry. A duplicate (account_id, seq) surfaces as
// domain.ErrConcurrentModification so the recorder can retry with a fresh
// read.
func (r *EntryRepository) Append(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	_, err := tx.(*Tx).PgxTx().Exec(ctx, `
		INSERT INTO entries (`+entryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		entry.ID,
		entry.AccountID,
		entry.Seq,
		string(entry.Type),
		decimalToNumeric(entry.Amount),
		decimalToNumeric(entry.Delta),
		decimalToNumeric(entry.BalanceAfter),
		timeToPgTimestamptz(entry.OccurredAt),
		timeToPgTimestamptz(entry.RecordedAt),
		timePtrToPgTimestamptz(entry.DueDate),
		entry.Reference,
		entry.Description,
		entry.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrConcurrentModification
		}

		return err
	}

	return nil
}

// Latest returns the entry with the highest seq for the account.
func (r *EntryRepository) Latest(ctx context.Context, tx usecase.Transaction, accountID string) (*domain.Entry, error) {
	row := querier(r.pool, tx).QueryRow(ctx, `
		SELECT `+entryColumns+`
		FROM entries
		WHERE account_id = $1
		ORDER BY seq DESC
		LIMIT 1`, accountID)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return entry, nil
}

// ListByAccount returns entries in display order: business date first, then
// seq to break ties.
func (r *EntryRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+entryColumns+`
		FROM entries
		WHERE account_id = $1
		ORDER BY occurred_at, seq
		LIMIT $2 OFFSET $3`,
		accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListBySeq returns up to limit entries with seq > afterSeq in seq order.
func (r *EntryRepository) ListBySeq(ctx context.Context, accountID string, afterSeq int64, limit int) ([]*domain.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+entryColumns+`
		FROM entries
		WHERE account_id = $1 AND seq > $2
		ORDER BY seq
		LIMIT $3`,
		accountID, afterSeq, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// BalanceAt folds deltas of entries with occurred_at at or before the given
// instant.
func (r *EntryRepository) BalanceAt(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error) {
	var balance pgtype.Numeric

	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(delta), 0)
		FROM entries
		WHERE account_id = $1 AND occurred_at <= $2`,
		accountID, timeToPgTimestamptz(at)).Scan(&balance)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(balance), nil
}

func scanEntry(row rowScanner) (*domain.Entry, error) {
	var (
		entry                 domain.Entry
		entryType             string
		amount, delta, after  pgtype.Numeric
		occurredAt, recorded  pgtype.Timestamptz
		dueDate               pgtype.Timestamptz
	)

	err := row.Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.Seq,
		&entryType,
		&amount,
		&delta,
		&after,
		&occurredAt,
		&recorded,
		&dueDate,
		&entry.Reference,
		&entry.Description,
		&entry.CreatedBy,
	)
	if err != nil {
		return nil, err
	}

	entry.Type = domain.TransactionType(entryType)
	entry.Amount = numericToDecimal(amount)
	entry.Delta = numericToDecimal(delta)
	entry.BalanceAfter = numericToDecimal(after)
	entry.OccurredAt = occurredAt.Time
	entry.RecordedAt = recorded.Time
	entry.DueDate = pgTimestamptzToTimePtr(dueDate)

	return &entry, nil
}

func scanEntries(rows pgx.Rows) ([]*domain.Entry, error) {
	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
