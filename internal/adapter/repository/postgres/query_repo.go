package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sitebooks/ledger/internal/domain"
)

// QueryRepository implements usecase.QueryRepository. Aggregates are computed
// in SQL with lateral joins per account; the sign conventions mirror the
// balance calculator (debits are positive deltas, credits the magnitude of
// negative ones).
type QueryRepository struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

// NewQueryRepository creates a new QueryRepository.
func NewQueryRepository(pool *pgxpool.Pool) *QueryRepository {
	return &QueryRepository{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

type summaryRow struct {
	AccountID                string             `db:"account_id"`
	Name                     string             `db:"name"`
	Kind                     string             `db:"kind"`
	Balance                  pgtype.Numeric     `db:"balance"`
	Halted                   bool               `db:"halted"`
	MinimumStockLevel        pgtype.Numeric     `db:"minimum_stock_level"`
	MaximumStockLevel        pgtype.Numeric     `db:"maximum_stock_level"`
	ReorderPoint             pgtype.Numeric     `db:"reorder_point"`
	EntryCount               int64              `db:"entry_count"`
	TotalDebits              pgtype.Numeric     `db:"total_debits"`
	TotalCredits             pgtype.Numeric     `db:"total_credits"`
	LastTransactionAt        pgtype.Timestamptz `db:"last_transaction_at"`
	NextDueDate              pgtype.Timestamptz `db:"next_due_date"`
	PaymentSinceLastPurchase bool               `db:"payment_since_last_purchase"`
}

func (r *QueryRepository) base() squirrel.SelectBuilder {
	return r.builder.
		Select(
			"a.id AS account_id",
			"a.name",
			"a.kind",
			"a.balance",
			"a.halted",
			"a.minimum_stock_level",
			"a.maximum_stock_level",
			"a.reorder_point",
			"COALESCE(agg.entry_count, 0) AS entry_count",
			"COALESCE(agg.total_debits, 0) AS total_debits",
			"COALESCE(agg.total_credits, 0) AS total_credits",
			"agg.last_transaction_at",
			"due.next_due_date",
			"COALESCE(pay.payment_since_last_purchase, FALSE) AS payment_since_last_purchase",
		).
		From("accounts a").
		JoinClause(`LEFT JOIN LATERAL (
			SELECT COUNT(*) AS entry_count,
				COALESCE(SUM(e.delta) FILTER (WHERE e.delta > 0), 0) AS total_debits,
				COALESCE(-SUM(e.delta) FILTER (WHERE e.delta < 0), 0) AS total_credits,
				MAX(e.recorded_at) AS last_transaction_at
			FROM entries e
			WHERE e.account_id = a.id
		) agg ON TRUE`).
		JoinClause(`LEFT JOIN LATERAL (
			SELECT e.due_date AS next_due_date
			FROM entries e
			WHERE e.account_id = a.id AND e.type = 'PURCHASE' AND e.due_date IS NOT NULL
			ORDER BY e.seq DESC
			LIMIT 1
		) due ON TRUE`).
		JoinClause(`LEFT JOIN LATERAL (
			SELECT EXISTS (
				SELECT 1
				FROM entries p
				WHERE p.account_id = a.id AND p.type = 'PAYMENT'
					AND p.seq > COALESCE((
						SELECT MAX(pu.seq)
						FROM entries pu
						WHERE pu.account_id = a.id AND pu.type = 'PURCHASE'
					), 0)
			) AS payment_since_last_purchase
		) pay ON TRUE`)
}

// Summary returns the aggregate projection for one account.
func (r *QueryRepository) Summary(ctx context.Context, accountID string) (*domain.AccountSummary, error) {
	sql, args, err := r.base().Where(squirrel.Eq{"a.id": accountID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build summary query: %w", err)
	}

	var row summaryRow
	if err := pgxscan.Get(ctx, r.pool, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return rowToSummary(row), nil
}

// Summaries returns aggregate projections, optionally filtered by kind.
func (r *QueryRepository) Summaries(ctx context.Context, kind *domain.AccountKind, limit, offset int) ([]*domain.AccountSummary, error) {
	q := r.base().OrderBy("a.id").Limit(uint64(limit)).Offset(uint64(offset))

	if kind != nil {
		q = q.Where(squirrel.Eq{"a.kind": string(*kind)})
	}

	return r.list(ctx, q)
}

// Overdue lists financial accounts with an outstanding balance whose latest
// purchase due date precedes now.
func (r *QueryRepository) Overdue(ctx context.Context, now time.Time, limit, offset int) ([]*domain.AccountSummary, error) {
	q := r.base().
		Where(squirrel.Eq{"a.kind": string(domain.KindFinancial)}).
		Where("a.balance > 0").
		Where(squirrel.Lt{"due.next_due_date": now}).
		OrderBy("due.next_due_date").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.list(ctx, q)
}

// LowStock lists inventory accounts at or below their reorder point or
// minimum stock level.
func (r *QueryRepository) LowStock(ctx context.Context, limit, offset int) ([]*domain.AccountSummary, error) {
	q := r.base().
		Where(squirrel.Eq{"a.kind": string(domain.KindInventory)}).
		Where("agg.entry_count > 0").
		Where("a.balance <= GREATEST(a.minimum_stock_level, a.reorder_point)").
		OrderBy("a.balance").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.list(ctx, q)
}

func (r *QueryRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*domain.AccountSummary, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build summaries query: %w", err)
	}

	var rows []summaryRow
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, args...); err != nil {
		return nil, err
	}

	summaries := make([]*domain.AccountSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, rowToSummary(row))
	}

	return summaries, nil
}

func rowToSummary(row summaryRow) *domain.AccountSummary {
	return &domain.AccountSummary{
		AccountID:         row.AccountID,
		Name:              row.Name,
		Kind:              domain.AccountKind(row.Kind),
		Balance:           numericToDecimal(row.Balance),
		TotalDebits:       numericToDecimal(row.TotalDebits),
		TotalCredits:      numericToDecimal(row.TotalCredits),
		EntryCount:        row.EntryCount,
		LastTransactionAt: pgTimestamptzToTimePtr(row.LastTransactionAt),
		Halted:            row.Halted,
		Facts: domain.BalanceFacts{
			EntryCount:               row.EntryCount,
			PaymentSinceLastPurchase: row.PaymentSinceLastPurchase,
			NextDueDate:              pgTimestamptzToTimePtr(row.NextDueDate),
		},
		MinimumStockLevel: numericToDecimal(row.MinimumStockLevel),
		MaximumStockLevel: numericToDecimal(row.MaximumStockLevel),
		ReorderPoint:      numericToDecimal(row.ReorderPoint),
	}
}
