package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitebooks/ledger/internal/domain"
	"github.com/sitebooks/ledger/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Kind              string          `json:"kind"`
	Balance           decimal.Decimal `json:"balance"`
	Version           int64           `json:"version"`
	Halted            bool            `json:"halted"`
	MinimumStockLevel decimal.Decimal `json:"minimum_stock_level"`
	MaximumStockLevel decimal.Decimal `json:"maximum_stock_level"`
	ReorderPoint      decimal.Decimal `json:"reorder_point"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:                a.ID,
		Name:              a.Name,
		Kind:              string(a.Kind),
		Balance:           a.Balance,
		Version:           a.Version,
		Halted:            a.Halted,
		MinimumStockLevel: a.MinimumStockLevel,
		MaximumStockLevel: a.MaximumStockLevel,
		ReorderPoint:      a.ReorderPoint,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"account_id"`
	Seq          int64           `json:"seq"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Delta        decimal.Decimal `json:"delta"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	OccurredAt   time.Time       `json:"occurred_at"`
	RecordedAt   time.Time       `json:"recorded_at"`
	DueDate      *time.Time      `json:"due_date,omitempty"`
	Reference    string          `json:"reference,omitempty"`
	Description  string          `json:"description,omitempty"`
	CreatedBy    string          `json:"created_by,omitempty"`
}

// EntryFromDomain converts domain entry to response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:           e.ID,
		AccountID:    e.AccountID,
		Seq:          e.Seq,
		Type:         string(e.Type),
		Amount:       e.Amount,
		Delta:        e.Delta,
		BalanceAfter: e.BalanceAfter,
		OccurredAt:   e.OccurredAt,
		RecordedAt:   e.RecordedAt,
		DueDate:      e.DueDate,
		Reference:    e.Reference,
		Description:  e.Description,
		CreatedBy:    e.CreatedBy,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// ListEntriesResponse wraps a transaction history page.
type ListEntriesResponse struct {
	Entries  []*EntryResponse `json:"entries"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// SummaryResponse represents an account summary with its derived status.
type SummaryResponse struct {
	AccountID         string          `json:"account_id"`
	Name              string          `json:"name"`
	Kind              string          `json:"kind"`
	Balance           decimal.Decimal `json:"balance"`
	Status            string          `json:"status"`
	ReorderTriggered  bool            `json:"reorder_triggered"`
	TotalDebits       decimal.Decimal `json:"total_debits"`
	TotalCredits      decimal.Decimal `json:"total_credits"`
	EntryCount        int64           `json:"entry_count"`
	LastTransactionAt *time.Time      `json:"last_transaction_at,omitempty"`
	NextDueDate       *time.Time      `json:"next_due_date,omitempty"`
	Halted            bool            `json:"halted"`
	AsOf              time.Time       `json:"as_of"`
}

// SummaryFromView converts a usecase summary view to response.
func SummaryFromView(v *usecase.SummaryView) *SummaryResponse {
	return &SummaryResponse{
		AccountID:         v.AccountID,
		Name:              v.Name,
		Kind:              string(v.Kind),
		Balance:           v.Balance,
		Status:            v.Status,
		ReorderTriggered:  v.ReorderTriggered,
		TotalDebits:       v.TotalDebits,
		TotalCredits:      v.TotalCredits,
		EntryCount:        v.EntryCount,
		LastTransactionAt: v.LastTransactionAt,
		NextDueDate:       v.Facts.NextDueDate,
		Halted:            v.Halted,
		AsOf:              v.AsOf,
	}
}

// SummariesFromViews converts usecase summary views to responses.
func SummariesFromViews(views []*usecase.SummaryView) []*SummaryResponse {
	result := make([]*SummaryResponse, len(views))
	for i, v := range views {
		result[i] = SummaryFromView(v)
	}
	return result
}

// BalanceAtResponse represents a historical balance lookup.
type BalanceAtResponse struct {
	AccountID string          `json:"account_id"`
	At        time.Time       `json:"at"`
	Balance   decimal.Decimal `json:"balance"`
}

// ReconciliationResponse represents one account's reconciliation outcome.
type ReconciliationResponse struct {
	AccountID       string          `json:"account_id"`
	RecordedBalance decimal.Decimal `json:"recorded_balance"`
	ComputedBalance decimal.Decimal `json:"computed_balance"`
	Difference      decimal.Decimal `json:"difference"`
	EntryCount      int64           `json:"entry_count"`
	Reconciled      bool            `json:"reconciled"`
	CheckedAt       time.Time       `json:"checked_at"`
}

// ReconciliationFromResult converts a usecase result to response.
func ReconciliationFromResult(r *usecase.ReconciliationResult) *ReconciliationResponse {
	return &ReconciliationResponse{
		AccountID:       r.AccountID,
		RecordedBalance: r.RecordedBalance,
		ComputedBalance: r.ComputedBalance,
		Difference:      r.Difference,
		EntryCount:      r.EntryCount,
		Reconciled:      r.Reconciled,
		CheckedAt:       r.CheckedAt,
	}
}

// ReconciliationReportResponse aggregates a reconciliation run.
type ReconciliationReportResponse struct {
	TotalAccounts      int                       `json:"total_accounts"`
	ReconciledAccounts int                       `json:"reconciled_accounts"`
	Discrepancies      []*ReconciliationResponse `json:"discrepancies"`
	CheckedAt          time.Time                 `json:"checked_at"`
}

// ReportFromUseCase converts a usecase report to response.
func ReportFromUseCase(r *usecase.ReconciliationReport) *ReconciliationReportResponse {
	discrepancies := make([]*ReconciliationResponse, len(r.Discrepancies))
	for i, d := range r.Discrepancies {
		discrepancies[i] = ReconciliationFromResult(d)
	}

	return &ReconciliationReportResponse{
		TotalAccounts:      r.TotalAccounts,
		ReconciledAccounts: r.ReconciledAccounts,
		Discrepancies:      discrepancies,
		CheckedAt:          r.CheckedAt,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
