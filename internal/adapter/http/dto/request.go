package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitebooks/ledger/internal/domain"
	"github.com/sitebooks/ledger/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name              string          `json:"name"`
	Kind              string          `json:"kind"`
	MinimumStockLevel decimal.Decimal `json:"minimum_stock_level"`
	MaximumStockLevel decimal.Decimal `json:"maximum_stock_level"`
	ReorderPoint      decimal.Decimal `json:"reorder_point"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:              r.Name,
		Kind:              domain.AccountKind(r.Kind),
		MinimumStockLevel: r.MinimumStockLevel,
		MaximumStockLevel: r.MaximumStockLevel,
		ReorderPoint:      r.ReorderPoint,
	}
}

// RecordTransactionRequest represents a request to append one transaction.
type RecordTransactionRequest struct {
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	OccurredAt     *time.Time      `json:"occurred_at,omitempty"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	Reference      string          `json:"reference,omitempty"`
	Description    string          `json:"description,omitempty"`
	CreatedBy      string          `json:"created_by,omitempty"`
	AllowBackorder bool            `json:"allow_backorder,omitempty"`
}

// ToUseCaseInput converts to use case input for the given account.
func (r *RecordTransactionRequest) ToUseCaseInput(accountID string) (usecase.RecordInput, error) {
	txType, err := domain.ParseTransactionType(r.Type)
	if err != nil {
		return usecase.RecordInput{}, err
	}

	return usecase.RecordInput{
		AccountID:      accountID,
		Type:           txType,
		Amount:         r.Amount,
		OccurredAt:     r.OccurredAt,
		DueDate:        r.DueDate,
		Reference:      r.Reference,
		Description:    r.Description,
		CreatedBy:      r.CreatedBy,
		AllowBackorder: r.AllowBackorder,
	}, nil
}
