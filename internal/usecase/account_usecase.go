package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sitebooks/ledger/internal/domain"
)

// AccountUseCase handles account registration and lookup. External CRUD
// layers (suppliers, materials, locations) call this to give each ledger an
// owning account.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
	clock       Clock
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator, clock Clock) *AccountUseCase {
	if clock == nil {
		clock = UTCClock{}
	}

	return &AccountUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
		clock:       clock,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name              string
	Kind              domain.AccountKind
	MinimumStockLevel decimal.Decimal
	MaximumStockLevel decimal.Decimal
	ReorderPoint      decimal.Decimal
}

// CreateAccount creates a new account with a zero balance. The balance is
// never set directly afterwards; only the recorder moves it.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}

	if !input.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown account kind %q", domain.ErrKindMismatch, input.Kind)
	}

	if input.Kind == domain.KindInventory {
		if err := domain.ValidateThresholds(input.MinimumStockLevel, input.MaximumStockLevel, input.ReorderPoint); err != nil {
			return nil, err
		}
	}

	now := uc.clock.Now()

	account := &domain.Account{
		ID:                uc.idGen.Generate(),
		Name:              input.Name,
		Kind:              input.Kind,
		Balance:           decimal.Zero,
		Version:           0,
		CreatedAt:         now,
		UpdatedAt:         now,
		MinimumStockLevel: input.MinimumStockLevel,
		MaximumStockLevel: input.MaximumStockLevel,
		ReorderPoint:      input.ReorderPoint,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Kind   *domain.AccountKind
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination, optionally filtered by kind.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.accountRepo.List(ctx, input.Kind, limit, offset)
}
