package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAccountName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{"valid name", "Acme Concrete Supplies", false},
		{"empty name", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 256), true},
		{"max length", strings.Repeat("a", 255), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAccountName(tt.input)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(decimal.NewFromInt(1000)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	huge, _ := decimal.NewFromString("1000000000001")
	if err := ValidateAmount(huge); !errors.Is(err, ErrAmountTooLarge) {
		t.Errorf("expected ErrAmountTooLarge, got %v", err)
	}

	if err := ValidateAmount(huge.Neg()); !errors.Is(err, ErrAmountTooLarge) {
		t.Errorf("expected ErrAmountTooLarge for negative magnitude, got %v", err)
	}
}

func TestValidateThresholds(t *testing.T) {
	if err := ValidateThresholds(decimal.NewFromInt(20), decimal.NewFromInt(100), decimal.NewFromInt(25)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// Zero maximum means unbounded
	if err := ValidateThresholds(decimal.NewFromInt(20), decimal.Zero, decimal.NewFromInt(25)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateThresholds(decimal.NewFromInt(-1), decimal.Zero, decimal.Zero); !errors.Is(err, ErrInvalidThresholds) {
		t.Errorf("expected ErrInvalidThresholds, got %v", err)
	}

	if err := ValidateThresholds(decimal.NewFromInt(100), decimal.NewFromInt(50), decimal.Zero); !errors.Is(err, ErrInvalidThresholds) {
		t.Errorf("expected ErrInvalidThresholds, got %v", err)
	}
}

func TestValidatePagination(t *testing.T) {
	limit, offset := ValidatePagination(0, -5)
	if limit != 50 || offset != 0 {
		t.Errorf("expected defaults 50/0, got %d/%d", limit, offset)
	}

	limit, _ = ValidatePagination(5000, 0)
	if limit != 1000 {
		t.Errorf("expected cap 1000, got %d", limit)
	}
}
