package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestResolvePaymentStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name    string
		balance decimal.Decimal
		facts   BalanceFacts
		want    PaymentStatus
	}{
		{
			name:    "no entries means no activity, not paid",
			balance: decimal.Zero,
			facts:   BalanceFacts{EntryCount: 0},
			want:    PaymentNoActivity,
		},
		{
			name:    "balance exactly zero resolves to paid",
			balance: decimal.Zero,
			facts:   BalanceFacts{EntryCount: 3, PaymentSinceLastPurchase: true},
			want:    PaymentPaid,
		},
		{
			name:    "negative balance resolves to paid",
			balance: decimal.NewFromInt(-25),
			facts:   BalanceFacts{EntryCount: 4, PaymentSinceLastPurchase: true},
			want:    PaymentPaid,
		},
		{
			name:    "outstanding with no payment since purchase is pending",
			balance: decimal.NewFromInt(1000),
			facts:   BalanceFacts{EntryCount: 1},
			want:    PaymentPending,
		},
		{
			name:    "outstanding after a payment is partial",
			balance: decimal.NewFromInt(400),
			facts:   BalanceFacts{EntryCount: 2, PaymentSinceLastPurchase: true},
			want:    PaymentPartial,
		},
		{
			name:    "past due date overlays overdue regardless of partial payment",
			balance: decimal.NewFromInt(400),
			facts:   BalanceFacts{EntryCount: 2, PaymentSinceLastPurchase: true, NextDueDate: &past},
			want:    PaymentOverdue,
		},
		{
			name:    "future due date does not trigger overdue",
			balance: decimal.NewFromInt(400),
			facts:   BalanceFacts{EntryCount: 2, NextDueDate: &future},
			want:    PaymentPending,
		},
		{
			name:    "overdue never applies once paid",
			balance: decimal.Zero,
			facts:   BalanceFacts{EntryCount: 2, PaymentSinceLastPurchase: true, NextDueDate: &past},
			want:    PaymentPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePaymentStatus(tt.balance, tt.facts, now)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestResolveStockStatus(t *testing.T) {
	acc := &Account{
		Kind:              KindInventory,
		MinimumStockLevel: decimal.NewFromInt(20),
		MaximumStockLevel: decimal.NewFromInt(100),
		ReorderPoint:      decimal.NewFromInt(25),
	}

	tests := []struct {
		name     string
		quantity decimal.Decimal
		count    int64
		want     StockStatus
	}{
		{"no entries", decimal.Zero, 0, StockNoActivity},
		{"at minimum is low", decimal.NewFromInt(20), 1, StockLow},
		{"below minimum is low", decimal.NewFromInt(10), 2, StockLow},
		{"between thresholds is normal", decimal.NewFromInt(50), 2, StockNormal},
		{"at maximum is high", decimal.NewFromInt(100), 3, StockHigh},
		{"above maximum is high", decimal.NewFromInt(110), 3, StockHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveStockStatus(tt.quantity, acc, tt.count)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	t.Run("no maximum means no high status", func(t *testing.T) {
		unbounded := &Account{Kind: KindInventory, MinimumStockLevel: decimal.NewFromInt(20)}
		got := ResolveStockStatus(decimal.NewFromInt(100000), unbounded, 5)
		if got != StockNormal {
			t.Errorf("expected NORMAL, got %s", got)
		}
	})
}

func TestAccount_ReorderTriggered(t *testing.T) {
	acc := &Account{
		Kind:              KindInventory,
		MinimumStockLevel: decimal.NewFromInt(20),
		ReorderPoint:      decimal.NewFromInt(25),
	}

	// Reorder point may be stricter than the minimum: 22 is above the
	// minimum but at or below the reorder point.
	acc.Balance = decimal.NewFromInt(22)
	if !acc.ReorderTriggered() {
		t.Error("expected reorder at 22 with reorder point 25")
	}

	acc.Balance = decimal.NewFromInt(26)
	if acc.ReorderTriggered() {
		t.Error("did not expect reorder at 26")
	}

	financial := &Account{Kind: KindFinancial, ReorderPoint: decimal.NewFromInt(25)}
	financial.Balance = decimal.NewFromInt(10)
	if financial.ReorderTriggered() {
		t.Error("financial accounts never trigger reorder")
	}
}

func TestFactsFromEntries(t *testing.T) {
	due := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)

	entries := []*Entry{
		{Seq: 1, Type: TypePurchase, DueDate: &due},
		{Seq: 2, Type: TypePayment},
		{Seq: 3, Type: TypePurchase},
		{Seq: 4, Type: TypeAdjustmentCredit},
	}

	facts := FactsFromEntries(entries)

	if facts.EntryCount != 4 {
		t.Errorf("expected 4 entries, got %d", facts.EntryCount)
	}

	// The payment at seq 2 precedes the last purchase at seq 3; the
	// adjustment after it is not a payment.
	if facts.PaymentSinceLastPurchase {
		t.Error("expected no payment since last purchase")
	}

	if facts.NextDueDate == nil || !facts.NextDueDate.Equal(due) {
		t.Errorf("expected due date %v, got %v", due, facts.NextDueDate)
	}

	entries = append(entries, &Entry{Seq: 5, Type: TypePayment})
	facts = FactsFromEntries(entries)
	if !facts.PaymentSinceLastPurchase {
		t.Error("expected payment since last purchase after seq 5")
	}
}
