package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one immutable ledger record. Seq is assigned per account, gapless
// and strictly increasing; BalanceAfter must equal the previous entry's
// BalanceAfter plus Delta. Corrections append offsetting entries, history is
// never edited.
type Entry struct {
	ID           string
	AccountID    string
	Seq          int64
	Type         TransactionType
	Amount       decimal.Decimal
	Delta        decimal.Decimal
	BalanceAfter decimal.Decimal
	OccurredAt   time.Time
	RecordedAt   time.Time
	DueDate      *time.Time
	Reference    string
	Description  string
	CreatedBy    string
}

// VerifyChain replays entries in Seq order and checks the two structural
// invariants: the sequence is gapless starting at 1, and each BalanceAfter is
// the prefix sum of deltas. Entries must already be sorted by Seq ascending.
//
// A backdated entry keeps the Seq it was appended with, so the chain is
// checked in insertion order, not OccurredAt order.
func VerifyChain(entries []*Entry) error {
	running := decimal.Zero

	for i, e := range entries {
		want := int64(i + 1)
		if e.Seq != want {
			return fmt.Errorf("%w: account %s entry %s has seq %d, want %d",
				ErrBalanceDrift, e.AccountID, e.ID, e.Seq, want)
		}

		running = running.Add(e.Delta)
		if !e.BalanceAfter.Equal(running) {
			return fmt.Errorf("%w: account %s seq %d has balance_after %s, replay gives %s",
				ErrBalanceDrift, e.AccountID, e.Seq, e.BalanceAfter, running)
		}
	}

	return nil
}
