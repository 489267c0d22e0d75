package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord is a single bank movement as read from the export.
// Deposits carry a positive Amount, withdrawals a negative one. Balance is
// the account balance after the movement and serves as a checksum against
// the cumulative sum of amounts.
type TransactionRecord struct {
	Date         time.Time
	Counterparty string
	Amount       decimal.Decimal
	Balance      decimal.Decimal
	HasBalance   bool
}

// Withdrawal reports whether the record moves money out of the account.
func (r TransactionRecord) Withdrawal() bool {
	return r.Amount.IsNegative()
}

// ValidateBatch checks a transaction batch for ascending date order and
// balance-chain continuity. The chain anchors on the first record that
// carries a balance; every following record with a balance must satisfy
// prev.Balance + cur.Amount == cur.Balance. A record without a balance
// value restarts the anchor (some exports omit it on reversed rows).
func ValidateBatch(records []TransactionRecord) error {
	for i := 1; i < len(records); i++ {
		if records[i].Date.Before(records[i-1].Date) {
			return fmt.Errorf("%w: record %d (%s) precedes record %d (%s)",
				ErrUnorderedBatch,
				i+1, records[i].Date.Format("2006-01-02"),
				i, records[i-1].Date.Format("2006-01-02"))
		}
	}

	haveAnchor := false
	var running decimal.Decimal
	for i, r := range records {
		if !r.HasBalance {
			haveAnchor = false
			continue
		}
		if !haveAnchor {
			running = r.Balance
			haveAnchor = true
			continue
		}
		expected := running.Add(r.Amount)
		if !expected.Equal(r.Balance) {
			return fmt.Errorf("%w: record %d expected balance %s, got %s",
				ErrBalanceMismatch, i+1, expected.String(), r.Balance.String())
		}
		running = r.Balance
	}

	return nil
}
