package domain

import "errors"

var (
	// Ledger data-integrity errors. These abort the run; the source data
	// must be fixed upstream, retrying cannot help.
	ErrBalanceMismatch = errors.New("transaction balance chain does not reconcile")
	ErrUnorderedBatch  = errors.New("transactions are not in ascending date order")
	ErrSectionCorrupt  = errors.New("month section layout is corrupt")

	// Billing errors
	ErrRuleTimelineGap = errors.New("date falls outside the billing rule timeline")
	ErrInvalidTimeline = errors.New("billing rules must be ordered, contiguous and non-overlapping")
)

// IsDataIntegrity reports whether err is a fatal document/source fault.
func IsDataIntegrity(err error) bool {
	return errors.Is(err, ErrBalanceMismatch) ||
		errors.Is(err, ErrUnorderedBatch) ||
		errors.Is(err, ErrSectionCorrupt)
}
