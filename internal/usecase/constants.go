package usecase

import "time"

const (
	// ReceiptAmountCacheTTL is how long extracted receipt amounts are
	// cached. Proof documents are immutable once uploaded; the TTL only
	// bounds stale entries after a re-upload.
	ReceiptAmountCacheTTL = 7 * 24 * time.Hour
)
