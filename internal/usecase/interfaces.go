package usecase

import (
	"context"
	"time"

	"github.com/sjoh/clubledger/internal/domain"
)

// GridStore exposes the persistent ledger document as a LedgerGrid.
// DocumentRef is an opaque handle (a spreadsheet URL in practice).
type GridStore interface {
	ReadGrid(ctx context.Context, documentRef string) (*domain.LedgerGrid, error)
	WriteGrid(ctx context.Context, documentRef string, grid *domain.LedgerGrid) error
}

// TransactionSource fetches an ordered bank-transaction batch. When no
// explicit file is named, implementations pick the newest export by its
// filename date encoding.
type TransactionSource interface {
	FetchLatest(ctx context.Context) (domain.YearMonth, []domain.TransactionRecord, error)
}

// ReceiptMatcher resolves withdrawals to proof documents. Absence of a
// match is not an error; ambiguous keys are never matched.
type ReceiptMatcher interface {
	MatchReceipts(ctx context.Context, records []domain.TransactionRecord) (map[domain.ReceiptKey]domain.ReceiptLink, error)
}

// MemberDirectory lists dues-paying members, minus the excluded tracks
// and "name_track" entries. Track comparison is normalized.
type MemberDirectory interface {
	ListMembers(ctx context.Context, excludedTracks, excludedMembers []string) ([]domain.Member, error)
}

// PaymentSource reports a member's standing in the payment-tracking
// document.
type PaymentSource interface {
	StatementFor(ctx context.Context, member domain.Member) (*domain.PaymentStatement, error)
}

// NoticeSender delivers a notice to one member. Failures are collected
// per member and never abort the batch.
type NoticeSender interface {
	Deliver(ctx context.Context, member domain.Member, message string) error
}

// NoticeArchive persists a rendered notice, returning where it ended up.
type NoticeArchive interface {
	Save(ctx context.Context, member domain.Member, message string) (string, error)
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// IDGenerator generates unique run IDs.
type IDGenerator interface {
	Generate() string
}
