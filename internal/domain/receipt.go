package domain

import (
	"fmt"
	"strings"
)

// ReceiptKey identifies a withdrawal for receipt matching: the day the
// money left and the absolute amount in whole KRW. Keys that occur more
// than once in a batch are ambiguous and never matched.
type ReceiptKey struct {
	Day    string
	Amount int64
}

// ReceiptKeyFor builds the matching key for a transaction.
func ReceiptKeyFor(tx TransactionRecord) ReceiptKey {
	return ReceiptKey{
		Day:    tx.Date.Format("2006.01.02"),
		Amount: tx.Amount.Abs().Truncate(0).IntPart(),
	}
}

// ReceiptLink points at the proof document for a withdrawal.
type ReceiptLink struct {
	Title string
	URL   string
}

// Formula renders the link as a spreadsheet HYPERLINK formula for the
// description cell. Quotes are escaped so a title cannot break out of
// the formula string.
func (l ReceiptLink) Formula() string {
	url := strings.ReplaceAll(l.URL, `"`, "%22")
	title := strings.ReplaceAll(l.Title, `"`, `""`)
	return fmt.Sprintf(`=HYPERLINK("%s","%s")`, url, title)
}
