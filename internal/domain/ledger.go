package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one line of a month section. Date, Counterparty, Amount and
// Balance are auto fields, recomputed on every write. Description and Note
// are manual fields: once a human has filled them they survive rewrites.
type LedgerRow struct {
	Date         time.Time
	Description  string
	Counterparty string
	Note         string
	Amount       decimal.Decimal
	Balance      decimal.Decimal
	HasBalance   bool
}

// AutoFilled reports whether any auto field carries data.
func (r LedgerRow) AutoFilled() bool {
	return !r.Date.IsZero() || r.Counterparty != "" || !r.Amount.IsZero()
}

// RowSpan is a 1-based inclusive row range. Spans are always re-derived
// from the current section layout, never patched incrementally.
type RowSpan struct {
	Start int
	End   int
}

// Len returns the number of rows in the span.
func (s RowSpan) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start + 1
}

func (s RowSpan) overlaps(other RowSpan) bool {
	if s.Len() == 0 || other.Len() == 0 {
		return false
	}
	return s.Start <= other.End && other.Start <= s.End
}

// MonthSection is the contiguous row block for one calendar month.
// ReadSpan is the row range the section occupied when the grid was read;
// DataSpan and SubtotalRow are derived by Recalculate after writes.
type MonthSection struct {
	Month       YearMonth
	Rows        []LedgerRow
	ReadSpan    RowSpan
	DataSpan    RowSpan
	SubtotalRow int
}

// Filled reports whether the section already holds reconciled data.
func (s *MonthSection) Filled() bool {
	for _, r := range s.Rows {
		if r.AutoFilled() {
			return true
		}
	}
	return false
}

// Decision is the idempotency guard's verdict for one section.
type Decision int

const (
	Proceed Decision = iota
	SkipAlreadyFilled
	ProceedOverwrite
)

func (d Decision) String() string {
	switch d {
	case Proceed:
		return "proceed"
	case SkipAlreadyFilled:
		return "skip-already-filled"
	case ProceedOverwrite:
		return "proceed-overwrite"
	default:
		return "unknown"
	}
}

// CheckAndMark decides whether the section may be written. An already
// filled section is skipped unless force is set, in which case the
// existing auto rows are disposable and will be rewritten.
func (s *MonthSection) CheckAndMark(force bool) Decision {
	if !s.Filled() {
		return Proceed
	}
	if force {
		return ProceedOverwrite
	}
	return SkipAlreadyFilled
}

// DroppedManual records a manual value that could not be re-attached
// during a forced rewrite. Reported as a warning, never an error.
type DroppedManual struct {
	Field string
	Value string
	Date  time.Time
}

type manualKey struct {
	day    string
	amount string
}

func rowManualKey(date time.Time, amount decimal.Decimal) manualKey {
	return manualKey{day: date.Format("2006-01-02"), amount: amount.String()}
}

// WriteRows replaces the section's rows with one row per transaction, in
// batch order, filling the auto fields and leaving manual fields empty.
// Manual values present before the rewrite are re-attached to the new row
// whose date and amount match; values with no matching row are returned
// as dropped. Manual data is precious, auto data is disposable.
func (s *MonthSection) WriteRows(records []TransactionRecord) (written int, dropped []DroppedManual) {
	type manualEntry struct {
		desc, note string
		date       time.Time
	}
	pending := make(map[manualKey][]manualEntry)
	for _, r := range s.Rows {
		if r.Description == "" && r.Note == "" {
			continue
		}
		k := rowManualKey(r.Date, r.Amount)
		pending[k] = append(pending[k], manualEntry{desc: r.Description, note: r.Note, date: r.Date})
	}

	rows := make([]LedgerRow, 0, len(records))
	for _, tx := range records {
		row := LedgerRow{
			Date:         tx.Date,
			Counterparty: tx.Counterparty,
			Amount:       tx.Amount,
			Balance:      tx.Balance,
			HasBalance:   tx.HasBalance,
		}
		k := rowManualKey(tx.Date, tx.Amount)
		if queue := pending[k]; len(queue) > 0 {
			row.Description = queue[0].desc
			row.Note = queue[0].note
			pending[k] = queue[1:]
		}
		rows = append(rows, row)
	}
	s.Rows = rows

	for _, queue := range pending {
		for _, m := range queue {
			if m.desc != "" {
				dropped = append(dropped, DroppedManual{Field: "description", Value: m.desc, Date: m.date})
			}
			if m.note != "" {
				dropped = append(dropped, DroppedManual{Field: "note", Value: m.note, Date: m.date})
			}
		}
	}
	sort.Slice(dropped, func(i, j int) bool { return dropped[i].Date.Before(dropped[j].Date) })

	return len(rows), dropped
}

// LedgerGrid is the ordered sequence of month sections plus a trailing
// grand-total row. StartRow anchors the first section's first data row in
// the backing document.
type LedgerGrid struct {
	StartRow      int
	Sections      []*MonthSection
	SubtotalRows  []int
	GrandTotalRow int
}

// Clone returns a deep copy of the grid. Reconciliation mutates a clone
// and only persists it once every validation has passed, so a failed run
// leaves the stored grid untouched.
func (g *LedgerGrid) Clone() *LedgerGrid {
	out := &LedgerGrid{
		StartRow:      g.StartRow,
		GrandTotalRow: g.GrandTotalRow,
		SubtotalRows:  append([]int(nil), g.SubtotalRows...),
	}
	for _, s := range g.Sections {
		cp := *s
		cp.Rows = append([]LedgerRow(nil), s.Rows...)
		out.Sections = append(out.Sections, &cp)
	}
	return out
}

// validateLayout checks that sections are chronologically ordered, months
// unique, and read spans non-overlapping.
func (g *LedgerGrid) validateLayout() error {
	for i := 1; i < len(g.Sections); i++ {
		prev, cur := g.Sections[i-1], g.Sections[i]
		if !prev.Month.Before(cur.Month) {
			return fmt.Errorf("%w: section %s does not precede %s", ErrSectionCorrupt, prev.Month, cur.Month)
		}
		if prev.ReadSpan.overlaps(cur.ReadSpan) {
			return fmt.Errorf("%w: sections %s and %s overlap rows %d-%d/%d-%d",
				ErrSectionCorrupt, prev.Month, cur.Month,
				prev.ReadSpan.Start, prev.ReadSpan.End, cur.ReadSpan.Start, cur.ReadSpan.End)
		}
	}
	return nil
}

// Locate finds the section for the target month, creating an empty one at
// its chronological position when absent. A created section gets a single
// placeholder row, matching how a treasurer pre-draws the document.
func (g *LedgerGrid) Locate(ym YearMonth) (*MonthSection, error) {
	if err := g.validateLayout(); err != nil {
		return nil, err
	}

	for _, s := range g.Sections {
		if s.Month == ym {
			return s, nil
		}
	}

	section := &MonthSection{Month: ym, Rows: make([]LedgerRow, 1)}
	at := len(g.Sections)
	for i, s := range g.Sections {
		if ym.Before(s.Month) {
			at = i
			break
		}
	}
	g.Sections = append(g.Sections, nil)
	copy(g.Sections[at+1:], g.Sections[at:])
	g.Sections[at] = section
	return section, nil
}

// Recalculate re-derives every span from the current row layout: each
// section's data span and subtotal row, the subtotal row list, and the
// grand-total row. Spans are a pure function of row counts, independent
// of how many writes happened or in what order.
func (g *LedgerGrid) Recalculate() {
	row := g.StartRow
	g.SubtotalRows = g.SubtotalRows[:0]
	for _, s := range g.Sections {
		n := len(s.Rows)
		s.DataSpan = RowSpan{Start: row, End: row + n - 1}
		s.SubtotalRow = row + n
		g.SubtotalRows = append(g.SubtotalRows, s.SubtotalRow)
		row = s.SubtotalRow + 1
	}
	g.GrandTotalRow = row
}
