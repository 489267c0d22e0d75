package sheets

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/api/sheets/v4"

	"github.com/sjoh/clubledger/internal/adapter/googleclient"
	"github.com/sjoh/clubledger/internal/domain"
)

// Payment document layout: one tab per year named by the bare year, data
// from row 5, track in C, name in D, note in E, then one column per month
// January through December in F..Q.
const (
	feeDataStartRow = 5
	feeColTrack     = 3 // C
	feeColName      = 4 // D
	feeColNote      = 5 // E
	feeColJanuary   = 6 // F
)

var feeYearTabRe = regexp.MustCompile(`^\d{4}$`)

// feeMark is one month cell of the payment document: "O" means paid,
// "-" means the month is excused, anything else means unpaid.
type feeMark int

const (
	markUnpaid feeMark = iota
	markPaid
	markExempt
)

func (m feeMark) covered() bool {
	return m != markUnpaid
}

func parseFeeMark(s string) feeMark {
	switch s {
	case "O":
		return markPaid
	case "-", "−":
		return markExempt
	default:
		return markUnpaid
	}
}

type feeRow struct {
	year  int
	note  string
	marks map[time.Month]feeMark
}

func (r feeRow) allExempt() bool {
	for m := time.January; m <= time.December; m++ {
		if r.marks[m] != markExempt {
			return false
		}
	}
	return true
}

type memberKey struct {
	name  string
	track string
}

func keyFor(name, track string) memberKey {
	return memberKey{
		name:  strings.TrimSpace(name),
		track: domain.NormalizeTrack(track),
	}
}

// parseFeeTab maps one year tab's C5:Q range onto per-member rows. The
// member block ends at the first row without a name.
func parseFeeTab(values [][]any, year int) map[memberKey][]feeRow {
	cell := func(row []any, col int) string {
		idx := col - feeColTrack
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(cellString(row[idx]))
	}

	out := make(map[memberKey][]feeRow)
	for _, row := range values {
		name := cell(row, feeColName)
		if name == "" {
			break
		}
		fr := feeRow{
			year:  year,
			note:  cell(row, feeColNote),
			marks: make(map[time.Month]feeMark, 12),
		}
		for m := time.January; m <= time.December; m++ {
			fr.marks[m] = parseFeeMark(cell(row, feeColJanuary+int(m)-1))
		}
		k := keyFor(name, cell(row, feeColTrack))
		out[k] = append(out[k], fr)
	}
	return out
}

// PaymentSource reads the payment document once and answers per-member
// standing queries against the cached rows.
type PaymentSource struct {
	svc         *sheets.Service
	retrier     *googleclient.Retrier
	timeline    *domain.BillingRuleTimeline
	documentRef string
	asOf        domain.YearMonth
	logger      zerolog.Logger

	mu     sync.Mutex
	loaded bool
	rows   map[memberKey][]feeRow
}

// NewPaymentSource creates a source for the given payment document. The
// asOf month bounds which semester months count as due when deciding
// whether a semester has been settled.
func NewPaymentSource(svc *sheets.Service, retrier *googleclient.Retrier, timeline *domain.BillingRuleTimeline, documentRef string, asOf domain.YearMonth, logger zerolog.Logger) *PaymentSource {
	return &PaymentSource{
		svc:         svc,
		retrier:     retrier,
		timeline:    timeline,
		documentRef: documentRef,
		asOf:        asOf,
		logger:      logger.With().Str("component", "sheets_payment_source").Logger(),
	}
}

// StatementFor builds the member's statement: the billing units their
// sheet rows cover, and whether the sheet excuses them from dues. A
// member without a row gets an empty statement, so every unit since
// enrollment counts as owed.
func (p *PaymentSource) StatementFor(ctx context.Context, member domain.Member) (*domain.PaymentStatement, error) {
	if err := p.load(ctx); err != nil {
		return nil, err
	}

	rows := p.rows[keyFor(member.Name, member.Track)]
	if len(rows) == 0 {
		p.logger.Warn().
			Str("name", member.Name).
			Str("track", member.Track).
			Msg("member has no payment document row")
		return &domain.PaymentStatement{Paid: map[domain.BillingUnit]struct{}{}}, nil
	}

	st := &domain.PaymentStatement{Paid: make(map[domain.BillingUnit]struct{})}
	marks := make(map[domain.YearMonth]feeMark)
	for _, r := range rows {
		if domain.NoteExempts(r.note) || r.allExempt() {
			st.Exempt = true
		}
		for m, mark := range r.marks {
			marks[domain.YearMonth{Year: r.year, Month: m}] = mark
		}
	}

	type semesterTally struct {
		due     int
		covered int
	}
	semesters := make(map[domain.BillingUnit]*semesterTally)

	for ym, mark := range marks {
		rule, err := p.timeline.RuleFor(ym)
		if err != nil {
			// Months before the timeline begins are never billed.
			continue
		}
		switch rule.Mode {
		case domain.ModeMonthly:
			if mark.covered() {
				st.Paid[domain.MonthlyUnit(ym)] = struct{}{}
			}
		case domain.ModeSemester:
			if ym.After(p.asOf) {
				continue
			}
			unit := domain.SemesterOf(ym)
			t := semesters[unit]
			if t == nil {
				t = &semesterTally{}
				semesters[unit] = t
			}
			t.due++
			if mark.covered() {
				t.covered++
			}
		}
	}

	// A semester counts as settled only when every due month inside it
	// is covered.
	for unit, t := range semesters {
		if t.due > 0 && t.covered == t.due {
			st.Paid[unit] = struct{}{}
		}
	}

	return st, nil
}

func (p *PaymentSource) load(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loaded {
		return nil
	}

	id, err := SpreadsheetID(p.documentRef)
	if err != nil {
		return err
	}

	var meta *sheets.Spreadsheet
	err = p.retrier.Retry(ctx, func() error {
		var apiErr error
		meta, apiErr = p.svc.Spreadsheets.
			Get(id).
			Fields("sheets.properties.title").
			Context(ctx).
			Do()
		return apiErr
	})
	if err != nil {
		return fmt.Errorf("list payment document tabs: %w", err)
	}

	rows := make(map[memberKey][]feeRow)
	tabs := 0
	for _, sh := range meta.Sheets {
		if sh.Properties == nil || !feeYearTabRe.MatchString(sh.Properties.Title) {
			continue
		}
		year, _ := strconv.Atoi(sh.Properties.Title)

		var resp *sheets.ValueRange
		err = p.retrier.Retry(ctx, func() error {
			var apiErr error
			resp, apiErr = p.svc.Spreadsheets.Values.
				Get(id, fmt.Sprintf("'%s'!C%d:Q", sh.Properties.Title, feeDataStartRow)).
				Context(ctx).
				Do()
			return apiErr
		})
		if err != nil {
			return fmt.Errorf("read payment tab %s: %w", sh.Properties.Title, err)
		}

		for k, rs := range parseFeeTab(resp.Values, year) {
			rows[k] = append(rows[k], rs...)
		}
		tabs++
	}

	p.rows = rows
	p.loaded = true
	p.logger.Info().
		Int("tabs", tabs).
		Int("members", len(rows)).
		Msg("payment document loaded")
	return nil
}
