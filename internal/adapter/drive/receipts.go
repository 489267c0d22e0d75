package drive

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/api/drive/v3"

	"github.com/sjoh/clubledger/internal/adapter/googleclient"
	"github.com/sjoh/clubledger/internal/domain"
	"github.com/sjoh/clubledger/internal/usecase"
)

const folderMimeType = "application/vnd.google-apps.folder"

// transferFee is the flat bank fee occasionally itemized separately on a
// receipt; when present, the receipt also matches withdrawals of each
// listed amount plus the fee.
const transferFee = 500

var (
	amountRe     = regexp.MustCompile(`([\d,]+)원`)
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	copySuffixRe = regexp.MustCompile(`의 사본\s*$`)
	// Receipt titles often carry the submitter's name, optionally with
	// their track, e.g. "김회원(BackEnd)님 회식비".
	submitterRe = regexp.MustCompile(`[가-힣]{2,5}(?:\s*\([A-Za-z]+\))?님\s*`)
)

// normalizeReceiptTitle strips the submitter name and copy suffix from a
// receipt filename, leaving the expense description.
func normalizeReceiptTitle(title string) string {
	if strings.Contains(title, "비기너 환급") {
		return "비기너 환급"
	}
	title = strings.TrimSpace(copySuffixRe.ReplaceAllString(title, ""))
	title = submitterRe.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

// parseAmounts extracts every KRW amount written as "N원" from a receipt
// text export.
func parseAmounts(text string) map[int64]struct{} {
	amounts := make(map[int64]struct{})
	for _, m := range amountRe.FindAllStringSubmatch(text, -1) {
		raw := strings.ReplaceAll(m[1], ",", "")
		if raw == "" {
			continue
		}
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			amounts[v] = struct{}{}
		}
	}
	return amounts
}

// receiptDoc is one candidate receipt for a withdrawal date.
type receiptDoc struct {
	title   string
	url     string
	amounts map[int64]struct{}
}

// buildReceiptMap resolves withdrawals to receipts. A receipt matches a
// withdrawal when its text mentions the withdrawn amount; keys shared by
// several withdrawals are ambiguous and never matched, and the first
// matching receipt per key wins.
func buildReceiptMap(docsByDay map[string][]receiptDoc, counts map[domain.ReceiptKey]int) map[domain.ReceiptKey]domain.ReceiptLink {
	ambiguous := make(map[domain.ReceiptKey]struct{})
	for k, n := range counts {
		if n > 1 {
			ambiguous[k] = struct{}{}
		}
	}

	claim := func(out map[domain.ReceiptKey]domain.ReceiptLink, key domain.ReceiptKey, doc receiptDoc) {
		if _, amb := ambiguous[key]; amb {
			return
		}
		if _, exists := out[key]; exists {
			return
		}
		out[key] = domain.ReceiptLink{Title: doc.title, URL: doc.url}
	}

	out := make(map[domain.ReceiptKey]domain.ReceiptLink)
	days := make([]string, 0, len(docsByDay))
	for day := range docsByDay {
		days = append(days, day)
	}
	sort.Strings(days)

	for _, day := range days {
		for _, doc := range docsByDay[day] {
			for amt := range doc.amounts {
				claim(out, domain.ReceiptKey{Day: day, Amount: amt}, doc)
			}
			if _, ok := doc.amounts[transferFee]; ok {
				for amt := range doc.amounts {
					if amt == transferFee {
						continue
					}
					claim(out, domain.ReceiptKey{Day: day, Amount: amt + transferFee}, doc)
				}
			}
		}
	}
	return out
}

// ReceiptMatcher resolves withdrawals to receipt documents stored in a
// Drive folder tree organized by year and month. Receipt text exports are
// expensive, so extracted amounts are cached per file when a cache is
// configured.
type ReceiptMatcher struct {
	svc       *drive.Service
	retrier   *googleclient.Retrier
	folderRef string
	cache     usecase.Cache
	cacheTTL  time.Duration
	logger    zerolog.Logger
}

// NewReceiptMatcher creates a matcher rooted at the given folder. cache
// may be nil.
func NewReceiptMatcher(svc *drive.Service, retrier *googleclient.Retrier, folderRef string, cache usecase.Cache, logger zerolog.Logger) *ReceiptMatcher {
	return &ReceiptMatcher{
		svc:       svc,
		retrier:   retrier,
		folderRef: folderRef,
		cache:     cache,
		cacheTTL:  usecase.ReceiptAmountCacheTTL,
		logger:    logger.With().Str("component", "drive_receipt_matcher").Logger(),
	}
}

// MatchReceipts builds the withdrawal-to-receipt map for a batch.
func (m *ReceiptMatcher) MatchReceipts(ctx context.Context, records []domain.TransactionRecord) (map[domain.ReceiptKey]domain.ReceiptLink, error) {
	rootID, err := FolderID(m.folderRef)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.ReceiptKey]int)
	for _, tx := range records {
		if tx.Withdrawal() {
			counts[domain.ReceiptKeyFor(tx)]++
		}
	}

	days := make(map[string]struct{})
	for k := range counts {
		days[k.Day] = struct{}{}
	}

	docsByDay := make(map[string][]receiptDoc)
	for day := range days {
		files, err := m.listCandidates(ctx, rootID, day)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			doc := receiptDoc{
				title:   normalizeReceiptTitle(strings.TrimSpace(strings.TrimPrefix(f.Name, day))),
				url:     f.WebViewLink,
				amounts: m.amountsFor(ctx, f.Id),
			}
			docsByDay[day] = append(docsByDay[day], doc)
		}
	}

	matched := buildReceiptMap(docsByDay, counts)
	m.logger.Info().
		Int("withdrawals", len(counts)).
		Int("matched", len(matched)).
		Msg("receipt matching done")
	return matched, nil
}

// listCandidates finds the month folder for a withdrawal day and returns
// the receipt files whose names start with that day. The folder tree has
// been organized three different ways over the years, so all three
// layouts are probed: a root-level "yyyy/mm" folder, nested yyyy/mm
// folders, and a "yyyy/mm" folder inside the year folder.
func (m *ReceiptMatcher) listCandidates(ctx context.Context, rootID, day string) ([]*drive.File, error) {
	parts := strings.Split(day, ".")
	if len(parts) < 3 {
		return nil, nil
	}
	year, month := parts[0], parts[1]

	monthID, err := m.findSubfolder(ctx, rootID, year+"/"+month)
	if err != nil {
		return nil, err
	}
	if monthID == "" {
		yearID, err := m.findSubfolder(ctx, rootID, year)
		if err != nil {
			return nil, err
		}
		if yearID != "" {
			for _, name := range []string{month, strings.TrimPrefix(month, "0"), year + "/" + month} {
				monthID, err = m.findSubfolder(ctx, yearID, name)
				if err != nil {
					return nil, err
				}
				if monthID != "" {
					break
				}
			}
		}
	}
	if monthID == "" {
		return nil, nil
	}

	// The Drive query language treats dots as separators in name
	// matching, so the day prefix is filtered client-side.
	var all []*drive.File
	pageToken := ""
	for {
		var resp *drive.FileList
		err = m.retrier.Retry(ctx, func() error {
			call := m.svc.Files.List().
				Q(fmt.Sprintf("'%s' in parents and trashed=false", monthID)).
				Fields("nextPageToken, files(id, name, mimeType, webViewLink)").
				SupportsAllDrives(true).
				IncludeItemsFromAllDrives(true).
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			var apiErr error
			resp, apiErr = call.Do()
			return apiErr
		})
		if err != nil {
			return nil, fmt.Errorf("list receipt folder: %w", err)
		}
		all = append(all, resp.Files...)
		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	matched := all[:0]
	for _, f := range all {
		if strings.HasPrefix(f.Name, day) {
			matched = append(matched, f)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	return matched, nil
}

func (m *ReceiptMatcher) findSubfolder(ctx context.Context, parentID, name string) (string, error) {
	var resp *drive.FileList
	err := m.retrier.Retry(ctx, func() error {
		var apiErr error
		resp, apiErr = m.svc.Files.List().
			Q(fmt.Sprintf("'%s' in parents and name='%s' and mimeType='%s' and trashed=false",
				parentID, strings.ReplaceAll(name, "'", `\'`), folderMimeType)).
			Fields("files(id)").
			SupportsAllDrives(true).
			IncludeItemsFromAllDrives(true).
			Context(ctx).
			Do()
		return apiErr
	})
	if err != nil {
		return "", fmt.Errorf("find folder %q: %w", name, err)
	}
	if len(resp.Files) == 0 {
		return "", nil
	}
	return resp.Files[0].Id, nil
}

// amountsFor returns the amounts mentioned in a receipt, via the cache
// when possible. Export failures degrade to an empty set; a receipt that
// cannot be read simply matches nothing.
func (m *ReceiptMatcher) amountsFor(ctx context.Context, fileID string) map[int64]struct{} {
	cacheKey := "receipt:amounts:" + fileID
	if m.cache != nil {
		if v, err := m.cache.Get(ctx, cacheKey); err == nil {
			return decodeAmounts(v)
		}
	}

	text, ok := m.exportText(ctx, fileID)
	if !ok {
		m.logger.Warn().Str("file_id", fileID).Msg("receipt text export failed, skipping")
		return map[int64]struct{}{}
	}
	amounts := parseAmounts(text)

	if m.cache != nil {
		if err := m.cache.Set(ctx, cacheKey, encodeAmounts(amounts), m.cacheTTL); err != nil {
			m.logger.Warn().Err(err).Str("file_id", fileID).Msg("receipt amount cache write failed")
		}
	}
	return amounts
}

// exportText exports a Drive document as text, falling back from
// text/plain to tag-stripped text/html.
func (m *ReceiptMatcher) exportText(ctx context.Context, fileID string) (string, bool) {
	for _, mime := range []string{"text/plain", "text/html"} {
		var body []byte
		err := m.retrier.Retry(ctx, func() error {
			resp, apiErr := m.svc.Files.Export(fileID, mime).Context(ctx).Download()
			if apiErr != nil {
				return apiErr
			}
			defer resp.Body.Close()
			body, apiErr = io.ReadAll(resp.Body)
			return apiErr
		})
		if err != nil {
			continue
		}
		text := string(body)
		if mime == "text/html" {
			text = htmlTagRe.ReplaceAllString(text, "")
		}
		return text, true
	}
	return "", false
}

// encodeAmounts and decodeAmounts serialize an amount set for the cache.
// The empty set is encoded as "-" so it is distinguishable from a miss.
func encodeAmounts(amounts map[int64]struct{}) string {
	if len(amounts) == 0 {
		return "-"
	}
	vals := make([]int64, 0, len(amounts))
	for v := range amounts {
		vals = append(vals, v)
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}

func decodeAmounts(s string) map[int64]struct{} {
	out := make(map[int64]struct{})
	if s == "-" || s == "" {
		return out
	}
	for _, part := range strings.Split(s, ",") {
		if v, err := strconv.ParseInt(part, 10, 64); err == nil {
			out[v] = struct{}{}
		}
	}
	return out
}
