// Package drive fetches bank exports and receipt documents from Google
// Drive.
package drive

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/rs/zerolog"
	"google.golang.org/api/drive/v3"

	"github.com/sjoh/clubledger/internal/adapter/googleclient"
	"github.com/sjoh/clubledger/internal/adapter/xlsx"
	"github.com/sjoh/clubledger/internal/domain"
)

const xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Bank exports uploaded to the folder follow a fixed naming scheme; only
// matching files are considered.
var exportFileRe = regexp.MustCompile(`신한_거래내역_\d{4}\.xlsx$`)

// TransactionSource downloads the newest bank export from a Drive folder.
// Newest is decided by the year and month encoded in the filename, not by
// upload time.
type TransactionSource struct {
	svc       *drive.Service
	retrier   *googleclient.Retrier
	folderRef string
	logger    zerolog.Logger
}

// NewTransactionSource creates a source for the given export folder.
func NewTransactionSource(svc *drive.Service, retrier *googleclient.Retrier, folderRef string, logger zerolog.Logger) *TransactionSource {
	return &TransactionSource{
		svc:       svc,
		retrier:   retrier,
		folderRef: folderRef,
		logger:    logger.With().Str("component", "drive_transaction_source").Logger(),
	}
}

// FetchLatest picks the newest export in the folder, downloads it and
// parses its transactions.
func (s *TransactionSource) FetchLatest(ctx context.Context) (domain.YearMonth, []domain.TransactionRecord, error) {
	folderID, err := FolderID(s.folderRef)
	if err != nil {
		return domain.YearMonth{}, nil, err
	}

	type export struct {
		id    string
		name  string
		month domain.YearMonth
	}
	var exports []export

	pageToken := ""
	for {
		var resp *drive.FileList
		err = s.retrier.Retry(ctx, func() error {
			call := s.svc.Files.List().
				Q(fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false", folderID, xlsxMimeType)).
				Fields("nextPageToken, files(id, name)").
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
			return domain.YearMonth{}, nil, fmt.Errorf("list export folder: %w", err)
		}
		for _, f := range resp.Files {
			if !exportFileRe.MatchString(f.Name) {
				continue
			}
			ym, err := xlsx.ExportYearMonth(f.Name)
			if err != nil {
				continue
			}
			exports = append(exports, export{id: f.Id, name: f.Name, month: ym})
		}
		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if len(exports) == 0 {
		return domain.YearMonth{}, nil, fmt.Errorf("no bank exports found in folder")
	}
	sort.Slice(exports, func(i, j int) bool { return exports[i].month.Before(exports[j].month) })
	latest := exports[len(exports)-1]

	s.logger.Info().
		Str("file", latest.name).
		Stringer("month", latest.month).
		Msg("downloading bank export")

	var records []domain.TransactionRecord
	err = s.retrier.Retry(ctx, func() error {
		resp, apiErr := s.svc.Files.Get(latest.id).
			SupportsAllDrives(true).
			Context(ctx).
			Download()
		if apiErr != nil {
			return apiErr
		}
		defer resp.Body.Close()
		records, apiErr = xlsx.Parse(resp.Body)
		return apiErr
	})
	if err != nil {
		return domain.YearMonth{}, nil, fmt.Errorf("download export %s: %w", latest.name, err)
	}

	return latest.month, records, nil
}
