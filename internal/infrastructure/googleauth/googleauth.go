package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Services bundles the Google API clients the adapters share.
type Services struct {
	Sheets *sheets.Service
	Drive  *drive.Service
}

// New builds Sheets and Drive clients from an already authorized
// credential file. The file is either a cached OAuth token (the treasurer
// ran the interactive flow elsewhere) or service-account credentials;
// there is no interactive flow in this tool.
func New(ctx context.Context, credentialFile string) (*Services, error) {
	opt, err := clientOption(credentialFile)
	if err != nil {
		return nil, err
	}

	sheetsSvc, err := sheets.NewService(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	driveSvc, err := drive.NewService(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &Services{Sheets: sheetsSvc, Drive: driveSvc}, nil
}

func clientOption(credentialFile string) (option.ClientOption, error) {
	raw, err := os.ReadFile(credentialFile)
	if err != nil {
		return nil, fmt.Errorf("read credential file: %w", err)
	}

	// A cached user token has an access_token field; anything else is
	// handed to the client library as credentials JSON.
	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err == nil && tok.AccessToken != "" {
		return option.WithTokenSource(oauth2.StaticTokenSource(&tok)), nil
	}

	return option.WithCredentialsJSON(raw), nil
}
