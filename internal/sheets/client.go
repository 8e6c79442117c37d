// Package sheets provides a Google Sheets append client used by the
// spreadsheet feedback backend. Credentials are supplied as individual
// service-account key fields and assembled into key-file JSON here, since
// the deployment platform exposes secrets as flat values.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// ServiceAccountKey mirrors the structure of a Google service-account key
// file.
type ServiceAccountKey struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	ClientID     string `json:"client_id"`
	AuthURI      string `json:"auth_uri"`
	TokenURI     string `json:"token_uri"`
}

// Validate checks the key for structural completeness.
func (k *ServiceAccountKey) Validate() error {
	switch {
	case k.Type == "":
		return fmt.Errorf("service account key: type is required")
	case k.ProjectID == "":
		return fmt.Errorf("service account key: project_id is required")
	case k.PrivateKeyID == "":
		return fmt.Errorf("service account key: private_key_id is required")
	case k.PrivateKey == "":
		return fmt.Errorf("service account key: private_key is required")
	case k.ClientEmail == "":
		return fmt.Errorf("service account key: client_email is required")
	}
	return nil
}

// JSON serializes the key into the key-file form the Google auth libraries
// expect.
func (k *ServiceAccountKey) JSON() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(k)
}

// Client appends rows to one worksheet of one spreadsheet.
type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
	worksheet     string
}

// NewClient authenticates with the given service-account key and binds the
// client to a spreadsheet and worksheet.
func NewClient(ctx context.Context, key *ServiceAccountKey, spreadsheetID, worksheet string) (*Client, error) {
	credsJSON, err := key.JSON()
	if err != nil {
		return nil, err
	}

	return NewClientWithOptions(ctx, spreadsheetID, worksheet,
		option.WithCredentialsJSON(credsJSON),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
}

// NewClientWithOptions builds the client from explicit Google API client
// options, bypassing service-account credentials. Used by tests and local
// emulators via option.WithEndpoint.
func NewClientWithOptions(ctx context.Context, spreadsheetID, worksheet string, opts ...option.ClientOption) (*Client, error) {
	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
	}, nil
}

// AppendRow appends one row to the bound worksheet, creating the worksheet
// with the given header row if it does not exist yet.
func (c *Client) AppendRow(ctx context.Context, header []interface{}, row []interface{}) error {
	exists, err := c.worksheetExists(ctx)
	if err != nil {
		return err
	}

	if !exists {
		if err := c.createWorksheet(ctx, header); err != nil {
			return err
		}
	}

	valueRange := &sheetsapi.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err = c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, c.worksheet, valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}

	return nil
}

func (c *Client) worksheetExists(ctx context.Context) (bool, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("failed to open spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == c.worksheet {
			return true, nil
		}
	}
	return false, nil
}

func (c *Client) createWorksheet(ctx context.Context, header []interface{}) error {
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{
			{
				AddSheet: &sheetsapi.AddSheetRequest{
					Properties: &sheetsapi.SheetProperties{Title: c.worksheet},
				},
			},
		},
	}

	if _, err := c.service.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to create worksheet %q: %w", c.worksheet, err)
	}

	headerRange := &sheetsapi.ValueRange{
		Values: [][]interface{}{header},
	}
	_, err := c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, c.worksheet, headerRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	return nil
}
