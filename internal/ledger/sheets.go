package ledger

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsLedger implements Ledger on top of the Google Sheets API using a
// service-account credential.
type SheetsLedger struct {
	srv           *sheets.Service
	spreadsheetID string
}

// NewSheetsLedger builds a Sheets client from a service-account key file.
func NewSheetsLedger(ctx context.Context, credentialsFile, spreadsheetID string) (*SheetsLedger, error) {
	srv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return &SheetsLedger{srv: srv, spreadsheetID: spreadsheetID}, nil
}

func (l *SheetsLedger) Append(ctx context.Context, rng string, row []interface{}, input ValueInput) error {
	body := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := l.srv.Spreadsheets.Values.
		Append(l.spreadsheetID, rng, body).
		ValueInputOption(string(input)).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAppendFailed, err)
	}
	return nil
}

func (l *SheetsLedger) Rows(ctx context.Context, rng string) ([][]string, error) {
	resp, err := l.srv.Spreadsheets.Values.
		Get(l.spreadsheetID, rng).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read ledger range %s: %w", rng, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (l *SheetsLedger) Clear(ctx context.Context, rng string) error {
	_, err := l.srv.Spreadsheets.Values.
		Clear(l.spreadsheetID, rng, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("clear ledger range %s: %w", rng, err)
	}
	return nil
}
