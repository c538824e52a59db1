package ledger

import (
	"context"
	"errors"
)

var ErrAppendFailed = errors.New("ledger append failed")

// ValueInput selects how the spreadsheet service interprets written values.
type ValueInput string

const (
	InputRaw         ValueInput = "RAW"
	InputUserEntered ValueInput = "USER_ENTERED"
)

// Ledger is the external spreadsheet-like audit store, addressed by named
// ranges ("'ProductManagement'!A:O"). Appends are single atomic calls; there
// is no isolation between a reader and a concurrent append.
type Ledger interface {
	// Append adds exactly one row at the end of the range.
	Append(ctx context.Context, rng string, row []interface{}, input ValueInput) error
	// Rows returns every populated row of the range, header included.
	Rows(ctx context.Context, rng string) ([][]string, error)
	// Clear wipes all values in the range.
	Clear(ctx context.Context, rng string) error
}
