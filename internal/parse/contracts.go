package parse

import (
	"context"
	"fmt"
	"time"

	"github.com/joseph-ayodele/receipts-pipeline/constants"
)

// LineItem is one structured line extracted from a receipt document.
type LineItem struct {
	Name        string
	Quantity    float64
	UnitPrice   float64
	LineTotal   float64
	PurchasedAt time.Time
}

// Result is the structured output of one parser invocation.
type Result struct {
	// Fields holds receipt-level values (merchant, purchase_date, currency,
	// total) keyed by stable names.
	Fields map[string]string
	// Lines are the exploded line items in document order.
	Lines []LineItem
	// RawOutput is the extractor's raw output, persisted verbatim.
	RawOutput string
}

// Parser turns raw document bytes into a Result. Parse failures are
// non-retryable: the same bytes will fail the same way.
type Parser interface {
	Parse(ctx context.Context, data []byte, filenameHint string) (Result, error)
}

// ForFormat returns the parser implementation for an extractor variant.
func ForFormat(format constants.Format) (Parser, error) {
	switch format {
	case constants.FormatCurrent:
		return &CurrentParser{}, nil
	case constants.FormatLegacy:
		return &LegacyParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported extractor format: %s", format)
	}
}

// Well-known keys for Result.Fields.
const (
	FieldMerchant     = "merchant"
	FieldPurchaseDate = "purchase_date"
	FieldCurrency     = "currency"
	FieldTotal        = "total"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
