package parse

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// currentPayload mirrors the JSON the current extractor emits.
type currentPayload struct {
	Merchant     string        `json:"merchant"`
	PurchaseDate string        `json:"purchase_date"`
	Currency     string        `json:"currency"`
	Total        *float64      `json:"total"`
	Items        []currentItem `json:"items"`
}

type currentItem struct {
	Name      string   `json:"name"`
	Quantity  *float64 `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
	LineTotal *float64 `json:"line_total"`
	Date      string   `json:"date"`
}

// CurrentParser handles the current extractor variant: a JSON document
// validated against receiptSchema before field extraction.
type CurrentParser struct{}

func (p *CurrentParser) Parse(ctx context.Context, data []byte, filenameHint string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := ValidateJSONAgainstSchema(receiptSchema, data); err != nil {
		return Result{}, fmt.Errorf("document %q: %w", filenameHint, err)
	}

	var payload currentPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Result{}, fmt.Errorf("document %q: decode: %w", filenameHint, err)
	}

	var receiptDate time.Time
	if payload.PurchaseDate != "" {
		d, err := parseDate(payload.PurchaseDate)
		if err != nil {
			return Result{}, fmt.Errorf("document %q: %w", filenameHint, err)
		}
		receiptDate = d
	}

	res := Result{
		Fields:    map[string]string{},
		RawOutput: string(data),
	}
	if payload.Merchant != "" {
		res.Fields[FieldMerchant] = payload.Merchant
	}
	if payload.PurchaseDate != "" {
		res.Fields[FieldPurchaseDate] = payload.PurchaseDate
	}
	if payload.Currency != "" {
		res.Fields[FieldCurrency] = payload.Currency
	}
	if payload.Total != nil {
		res.Fields[FieldTotal] = strconv.FormatFloat(*payload.Total, 'f', 2, 64)
	}

	for i, it := range payload.Items {
		line := LineItem{Name: it.Name, PurchasedAt: receiptDate}
		if it.Quantity != nil {
			line.Quantity = *it.Quantity
		} else {
			line.Quantity = 1
		}
		if it.UnitPrice != nil {
			line.UnitPrice = *it.UnitPrice
		}
		switch {
		case it.LineTotal != nil:
			line.LineTotal = *it.LineTotal
		case it.UnitPrice != nil:
			line.LineTotal = line.Quantity * *it.UnitPrice
		}
		if it.Date != "" {
			d, err := parseDate(it.Date)
			if err != nil {
				return Result{}, fmt.Errorf("document %q: item %d: %w", filenameHint, i, err)
			}
			line.PurchasedAt = d
		}
		res.Lines = append(res.Lines, line)
	}
	return res, nil
}
