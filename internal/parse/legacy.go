package parse

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LegacyParser handles the legacy extractor variant: tab-separated lines of
//
//	name <TAB> quantity <TAB> unit_price [<TAB> date]
//
// with optional "# key: value" header lines for receipt-level fields.
// Blank lines are skipped. Any malformed data line fails the document.
type LegacyParser struct{}

func (p *LegacyParser) Parse(ctx context.Context, data []byte, filenameHint string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{
		Fields:    map[string]string{},
		RawOutput: string(data),
	}
	var receiptDate time.Time

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			key, value, ok := strings.Cut(strings.TrimPrefix(line, "#"), ":")
			if !ok {
				continue
			}
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			res.Fields[key] = value
			if key == FieldPurchaseDate {
				d, err := parseDate(value)
				if err != nil {
					return Result{}, fmt.Errorf("document %q: line %d: %w", filenameHint, lineNo, err)
				}
				receiptDate = d
			}
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 3 {
			return Result{}, fmt.Errorf("document %q: line %d: want at least 3 tab-separated columns, got %d", filenameHint, lineNo, len(cols))
		}
		name := strings.TrimSpace(cols[0])
		if name == "" {
			return Result{}, fmt.Errorf("document %q: line %d: empty item name", filenameHint, lineNo)
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(cols[1]), 64)
		if err != nil {
			return Result{}, fmt.Errorf("document %q: line %d: quantity: %w", filenameHint, lineNo, err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(cols[2]), 64)
		if err != nil {
			return Result{}, fmt.Errorf("document %q: line %d: unit price: %w", filenameHint, lineNo, err)
		}

		item := LineItem{
			Name:        name,
			Quantity:    qty,
			UnitPrice:   price,
			LineTotal:   qty * price,
			PurchasedAt: receiptDate,
		}
		if len(cols) >= 4 && strings.TrimSpace(cols[3]) != "" {
			d, err := parseDate(strings.TrimSpace(cols[3]))
			if err != nil {
				return Result{}, fmt.Errorf("document %q: line %d: %w", filenameHint, lineNo, err)
			}
			item.PurchasedAt = d
		}
		res.Lines = append(res.Lines, item)
	}
	if err := sc.Err(); err != nil {
		return Result{}, fmt.Errorf("document %q: scan: %w", filenameHint, err)
	}
	return res, nil
}
