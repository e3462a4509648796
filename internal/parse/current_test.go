package parse

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestCurrentParserFullDocument(t *testing.T) {
	doc := `{
		"merchant": "Corner Grocer",
		"purchase_date": "2026-03-14",
		"currency": "USD",
		"total": 7.25,
		"items": [
			{"name": "Milk", "quantity": 1, "unit_price": 2.50},
			{"name": "Bread", "quantity": 2, "unit_price": 1.75, "line_total": 3.50},
			{"name": "Eggs", "unit_price": 1.25, "date": "2026-03-13"}
		]
	}`

	res, err := (&CurrentParser{}).Parse(context.Background(), []byte(doc), "r1.json")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if res.Fields[FieldMerchant] != "Corner Grocer" {
		t.Errorf("merchant = %q", res.Fields[FieldMerchant])
	}
	if res.Fields[FieldTotal] != "7.25" {
		t.Errorf("total = %q, want 7.25", res.Fields[FieldTotal])
	}
	if len(res.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3", len(res.Lines))
	}

	milk := res.Lines[0]
	if milk.Name != "Milk" || milk.Quantity != 1 || milk.UnitPrice != 2.50 || milk.LineTotal != 2.50 {
		t.Errorf("milk = %+v", milk)
	}
	wantDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if !milk.PurchasedAt.Equal(wantDate) {
		t.Errorf("milk date = %v, want %v", milk.PurchasedAt, wantDate)
	}

	// explicit line_total is kept as-is
	if res.Lines[1].LineTotal != 3.50 {
		t.Errorf("bread line total = %v, want 3.50", res.Lines[1].LineTotal)
	}

	// missing quantity defaults to 1; per-item date overrides receipt date
	eggs := res.Lines[2]
	if eggs.Quantity != 1 || eggs.LineTotal != 1.25 {
		t.Errorf("eggs = %+v", eggs)
	}
	if !eggs.PurchasedAt.Equal(time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("eggs date = %v, want overridden date", eggs.PurchasedAt)
	}

	if res.RawOutput != doc {
		t.Error("RawOutput should hold the document verbatim")
	}
}

func TestCurrentParserRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `name\tquantity`},
		{"missing items", `{"merchant": "X"}`},
		{"item without name", `{"items": [{"unit_price": 1.0}]}`},
		{"bad date format", `{"purchase_date": "14/03/2026", "items": [{"name": "Milk"}]}`},
		{"items not an array", `{"items": {"name": "Milk"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&CurrentParser{}).Parse(context.Background(), []byte(tt.doc), "bad.json")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "bad.json") {
				t.Errorf("error should name the document: %v", err)
			}
		})
	}
}

func TestForFormat(t *testing.T) {
	if _, err := ForFormat("CURRENT"); err != nil {
		t.Errorf("CURRENT: %v", err)
	}
	if _, err := ForFormat("LEGACY"); err != nil {
		t.Errorf("LEGACY: %v", err)
	}
	if _, err := ForFormat("V99"); err == nil {
		t.Error("unknown format should fail")
	}
}
