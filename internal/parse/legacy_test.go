package parse

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestLegacyParserFullDocument(t *testing.T) {
	doc := "# merchant: Corner Grocer\n" +
		"# purchase_date: 2026-03-14\n" +
		"\n" +
		"Milk\t1\t2.50\n" +
		"Bread\t2\t1.75\n" +
		"Eggs\t1\t1.25\t2026-03-13\n"

	res, err := (&LegacyParser{}).Parse(context.Background(), []byte(doc), "r1.txt")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if res.Fields["merchant"] != "Corner Grocer" {
		t.Errorf("merchant = %q", res.Fields["merchant"])
	}
	if len(res.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3", len(res.Lines))
	}

	milk := res.Lines[0]
	if milk.Name != "Milk" || milk.Quantity != 1 || milk.UnitPrice != 2.50 || milk.LineTotal != 2.50 {
		t.Errorf("milk = %+v", milk)
	}
	headerDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if !milk.PurchasedAt.Equal(headerDate) {
		t.Errorf("milk date = %v, want header date", milk.PurchasedAt)
	}

	if got := res.Lines[1].LineTotal; got != 3.50 {
		t.Errorf("bread line total = %v, want 3.50", got)
	}

	// fourth column overrides the header date
	if !res.Lines[2].PurchasedAt.Equal(time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("eggs date = %v", res.Lines[2].PurchasedAt)
	}
}

func TestLegacyParserRejectsMalformedLines(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"too few columns", "Milk\t1\n"},
		{"empty name", "\t1\t2.50\n"},
		{"bad quantity", "Milk\ttwo\t2.50\n"},
		{"bad price", "Milk\t1\tcheap\n"},
		{"bad line date", "Milk\t1\t2.50\tyesterday\n"},
		{"bad header date", "# purchase_date: 03/14/2026\nMilk\t1\t2.50\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&LegacyParser{}).Parse(context.Background(), []byte(tt.doc), "bad.txt")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "line 1") && !strings.Contains(err.Error(), "line 2") {
				t.Errorf("error should name the offending line: %v", err)
			}
		})
	}
}

func TestLegacyParserSkipsNoise(t *testing.T) {
	doc := "\n\n# just a comment without colon value\nMilk\t1\t2.50\n\n"
	res, err := (&LegacyParser{}).Parse(context.Background(), []byte(doc), "r.txt")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Lines) != 1 {
		t.Errorf("len(Lines) = %d, want 1", len(res.Lines))
	}
}
