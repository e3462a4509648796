package constants

import "testing"

func TestFormatForObject(t *testing.T) {
	tests := []struct {
		name     string
		object   string
		metadata map[string]string
		want     Format
	}{
		{"json defaults to current", "a/r1.json", nil, FormatCurrent},
		{"no extension defaults to current", "a/receipt", nil, FormatCurrent},
		{"txt selects legacy", "a/r1.txt", nil, FormatLegacy},
		{"tsv selects legacy", "a/r1.tsv", nil, FormatLegacy},
		{"metadata override wins", "a/r1.txt", map[string]string{MetadataFormatKey: "CURRENT"}, FormatCurrent},
		{"metadata can force legacy", "a/r1.json", map[string]string{MetadataFormatKey: "LEGACY"}, FormatLegacy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatForObject(tt.object, tt.metadata); got != tt.want {
				t.Errorf("FormatForObject(%q) = %s, want %s", tt.object, got, tt.want)
			}
		})
	}
}
