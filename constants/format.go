package constants

import (
	"path"
	"strings"
)

// Format selects the extractor variant for a document.
type Format string

const (
	// FormatCurrent is the JSON payload emitted by the current extractor.
	FormatCurrent Format = "CURRENT"
	// FormatLegacy is the tab-separated text emitted by the legacy extractor.
	FormatLegacy Format = "LEGACY"
)

// Formats holds the allowed values for the format field.
var Formats = []string{string(FormatCurrent), string(FormatLegacy)}

// MetadataFormatKey is the notification metadata key that forces a variant.
const MetadataFormatKey = "extractor-format"

// FormatForObject resolves the extractor variant for an object. An explicit
// metadata override wins; otherwise the object extension decides, with the
// current variant as the default.
func FormatForObject(objectName string, metadata map[string]string) Format {
	if v, ok := metadata[MetadataFormatKey]; ok {
		if strings.EqualFold(v, string(FormatLegacy)) {
			return FormatLegacy
		}
		return FormatCurrent
	}
	switch strings.ToLower(strings.TrimPrefix(path.Ext(objectName), ".")) {
	case "txt", "tsv":
		return FormatLegacy
	default:
		return FormatCurrent
	}
}
