package constants

// ExtractionStatus is the canonical status for rows in extractions.
type ExtractionStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending ExtractionStatus = "PENDING" // created, not yet terminal
	StatusParsed  ExtractionStatus = "PARSED"  // terminal success
	StatusFailed  ExtractionStatus = "FAILED"  // terminal failure
)

// ExtractionStatuses holds the allowed values for the extraction status field.
var ExtractionStatuses = []string{string(StatusPending), string(StatusParsed), string(StatusFailed)}

// IsTerminal reports whether a status permits no further transitions.
func (s ExtractionStatus) IsTerminal() bool {
	return s == StatusParsed || s == StatusFailed
}
