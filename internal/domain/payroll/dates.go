package payroll

import (
	"fmt"
	"strings"
	"time"
)

// CanonicalDateLayout is the canonical on-receipt period format.
const CanonicalDateLayout = "2006-01-02"

// periodLayouts are tried in order; the first successful parse wins.
// Because D/M/Y is tried before M/D/Y, an ambiguous value such as
// "03/04/2024" resolves as 3 April, not March 4. That ordering is a
// compatibility guarantee, not a locale-correct heuristic.
var periodLayouts = []string{
	CanonicalDateLayout,
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
}

// DateFormatError reports a period value that matched none of the
// accepted layouts.
type DateFormatError struct {
	Raw string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date format: %s", e.Raw)
}

// NormalizeDate parses a raw period value against the accepted layouts
// and reformats it to YYYY-MM-DD. Idempotent for already-canonical input.
func NormalizeDate(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range periodLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.Format(CanonicalDateLayout), nil
		}
	}
	return "", &DateFormatError{Raw: raw}
}
