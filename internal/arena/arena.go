// Package arena defines the vocabulary of historical arena spectacles:
// the participant types fielded at an event, their strength tiers, and
// the beast species that shared the sand with them.
package arena

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLabel trims surrounding whitespace and applies Unicode NFC
// normalization. Free-text labels (event types, battle result labels)
// arrive in Latin and Cyrillic and must compare equal regardless of how
// the input was composed.
func NormalizeLabel(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}
