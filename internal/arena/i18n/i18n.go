// Package i18n registers localized display strings for the arena
// vocabulary and the report tool. English and Russian catalogs are kept
// complete; the matcher falls back to English for anything else.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/ludus/internal/arena"
)

var supported = []language.Tag{
	language.English, // fallback
	language.Russian,
}

var matcher = language.NewMatcher(supported)

// Printer returns a message printer for the locale. Empty or unsupported
// locales resolve to English.
func Printer(locale string) *message.Printer {
	tag, _ := language.MatchStrings(matcher, strings.TrimSpace(locale))
	return message.NewPrinter(tag)
}

const (
	participantKeyPrefix = "arena.participant."
	strengthKeyPrefix    = "arena.strength."
	speciesKeyPrefix     = "arena.species."
)

// ParticipantTypeName renders the localized display name of a participant
// type. Labels outside the declared set render as-is.
func ParticipantTypeName(p *message.Printer, label string) string {
	parsed, err := arena.ParticipantTypeFromLabel(label)
	if err != nil {
		return label
	}
	return p.Sprintf(participantKeyPrefix + string(parsed))
}

// StrengthLevelName renders the localized display name of a strength level.
func StrengthLevelName(p *message.Printer, level arena.StrengthLevel) string {
	return p.Sprintf(strengthKeyPrefix + string(level))
}

// SpeciesName renders the localized display name of a species.
func SpeciesName(p *message.Printer, species arena.Species) string {
	return p.Sprintf(speciesKeyPrefix + string(species))
}
