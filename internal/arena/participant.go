package arena

import (
	"fmt"
	"strings"
)

// ParticipantType classifies a contingent of fighters appearing at an
// event. The label doubles as the storage value.
type ParticipantType string

const (
	// ParticipantTypeGladiator is a professionally trained arena fighter.
	ParticipantTypeGladiator ParticipantType = "gladiator"
	// ParticipantTypeRetiarius is a net-and-trident fighter.
	ParticipantTypeRetiarius ParticipantType = "retiarius"
	// ParticipantTypeBarbarian is a captive fighting outside Roman style.
	ParticipantTypeBarbarian ParticipantType = "barbarian"
	// ParticipantTypeVictim is an unarmed condemned participant.
	ParticipantTypeVictim ParticipantType = "victim"
	// ParticipantTypeArcher is a ranged fighter with a bow.
	ParticipantTypeArcher ParticipantType = "archer"
	// ParticipantTypeLegionary is a soldier fighting in legion equipment.
	ParticipantTypeLegionary ParticipantType = "legionary"
	// ParticipantTypePhalanx is a formation fighter with spear and shield.
	ParticipantTypePhalanx ParticipantType = "phalanx"
	// ParticipantTypeSlinger is a ranged fighter with a sling.
	ParticipantTypeSlinger ParticipantType = "slinger"
	// ParticipantTypeCharioteer is a chariot fighter.
	ParticipantTypeCharioteer ParticipantType = "charioteer"
	// ParticipantTypeAuriga is a chariot driver.
	ParticipantTypeAuriga ParticipantType = "auriga"
	// ParticipantTypeChariotOwner is the owner racing their own chariot.
	ParticipantTypeChariotOwner ParticipantType = "chariot-owner"
)

// StrengthLevel grades the experience of a participant contingent.
type StrengthLevel string

const (
	// StrengthLevelNovice marks fighters without arena experience.
	StrengthLevelNovice StrengthLevel = "novice"
	// StrengthLevelExperienced marks fighters with prior appearances.
	StrengthLevelExperienced StrengthLevel = "experienced"
	// StrengthLevelVeteran marks long-surviving fighters.
	StrengthLevelVeteran StrengthLevel = "veteran"
)

// ParticipantTypes returns every valid participant type in declaration order.
func ParticipantTypes() []ParticipantType {
	return []ParticipantType{
		ParticipantTypeGladiator,
		ParticipantTypeRetiarius,
		ParticipantTypeBarbarian,
		ParticipantTypeVictim,
		ParticipantTypeArcher,
		ParticipantTypeLegionary,
		ParticipantTypePhalanx,
		ParticipantTypeSlinger,
		ParticipantTypeCharioteer,
		ParticipantTypeAuriga,
		ParticipantTypeChariotOwner,
	}
}

// StrengthLevels returns every valid strength level in ascending order.
func StrengthLevels() []StrengthLevel {
	return []StrengthLevel{
		StrengthLevelNovice,
		StrengthLevelExperienced,
		StrengthLevelVeteran,
	}
}

// ParticipantTypeLabels returns the wire labels of every participant type.
func ParticipantTypeLabels() []string {
	types := ParticipantTypes()
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = string(t)
	}
	return labels
}

// StrengthLevelLabels returns the wire labels of every strength level.
func StrengthLevelLabels() []string {
	levels := StrengthLevels()
	labels := make([]string, len(levels))
	for i, level := range levels {
		labels[i] = string(level)
	}
	return labels
}

// Valid reports whether the type carries one of the declared labels.
func (t ParticipantType) Valid() bool {
	for _, known := range ParticipantTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Valid reports whether the level carries one of the declared labels.
func (l StrengthLevel) Valid() bool {
	for _, known := range StrengthLevels() {
		if l == known {
			return true
		}
	}
	return false
}

func (t ParticipantType) String() string { return string(t) }

func (l StrengthLevel) String() string { return string(l) }

// ParticipantTypeFromLabel parses a string label into a ParticipantType.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParticipantTypeFromLabel(value string) (ParticipantType, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("participant type is required")
	}
	candidate := ParticipantType(strings.ToLower(trimmed))
	if !candidate.Valid() {
		return "", fmt.Errorf("unknown participant type: %s", trimmed)
	}
	return candidate, nil
}

// StrengthLevelFromLabel parses a string label into a StrengthLevel.
// Matching is case-insensitive and ignores surrounding whitespace.
func StrengthLevelFromLabel(value string) (StrengthLevel, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("strength level is required")
	}
	candidate := StrengthLevel(strings.ToLower(trimmed))
	if !candidate.Valid() {
		return "", fmt.Errorf("unknown strength level: %s", trimmed)
	}
	return candidate, nil
}
