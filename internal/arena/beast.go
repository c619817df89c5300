package arena

import (
	"fmt"
	"strings"
)

// Species classifies a group of beasts exhibited at an event. The label
// doubles as the storage value.
type Species string

const (
	// SpeciesLion is a lion pack.
	SpeciesLion Species = "lion"
	// SpeciesLeopard is a leopard pack.
	SpeciesLeopard Species = "leopard"
	// SpeciesJackal is a jackal pack.
	SpeciesJackal Species = "jackal"
	// SpeciesBaboon is a baboon troop.
	SpeciesBaboon Species = "baboon"
)

// AllSpecies returns every valid species in declaration order.
func AllSpecies() []Species {
	return []Species{
		SpeciesLion,
		SpeciesLeopard,
		SpeciesJackal,
		SpeciesBaboon,
	}
}

// SpeciesLabels returns the wire labels of every species.
func SpeciesLabels() []string {
	species := AllSpecies()
	labels := make([]string, len(species))
	for i, s := range species {
		labels[i] = string(s)
	}
	return labels
}

// Valid reports whether the species carries one of the declared labels.
func (s Species) Valid() bool {
	for _, known := range AllSpecies() {
		if s == known {
			return true
		}
	}
	return false
}

func (s Species) String() string { return string(s) }

// SpeciesFromLabel parses a string label into a Species. Matching is
// case-insensitive and ignores surrounding whitespace.
func SpeciesFromLabel(value string) (Species, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("species is required")
	}
	candidate := Species(strings.ToLower(trimmed))
	if !candidate.Valid() {
		return "", fmt.Errorf("unknown species: %s", trimmed)
	}
	return candidate, nil
}
