package seed

// Preset defines a named configuration for database seeding.
type Preset string

const (
	// PresetColosseum loads the fixed Colosseum fixture: one arena, one
	// event and a fully recorded outcome. Running it twice is a no-op.
	PresetColosseum Preset = "colosseum"

	// PresetGames generates a random spread of arenas, events and
	// contingents for exploratory work.
	PresetGames Preset = "games"
)

// PresetConfig holds the generation parameters for a preset.
type PresetConfig struct {
	// Number of arenas to generate
	Arenas int

	// Events per arena (min, max)
	EventsMin int
	EventsMax int

	// Participant contingents per event (min, max)
	ContingentsMin int
	ContingentsMax int

	// Beast groups per event (min, max)
	BeastsMin int
	BeastsMax int

	// Whether to record a battle result for every contingent
	RecordResults bool
}

// GetPresetConfig returns the configuration for a preset.
func GetPresetConfig(preset Preset) PresetConfig {
	switch preset {
	case PresetGames:
		return PresetConfig{
			Arenas:         3,
			EventsMin:      1,
			EventsMax:      4,
			ContingentsMin: 2,
			ContingentsMax: 5,
			BeastsMin:      0,
			BeastsMax:      3,
			RecordResults:  true,
		}

	default:
		// The Colosseum fixture is fixed data; the counts only matter
		// for the random generator.
		return PresetConfig{
			Arenas:         1,
			EventsMin:      1,
			EventsMax:      1,
			ContingentsMin: 3,
			ContingentsMax: 3,
			BeastsMin:      2,
			BeastsMax:      2,
			RecordResults:  true,
		}
	}
}
