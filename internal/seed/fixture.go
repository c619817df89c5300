package seed

import (
	"time"

	"github.com/louisbranch/ludus/internal/arena"
)

// ArenaFixture is a fully specified arena with everything it hosted.
type ArenaFixture struct {
	Name     string
	City     string
	Capacity int64
	Events   []EventFixture
}

// EventFixture is one staged event with its contingents and outcome.
type EventFixture struct {
	Date        time.Time
	EventType   string
	Contingents []ContingentFixture
	Beasts      []BeastFixture
	Results     []ResultFixture
}

// ContingentFixture is one participant contingent.
type ContingentFixture struct {
	Type     arena.ParticipantType
	Count    int64
	Strength arena.StrengthLevel
	Cost     float64
	Age      int64
	Battles  int64
}

// BeastFixture is one group of beasts.
type BeastFixture struct {
	Species       arena.Species
	Count         int64
	Strength      int64
	Speed         int64
	Entertainment int64
}

// ResultFixture is one recorded battle outcome.
type ResultFixture struct {
	Label    string
	Survived int64
}

// ColosseumFixture returns the canonical demonstration data: the games
// of 80 AD with three contingents, two beast groups and their outcome.
func ColosseumFixture() ArenaFixture {
	return ArenaFixture{
		Name:     "Римский Колизей",
		City:     "Рим",
		Capacity: 50000,
		Events: []EventFixture{
			{
				Date:      time.Date(80, time.June, 1, 0, 0, 0, 0, time.UTC),
				EventType: "бой с варварами",
				Contingents: []ContingentFixture{
					{Type: arena.ParticipantTypeGladiator, Count: 4, Strength: arena.StrengthLevelExperienced, Cost: 120, Age: 27, Battles: 9},
					{Type: arena.ParticipantTypeRetiarius, Count: 2, Strength: arena.StrengthLevelNovice, Cost: 80, Age: 19, Battles: 1},
					{Type: arena.ParticipantTypeBarbarian, Count: 8, Strength: arena.StrengthLevelVeteran, Cost: 30, Age: 34, Battles: 15},
				},
				Beasts: []BeastFixture{
					{Species: arena.SpeciesLion, Count: 2, Strength: 9, Speed: 7, Entertainment: 10},
					{Species: arena.SpeciesJackal, Count: 4, Strength: 3, Speed: 8, Entertainment: 5},
				},
				Results: []ResultFixture{
					{Label: "gladiator", Survived: 2},
					{Label: "retiarius", Survived: 1},
					{Label: "barbarian", Survived: 0},
					// Beast outcome: no matching contingent, so the survivor
					// cap does not bind.
					{Label: "lion", Survived: 1},
				},
			},
		},
	}
}
