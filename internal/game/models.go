package game

import (
	"github.com/user/cultivation-life/internal/types"
)

const (
	// OpeningEventID is the catalog id of the event shown first in every playthrough
	OpeningEventID = "opening_event"

	// OpeningStage is the sentinel stage reserved for the opening event
	OpeningStage = -1

	// StageCount is the number of life stages
	StageCount = 6

	// MaxRealmLevel is the highest index into Realms
	MaxRealmLevel = 6

	// LifespanExhaustedMessage is the ending used when lifespan drops to zero
	LifespanExhaustedMessage = "Your lifespan is exhausted. Your path of cultivation ends here..."

	// DefaultGameResult is used when the game is terminated without a narrative
	DefaultGameResult = "Your path of cultivation ends here."
)

// Realms are the cultivation ranks indexed by realm level
var Realms = [MaxRealmLevel + 1]string{
	"Qi Refining",
	"Foundation Building",
	"Golden Core",
	"Nascent Soul",
	"Slacking Off",
	"Paid Seclusion",
	"Ascension (Probation)",
}

// StageNames are the display names of the life stages
var StageNames = [StageCount]string{
	"Mortal Youth",
	"Sect Newcomer",
	"Pillar of the Sect",
	"Old Hand",
	"Tribulation Crisis",
	"Final Destination",
}

// stageThresholds holds the minimum age of each stage, highest first
var stageThresholds = []struct {
	minAge int
	stage  int
}{
	{1000, 5},
	{500, 4},
	{100, 3},
	{30, 2},
	{16, 1},
}

// StageForAge returns the life stage for the given age
func StageForAge(age int) int {
	for _, t := range stageThresholds {
		if age >= t.minAge {
			return t.stage
		}
	}
	return 0
}

// NewPlayer returns a player with the starting attributes
func NewPlayer() types.Player {
	return types.Player{
		Name:            "Nameless Cultivator",
		Age:             16,
		Lifespan:        100,
		Realm:           Realms[0],
		RealmLevel:      0,
		Cultivation:     0,
		SpiritualPower:  100,
		Health:          100,
		SocialAnxiety:   50,
		FishingSkill:    0,
		VersaillesIndex: 0,
		SalaryFish:      0,
		CookingSkill:    0,
		Disciples:       make([]string, 0),
	}
}

// StageNameList returns the stage names as a slice
func StageNameList() []string {
	return append([]string{}, StageNames[:]...)
}
