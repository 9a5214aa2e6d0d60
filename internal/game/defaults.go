package game

import "github.com/user/cultivation-life/internal/types"

// defaultEvents are surfaced when the catalog has nothing for a stage.
// Every stage has exactly one; the last one ends the playthrough.
var defaultEvents = [StageCount]types.Event{
	{
		ID:          "default_0",
		Stage:       0,
		Title:       "An Ordinary Day",
		Description: "You live through an ordinary day as time slips by...",
		Choices: []types.Choice{
			{Text: "Carry on", Effects: types.Effects{"age": 1}},
		},
	},
	{
		ID:          "default_1",
		Stage:       1,
		Title:       "Daily Practice",
		Description: "You train diligently in the sect and feel your cultivation inch forward.",
		Choices: []types.Choice{
			{Text: "Keep training", Effects: types.Effects{"age": 1, "cultivation": 10}},
		},
	},
	{
		ID:          "default_2",
		Stage:       2,
		Title:       "Wandering Trial",
		Description: "You travel the world and glimpse how vast the cultivation world is.",
		Choices: []types.Choice{
			{Text: "Carry on", Effects: types.Effects{"age": 5, "cultivation": 20}},
		},
	},
	{
		ID:          "default_3",
		Stage:       3,
		Title:       "Closed-Door Cultivation",
		Description: "You seal yourself away to comprehend the Dao of Heaven.",
		Choices: []types.Choice{
			{Text: "Leave seclusion", Effects: types.Effects{"age": 10, "cultivation": 50}},
		},
	},
	{
		ID:          "default_4",
		Stage:       4,
		Title:       "Bracing for Tribulation",
		Description: "You sense the heavenly tribulation approaching and must prepare.",
		Choices: []types.Choice{
			{Text: "Keep preparing", Effects: types.Effects{"age": 20, "cultivation": 100}},
		},
	},
	{
		ID:          "default_5",
		Stage:       5,
		Title:       "The Final Choice",
		Description: "Your path of cultivation is about to reach its end...",
		Choices: []types.Choice{
			{
				Text:    "Accept fate",
				Effects: types.Effects{"age": 50},
				Ending:  "Ordinary ending: you grow old with the years and finally return to the dust.",
			},
		},
	},
}

// DefaultEvent returns the built-in event for a stage. Out-of-range stages
// get the stage 0 event.
func DefaultEvent(stage int) *types.Event {
	if stage < 0 || stage >= StageCount {
		stage = 0
	}
	return &defaultEvents[stage]
}
