package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/cultivation-life/config"
	"github.com/user/cultivation-life/internal/types"
	"go.uber.org/zap/zaptest"
)

func TestDecisionEngineNoChoices(t *testing.T) {
	de := NewDecisionEngine(NewSequenceSource(0))

	assert.Equal(t, -1, de.ChooseChoice(nil, NewPlayer()))
	assert.Equal(t, -1, de.ChooseChoice(&types.Event{ID: "empty"}, NewPlayer()))
}

func TestDecisionEngineAvoidsDeath(t *testing.T) {
	de := NewDecisionEngine(NewSequenceSource(9, 0))
	event := &types.Event{
		ID: "reckless_alchemy",
		Choices: []types.Choice{
			{Text: "Swallow it", Effects: types.Effects{"age": 50, "lifespan": -2000}},
			{Text: "Sell the recipe", Effects: types.Effects{"age": 100, "salaryFish": 80}},
		},
	}

	assert.Equal(t, 1, de.ChooseChoice(event, NewPlayer()))
}

func TestDecisionEnginePrefersBreakthroughs(t *testing.T) {
	de := NewDecisionEngine(NewSequenceSource(0))
	event := &types.Event{
		ID: "foundation_breakthrough",
		Choices: []types.Choice{
			{Text: "Wait until after lunch", Effects: types.Effects{"age": 5, "health": 10}},
			{Text: "Break through", Effects: types.Effects{"age": 5, "realmLevel": 1, "lifespan": 100}},
		},
	}

	assert.Equal(t, 1, de.ChooseChoice(event, NewPlayer()))
}

func TestDecisionEngineAvoidsEndings(t *testing.T) {
	de := NewDecisionEngine(NewSequenceSource(0))
	event := &types.Event{
		ID: OpeningEventID,
		Choices: []types.Choice{
			{Text: "Open a noodle stall", Effects: types.Effects{"cookingSkill": 300}, Ending: "Everyone eats well."},
			{Text: "Climb the mountain", Effects: types.Effects{"age": 1}},
		},
	}

	assert.Equal(t, 1, de.ChooseChoice(event, NewPlayer()))

	// The only way forward is taken even if it ends the game
	assert.Equal(t, 0, de.ChooseChoice(DefaultEvent(StageCount-1), NewPlayer()))
}

func TestAutoPilotPlaysToTheEnd(t *testing.T) {
	gm := newTestManager(t)

	ap := NewAutoPilot(gm, NewDiceRoller(5), 2000)
	ap.Logger = zaptest.NewLogger(t)
	summary := ap.Play()

	assert.True(t, summary.Ended)
	assert.NotEmpty(t, summary.Ending)
	assert.Equal(t, gm.Snapshot().ID, summary.PlaythroughID)
	assert.Equal(t, summary.Turns, len(summary.Events))
	require.NotEmpty(t, summary.Events)
	assert.Equal(t, OpeningEventID, summary.Events[0])
	assert.Equal(t, gm.Snapshot().Player.Age, summary.FinalAge)
}

func TestAutoPilotTurnLimit(t *testing.T) {
	gm := newTestManager(t)

	summary := NewAutoPilot(gm, NewSequenceSource(0), 2).Play()

	assert.False(t, summary.Ended)
	assert.Equal(t, 2, summary.Turns)
	assert.Empty(t, summary.Ending)
}

func TestAutoPilotShippedCatalogTerminates(t *testing.T) {
	catalog, err := NewDataLoader("../../assets/data").LoadCatalog("events.yaml")
	require.NoError(t, err)

	for seed := int64(1); seed <= 20; seed++ {
		cfg := config.DefaultConfig()
		cfg.Game.Seed = seed
		gm := NewGameManager(cfg, catalog)

		summary := NewAutoPilot(gm, NewDiceRoller(seed), 2000).Play()

		assert.True(t, summary.Ended, "seed %d did not finish in %d turns", seed, summary.Turns)
		assert.NotEmpty(t, summary.Ending, "seed %d", seed)
	}
}
