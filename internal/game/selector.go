package game

import (
	"github.com/user/cultivation-life/internal/types"
	"go.uber.org/zap"
)

// EventSelector picks the next event from the catalog and resolves the
// player's choices against the game state.
type EventSelector struct {
	state   *State
	catalog *Catalog
	rng     RandomSource
	logger  *zap.Logger

	// lastSurfaced is the id of the most recently shown event. It only guards
	// against immediate repeats and is independent of the full history.
	lastSurfaced string
}

// NewEventSelector creates a selector over the given state and catalog
func NewEventSelector(state *State, catalog *Catalog, rng RandomSource) *EventSelector {
	if catalog == nil {
		catalog = NewCatalog(nil)
	}
	return &EventSelector{
		state:   state,
		catalog: catalog,
		rng:     rng,
		logger:  zap.NewNop(),
	}
}

// SetLogger sets the logger used for selection diagnostics
func (es *EventSelector) SetLogger(logger *zap.Logger) {
	es.logger = logger
}

// LastSurfaced returns the id of the most recently surfaced event
func (es *EventSelector) LastSurfaced() string {
	return es.lastSurfaced
}

// SelectNext chooses the next event for the current stage.
//
// Unseen eligible events of the current stage come first, then unseen
// eligible events of the following stage, then eligible events of the
// current stage even if already seen. The immediately previous event is
// avoided whenever another candidate exists. When nothing matches the
// built-in default event for the stage is returned.
func (es *EventSelector) SelectNext() *types.Event {
	stage := es.state.CurrentStage()
	player := es.state.Player()

	stagePool := es.catalog.Eligible(stage, player)
	if event := es.pick(es.unseen(stagePool)); event != nil {
		es.logger.Debug("Selected unseen event",
			zap.String("event_id", event.ID),
			zap.Int("stage", stage))
		return event
	}

	if next := stage + 1; next < StageCount {
		if event := es.pick(es.unseen(es.catalog.Eligible(next, player))); event != nil {
			es.logger.Debug("Selected event from next stage",
				zap.String("event_id", event.ID),
				zap.Int("stage", stage),
				zap.Int("next_stage", next))
			return event
		}
	}

	if event := es.pick(stagePool); event != nil {
		es.logger.Debug("Selected repeat event",
			zap.String("event_id", event.ID),
			zap.Int("stage", stage))
		return event
	}

	event := DefaultEvent(stage)
	es.lastSurfaced = event.ID
	es.logger.Debug("Falling back to default event",
		zap.String("event_id", event.ID),
		zap.Int("stage", stage))
	return event
}

// unseen drops every event already present in history
func (es *EventSelector) unseen(pool []*types.Event) []*types.Event {
	var out []*types.Event
	for _, event := range pool {
		if !es.state.HasSeen(event.ID) {
			out = append(out, event)
		}
	}
	return out
}

// pick draws uniformly from the pool, skipping the last surfaced event unless
// it is the only candidate. It returns nil for an empty pool.
func (es *EventSelector) pick(pool []*types.Event) *types.Event {
	if len(pool) == 0 {
		return nil
	}

	candidates := make([]*types.Event, 0, len(pool))
	for _, event := range pool {
		if event.ID != es.lastSurfaced {
			candidates = append(candidates, event)
		}
	}
	if len(candidates) == 0 {
		candidates = pool
	}

	event := candidates[es.rng.Intn(len(candidates))]
	es.lastSurfaced = event.ID
	return event
}

// ResolveChoice applies the chosen option of event to the game state.
// A nil event or an out-of-range index is ignored.
func (es *EventSelector) ResolveChoice(event *types.Event, choiceIndex int) {
	if event == nil || choiceIndex < 0 || choiceIndex >= len(event.Choices) {
		return
	}

	choice := event.Choices[choiceIndex]
	outcome := choice.Outcome()

	for _, key := range sortedKeys(outcome.Effects) {
		if key == AgeAttribute {
			es.state.AdvanceAge(outcome.Effects[key])
		} else {
			es.state.ApplyAttributeDelta(key, outcome.Effects[key])
		}
	}
	if choice.JoinSect != "" {
		es.state.JoinSect(choice.JoinSect)
	}

	es.state.StageResult(choice.Text, outcome.Effects, choice.Result)
	es.state.RecordHistory(event.ID)
	es.lastSurfaced = event.ID

	if outcome.Kind == types.OutcomeEnd {
		es.state.Terminate(outcome.Text)
	}

	// A finished game never shows the result screen, including when the
	// effects alone exhausted the lifespan.
	if es.state.IsGameOver() {
		es.state.ClearResult()
	}
}

// Advance dismisses the pending result and installs the next event. It does
// nothing unless a result is being shown and the game is still running.
func (es *EventSelector) Advance() *types.Event {
	if es.state.IsGameOver() || !es.state.ShowResultScreen() {
		return nil
	}
	es.state.ClearResult()
	event := es.SelectNext()
	es.state.SetCurrentEvent(event)
	return event
}

// Begin installs the opening event, bypassing stage, condition and history
// checks. Without an opening event the first event is selected normally.
func (es *EventSelector) Begin() *types.Event {
	if event := es.catalog.Opening(); event != nil {
		es.state.SetCurrentEvent(event)
		return event
	}
	event := es.SelectNext()
	es.state.SetCurrentEvent(event)
	return event
}

// Reset starts a fresh playthrough
func (es *EventSelector) Reset() {
	es.state.Reset()
	es.lastSurfaced = ""
}
