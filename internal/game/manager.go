package game

import (
	"sync"

	"github.com/user/cultivation-life/config"
	"github.com/user/cultivation-life/internal/interfaces"
	"github.com/user/cultivation-life/internal/types"
	"go.uber.org/zap"
)

// GameManager owns a playthrough and serializes every command into it
type GameManager struct {
	state     *State
	selector  *EventSelector
	catalog   *Catalog
	stateLock sync.RWMutex
	Logger    *zap.Logger
}

// Ensure GameManager satisfies the interfaces.Game interface
var _ interfaces.Game = (*GameManager)(nil)

// NewGameManager creates a new game manager over a loaded catalog
func NewGameManager(cfg config.Config, catalog *Catalog) *GameManager {
	state := NewState()
	selector := NewEventSelector(state, catalog, NewDiceRoller(cfg.Game.Seed))

	return &GameManager{
		state:    state,
		selector: selector,
		catalog:  selector.catalog,
		Logger:   zap.NewNop(), // Will be set by the caller
	}
}

// SetLogger sets the logger for the manager and its selector
func (gm *GameManager) SetLogger(logger *zap.Logger) {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	gm.Logger = logger
	gm.selector.SetLogger(logger.Named("selector"))
}

// SetRandomSource replaces the random source used for event selection
func (gm *GameManager) SetRandomSource(rng RandomSource) {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	gm.selector.rng = rng
}

// Begin starts a new playthrough with the opening event
func (gm *GameManager) Begin() *types.Event {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	gm.selector.Reset()
	event := gm.selector.Begin()

	gm.Logger.Info("Playthrough started",
		zap.String("playthrough_id", gm.state.ID().String()),
		zap.String("event_id", event.ID))

	return event
}

// Choose resolves a choice of the current event. It returns false when the
// choice was ignored: no current event, a pending result, a finished game or
// an invalid index.
func (gm *GameManager) Choose(choiceIndex int) bool {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	event := gm.state.CurrentEvent()
	if event == nil || gm.state.IsGameOver() || gm.state.ShowResultScreen() {
		gm.Logger.Debug("Ignoring choice outside of an open event",
			zap.String("playthrough_id", gm.state.ID().String()),
			zap.Int("choice_index", choiceIndex))
		return false
	}
	if choiceIndex < 0 || choiceIndex >= len(event.Choices) {
		gm.Logger.Debug("Ignoring out of range choice",
			zap.String("playthrough_id", gm.state.ID().String()),
			zap.String("event_id", event.ID),
			zap.Int("choice_index", choiceIndex),
			zap.Int("choices", len(event.Choices)))
		return false
	}

	gm.selector.ResolveChoice(event, choiceIndex)

	player := gm.state.Player()
	gm.Logger.Info("Choice resolved",
		zap.String("playthrough_id", gm.state.ID().String()),
		zap.String("event_id", event.ID),
		zap.String("choice", event.Choices[choiceIndex].Text),
		zap.Int("age", player.Age),
		zap.Int("lifespan", player.Lifespan),
		zap.String("realm", player.Realm),
		zap.Int("stage", gm.state.CurrentStage()),
		zap.Bool("game_over", gm.state.IsGameOver()))

	if gm.state.IsGameOver() {
		gm.Logger.Info("Playthrough ended",
			zap.String("playthrough_id", gm.state.ID().String()),
			zap.String("result", gm.state.GameResult()),
			zap.Int("events", len(gm.state.history)))
	}

	return true
}

// Advance dismisses the pending result and moves to the next event
func (gm *GameManager) Advance() *types.Event {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	event := gm.selector.Advance()
	if event == nil {
		gm.Logger.Debug("Ignoring advance without a pending result",
			zap.String("playthrough_id", gm.state.ID().String()))
		return nil
	}

	gm.Logger.Info("Next event",
		zap.String("playthrough_id", gm.state.ID().String()),
		zap.String("event_id", event.ID),
		zap.Int("stage", gm.state.CurrentStage()))

	return event
}

// Reset returns to the welcome screen with a fresh player
func (gm *GameManager) Reset() {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	gm.selector.Reset()
	gm.Logger.Info("Playthrough reset",
		zap.String("playthrough_id", gm.state.ID().String()))
}

// Snapshot returns the read-only view of the playthrough
func (gm *GameManager) Snapshot() types.Snapshot {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	return gm.state.Snapshot()
}

// Catalog returns the loaded event catalog
func (gm *GameManager) Catalog() *Catalog {
	return gm.catalog
}
