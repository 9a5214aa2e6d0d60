package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/user/cultivation-life/internal/types"
)

// State is the mutable record of a single playthrough.
//
// State is not safe for concurrent use. It is owned by whoever composes the
// application (see GameManager) and mutated only through the EventSelector.
type State struct {
	id               uuid.UUID
	player           types.Player
	currentStage     int
	history          []types.HistoryRecord
	currentEvent     *types.Event
	isGameOver       bool
	gameResult       string
	pendingResult    *types.ChoiceResult
	showResultScreen bool

	now func() time.Time
}

// NewState creates a state initialized to the starting defaults
func NewState() *State {
	s := &State{now: time.Now}
	s.Reset()
	return s
}

// Reset reinitializes the player, stage, history, event and flags
func (s *State) Reset() {
	s.id = uuid.New()
	s.player = NewPlayer()
	s.currentStage = 0
	s.history = make([]types.HistoryRecord, 0)
	s.currentEvent = nil
	s.isGameOver = false
	s.gameResult = ""
	s.pendingResult = nil
	s.showResultScreen = false
}

// ApplyAttributeDelta adds delta to the named attribute. Unknown names are
// ignored. Lifespan at or below zero ends the game; realm level is clamped
// and the realm label resynced.
func (s *State) ApplyAttributeDelta(name string, delta int) {
	if name == AgeAttribute {
		s.AdvanceAge(delta)
		return
	}

	field, ok := attributes[name]
	if !ok {
		return
	}
	*field(&s.player) += delta

	switch name {
	case "lifespan":
		if s.player.Lifespan <= 0 {
			s.Terminate(LifespanExhaustedMessage)
		}
	case "realmLevel":
		s.player.RealmLevel = max(0, min(MaxRealmLevel, s.player.RealmLevel))
		s.player.Realm = Realms[s.player.RealmLevel]
	}
}

// AdvanceAge adds years to the player's age and recomputes the life stage.
// Negative values are ignored since age never decreases.
func (s *State) AdvanceAge(years int) {
	if years < 0 {
		return
	}
	s.player.Age += years
	s.currentStage = StageForAge(s.player.Age)
}

// RecordHistory appends an immutable history record for the event
func (s *State) RecordHistory(eventID string) {
	s.history = append(s.history, types.HistoryRecord{
		EventID: eventID,
		Age:     s.player.Age,
		Stage:   s.currentStage,
	})
}

// HasSeen reports whether the event id appears anywhere in history
func (s *State) HasSeen(eventID string) bool {
	for _, record := range s.history {
		if record.EventID == eventID {
			return true
		}
	}
	return false
}

// StageResult stores the pending choice result, replacing any previous one,
// and raises the result screen flag.
func (s *State) StageResult(choiceText string, effects types.Effects, resultText string) {
	if effects == nil {
		effects = types.Effects{}
	}
	s.pendingResult = &types.ChoiceResult{
		ID:         uuid.New(),
		ChoiceText: choiceText,
		Effects:    effects.Clone(),
		ResultText: resultText,
		Timestamp:  s.now(),
	}
	s.showResultScreen = true
}

// ClearResult lowers the result screen flag
func (s *State) ClearResult() {
	s.showResultScreen = false
}

// Terminate ends the game. Calling it again only replaces the narrative.
func (s *State) Terminate(narrative string) {
	if narrative == "" {
		narrative = DefaultGameResult
	}
	s.isGameOver = true
	s.gameResult = narrative
}

// SetCurrentEvent installs the event the player is now facing
func (s *State) SetCurrentEvent(event *types.Event) {
	s.currentEvent = event
}

// JoinSect records the player's sect membership
func (s *State) JoinSect(sect string) {
	s.player.Sect = sect
}

// ID returns the playthrough id
func (s *State) ID() uuid.UUID { return s.id }

// Player returns a copy of the player
func (s *State) Player() types.Player { return s.player.Clone() }

// CurrentStage returns the current life stage
func (s *State) CurrentStage() int { return s.currentStage }

// CurrentEvent returns the event currently shown, or nil before the game starts
func (s *State) CurrentEvent() *types.Event { return s.currentEvent }

// IsGameOver reports whether the playthrough has ended
func (s *State) IsGameOver() bool { return s.isGameOver }

// GameResult returns the ending narrative
func (s *State) GameResult() string { return s.gameResult }

// PendingResult returns the last staged choice result
func (s *State) PendingResult() *types.ChoiceResult { return s.pendingResult }

// ShowResultScreen reports whether the pending result should be displayed
func (s *State) ShowResultScreen() bool { return s.showResultScreen }

// History returns a copy of the history records
func (s *State) History() []types.HistoryRecord {
	return append([]types.HistoryRecord{}, s.history...)
}

// Snapshot builds the read-only view used by renderers
func (s *State) Snapshot() types.Snapshot {
	snap := types.Snapshot{
		ID:               s.id,
		Player:           s.Player(),
		CurrentStage:     s.currentStage,
		StageName:        StageNames[s.currentStage],
		StageNames:       StageNameList(),
		CurrentEvent:     s.currentEvent,
		IsGameOver:       s.isGameOver,
		GameResult:       s.gameResult,
		ShowResultScreen: s.showResultScreen,
		History:          s.History(),
	}
	if s.pendingResult != nil {
		result := *s.pendingResult
		result.Effects = result.Effects.Clone()
		snap.PendingResult = &result
	}
	return snap
}
