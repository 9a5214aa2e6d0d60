package game

import (
	"github.com/google/uuid"
	"github.com/user/cultivation-life/internal/interfaces"
	"github.com/user/cultivation-life/internal/types"
	"go.uber.org/zap"
)

// DecisionEngine picks choices for automatic play
type DecisionEngine struct {
	rng RandomSource
}

// NewDecisionEngine creates a new decision engine
func NewDecisionEngine(rng RandomSource) *DecisionEngine {
	return &DecisionEngine{
		rng: rng,
	}
}

// ChooseChoice scores every choice of the event for the player and returns the
// index of the best one, or -1 if the event has no choices.
func (de *DecisionEngine) ChooseChoice(event *types.Event, player types.Player) int {
	if event == nil || len(event.Choices) == 0 {
		return -1
	}

	best := -1
	bestScore := 0
	for i, choice := range event.Choices {
		score := de.score(choice, player)

		// Endings are a last resort while anything else is on offer
		if choice.Ending != "" && len(event.Choices) > 1 {
			score -= 500
		}

		// Add some randomness
		score += roll(de.rng, 10)

		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}

	return best
}

func (de *DecisionEngine) score(choice types.Choice, player types.Player) int {
	score := 0
	for key, delta := range choice.Effects {
		switch key {
		case "lifespan":
			if player.Lifespan+delta <= 0 {
				score -= 1000
			}
			score += delta * 2
		case "realmLevel":
			score += delta * 50
		case "cultivation":
			score += delta / 5
		case "health", "spiritualPower":
			score += delta / 2
		case AgeAttribute:
		default:
			score += delta / 10
		}
	}
	return score
}

// PlaySummary describes a finished autopilot playthrough
type PlaySummary struct {
	PlaythroughID uuid.UUID `json:"playthrough_id"`
	Turns         int       `json:"turns"`
	Ended         bool      `json:"ended"`
	Ending        string    `json:"ending,omitempty"`
	FinalAge      int       `json:"final_age"`
	FinalRealm    string    `json:"final_realm"`
	Events        []string  `json:"events"`
}

// AutoPilot plays whole playthroughs through the command surface
type AutoPilot struct {
	game     interfaces.Game
	engine   *DecisionEngine
	maxTurns int
	Logger   *zap.Logger
}

// NewAutoPilot creates an autopilot that gives up after maxTurns choices
func NewAutoPilot(game interfaces.Game, rng RandomSource, maxTurns int) *AutoPilot {
	return &AutoPilot{
		game:     game,
		engine:   NewDecisionEngine(rng),
		maxTurns: maxTurns,
		Logger:   zap.NewNop(),
	}
}

// Play starts a new playthrough and makes choices until it ends or the turn
// limit is reached.
func (ap *AutoPilot) Play() PlaySummary {
	ap.game.Begin()

	turns := 0
	for turns < ap.maxTurns {
		snap := ap.game.Snapshot()
		if snap.IsGameOver {
			break
		}
		if snap.ShowResultScreen {
			ap.game.Advance()
			continue
		}

		choice := ap.engine.ChooseChoice(snap.CurrentEvent, snap.Player)
		if !ap.game.Choose(choice) {
			ap.Logger.Warn("Autopilot choice was ignored",
				zap.String("playthrough_id", snap.ID.String()),
				zap.Int("choice_index", choice))
			break
		}
		turns++
	}

	final := ap.game.Snapshot()
	summary := PlaySummary{
		PlaythroughID: final.ID,
		Turns:         turns,
		Ended:         final.IsGameOver,
		Ending:        final.GameResult,
		FinalAge:      final.Player.Age,
		FinalRealm:    final.Player.Realm,
		Events:        make([]string, 0, len(final.History)),
	}
	for _, record := range final.History {
		summary.Events = append(summary.Events, record.EventID)
	}

	ap.Logger.Info("Autopilot playthrough finished",
		zap.String("playthrough_id", final.ID.String()),
		zap.Int("turns", turns),
		zap.Bool("ended", final.IsGameOver),
		zap.Int("final_age", final.Player.Age),
		zap.String("final_realm", final.Player.Realm))

	return summary
}
