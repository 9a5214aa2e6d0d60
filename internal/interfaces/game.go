package interfaces

import "github.com/user/cultivation-life/internal/types"

// Game is the command and read surface of a playthrough. Begin, Choose,
// Advance and Reset are the only ways collaborators may change the game.
type Game interface {
	Begin() *types.Event
	Choose(choiceIndex int) bool
	Advance() *types.Event
	Reset()
	Snapshot() types.Snapshot
}
