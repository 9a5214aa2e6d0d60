package game

import "github.com/user/cultivation-life/internal/types"

// EvaluateCondition checks every set key of the condition against the player.
// A nil condition always passes.
func EvaluateCondition(cond *types.Condition, player types.Player) bool {
	if cond == nil {
		return true
	}

	if cond.MinAge != nil && player.Age < *cond.MinAge {
		return false
	}

	if cond.MaxAge != nil && player.Age > *cond.MaxAge {
		return false
	}

	if cond.Sect != nil && player.Sect != *cond.Sect {
		return false
	}

	if cond.MinRealm != nil && player.RealmLevel < *cond.MinRealm {
		return false
	}

	if cond.MinFishingSkill != nil && player.FishingSkill < *cond.MinFishingSkill {
		return false
	}

	return true
}
