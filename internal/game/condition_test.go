package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user/cultivation-life/internal/types"
)

func TestEvaluateCondition(t *testing.T) {
	player := NewPlayer()
	player.Age = 40
	player.RealmLevel = 2
	player.FishingSkill = 15
	player.Sect = "Misty Peak Sect"

	tests := []struct {
		name string
		cond *types.Condition
		want bool
	}{
		{"nil condition", nil, true},
		{"empty condition", &types.Condition{}, true},
		{"min age met", &types.Condition{MinAge: intPtr(40)}, true},
		{"min age failed", &types.Condition{MinAge: intPtr(41)}, false},
		{"max age met", &types.Condition{MaxAge: intPtr(40)}, true},
		{"max age failed", &types.Condition{MaxAge: intPtr(39)}, false},
		{"sect met", &types.Condition{Sect: strPtr("Misty Peak Sect")}, true},
		{"sect failed", &types.Condition{Sect: strPtr("Bargain Lotus Sect")}, false},
		{"min realm met", &types.Condition{MinRealm: intPtr(2)}, true},
		{"min realm failed", &types.Condition{MinRealm: intPtr(3)}, false},
		{"fishing met", &types.Condition{MinFishingSkill: intPtr(15)}, true},
		{"fishing failed", &types.Condition{MinFishingSkill: intPtr(16)}, false},
		{
			"all keys met",
			&types.Condition{
				MinAge:          intPtr(30),
				MaxAge:          intPtr(50),
				Sect:            strPtr("Misty Peak Sect"),
				MinRealm:        intPtr(1),
				MinFishingSkill: intPtr(10),
			},
			true,
		},
		{
			"one key fails",
			&types.Condition{
				MinAge:   intPtr(30),
				MaxAge:   intPtr(50),
				MinRealm: intPtr(5),
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateCondition(tt.cond, player))
		})
	}
}

func TestEvaluateConditionWithoutSect(t *testing.T) {
	assert.False(t, EvaluateCondition(&types.Condition{Sect: strPtr("Misty Peak Sect")}, NewPlayer()))
	assert.True(t, EvaluateCondition(&types.Condition{Sect: strPtr("")}, NewPlayer()))
}
