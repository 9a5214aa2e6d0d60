package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/cultivation-life/internal/types"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	p := s.Player()

	assert.Equal(t, "Nameless Cultivator", p.Name)
	assert.Equal(t, 16, p.Age)
	assert.Equal(t, 100, p.Lifespan)
	assert.Equal(t, "Qi Refining", p.Realm)
	assert.Equal(t, 0, p.RealmLevel)
	assert.Equal(t, 100, p.SpiritualPower)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 50, p.SocialAnxiety)
	assert.Empty(t, p.Disciples)
	assert.NotNil(t, p.Disciples)

	assert.Equal(t, 0, s.CurrentStage())
	assert.Nil(t, s.CurrentEvent())
	assert.Empty(t, s.History())
	assert.False(t, s.IsGameOver())
	assert.False(t, s.ShowResultScreen())
	assert.Nil(t, s.PendingResult())
}

func TestResetRestoresDefaults(t *testing.T) {
	s := NewState()
	firstID := s.ID()

	s.AdvanceAge(200)
	s.ApplyAttributeDelta("cultivation", 40)
	s.JoinSect("Misty Peak Sect")
	s.RecordHistory("tea_house")
	s.StageResult("Sip", types.Effects{"age": 1}, "Warm.")
	s.SetCurrentEvent(DefaultEvent(3))
	s.Terminate("done")

	s.Reset()

	assert.NotEqual(t, firstID, s.ID())
	assert.Equal(t, NewPlayer(), s.Player())
	assert.Equal(t, 0, s.CurrentStage())
	assert.Empty(t, s.History())
	assert.Nil(t, s.CurrentEvent())
	assert.False(t, s.IsGameOver())
	assert.Empty(t, s.GameResult())
	assert.Nil(t, s.PendingResult())
	assert.False(t, s.ShowResultScreen())
}

func TestApplyAttributeDeltaUnknownIsIgnored(t *testing.T) {
	s := NewState()
	before := s.Player()

	s.ApplyAttributeDelta("luck", 99)
	s.ApplyAttributeDelta("name", 1)

	assert.Equal(t, before, s.Player())
	assert.False(t, s.IsGameOver())
}

func TestApplyAttributeDeltaAdds(t *testing.T) {
	s := NewState()

	s.ApplyAttributeDelta("cultivation", 25)
	s.ApplyAttributeDelta("socialAnxiety", -20)
	s.ApplyAttributeDelta("cookingSkill", 3)

	p := s.Player()
	assert.Equal(t, 25, p.Cultivation)
	assert.Equal(t, 30, p.SocialAnxiety)
	assert.Equal(t, 3, p.CookingSkill)
}

func TestRealmLevelIsClamped(t *testing.T) {
	s := NewState()

	deltas := []int{3, 10, -2, -50, 1, 6, 6, -1}
	for _, delta := range deltas {
		s.ApplyAttributeDelta("realmLevel", delta)
		p := s.Player()
		assert.GreaterOrEqual(t, p.RealmLevel, 0)
		assert.LessOrEqual(t, p.RealmLevel, MaxRealmLevel)
		assert.Equal(t, Realms[p.RealmLevel], p.Realm)
	}

	assert.Equal(t, MaxRealmLevel-1, s.Player().RealmLevel)
	assert.Equal(t, "Paid Seclusion", s.Player().Realm)
}

func TestLifespanExhausted(t *testing.T) {
	s := NewState()

	s.ApplyAttributeDelta("lifespan", -150)

	assert.True(t, s.IsGameOver())
	assert.Equal(t, LifespanExhaustedMessage, s.GameResult())
	assert.Equal(t, -50, s.Player().Lifespan)
}

func TestLifespanExactlyZeroEndsGame(t *testing.T) {
	s := NewState()

	s.ApplyAttributeDelta("lifespan", -99)
	assert.False(t, s.IsGameOver())

	s.ApplyAttributeDelta("lifespan", -1)
	assert.True(t, s.IsGameOver())
}

func TestStageThresholds(t *testing.T) {
	tests := []struct {
		age   int
		stage int
	}{
		{0, 0},
		{15, 0},
		{16, 1},
		{29, 1},
		{30, 2},
		{99, 2},
		{100, 3},
		{499, 3},
		{500, 4},
		{999, 4},
		{1000, 5},
		{5000, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.stage, StageForAge(tt.age), "age %d", tt.age)
	}
}

func TestAdvanceAgeRecomputesStage(t *testing.T) {
	s := NewState()
	require.Equal(t, 0, s.CurrentStage())

	s.AdvanceAge(14)

	assert.Equal(t, 30, s.Player().Age)
	assert.Equal(t, 2, s.CurrentStage())
}

func TestStageIsNonDecreasing(t *testing.T) {
	s := NewState()
	previous := s.CurrentStage()

	for _, years := range []int{1, 0, -5, 12, 3, 70, -100, 400, 1, 600} {
		s.AdvanceAge(years)
		assert.GreaterOrEqual(t, s.CurrentStage(), previous)
		assert.Equal(t, StageForAge(s.Player().Age), s.CurrentStage())
		previous = s.CurrentStage()
	}
}

func TestAgeDeltaRoutesToAdvanceAge(t *testing.T) {
	s := NewState()

	s.ApplyAttributeDelta("age", 84)

	assert.Equal(t, 100, s.Player().Age)
	assert.Equal(t, 3, s.CurrentStage())
}

func TestNegativeAgeIsIgnored(t *testing.T) {
	s := NewState()

	s.AdvanceAge(-10)

	assert.Equal(t, 16, s.Player().Age)
}

func TestRecordHistory(t *testing.T) {
	s := NewState()
	s.AdvanceAge(20)

	s.RecordHistory("tea_house")

	history := s.History()
	require.Len(t, history, 1)
	assert.Equal(t, types.HistoryRecord{EventID: "tea_house", Age: 36, Stage: 2}, history[0])
	assert.True(t, s.HasSeen("tea_house"))
	assert.False(t, s.HasSeen("misty_peak"))

	// The copy is detached from the state
	history[0].EventID = "changed"
	assert.True(t, s.HasSeen("tea_house"))
}

func TestStageResultOverwrites(t *testing.T) {
	s := NewState()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	effects := types.Effects{"cultivation": 5}
	s.StageResult("first", effects, "one")
	firstID := s.PendingResult().ID
	s.StageResult("second", nil, "two")

	result := s.PendingResult()
	require.NotNil(t, result)
	assert.NotEqual(t, firstID, result.ID)
	assert.Equal(t, "second", result.ChoiceText)
	assert.Equal(t, "two", result.ResultText)
	assert.Empty(t, result.Effects)
	assert.Equal(t, fixed, result.Timestamp)
	assert.True(t, s.ShowResultScreen())

	s.ClearResult()
	assert.False(t, s.ShowResultScreen())
	assert.NotNil(t, s.PendingResult())
}

func TestStageResultCopiesEffects(t *testing.T) {
	s := NewState()
	effects := types.Effects{"cultivation": 5}

	s.StageResult("first", effects, "one")
	effects["cultivation"] = 500

	assert.Equal(t, 5, s.PendingResult().Effects["cultivation"])
}

func TestTerminateIsIdempotent(t *testing.T) {
	s := NewState()

	s.Terminate("first ending")
	s.Terminate("second ending")

	assert.True(t, s.IsGameOver())
	assert.Equal(t, "second ending", s.GameResult())

	s.Terminate("")
	assert.True(t, s.IsGameOver())
	assert.Equal(t, DefaultGameResult, s.GameResult())
}

func TestSnapshotIsDetached(t *testing.T) {
	s := NewState()
	s.StageResult("Sip", types.Effects{"health": 1}, "Warm.")
	s.RecordHistory("tea_house")

	snap := s.Snapshot()
	snap.Player.Disciples = append(snap.Player.Disciples, "Little Wu")
	snap.PendingResult.Effects["health"] = 100
	snap.History[0].EventID = "changed"

	assert.Empty(t, s.Player().Disciples)
	assert.Equal(t, 1, s.PendingResult().Effects["health"])
	assert.True(t, s.HasSeen("tea_house"))

	assert.Equal(t, "Mortal Youth", snap.StageName)
	assert.Len(t, snap.StageNames, StageCount)
	assert.False(t, snap.Started())
}
