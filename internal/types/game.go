package types

import (
	"time"

	"github.com/google/uuid"
)

// Effects maps attribute names to signed deltas. The "age" key is special:
// it advances the player's age instead of being added directly.
type Effects map[string]int

// Clone returns an independent copy of the effects.
func (e Effects) Clone() Effects {
	out := make(Effects, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Condition gates an event on the player's attributes. Every set field must
// hold; unset fields are vacuously satisfied.
type Condition struct {
	MinAge          *int    `json:"minAge,omitempty" yaml:"minAge,omitempty"`
	MaxAge          *int    `json:"maxAge,omitempty" yaml:"maxAge,omitempty"`
	Sect            *string `json:"sect,omitempty" yaml:"sect,omitempty"`
	MinRealm        *int    `json:"minRealm,omitempty" yaml:"minRealm,omitempty"`
	MinFishingSkill *int    `json:"minFishingSkill,omitempty" yaml:"minFishingSkill,omitempty"`
}

// Choice represents an option the player can take in an event
type Choice struct {
	Text     string  `json:"text" yaml:"text"`
	Effects  Effects `json:"effects,omitempty" yaml:"effects,omitempty"`
	Result   string  `json:"result,omitempty" yaml:"result,omitempty"`
	Ending   string  `json:"ending,omitempty" yaml:"ending,omitempty"`
	JoinSect string  `json:"joinSect,omitempty" yaml:"joinSect,omitempty"`
}

// OutcomeKind tells whether a choice keeps the playthrough going or ends it.
type OutcomeKind int

const (
	OutcomeContinue OutcomeKind = iota
	OutcomeEnd
)

func (k OutcomeKind) String() string {
	if k == OutcomeEnd {
		return "end"
	}
	return "continue"
}

// Outcome is the resolved form of a choice. For OutcomeContinue Text is the
// result narrative, for OutcomeEnd it is the ending narrative.
type Outcome struct {
	Kind    OutcomeKind
	Text    string
	Effects Effects
}

// Outcome converts the catalog fields of the choice into its outcome variant.
func (c Choice) Outcome() Outcome {
	if c.Ending != "" {
		return Outcome{Kind: OutcomeEnd, Text: c.Ending, Effects: c.Effects}
	}
	return Outcome{Kind: OutcomeContinue, Text: c.Result, Effects: c.Effects}
}

// Event represents a catalog event presented to the player
type Event struct {
	ID          string     `json:"id" yaml:"id"`
	Stage       int        `json:"stage" yaml:"stage"`
	Condition   *Condition `json:"condition,omitempty" yaml:"condition,omitempty"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Choices     []Choice   `json:"choices" yaml:"choices"`
}

// Player represents the cultivator being played
type Player struct {
	Name            string   `json:"name"`
	Age             int      `json:"age"`
	Lifespan        int      `json:"lifespan"`
	Realm           string   `json:"realm"`
	RealmLevel      int      `json:"realm_level"`
	Cultivation     int      `json:"cultivation"`
	SpiritualPower  int      `json:"spiritual_power"`
	Health          int      `json:"health"`
	SocialAnxiety   int      `json:"social_anxiety"`
	FishingSkill    int      `json:"fishing_skill"`
	VersaillesIndex int      `json:"versailles_index"`
	SalaryFish      int      `json:"salary_fish"`
	CookingSkill    int      `json:"cooking_skill"`
	Sect            string   `json:"sect,omitempty"`
	Master          string   `json:"master,omitempty"`
	Disciples       []string `json:"disciples"`
}

// Clone returns a copy that shares no slices with the original.
func (p Player) Clone() Player {
	p.Disciples = append([]string{}, p.Disciples...)
	return p
}

// HistoryRecord is an append-only entry noting that an event was answered
type HistoryRecord struct {
	EventID string `json:"event_id"`
	Age     int    `json:"age"`
	Stage   int    `json:"stage"`
}

// ChoiceResult is the pending result shown after a choice
type ChoiceResult struct {
	ID         uuid.UUID `json:"id"`
	ChoiceText string    `json:"choice_text"`
	Effects    Effects   `json:"effects"`
	ResultText string    `json:"result_text"`
	Timestamp  time.Time `json:"timestamp"`
}

// Snapshot is the read-only view of a playthrough handed to renderers
type Snapshot struct {
	ID               uuid.UUID       `json:"id"`
	Player           Player          `json:"player"`
	CurrentStage     int             `json:"current_stage"`
	StageName        string          `json:"stage_name"`
	StageNames       []string        `json:"stage_names"`
	CurrentEvent     *Event          `json:"current_event"`
	IsGameOver       bool            `json:"is_game_over"`
	GameResult       string          `json:"game_result,omitempty"`
	ShowResultScreen bool            `json:"show_result_screen"`
	PendingResult    *ChoiceResult   `json:"pending_result,omitempty"`
	History          []HistoryRecord `json:"history"`
}

// Started reports whether the playthrough has left the welcome screen.
func (s Snapshot) Started() bool {
	return s.CurrentEvent != nil
}
