package textcmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/user/cultivation-life/internal/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var attributeLabels = map[string]string{
	"age":             "Age",
	"lifespan":        "Lifespan",
	"realmLevel":      "Realm",
	"cultivation":     "Cultivation",
	"spiritualPower":  "Spiritual Power",
	"health":          "Health",
	"socialAnxiety":   "Social Anxiety",
	"fishingSkill":    "Slacking Skill",
	"versaillesIndex": "Humblebrag Index",
	"salaryFish":      "Salted Fish",
	"cookingSkill":    "Culinary Dao",
}

// AttributeLabel returns the display label for an attribute key. Keys without
// a label are title-cased as they are.
func AttributeLabel(key string) string {
	if label, ok := attributeLabels[key]; ok {
		return label
	}
	// Casers keep state, so each call gets its own
	return cases.Title(language.English).String(key)
}

// MessageFormatter formats game screens as chat-style text
type MessageFormatter struct{}

// NewMessageFormatter creates a new message formatter
func NewMessageFormatter() *MessageFormatter {
	return &MessageFormatter{}
}

// FormatWelcome formats the screen shown before a playthrough starts
func (mf *MessageFormatter) FormatWelcome() string {
	message := "*CULTIVATION LIFE*\n\n"
	message += "A mortal life, a sect, a thousand years of slacking off.\n\n"
	message += "Type */start* to begin your path."
	return message
}

// FormatEvent formats an event and its choices
func (mf *MessageFormatter) FormatEvent(event *types.Event, snap types.Snapshot) string {
	if event == nil {
		return mf.FormatWelcome()
	}

	message := fmt.Sprintf("*%s*\n", event.Title)
	message += fmt.Sprintf("Age %d | %s | %s\n\n", snap.Player.Age, snap.StageName, snap.Player.Realm)
	message += event.Description + "\n\n"

	for i, choice := range event.Choices {
		message += fmt.Sprintf("/%c %s\n", 'a'+i, choice.Text)
	}
	return strings.TrimRight(message, "\n")
}

// FormatResult formats the result screen of the last choice
func (mf *MessageFormatter) FormatResult(result *types.ChoiceResult) string {
	if result == nil {
		return ""
	}

	message := fmt.Sprintf("You chose: %s\n\n", result.ChoiceText)
	if result.ResultText != "" {
		message += result.ResultText + "\n\n"
	}
	if changes := mf.FormatEffects(result.Effects); changes != "" {
		message += changes + "\n\n"
	}
	message += "Type */continue* to go on."
	return message
}

// FormatEffects lists attribute changes in key order, one per line
func (mf *MessageFormatter) FormatEffects(effects types.Effects) string {
	lines := make([]string, 0, len(effects))
	for _, key := range slices.Sorted(maps.Keys(effects)) {
		lines = append(lines, fmt.Sprintf("• %s: %+d", AttributeLabel(key), effects[key]))
	}
	return strings.Join(lines, "\n")
}

// FormatStatus formats the player sheet
func (mf *MessageFormatter) FormatStatus(snap types.Snapshot) string {
	p := snap.Player

	message := fmt.Sprintf("*%s*\n\n", p.Name)
	message += fmt.Sprintf("Age: %d / %d\n", p.Age, p.Lifespan)
	message += fmt.Sprintf("Stage: %s\n", snap.StageName)
	message += fmt.Sprintf("Realm: %s\n", p.Realm)
	if p.Sect != "" {
		message += fmt.Sprintf("Sect: %s\n", p.Sect)
	}
	message += "\n"
	message += fmt.Sprintf("%s: %d\n", AttributeLabel("cultivation"), p.Cultivation)
	message += fmt.Sprintf("%s: %d\n", AttributeLabel("spiritualPower"), p.SpiritualPower)
	message += fmt.Sprintf("%s: %d\n", AttributeLabel("health"), p.Health)
	message += fmt.Sprintf("%s: %d\n", AttributeLabel("socialAnxiety"), p.SocialAnxiety)
	message += fmt.Sprintf("%s: %d\n", AttributeLabel("fishingSkill"), p.FishingSkill)
	message += fmt.Sprintf("%s: %d\n", AttributeLabel("versaillesIndex"), p.VersaillesIndex)
	message += fmt.Sprintf("%s: %d\n", AttributeLabel("salaryFish"), p.SalaryFish)
	message += fmt.Sprintf("%s: %d", AttributeLabel("cookingSkill"), p.CookingSkill)
	return message
}

// FormatHistory lists the answered events, oldest first
func (mf *MessageFormatter) FormatHistory(snap types.Snapshot) string {
	if len(snap.History) == 0 {
		return "Nothing has happened to you yet."
	}

	message := "*YOUR PATH SO FAR*\n"
	for i, record := range snap.History {
		name := record.EventID
		if record.Stage >= 0 && record.Stage < len(snap.StageNames) {
			name = fmt.Sprintf("%s (%s)", record.EventID, snap.StageNames[record.Stage])
		}
		message += fmt.Sprintf("\n%d. age %d, %s", i+1, record.Age, name)
	}
	return message
}

// FormatEnding formats the game-over screen
func (mf *MessageFormatter) FormatEnding(snap types.Snapshot) string {
	message := "*GAME OVER*\n\n"
	if snap.PendingResult != nil {
		message += fmt.Sprintf("You chose: %s\n\n", snap.PendingResult.ChoiceText)
	}
	message += snap.GameResult + "\n\n"
	message += fmt.Sprintf("Final age: %d\nFinal realm: %s\n\n", snap.Player.Age, snap.Player.Realm)
	message += "Type */restart* to be reborn."
	return message
}

// FormatHelp lists the available commands
func (mf *MessageFormatter) FormatHelp() string {
	message := "*COMMANDS*\n\n"
	message += "*/start* - begin a new life\n"
	message += "*/a* ... */i* or */1* ... */9* - pick a choice\n"
	message += "*/continue* - leave the result screen\n"
	message += "*/status* - show your cultivator\n"
	message += "*/history* - list what happened so far\n"
	message += "*/restart* - go back to the welcome screen\n"
	message += "*/help* - show this message"
	return message
}
