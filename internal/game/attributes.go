package game

import (
	"sort"

	"github.com/user/cultivation-life/internal/types"
)

// AgeAttribute is the effect key routed through age advancement
const AgeAttribute = "age"

// attributes maps effect keys to the numeric player field they modify.
// Keys missing from this table are ignored when effects are applied.
var attributes = map[string]func(p *types.Player) *int{
	"age":             func(p *types.Player) *int { return &p.Age },
	"lifespan":        func(p *types.Player) *int { return &p.Lifespan },
	"realmLevel":      func(p *types.Player) *int { return &p.RealmLevel },
	"cultivation":     func(p *types.Player) *int { return &p.Cultivation },
	"spiritualPower":  func(p *types.Player) *int { return &p.SpiritualPower },
	"health":          func(p *types.Player) *int { return &p.Health },
	"socialAnxiety":   func(p *types.Player) *int { return &p.SocialAnxiety },
	"fishingSkill":    func(p *types.Player) *int { return &p.FishingSkill },
	"versaillesIndex": func(p *types.Player) *int { return &p.VersaillesIndex },
	"salaryFish":      func(p *types.Player) *int { return &p.SalaryFish },
	"cookingSkill":    func(p *types.Player) *int { return &p.CookingSkill },
}

// IsAttribute reports whether name is a known effect key
func IsAttribute(name string) bool {
	_, ok := attributes[name]
	return ok
}

// AttributeNames returns every known effect key in sorted order
func AttributeNames() []string {
	names := make([]string, 0, len(attributes))
	for name := range attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AttributeValue reads a numeric attribute from the player
func AttributeValue(p types.Player, name string) (int, bool) {
	field, ok := attributes[name]
	if !ok {
		return 0, false
	}
	return *field(&p), true
}

// sortedKeys returns the effect keys in a stable order so that effect
// application does not depend on map iteration.
func sortedKeys(effects types.Effects) []string {
	keys := make([]string, 0, len(effects))
	for k := range effects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
