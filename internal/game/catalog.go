package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/user/cultivation-life/internal/types"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is wrapped by every catalog validation failure
var ErrInvalidCatalog = errors.New("invalid event catalog")

// Catalog is the read-only, ordered collection of event definitions
type Catalog struct {
	events []*types.Event
	byID   map[string]*types.Event
}

// NewCatalog wraps events without validating them. Use Validate or
// DataLoader.LoadCatalog for untrusted input.
func NewCatalog(events []*types.Event) *Catalog {
	c := &Catalog{
		events: make([]*types.Event, 0, len(events)),
		byID:   make(map[string]*types.Event, len(events)),
	}
	for _, event := range events {
		if event == nil {
			continue
		}
		c.events = append(c.events, event)
		if _, exists := c.byID[event.ID]; !exists {
			c.byID[event.ID] = event
		}
	}
	return c
}

// Len returns the number of events
func (c *Catalog) Len() int {
	return len(c.events)
}

// Events returns the events in catalog order
func (c *Catalog) Events() []*types.Event {
	return append([]*types.Event{}, c.events...)
}

// ByID looks up an event by id
func (c *Catalog) ByID(id string) (*types.Event, bool) {
	event, ok := c.byID[id]
	return event, ok
}

// Opening returns the opening event, or nil if the catalog has none
func (c *Catalog) Opening() *types.Event {
	event, ok := c.byID[OpeningEventID]
	if !ok {
		return nil
	}
	return event
}

// Eligible returns, in catalog order, the events of the given stage whose
// condition holds for the player. The opening sentinel stage never matches.
func (c *Catalog) Eligible(stage int, player types.Player) []*types.Event {
	if stage == OpeningStage {
		return nil
	}
	var pool []*types.Event
	for _, event := range c.events {
		if event.Stage != stage {
			continue
		}
		if !EvaluateCondition(event.Condition, player) {
			continue
		}
		pool = append(pool, event)
	}
	return pool
}

// Validate reports every structural problem in the catalog. The returned
// error wraps ErrInvalidCatalog.
func (c *Catalog) Validate() error {
	var err error
	seen := make(map[string]bool, len(c.events))
	openings := 0

	for i, event := range c.events {
		where := fmt.Sprintf("event %d (%q)", i, event.ID)

		if strings.TrimSpace(event.ID) == "" {
			err = multierr.Append(err, fmt.Errorf("event %d: missing id", i))
		} else if seen[event.ID] {
			err = multierr.Append(err, fmt.Errorf("%s: duplicate id", where))
		}
		seen[event.ID] = true

		if event.Stage < OpeningStage || event.Stage >= StageCount {
			err = multierr.Append(err, fmt.Errorf("%s: stage %d out of range [%d, %d]", where, event.Stage, OpeningStage, StageCount-1))
		}

		if event.ID == OpeningEventID {
			openings++
			if event.Stage != OpeningStage {
				err = multierr.Append(err, fmt.Errorf("%s: opening event must use stage %d", where, OpeningStage))
			}
		} else if event.Stage == OpeningStage {
			err = multierr.Append(err, fmt.Errorf("%s: stage %d is reserved for %s", where, OpeningStage, OpeningEventID))
		}

		err = multierr.Append(err, validateCondition(where, event.Condition))

		if len(event.Choices) == 0 {
			err = multierr.Append(err, fmt.Errorf("%s: no choices", where))
		}
		for j, choice := range event.Choices {
			err = multierr.Append(err, validateChoice(fmt.Sprintf("%s choice %d", where, j), choice))
		}
	}

	switch {
	case openings == 0:
		err = multierr.Append(err, fmt.Errorf("missing %s", OpeningEventID))
	case openings > 1:
		err = multierr.Append(err, fmt.Errorf("%d events named %s", openings, OpeningEventID))
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return nil
}

func validateCondition(where string, cond *types.Condition) error {
	if cond == nil {
		return nil
	}
	var err error
	if cond.MinAge != nil && cond.MaxAge != nil && *cond.MinAge > *cond.MaxAge {
		err = multierr.Append(err, fmt.Errorf("%s: minAge %d exceeds maxAge %d", where, *cond.MinAge, *cond.MaxAge))
	}
	if cond.MinRealm != nil && (*cond.MinRealm < 0 || *cond.MinRealm > MaxRealmLevel) {
		err = multierr.Append(err, fmt.Errorf("%s: minRealm %d out of range [0, %d]", where, *cond.MinRealm, MaxRealmLevel))
	}
	return err
}

func validateChoice(where string, choice types.Choice) error {
	var err error
	if strings.TrimSpace(choice.Text) == "" {
		err = multierr.Append(err, fmt.Errorf("%s: missing text", where))
	}
	for _, key := range sortedKeys(choice.Effects) {
		if !IsAttribute(key) {
			err = multierr.Append(err, fmt.Errorf("%s: unknown effect %q", where, key))
			continue
		}
		if key == AgeAttribute && choice.Effects[key] < 0 {
			err = multierr.Append(err, fmt.Errorf("%s: age effect %d is negative", where, choice.Effects[key]))
		}
	}
	return err
}

// DataLoader handles loading game data from files
type DataLoader struct {
	basePath string
}

// NewDataLoader creates a new data loader
func NewDataLoader(basePath string) *DataLoader {
	return &DataLoader{
		basePath: basePath,
	}
}

// LoadEvents reads event definitions from a JSON or YAML file. Relative
// paths are resolved against the loader's base path.
func (dl *DataLoader) LoadEvents(name string) ([]*types.Event, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dl.basePath, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}

	var events []*types.Event
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &events)
	case ".json":
		err = json.Unmarshal(data, &events)
	default:
		return nil, fmt.Errorf("unsupported events file format: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse events data: %w", err)
	}

	return events, nil
}

// LoadCatalog loads and validates the event catalog
func (dl *DataLoader) LoadCatalog(name string) (*Catalog, error) {
	events, err := dl.LoadEvents(name)
	if err != nil {
		return nil, err
	}

	catalog := NewCatalog(events)
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}
