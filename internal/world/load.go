package world

import (
	"io"
	"log"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load parses a world document and normalizes it into a playable template.
// Structural problems that would make the session unstartable (no rooms, a
// dangling player location) are errors; dangling content references are
// logged and left for the engine to skip at runtime, since authoring
// mistakes must not take down a session.
func Load(data []byte, logger *log.Logger) (*World, error) {
	var w World
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(err, "parsing world document")
	}
	if err := w.normalize(logger); err != nil {
		return nil, err
	}
	return &w, nil
}

func (w *World) normalize(logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if len(w.Rooms) == 0 {
		return errors.New("world document defines no rooms")
	}
	if w.Rooms[w.Player.Location] == nil {
		return errors.Errorf("player starts in unknown room %q", w.Player.Location)
	}
	if w.Flags == nil {
		w.Flags = make(map[string]bool)
	}
	if w.Objects == nil {
		w.Objects = make(map[string]*Object)
	}
	if w.Characters == nil {
		w.Characters = make(map[string]*Character)
	}
	if w.Events == nil {
		w.Events = make(map[string]*Event)
	}

	// Room lists are authoritative for object placement; reconcile the
	// per-object location field with them so the containment invariant
	// holds from the first turn.
	for roomID, room := range w.Rooms {
		room.FirstVisit = true
		for dir, target := range room.Exits {
			if w.Rooms[target] == nil {
				logger.Printf("world: room %q exit %q points at unknown room %q", roomID, dir, target)
			}
		}
		for _, id := range room.Objects {
			obj := w.Objects[id]
			if obj == nil {
				logger.Printf("world: room %q lists unknown object %q", roomID, id)
				continue
			}
			obj.Location = roomID
		}
		for _, id := range room.Characters {
			if w.Characters[id] == nil {
				logger.Printf("world: room %q lists unknown character %q", roomID, id)
			}
		}
		if room.TriggersEvent != "" && w.Events[room.TriggersEvent] == nil {
			logger.Printf("world: room %q triggers unknown event %q", roomID, room.TriggersEvent)
		}
	}
	for _, id := range w.Player.Inventory {
		obj := w.Objects[id]
		if obj == nil {
			logger.Printf("world: initial inventory lists unknown object %q", id)
			continue
		}
		obj.Location = LocationInventory
	}
	for name, ev := range w.Events {
		for i, step := range ev.Steps {
			if step.Kind == StepDialogue && w.Characters[step.Character] == nil {
				logger.Printf("world: event %q step %d names unknown character %q", name, i, step.Character)
			}
		}
		for _, f := range ev.Next {
			if w.Events[f.Event] == nil {
				logger.Printf("world: event %q chains to unknown event %q", name, f.Event)
			}
		}
	}
	return nil
}

// OrderedVerbs returns the verb keys in a fixed order, so that parsing is
// deterministic even though the document stores verbs in a map.
func (v Vocabulary) OrderedVerbs() []string {
	keys := make([]string, 0, len(v.Verbs))
	for k := range v.Verbs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
