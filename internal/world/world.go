package world

// LocationInventory is the sentinel value of Object.Location for objects
// held by the player.
const LocationInventory = "inventory"

// Step kinds.
const (
	StepNarration = "narration"
	StepDialogue  = "dialogue"
)

// World is the complete game state for one session. It is loaded once from a
// YAML document as an immutable template and deep-copied (Clone) per session,
// so restarting always starts from a pristine world.
type World struct {
	Player     Player                `yaml:"player"`
	Flags      map[string]bool       `yaml:"flags"`
	Rooms      map[string]*Room      `yaml:"rooms"`
	Characters map[string]*Character `yaml:"characters"`
	Objects    map[string]*Object    `yaml:"objects"`
	Vocabulary Vocabulary            `yaml:"vocabulary"`
	Events     map[string]*Event     `yaml:"events"`
}

// Player tracks where the player is and what they carry. Inventory preserves
// take order and never contains duplicates.
type Player struct {
	Location  string   `yaml:"location"`
	Inventory []string `yaml:"inventory,omitempty"`
}

// Room is a location in the world.
type Room struct {
	Name           string            `yaml:"name"`
	Description    string            `yaml:"description"`
	FirstVisitText string            `yaml:"first_visit_text,omitempty"`
	Exits          map[string]string `yaml:"exits,omitempty"` // direction -> room id
	Objects        []string          `yaml:"objects,omitempty"`
	Characters     []string          `yaml:"characters,omitempty"`
	TriggersEvent  string            `yaml:"triggers_event,omitempty"`

	// FirstVisit is true until the room has been displayed once on arrival.
	// It is session state, not document data; Load sets it.
	FirstVisit bool `yaml:"-"`
}

// Object is an item the player may examine, and possibly take.
type Object struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	OnExamine   string `yaml:"on_examine,omitempty"`
	OnTake      string `yaml:"on_take,omitempty"`
	CanTake     bool   `yaml:"can_take"`

	// Location is a room id, or LocationInventory when carried.
	Location string `yaml:"location"`
}

// Character is someone the player can talk to. Dialogue is keyed by context
// ("default", "party", ...); Language tags a constructed in-world language
// the presentation layer may style or cue audio for.
type Character struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Dialogue    map[string]string `yaml:"dialogue,omitempty"`
	Language    string            `yaml:"language,omitempty"`
}

// Vocabulary is the static word lists the parser works from. It is read-only
// and shared by all sessions.
type Vocabulary struct {
	Articles     []string            `yaml:"articles"`
	Prepositions []string            `yaml:"prepositions"`
	Verbs        map[string][]string `yaml:"verbs"` // verb key -> synonyms
}

// Event is a scripted narrative sequence. On completion its Sets flags are
// applied and the first Followup whose When conditions hold is scheduled.
type Event struct {
	Steps []Step          `yaml:"steps"`
	Sets  map[string]bool `yaml:"sets,omitempty"`
	Next  []Followup      `yaml:"next,omitempty"`
}

// Followup links an event to the next one in a chain, gated on flag values.
type Followup struct {
	Event string          `yaml:"event"`
	When  map[string]bool `yaml:"when,omitempty"` // flag name -> required value
}

// Step is one beat of an event: narration text, or a line of dialogue
// spoken by a character.
type Step struct {
	Kind      string `yaml:"kind"`
	Text      string `yaml:"text"`
	Character string `yaml:"character,omitempty"`
	Language  string `yaml:"language,omitempty"`
}

// CurrentRoom returns the room the player is in, or nil if the player
// location is dangling.
func (w *World) CurrentRoom() *Room {
	return w.Rooms[w.Player.Location]
}

// Flag reports the value of a named flag; unset flags read false.
func (w *World) Flag(name string) bool {
	return w.Flags[name]
}

// SetFlag flips a named flag. Flags are never removed for the life of a
// session.
func (w *World) SetFlag(name string, value bool) {
	if w.Flags == nil {
		w.Flags = make(map[string]bool)
	}
	w.Flags[name] = value
}

// Carrying reports whether the player holds the given object.
func (w *World) Carrying(objectID string) bool {
	for _, id := range w.Player.Inventory {
		if id == objectID {
			return true
		}
	}
	return false
}

// MoveToInventory places an object into the player's inventory, removing it
// from whichever room listed it. It is one of the two mutation paths that
// keep Object.Location and the containing lists in agreement.
func (w *World) MoveToInventory(objectID string) {
	obj := w.Objects[objectID]
	if obj == nil {
		return
	}
	if room := w.Rooms[obj.Location]; room != nil {
		room.Objects = removeID(room.Objects, objectID)
	}
	if !w.Carrying(objectID) {
		w.Player.Inventory = append(w.Player.Inventory, objectID)
	}
	obj.Location = LocationInventory
}

// MoveToRoom places an object into a room, removing it from the inventory
// and from any room that listed it.
func (w *World) MoveToRoom(objectID, roomID string) {
	obj := w.Objects[objectID]
	room := w.Rooms[roomID]
	if obj == nil || room == nil {
		return
	}
	w.Player.Inventory = removeID(w.Player.Inventory, objectID)
	if prev := w.Rooms[obj.Location]; prev != nil {
		prev.Objects = removeID(prev.Objects, objectID)
	}
	if !containsID(room.Objects, objectID) {
		room.Objects = append(room.Objects, objectID)
	}
	obj.Location = roomID
}

// Clone returns a deep copy of the world. Mutating the copy never affects
// the receiver, so a loaded template can back any number of sessions.
func (w *World) Clone() *World {
	c := &World{
		Player: Player{
			Location:  w.Player.Location,
			Inventory: append([]string(nil), w.Player.Inventory...),
		},
		Flags:      copyBoolMap(w.Flags),
		Rooms:      make(map[string]*Room, len(w.Rooms)),
		Characters: make(map[string]*Character, len(w.Characters)),
		Objects:    make(map[string]*Object, len(w.Objects)),
		Vocabulary: w.Vocabulary.clone(),
		Events:     make(map[string]*Event, len(w.Events)),
	}
	for id, r := range w.Rooms {
		rc := *r
		rc.Exits = copyStringMap(r.Exits)
		rc.Objects = append([]string(nil), r.Objects...)
		rc.Characters = append([]string(nil), r.Characters...)
		c.Rooms[id] = &rc
	}
	for id, ch := range w.Characters {
		cc := *ch
		cc.Dialogue = copyStringMap(ch.Dialogue)
		c.Characters[id] = &cc
	}
	for id, o := range w.Objects {
		oc := *o
		c.Objects[id] = &oc
	}
	for id, e := range w.Events {
		ec := Event{
			Steps: append([]Step(nil), e.Steps...),
			Sets:  copyBoolMap(e.Sets),
		}
		for _, f := range e.Next {
			ec.Next = append(ec.Next, Followup{Event: f.Event, When: copyBoolMap(f.When)})
		}
		c.Events[id] = &ec
	}
	return c
}

func (v Vocabulary) clone() Vocabulary {
	c := Vocabulary{
		Articles:     append([]string(nil), v.Articles...),
		Prepositions: append([]string(nil), v.Prepositions...),
	}
	if v.Verbs != nil {
		c.Verbs = make(map[string][]string, len(v.Verbs))
		for k, syns := range v.Verbs {
			c.Verbs[k] = append([]string(nil), syns...)
		}
	}
	return c
}

func copyStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func copyBoolMap(m map[string]bool) map[string]bool {
	if m == nil {
		return nil
	}
	c := make(map[string]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
