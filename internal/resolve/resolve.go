// Package resolve matches a noun phrase against the entities the player can
// currently refer to: objects in the room, carried objects, and characters
// in the room — in that order of precedence.
package resolve

import (
	"strings"

	"github.com/gladewood/gladewood/internal/world"
)

// Kind tells what a noun resolved to.
type Kind int

const (
	KindObject Kind = iota
	KindCharacter
)

// Target is a resolved noun: exactly one of Object or Character is set,
// along with its identifier.
type Target struct {
	Kind      Kind
	ID        string
	Object    *world.Object
	Character *world.Character
}

// Matches reports whether a noun refers to a display name. It succeeds on
// exact equality, on the noun being a substring of the name, or on the noun
// equaling any single word of the name — all case-insensitive. This lets
// "sword" find "rusty sword" while "rusty sword" still matches exactly.
func Matches(name, noun string) bool {
	name = strings.ToLower(name)
	noun = strings.ToLower(noun)
	if name == noun {
		return true
	}
	if strings.Contains(name, noun) {
		return true
	}
	for _, word := range strings.Fields(name) {
		if word == noun {
			return true
		}
	}
	return false
}

// Resolve finds the entity a noun refers to. Room objects are searched
// before inventory objects, and both before room characters, so on a name
// collision the object wins.
func Resolve(noun string, w *world.World) (Target, bool) {
	room := w.CurrentRoom()
	if room == nil || noun == "" {
		return Target{}, false
	}
	for _, id := range room.Objects {
		if obj := w.Objects[id]; obj != nil && Matches(obj.Name, noun) {
			return Target{Kind: KindObject, ID: id, Object: obj}, true
		}
	}
	for _, id := range w.Player.Inventory {
		if obj := w.Objects[id]; obj != nil && Matches(obj.Name, noun) {
			return Target{Kind: KindObject, ID: id, Object: obj}, true
		}
	}
	for _, id := range room.Characters {
		if ch := w.Characters[id]; ch != nil && Matches(ch.Name, noun) {
			return Target{Kind: KindCharacter, ID: id, Character: ch}, true
		}
	}
	return Target{}, false
}

// FindInInventory resolves a noun against carried objects only. Drop-style
// commands use it so a room object with a colliding name is never dropped
// by mistake.
func FindInInventory(noun string, w *world.World) (Target, bool) {
	if noun == "" {
		return Target{}, false
	}
	for _, id := range w.Player.Inventory {
		if obj := w.Objects[id]; obj != nil && Matches(obj.Name, noun) {
			return Target{Kind: KindObject, ID: id, Object: obj}, true
		}
	}
	return Target{}, false
}
