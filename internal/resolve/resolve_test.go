package resolve

import (
	"testing"

	"github.com/gladewood/gladewood/internal/world"
)

func testWorld() *world.World {
	return &world.World{
		Player: world.Player{
			Location:  "cave",
			Inventory: []string{"torch"},
		},
		Rooms: map[string]*world.Room{
			"cave": {
				Name:       "Cave",
				Objects:    []string{"sword", "echo-stone"},
				Characters: []string{"guard", "echo"},
			},
		},
		Objects: map[string]*world.Object{
			"sword":      {Name: "rusty sword", Location: "cave"},
			"echo-stone": {Name: "echo stone", Location: "cave"},
			"torch":      {Name: "burning torch", Location: world.LocationInventory},
		},
		Characters: map[string]*world.Character{
			"guard": {Name: "sleepy guard"},
			"echo":  {Name: "echo"},
		},
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name, noun string
		want       bool
	}{
		{"rusty sword", "rusty sword", true}, // exact
		{"Rusty Sword", "rusty sword", true}, // case-insensitive
		{"rusty sword", "rust", true},        // substring
		{"rusty sword", "sword", true},       // single word
		{"rusty sword", "shield", false},
		{"rusty sword", "sword rusty", false},
	}
	for _, tt := range tests {
		if got := Matches(tt.name, tt.noun); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.name, tt.noun, got, tt.want)
		}
	}
}

func TestResolveOrder(t *testing.T) {
	w := testWorld()

	// Room object beats room character on a name collision.
	target, ok := Resolve("echo", w)
	if !ok {
		t.Fatal("Resolve(echo) found nothing")
	}
	if target.Kind != KindObject || target.ID != "echo-stone" {
		t.Errorf("Resolve(echo) = kind %v id %q, want object echo-stone", target.Kind, target.ID)
	}

	// Inventory objects are searched before room characters.
	target, ok = Resolve("torch", w)
	if !ok || target.Kind != KindObject || target.ID != "torch" {
		t.Errorf("Resolve(torch) = %+v ok=%v, want inventory torch", target, ok)
	}

	// Characters are still reachable when nothing shadows them.
	target, ok = Resolve("guard", w)
	if !ok || target.Kind != KindCharacter || target.ID != "guard" {
		t.Errorf("Resolve(guard) = %+v ok=%v, want character guard", target, ok)
	}

	if _, ok := Resolve("dragon", w); ok {
		t.Error("Resolve(dragon) found something in a dragonless cave")
	}
	if _, ok := Resolve("", w); ok {
		t.Error("Resolve of empty noun found something")
	}
}

func TestFindInInventory(t *testing.T) {
	w := testWorld()

	target, ok := FindInInventory("torch", w)
	if !ok || target.ID != "torch" {
		t.Errorf("FindInInventory(torch) = %+v ok=%v, want torch", target, ok)
	}

	// Room objects are invisible here, so a colliding room name can never
	// be dropped by mistake.
	if _, ok := FindInInventory("sword", w); ok {
		t.Error("FindInInventory(sword) found a room object")
	}
}
