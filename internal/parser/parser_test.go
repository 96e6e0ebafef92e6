package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gladewood/gladewood/internal/world"
)

func testVocab() world.Vocabulary {
	return world.Vocabulary{
		Articles:     []string{"a", "an", "the"},
		Prepositions: []string{"to", "at", "with"},
		Verbs: map[string][]string{
			"go":        {"go", "walk"},
			"look":      {"look", "examine", "l"},
			"take":      {"take", "get", "grab"},
			"drop":      {"drop"},
			"inventory": {"inventory", "inv", "i"},
			"talk":      {"talk", "speak"},
			"use":       {"use"},
			"help":      {"help"},
		},
	}
}

func TestParse(t *testing.T) {
	v := testVocab()

	tests := []struct {
		name string
		raw  string
		want Command
	}{
		{"verb and noun", "take sword", Command{Verb: "take", Noun: "sword"}},
		{"articles dropped", "take the sword", Command{Verb: "take", Noun: "sword"}},
		{"prepositions dropped from noun", "talk to the elder", Command{Verb: "talk", Noun: "elder"}},
		{"bare verb", "look", Command{Verb: "look"}},
		{"multi-word noun", "take the rusty sword", Command{Verb: "take", Noun: "rusty sword"}},
		{"case folded", "TAKE Sword", Command{Verb: "take", Noun: "sword"}},
		{"synonym maps to key", "grab sword", Command{Verb: "take", Noun: "sword"}},
		{"go with direction", "go north", Command{Verb: "go", Noun: "north"}},
		{"bare direction synthesizes go", "north", Command{Verb: "go", Noun: "north"}},
		{"abbreviated direction", "n", Command{Verb: "go", Noun: "n"}},
		{"unknown input", "xyzzy", Command{Noun: "xyzzy"}},
		{"empty input", "", Command{}},
		{"only articles", "the an a", Command{}},
		{"verb after leading noise", "please take sword", Command{Verb: "take", Noun: "sword"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want.Raw = tt.raw
			got := Parse(tt.raw, v)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestParseVerbBeatsDirection(t *testing.T) {
	// A synonym that is also a direction word must match as a verb, because
	// the verb scan runs before the direction fallback.
	v := testVocab()
	v.Verbs["wave"] = []string{"west"}

	got := Parse("west", v)
	if got.Verb != "wave" {
		t.Errorf("Parse(\"west\").Verb = %q, want %q", got.Verb, "wave")
	}
}

func TestParseDeterministicTieBreak(t *testing.T) {
	// "check" is a synonym of two verbs; the sorted verb order makes
	// "examine" win every time.
	v := world.Vocabulary{
		Verbs: map[string][]string{
			"examine": {"check"},
			"look":    {"check"},
		},
	}
	for i := 0; i < 50; i++ {
		if got := Parse("check walls", v); got.Verb != "examine" {
			t.Fatalf("Parse tie-break chose %q, want %q", got.Verb, "examine")
		}
	}
}

func TestNormalizeDirection(t *testing.T) {
	tests := map[string]string{
		"n": "north", "s": "south", "e": "east", "w": "west",
		"north": "north", "door": "door",
	}
	for in, want := range tests {
		if got := NormalizeDirection(in); got != want {
			t.Errorf("NormalizeDirection(%q) = %q, want %q", in, got, want)
		}
	}
}
