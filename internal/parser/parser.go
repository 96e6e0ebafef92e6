// Package parser turns free player text into a structured command: a verb
// key from the world vocabulary and a noun phrase for the resolver.
package parser

import (
	"strings"

	"github.com/gladewood/gladewood/internal/world"
)

// Command is the parsed form of one line of player input. Verb is a verb key
// from the vocabulary ("" when nothing matched); Noun is the remaining noun
// phrase ("" when absent); Raw preserves the original text.
type Command struct {
	Verb string
	Noun string
	Raw  string
}

var directions = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"n": true, "s": true, "e": true, "w": true,
}

// IsDirection reports whether a word is a compass direction or its
// one-letter abbreviation.
func IsDirection(word string) bool {
	return directions[word]
}

// NormalizeDirection expands one-letter abbreviations to full direction
// words; other input passes through unchanged.
func NormalizeDirection(word string) string {
	switch word {
	case "n":
		return "north"
	case "s":
		return "south"
	case "e":
		return "east"
	case "w":
		return "west"
	}
	return word
}

// Parse tokenizes raw input against the vocabulary. Articles are dropped,
// the first token matching any verb synonym becomes the verb, and the rest
// (minus prepositions) becomes the noun phrase. A leading direction word
// with no verb synthesizes "go" with the whole phrase as the noun.
func Parse(raw string, v world.Vocabulary) Command {
	cmd := Command{Raw: raw}

	tokens := strings.Fields(strings.ToLower(raw))
	tokens = dropWords(tokens, v.Articles)
	if len(tokens) == 0 {
		return cmd
	}

	verbs := v.OrderedVerbs()
	verbIndex := -1
scan:
	for i, tok := range tokens {
		for _, key := range verbs {
			if containsWord(v.Verbs[key], tok) {
				cmd.Verb = key
				verbIndex = i
				break scan
			}
		}
	}

	// A direction on its own ("north", "n") means movement; the direction
	// word stays in the noun phrase for the go handler to consume.
	if cmd.Verb == "" && IsDirection(tokens[0]) {
		cmd.Verb = "go"
	}

	nounTokens := tokens
	if verbIndex >= 0 {
		nounTokens = tokens[verbIndex+1:]
	}
	nounTokens = dropWords(nounTokens, v.Prepositions)
	cmd.Noun = strings.Join(nounTokens, " ")
	return cmd
}

func dropWords(tokens, words []string) []string {
	out := tokens[:0:0]
	for _, tok := range tokens {
		if !containsWord(words, tok) {
			out = append(out, tok)
		}
	}
	return out
}

func containsWord(words []string, w string) bool {
	for _, v := range words {
		if v == w {
			return true
		}
	}
	return false
}
