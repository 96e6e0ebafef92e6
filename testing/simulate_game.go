// Command simulate_game plays a fixed command script against the built-in
// world and prints the transcript. Handy for eyeballing interpreter output
// without the TUI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gladewood/gladewood/internal/engine"
	"github.com/gladewood/gladewood/internal/world"
)

var script = []string{
	"look",
	"examine the signpost",
	"take lantern",
	"inventory",
	"north",
	"look at sword",
	"take sword",
	"talk to hermit",
	"go east",
	// The hall triggers the gathering; blank submissions acknowledge the
	// sequence steps (and the chained revelation).
	"", "", "", "", "", "",
	"talk to the elder",
	"inventory",
	"drop sword",
	"look",
	"west",
	"dance", // unknown verb
}

func main() {
	logger := log.New(os.Stderr, "world: ", 0)

	template, err := world.Load(world.DefaultDocument(), logger)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	hooks := engine.Hooks{
		Display: func(ln engine.Line) {
			switch ln.Kind {
			case engine.KindPlayerEcho:
				fmt.Printf("\n> %s\n", ln.Text)
			case engine.KindDialogue:
				fmt.Printf("%s: %s\n", ln.Speaker, ln.Text)
			case engine.KindError:
				fmt.Printf("! %s\n", ln.Text)
			default:
				fmt.Println(ln.Text)
			}
		},
		InventoryChanged: func(held []string) {
			fmt.Printf("[inventory: %v]\n", held)
		},
	}

	eng := engine.New(template, hooks, logger)
	eng.Start()

	for _, line := range script {
		if line == "" {
			fmt.Println("\n> (enter)")
		}
		eng.SubmitInput(line)
	}
}
