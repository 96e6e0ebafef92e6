package engine

import (
	"fmt"
	"strings"

	"github.com/gladewood/gladewood/internal/parser"
	"github.com/gladewood/gladewood/internal/resolve"
)

// Dialogue context selection: characters speak their "party" lines once the
// party has started, otherwise their "default" lines.
const (
	flagPartyStarted = "partyStarted"
	contextDefault   = "default"
	contextParty     = "party"
)

const helpText = `Commands:
  go <direction>   move (north, south, east, west — or just "n", "s", ...)
  look [thing]     describe the room, or examine something
  take <thing>     pick something up
  drop <thing>     put something down
  inventory        list what you are carrying
  talk to <name>   speak with someone
  use <thing>      try to use something
  help             this list`

func (e *Engine) execute(cmd parser.Command) {
	switch cmd.Verb {
	case "go":
		e.doGo(cmd.Noun)
	case "look":
		e.doLook(cmd.Noun)
	case "take":
		e.doTake(cmd.Noun)
	case "drop":
		e.doDrop(cmd.Noun)
	case "inventory":
		e.doInventory()
	case "talk":
		e.doTalk(cmd.Noun)
	case "use":
		e.doUse(cmd.Noun)
	case "help":
		e.doHelp()
	default:
		e.report(`I don't understand that. Try "help" for a list of commands.`)
	}
}

func (e *Engine) doGo(noun string) {
	dir := ""
	if fields := strings.Fields(noun); len(fields) > 0 {
		dir = parser.NormalizeDirection(fields[0])
	}
	if dir == "" {
		e.report(`Go where? Try a direction, like "north".`)
		return
	}
	room := e.world.CurrentRoom()
	target := ""
	if room != nil {
		target = room.Exits[dir]
	}
	if target == "" || e.world.Rooms[target] == nil {
		e.report("You can't go that way.")
		return
	}
	e.world.Player.Location = target
	e.showRoom(true)
}

func (e *Engine) doLook(noun string) {
	if noun == "" {
		e.showRoom(false)
		return
	}
	target, ok := resolve.Resolve(noun, e.world)
	if !ok {
		e.report("You don't see that here.")
		return
	}
	switch target.Kind {
	case resolve.KindObject:
		e.narrate(target.Object.Description)
		if target.Object.OnExamine != "" {
			e.narrate(target.Object.OnExamine)
		}
	case resolve.KindCharacter:
		e.narrate(target.Character.Description)
	}
}

func (e *Engine) doTake(noun string) {
	if noun == "" {
		e.report("Take what?")
		return
	}
	target, ok := resolve.Resolve(noun, e.world)
	if !ok || target.Kind != resolve.KindObject || target.Object.Location != e.world.Player.Location {
		e.report("You don't see that here.")
		return
	}
	if !target.Object.CanTake {
		e.report("You can't take that.")
		return
	}
	e.world.MoveToInventory(target.ID)
	if target.Object.OnTake != "" {
		e.narrate(target.Object.OnTake)
	} else {
		e.narrate(fmt.Sprintf("You take the %s.", target.Object.Name))
	}
	e.hooks.InventoryChanged(e.world.Player.Inventory)
}

func (e *Engine) doDrop(noun string) {
	if noun == "" {
		e.report("Drop what?")
		return
	}
	target, ok := resolve.FindInInventory(noun, e.world)
	if !ok {
		e.report("You're not carrying that.")
		return
	}
	e.world.MoveToRoom(target.ID, e.world.Player.Location)
	e.narrate(fmt.Sprintf("You drop the %s.", target.Object.Name))
	e.hooks.InventoryChanged(e.world.Player.Inventory)
}

func (e *Engine) doInventory() {
	if len(e.world.Player.Inventory) == 0 {
		e.narrate("You're not carrying anything.")
	} else {
		names := make([]string, 0, len(e.world.Player.Inventory))
		for _, id := range e.world.Player.Inventory {
			if obj := e.world.Objects[id]; obj != nil {
				names = append(names, obj.Name)
			}
		}
		e.narrate("You are carrying: " + strings.Join(names, ", ") + ".")
	}
	e.hooks.RevealInventory()
}

func (e *Engine) doTalk(noun string) {
	if noun == "" {
		e.report("Talk to whom?")
		return
	}
	target, ok := resolve.Resolve(noun, e.world)
	if !ok || target.Kind != resolve.KindCharacter {
		e.report("You don't see anyone like that here.")
		return
	}
	ch := target.Character
	text := ch.Dialogue[contextDefault]
	if e.world.Flag(flagPartyStarted) && ch.Dialogue[contextParty] != "" {
		text = ch.Dialogue[contextParty]
	}
	if text == "" {
		e.narrate(fmt.Sprintf("%s has nothing to say.", ch.Name))
		return
	}
	e.say(ch.Name, text, ch.Language)
}

// doUse is a deliberate stub: objects have no per-object use behavior yet,
// so every target gets the same shrug.
func (e *Engine) doUse(noun string) {
	if noun == "" {
		e.report("Use what?")
		return
	}
	e.narrate("You're not sure how to use that.")
}

func (e *Engine) doHelp() {
	e.narrate(helpText)
}

// showRoom displays the current room. An arrival (movement, session start)
// consumes first-visit text and fires the room's pending event; a quiet look
// does neither.
func (e *Engine) showRoom(arrival bool) {
	room := e.world.CurrentRoom()
	if room == nil {
		e.logger.Printf("engine: player in unknown room %q", e.world.Player.Location)
		e.report("You are nowhere at all. Something is wrong with this world.")
		return
	}
	e.narrate(room.Name)
	e.narrate(room.Description)
	if arrival && room.FirstVisit {
		room.FirstVisit = false
		if room.FirstVisitText != "" {
			e.narrate(room.FirstVisitText)
		}
	}
	if names := e.roomObjectNames(room.Objects); len(names) > 0 {
		e.narrate("You see: " + strings.Join(names, ", ") + ".")
	}
	if names := e.roomCharacterNames(room.Characters); len(names) > 0 {
		e.narrate("Also here: " + strings.Join(names, ", ") + ".")
	}
	if arrival && room.TriggersEvent != "" {
		id := room.TriggersEvent
		room.TriggersEvent = ""
		e.TriggerEvent(id)
	}
}

func (e *Engine) roomObjectNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if obj := e.world.Objects[id]; obj != nil {
			names = append(names, obj.Name)
		}
	}
	return names
}

func (e *Engine) roomCharacterNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if ch := e.world.Characters[id]; ch != nil {
			names = append(names, ch.Name)
		}
	}
	return names
}
