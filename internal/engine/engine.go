// Package engine is the command interpreter: it routes player input to the
// parser and verb handlers, or to the event sequencer while a scripted
// sequence is running, and mutates a session-local copy of the world.
package engine

import (
	"io"
	"log"
	"strings"
	"time"

	"github.com/gladewood/gladewood/internal/parser"
	"github.com/gladewood/gladewood/internal/world"
)

// Display line kinds.
const (
	KindNarration  = "narration"
	KindDialogue   = "dialogue"
	KindError      = "error"
	KindPlayerEcho = "playerEcho"
)

// Line is one user-visible output line. Speaker and Language are set only
// for dialogue lines.
type Line struct {
	Kind     string
	Text     string
	Speaker  string
	Language string
}

// Mode is the input-routing state: commands are parsed while Idle, and any
// input advances the active sequence while InSequence.
type Mode int

const (
	ModeIdle Mode = iota
	ModeInSequence
)

// Pacing delays between a sequence trigger and its first step, and between
// a finished sequence and a chained one. The injected Schedule hook owns the
// actual waiting.
const (
	stepDelay  = 700 * time.Millisecond
	chainDelay = 1200 * time.Millisecond
)

// Hooks are the presentation callbacks the engine emits through. Nil fields
// are replaced with no-ops; a nil Schedule runs callbacks synchronously,
// which is what tests want.
type Hooks struct {
	// Display receives every user-visible line.
	Display func(Line)
	// InventoryChanged fires after take/drop with the held ids in order.
	InventoryChanged func(held []string)
	// Dialogue fires alongside Display for dialogue lines, carrying the
	// language tag the presentation may cue audio from.
	Dialogue func(speaker, text, language string)
	// RevealInventory asks the presentation to momentarily highlight the
	// inventory. Purely transient; no state backs it.
	RevealInventory func()
	// Schedule arranges for fn to run after a pacing delay. The engine is
	// single-threaded: fn must be invoked from the same goroutine that
	// calls SubmitInput.
	Schedule func(delay time.Duration, fn func())
}

// Engine interprets commands against one session's world. It is the only
// writer of that world; construct one per session with New.
type Engine struct {
	world  *world.World
	hooks  Hooks
	logger *log.Logger

	mode   Mode
	event  *world.Event
	cursor int
}

// New deep-copies the template world into a fresh session and returns an
// interpreter for it. The template is never mutated.
func New(template *world.World, hooks Hooks, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if hooks.Display == nil {
		hooks.Display = func(Line) {}
	}
	if hooks.InventoryChanged == nil {
		hooks.InventoryChanged = func([]string) {}
	}
	if hooks.Dialogue == nil {
		hooks.Dialogue = func(string, string, string) {}
	}
	if hooks.RevealInventory == nil {
		hooks.RevealInventory = func() {}
	}
	if hooks.Schedule == nil {
		hooks.Schedule = func(_ time.Duration, fn func()) { fn() }
	}
	return &Engine{
		world:  template.Clone(),
		hooks:  hooks,
		logger: logger,
	}
}

// World exposes the session state. The presentation reads it for panels;
// only the engine writes it.
func (e *Engine) World() *world.World {
	return e.world
}

// Mode reports whether the engine is awaiting a command or a sequence
// acknowledgement.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Start displays the starting room as an arrival, firing its first-visit
// text and any triggered event. Call once before the first SubmitInput.
func (e *Engine) Start() {
	e.showRoom(true)
}

// SubmitInput is the sole entry point for player input. While a sequence is
// active every submission, whatever its content, advances the sequence;
// otherwise the text is echoed, parsed and dispatched.
func (e *Engine) SubmitInput(text string) {
	if e.mode == ModeInSequence {
		e.AdvanceEvent()
		return
	}
	if strings.TrimSpace(text) == "" {
		return
	}
	e.hooks.Display(Line{Kind: KindPlayerEcho, Text: text})
	e.execute(parser.Parse(text, e.world.Vocabulary))
}

func (e *Engine) narrate(text string) {
	e.hooks.Display(Line{Kind: KindNarration, Text: text})
}

func (e *Engine) report(text string) {
	e.hooks.Display(Line{Kind: KindError, Text: text})
}

func (e *Engine) say(speaker, text, language string) {
	e.hooks.Display(Line{Kind: KindDialogue, Text: text, Speaker: speaker, Language: language})
	e.hooks.Dialogue(speaker, text, language)
}
