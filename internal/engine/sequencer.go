package engine

import "github.com/gladewood/gladewood/internal/world"

// TriggerEvent starts a scripted sequence. Input routing switches to the
// sequencer immediately; the first step renders after a pacing delay so it
// reads apart from whatever triggered it. Unknown event ids are logged and
// ignored — a content mistake must not corrupt the session.
func (e *Engine) TriggerEvent(id string) {
	ev := e.world.Events[id]
	if ev == nil {
		e.logger.Printf("engine: trigger for unknown event %q", id)
		return
	}
	e.mode = ModeInSequence
	e.event = ev
	e.cursor = 0
	e.hooks.Schedule(stepDelay, e.AdvanceEvent)
}

// AdvanceEvent renders the step at the cursor and moves past it, prompting
// for acknowledgement when more steps remain and ending the sequence after
// the last one. Dialogue steps naming an unknown character are skipped.
func (e *Engine) AdvanceEvent() {
	if e.mode != ModeInSequence {
		return
	}
	for e.cursor < len(e.event.Steps) {
		step := e.event.Steps[e.cursor]
		e.cursor++
		if !e.renderStep(step) {
			continue
		}
		if e.cursor < len(e.event.Steps) {
			e.narrate("(Press Enter to continue.)")
			return
		}
		break
	}
	e.endSequence()
}

func (e *Engine) renderStep(step world.Step) bool {
	switch step.Kind {
	case world.StepNarration:
		e.narrate(step.Text)
		return true
	case world.StepDialogue:
		ch := e.world.Characters[step.Character]
		if ch == nil {
			e.logger.Printf("engine: event step names unknown character %q", step.Character)
			return false
		}
		language := step.Language
		if language == "" {
			language = ch.Language
		}
		e.say(ch.Name, step.Text, language)
		return true
	default:
		e.logger.Printf("engine: event step has unknown kind %q", step.Kind)
		return false
	}
}

// endSequence returns to command mode, applies the event's flag changes and
// schedules the first chained event whose conditions hold.
func (e *Engine) endSequence() {
	ev := e.event
	e.mode = ModeIdle
	e.event = nil
	e.cursor = 0
	if ev == nil {
		return
	}
	for name, value := range ev.Sets {
		e.world.SetFlag(name, value)
	}
	for _, f := range ev.Next {
		if !e.followupReady(f) {
			continue
		}
		next := f.Event
		e.hooks.Schedule(chainDelay, func() { e.TriggerEvent(next) })
		return
	}
}

func (e *Engine) followupReady(f world.Followup) bool {
	for name, want := range f.When {
		if e.world.Flag(name) != want {
			return false
		}
	}
	return true
}
