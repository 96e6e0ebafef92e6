package engine

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/gladewood/gladewood/internal/world"
)

const sequencerDoc = `
player:
  location: shrine
flags:
  sealBroken: false
vocabulary:
  articles: [the]
  prepositions: [to]
  verbs:
    go: [go]
    look: [look]
    take: [take]
    drop: [drop]
    inventory: [inventory]
    talk: [talk]
    use: [use]
    help: [help]
rooms:
  shrine:
    name: Broken Shrine
    description: Vines strangle a cracked altar.
    triggers_event: whisper
characters:
  keeper:
    name: the keeper
    description: A shape at the edge of sight.
    language: sylvan
events:
  whisper:
    steps:
      - kind: narration
        text: A whisper rises from the altar.
      - kind: dialogue
        character: nobody-home
        text: This line has no speaker and must be skipped.
      - kind: dialogue
        character: keeper
        text: Sssleep no more.
    sets:
      sealBroken: true
    next:
      - event: no-such-event
        when:
          sealBroken: false
      - event: awakening
        when:
          sealBroken: true
  awakening:
    steps:
      - kind: narration
        text: Something vast turns over beneath the hill.
  gated:
    steps:
      - kind: narration
        text: Never shown.
`

// manualScheduler queues deferred callbacks so tests control pacing.
type manualScheduler struct {
	queue []func()
}

func (s *manualScheduler) schedule(_ time.Duration, fn func()) {
	s.queue = append(s.queue, fn)
}

func (s *manualScheduler) fire(t *testing.T) {
	t.Helper()
	if len(s.queue) == 0 {
		t.Fatal("no scheduled callback to fire")
	}
	fn := s.queue[0]
	s.queue = s.queue[1:]
	fn()
}

func TestSequenceRedirectsAllInput(t *testing.T) {
	eng, rec := newTestEngine(t, []byte(sequencerDoc))
	eng.Start()
	if eng.Mode() != ModeInSequence {
		t.Fatal("arrival did not start the room's event")
	}

	// Mid-sequence, a perfectly valid command is not parsed: it only
	// advances the narrative. No echo, no room redisplay.
	rec.clear()
	eng.SubmitInput("look")
	for _, ln := range rec.lines {
		if ln.Kind == KindPlayerEcho {
			t.Error("mid-sequence input was echoed as a command")
		}
		if strings.Contains(ln.Text, "Vines strangle") {
			t.Error("mid-sequence look redisplayed the room")
		}
	}

	for eng.Mode() == ModeInSequence {
		eng.SubmitInput("anything at all")
	}

	// Back in command mode, look works again.
	rec.clear()
	eng.SubmitInput("look")
	if !rec.contains(KindNarration, "Vines strangle") {
		t.Error("post-sequence look did not redisplay the room")
	}
}

func TestSequenceStepsAndPrompt(t *testing.T) {
	eng, rec := newTestEngine(t, []byte(sequencerDoc))
	rec.clear()
	eng.Start()

	if !rec.contains(KindNarration, "A whisper rises") {
		t.Error("first step not rendered")
	}
	if got := rec.last(); !strings.Contains(got.Text, "Press Enter") {
		t.Errorf("last line = %q, want continue prompt", got.Text)
	}
}

func TestMalformedDialogueStepSkipped(t *testing.T) {
	var logBuf bytes.Buffer
	template, err := world.Load([]byte(sequencerDoc), nil)
	if err != nil {
		t.Fatalf("loading test world: %v", err)
	}
	rec := &recorder{}
	eng := New(template, rec.hooks(), log.New(&logBuf, "", 0))

	eng.Start()
	for eng.Mode() == ModeInSequence {
		eng.SubmitInput("")
	}

	for _, ln := range rec.lines {
		if strings.Contains(ln.Text, "no speaker") {
			t.Error("step with unknown character was rendered")
		}
	}
	if len(rec.dialogues) != 1 || rec.dialogues[0].Speaker != "the keeper" {
		t.Errorf("dialogues = %+v, want only the keeper's line", rec.dialogues)
	}
	if !strings.Contains(logBuf.String(), "nobody-home") {
		t.Error("skipped step was not logged")
	}
}

func TestSequenceChainingAndFlagGating(t *testing.T) {
	eng, rec := newTestEngine(t, []byte(sequencerDoc))
	eng.Start()
	for eng.Mode() == ModeInSequence {
		eng.SubmitInput("")
	}

	if !eng.World().Flag("sealBroken") {
		t.Error("event completion did not set sealBroken")
	}
	// The first followup is gated on sealBroken=false and must not fire;
	// the second matches and chains.
	if !rec.contains(KindNarration, "vast turns over") {
		t.Error("chained event did not run")
	}
	if rec.contains(KindNarration, "Never shown") {
		t.Error("a gated-off event ran")
	}
}

func TestRoomEventFiresOnArrivalOnly(t *testing.T) {
	eng, rec := newTestEngine(t, []byte(sequencerDoc))

	// A quiet look before any arrival never starts the event.
	eng.SubmitInput("look")
	if eng.Mode() != ModeIdle {
		t.Fatal("quiet look triggered the room event")
	}

	eng.Start()
	for eng.Mode() == ModeInSequence {
		eng.SubmitInput("")
	}

	// The trigger is consumed: looking again stays quiet.
	rec.clear()
	eng.SubmitInput("look")
	if eng.Mode() != ModeIdle {
		t.Error("room event refired after being consumed")
	}
	if eng.World().Rooms["shrine"].TriggersEvent != "" {
		t.Error("TriggersEvent not cleared after firing")
	}
}

func TestUnknownTriggeredEventIgnored(t *testing.T) {
	doc := `
player:
  location: void
vocabulary:
  verbs:
    look: [look]
rooms:
  void:
    name: The Void
    description: Nothing here.
    triggers_event: missing
`
	var logBuf bytes.Buffer
	template, err := world.Load([]byte(doc), log.New(&bytes.Buffer{}, "", 0))
	if err != nil {
		t.Fatalf("loading test world: %v", err)
	}
	rec := &recorder{}
	eng := New(template, rec.hooks(), log.New(&logBuf, "", 0))

	eng.Start()
	if eng.Mode() != ModeIdle {
		t.Error("unknown event left the engine in sequence mode")
	}
	if !strings.Contains(logBuf.String(), "missing") {
		t.Error("unknown event trigger was not logged")
	}
}

func TestSchedulerOwnsPacing(t *testing.T) {
	template, err := world.Load([]byte(sequencerDoc), nil)
	if err != nil {
		t.Fatalf("loading test world: %v", err)
	}
	rec := &recorder{}
	sched := &manualScheduler{}
	hooks := rec.hooks()
	hooks.Schedule = sched.schedule
	eng := New(template, hooks, nil)

	eng.Start()
	if eng.Mode() != ModeInSequence {
		t.Fatal("arrival did not enter sequence mode")
	}
	for _, ln := range rec.lines {
		if strings.Contains(ln.Text, "A whisper rises") {
			t.Fatal("first step rendered before the scheduled delay fired")
		}
	}

	sched.fire(t)
	if !rec.contains(KindNarration, "A whisper rises") {
		t.Error("first step missing after the delay fired")
	}

	// Walk to the end; the chained event is deferred through the scheduler
	// too.
	eng.SubmitInput("")
	for eng.Mode() == ModeInSequence && len(sched.queue) == 0 {
		eng.SubmitInput("")
	}
	if rec.contains(KindNarration, "vast turns over") {
		t.Fatal("chained event ran before its delay fired")
	}
	sched.fire(t) // chain trigger
	sched.fire(t) // chained event's first step
	if !rec.contains(KindNarration, "vast turns over") {
		t.Error("chained event missing after delays fired")
	}
}
