package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/martians/engine"
)

func TestPollerKeepsMostRecent(t *testing.T) {
	p := NewPoller(nil, DefaultKeyTable(), 3, zerolog.Nop())

	p.Push(engine.CmdMoveLeft)
	p.Push(engine.CmdMoveRight)
	p.Push(engine.CmdStop)
	p.Push(engine.CmdFireLaser)
	p.Push(engine.CmdFireRocket)

	got := p.Drain()
	want := []engine.Command{engine.CmdStop, engine.CmdFireLaser, engine.CmdFireRocket}
	if len(got) != len(want) {
		t.Fatalf("Drain() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Drain()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if p.Dropped() != 2 {
		t.Errorf("Dropped() = %d, want 2", p.Dropped())
	}

	if again := p.Drain(); len(again) != 0 {
		t.Errorf("second Drain() = %v, want empty", again)
	}
}

func TestPollerNeverDropsQuit(t *testing.T) {
	p := NewPoller(nil, DefaultKeyTable(), 2, zerolog.Nop())

	p.Push(engine.CmdQuit)
	for i := 0; i < 10; i++ {
		p.Push(engine.CmdFireRocket)
	}

	got := p.Drain()
	if len(got) == 0 || got[len(got)-1] != engine.CmdQuit {
		t.Fatalf("Drain() = %v, want Quit last", got)
	}
	if len(got) != 3 {
		t.Errorf("Drain() = %v, want 2 rockets and Quit", got)
	}
}

func TestPollerReadsScreenEvents(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to initialize screen: %v", err)
	}

	p := NewPoller(screen, DefaultKeyTable(), 8, zerolog.Nop())
	p.Start()

	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	// Escape is the last event, once it is latched the earlier commands are queued
	deadline := time.Now().Add(2 * time.Second)
	for !p.quit.Load() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	got := p.Drain()

	want := []engine.Command{engine.CmdMoveRight, engine.CmdFireLaser, engine.CmdQuit}
	if len(got) != len(want) {
		t.Fatalf("commands = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("commands[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	screen.Fini()
	select {
	case <-p.Done():
	case <-time.After(2 * time.Second):
		t.Error("poller goroutine did not exit after Fini")
	}
}
