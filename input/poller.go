package input

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/martians/engine"
)

// Poller reads terminal events on its own goroutine and queues the decoded commands
// The queue keeps the most recent commands, Quit is latched and never dropped
type Poller struct {
	screen tcell.Screen
	table  *KeyTable
	logger zerolog.Logger

	queue   chan engine.Command
	quit    atomic.Bool
	dropped atomic.Int64
	crash   atomic.Value // error from a recovered panic
	done    chan struct{}
}

// NewPoller creates a poller with a queue of the given capacity
func NewPoller(screen tcell.Screen, table *KeyTable, size int, logger zerolog.Logger) *Poller {
	if size < 1 {
		size = 1
	}
	return &Poller{
		screen: screen,
		table:  table,
		logger: logger,
		queue:  make(chan engine.Command, size),
		done:   make(chan struct{}),
	}
}

// Start launches the event goroutine, which exits when the screen is finalized
// A panic on the goroutine is recovered into Err and requests Quit
func (p *Poller) Start() {
	go func() {
		defer close(p.done)
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("event poller crashed")
				p.crash.Store(fmt.Errorf("event poller crashed: %v", r))
				p.quit.Store(true)
			}
		}()
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if cmd, ok := p.table.Lookup(ev); ok {
					p.Push(cmd)
				}
			case *tcell.EventResize:
				p.screen.Sync()
			}
		}
	}()
}

// Done is closed once the event goroutine has exited
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

// Push queues a command, dropping the oldest one when the queue is full
// Only one goroutine may push
func (p *Poller) Push(cmd engine.Command) {
	if cmd == engine.CmdQuit {
		p.quit.Store(true)
		return
	}
	for {
		select {
		case p.queue <- cmd:
			return
		default:
		}
		select {
		case old := <-p.queue:
			p.dropped.Add(1)
			p.logger.Debug().Str("command", old.String()).Msg("input queue full, dropped oldest")
		default:
		}
	}
}

// Drain returns the queued commands without blocking, Quit last if it was requested
func (p *Poller) Drain() []engine.Command {
	var cmds []engine.Command
	for {
		select {
		case cmd := <-p.queue:
			cmds = append(cmds, cmd)
		default:
			if p.quit.Load() {
				cmds = append(cmds, engine.CmdQuit)
			}
			return cmds
		}
	}
}

// Err returns the recovered poller panic, if any
func (p *Poller) Err() error {
	if err, ok := p.crash.Load().(error); ok {
		return err
	}
	return nil
}

// Dropped returns how many commands were discarded on overflow
func (p *Poller) Dropped() int64 {
	return p.dropped.Load()
}
