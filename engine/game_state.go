package engine

import "github.com/rs/zerolog"

// GamePhase is the outcome state of a game
type GamePhase uint8

const (
	PhaseRunning GamePhase = iota
	PhaseLost
	PhaseWon
	PhaseQuit
)

// String returns the name of the game phase
func (p GamePhase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseLost:
		return "Lost"
	case PhaseWon:
		return "Won"
	case PhaseQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the phase ends the loop
func (p GamePhase) Terminal() bool {
	return p != PhaseRunning
}

// WaveState is the spawner's progress through the enemy wave
type WaveState uint8

const (
	WaveSpawning WaveState = iota
	WaveSteady
	WaveDepleted
)

func (w WaveState) String() string {
	switch w {
	case WaveSpawning:
		return "Spawning"
	case WaveSteady:
		return "Steady"
	case WaveDepleted:
		return "Depleted"
	default:
		return "Unknown"
	}
}

var validTransitions = map[GamePhase][]GamePhase{
	PhaseRunning: {PhaseLost, PhaseWon, PhaseQuit},
}

var validWaveTransitions = map[WaveState][]WaveState{
	WaveSpawning: {WaveSteady},
	WaveSteady:   {WaveDepleted},
}

// GameState holds the outcome, scoring and wave progress of one game
// Mutated only by systems during a tick
type GameState struct {
	phase     GamePhase
	phaseTick uint64
	wave      WaveState

	Score int
	Kills int
	Tick  uint64 // Ticks executed so far, the current tick during Update

	logger zerolog.Logger
}

// NewGameState creates a running game state
func NewGameState(logger zerolog.Logger) *GameState {
	return &GameState{
		phase:  PhaseRunning,
		wave:   WaveSpawning,
		logger: logger,
	}
}

// Phase returns the current game phase
func (gs *GameState) Phase() GamePhase {
	return gs.phase
}

// PhaseTick returns the tick on which the current phase was entered
func (gs *GameState) PhaseTick() uint64 {
	return gs.phaseTick
}

// Wave returns the spawner state
func (gs *GameState) Wave() WaveState {
	return gs.wave
}

// CanTransition checks if a phase transition is valid
func (gs *GameState) CanTransition(from, to GamePhase) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionPhase attempts to move to the given phase
// Returns false if the transition is invalid, the first outcome of a tick wins
func (gs *GameState) TransitionPhase(to GamePhase) bool {
	if !gs.CanTransition(gs.phase, to) {
		return false
	}

	gs.logger.Info().
		Str("from", gs.phase.String()).
		Str("to", to.String()).
		Uint64("tick", gs.Tick).
		Int("score", gs.Score).
		Msg("phase transition")

	gs.phase = to
	gs.phaseTick = gs.Tick
	return true
}

// AdvanceWave moves the spawner forward, returns false if the move is invalid
func (gs *GameState) AdvanceWave(to WaveState) bool {
	valid := false
	for _, allowed := range validWaveTransitions[gs.wave] {
		if allowed == to {
			valid = true
			break
		}
	}
	if !valid {
		return false
	}

	gs.logger.Debug().
		Str("from", gs.wave.String()).
		Str("to", to.String()).
		Uint64("tick", gs.Tick).
		Msg("wave state")

	gs.wave = to
	return true
}

// RecordKill counts a destroyed martian and adds its score
func (gs *GameState) RecordKill(score int) {
	gs.Kills++
	gs.Score += score
}
