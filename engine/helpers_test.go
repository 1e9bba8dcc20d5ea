package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/martians/config"
	"github.com/lixenwraith/martians/telemetry"
	"github.com/lixenwraith/martians/vmath"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestContext builds a 40x20 context with default config and a mock clock
func newTestContext(t *testing.T) (*GameContext, *MockTimeProvider) {
	t.Helper()
	clock := NewMockTimeProvider(testEpoch)
	ctx := NewGameContext(
		config.Default(),
		vmath.NewGrid(40, 20),
		clock,
		rand.New(rand.NewSource(1)),
		zerolog.Nop(),
		telemetry.Nop(),
	)
	return ctx, clock
}

// recordingSystem appends its name to a shared log on every update
type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	onUpdate func(w *World)
}

func (s *recordingSystem) Update(w *World, dt time.Duration) {
	*s.log = append(*s.log, s.name)
	if s.onUpdate != nil {
		s.onUpdate(w)
	}
}

func (s *recordingSystem) Priority() int { return s.priority }
