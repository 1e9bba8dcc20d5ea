package components

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/martians/vmath"
)

func TestNewSprite(t *testing.T) {
	s := NewSprite([]string{" A ", "(0)", "III"}, tcell.StyleDefault, 2)
	if s.Width() != 3 || s.Height() != 3 {
		t.Errorf("Expected 3x3 sprite, got %dx%d", s.Width(), s.Height())
	}

	box := s.Box(PositionComponent{X: 4.4, Y: 2.6})
	want := vmath.Box{X: 4, Y: 3, Width: 3, Height: 3}
	if box != want {
		t.Errorf("Expected box %+v, got %+v", want, box)
	}
}

func TestNewSpritePanics(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"No lines", nil},
		{"Ragged lines", []string{"FOO", "FOO", "FO"}},
		{"Empty line", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for %v", tt.lines)
				}
			}()
			NewSprite(tt.lines, tcell.StyleDefault, 0)
		})
	}
}

func TestHealthDamageClampsAtZero(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		damage   int
		want     int
		wantDead bool
	}{
		{"Partial hit", 100, 10, 90, false},
		{"Exact kill", 10, 10, 0, true},
		{"Overkill", 5, 25, 0, true},
		{"Zero damage", 5, 0, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HealthComponent{Current: tt.start, Max: tt.start}
			dead := h.Damage(tt.damage)
			if h.Current != tt.want {
				t.Errorf("Expected health %d, got %d", tt.want, h.Current)
			}
			if dead != tt.wantDead {
				t.Errorf("Expected dead=%v, got %v", tt.wantDead, dead)
			}
		})
	}
}

func TestParseEdgeStrategy(t *testing.T) {
	for _, s := range []EdgeStrategy{EdgeDisappear, EdgeBounce, EdgeWrap} {
		got, err := ParseEdgeStrategy(s.String())
		if err != nil {
			t.Fatalf("Unexpected error for %s: %v", s, err)
		}
		if got != s {
			t.Errorf("Expected %s, got %s", s, got)
		}
	}

	if _, err := ParseEdgeStrategy("teleport"); err == nil {
		t.Error("Expected error for unknown strategy")
	}
}

func TestKindValues(t *testing.T) {
	for _, k := range Kinds {
		if k.IsProjectile() != (k == KindLaser || k == KindRocket || k == KindBomb) {
			t.Errorf("IsProjectile wrong for %s", k)
		}
	}
	if !FactionPlayer.Opposes(FactionEnemy) || FactionEnemy.Opposes(FactionEnemy) {
		t.Error("Faction opposition is wrong")
	}
}

func TestVelocityIsZero(t *testing.T) {
	if !(VelocityComponent{}).IsZero() {
		t.Error("zero velocity not reported")
	}
	if (VelocityComponent{Y: -0.5}).IsZero() {
		t.Error("moving velocity reported as zero")
	}
}
