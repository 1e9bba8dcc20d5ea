// Package telemetry exposes game counters through the global OpenTelemetry meter provider.
// Without an installed provider every instrument is a no-op.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/lixenwraith/martians/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics holds the game counters
type Metrics struct {
	ticks metric.Int64Counter
	shots metric.Int64Counter
	hits  metric.Int64Counter
	kills metric.Int64Counter
}

// New creates the counters on the global meter provider
func New() (*Metrics, error) {
	return NewWithMeter(meter())
}

// NewWithMeter creates the counters on the given meter
func NewWithMeter(m metric.Meter) (*Metrics, error) {
	var (
		mt  Metrics
		err error
	)

	mt.ticks, err = m.Int64Counter(
		"martians.ticks",
		metric.WithDescription("Simulation ticks executed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}

	mt.shots, err = m.Int64Counter(
		"martians.shots",
		metric.WithDescription("Projectiles fired, by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}

	mt.hits, err = m.Int64Counter(
		"martians.hits",
		metric.WithDescription("Damaging collisions, by target kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating hits counter: %w", err)
	}

	mt.kills, err = m.Int64Counter(
		"martians.kills",
		metric.WithDescription("Martians destroyed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kills counter: %w", err)
	}

	return &mt, nil
}

// Nop returns counters that record nothing, for tests and headless runs
func Nop() *Metrics {
	m, err := NewWithMeter(noop.NewMeterProvider().Meter(instrumentationName))
	if err != nil {
		panic(err)
	}
	return m
}

// Tick counts one simulation tick
func (m *Metrics) Tick() {
	m.ticks.Add(context.Background(), 1)
}

// Shot counts a fired projectile
func (m *Metrics) Shot(kind string) {
	m.shots.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// Hit counts damage dealt to a target
func (m *Metrics) Hit(target string) {
	m.hits.Add(context.Background(), 1, metric.WithAttributes(attribute.String("target", target)))
}

// Kill counts a destroyed martian
func (m *Metrics) Kill() {
	m.kills.Add(context.Background(), 1)
}
