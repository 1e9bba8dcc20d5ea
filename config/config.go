// Package config loads the load-time game configuration.
// Values come from defaults in constants, an optional TOML file and MARTIANS_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/martians/components"
	"github.com/lixenwraith/martians/constants"
	"github.com/lixenwraith/martians/vmath"
	"github.com/spf13/viper"
)

// DefaultConfigName is looked up in the working directory when no path is given
const DefaultConfigName = "martians"

// EnvPrefix prefixes environment overrides, e.g. MARTIANS_ENEMIES_INITIALCOUNT
const EnvPrefix = "MARTIANS"

// GridConfig sets the play field size, zero means the terminal size
type GridConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// LoopConfig sets the simulation clock
type LoopConfig struct {
	Tick          time.Duration `mapstructure:"tick"`
	EndBannerWait time.Duration `mapstructure:"endBannerWait"`
}

// TankConfig holds player settings
type TankConfig struct {
	Health      int           `mapstructure:"health"`
	Speed       float64       `mapstructure:"speed"`
	LaserReload time.Duration `mapstructure:"laserReload"`
}

// EnemyConfig holds martian wave settings
type EnemyConfig struct {
	InitialCount int           `mapstructure:"initialCount"`
	Max          int           `mapstructure:"max"`
	Health       int           `mapstructure:"health"`
	Speed        float64       `mapstructure:"speed"`
	Drift        float64       `mapstructure:"drift"`
	Score        int           `mapstructure:"score"`
	BombInterval time.Duration `mapstructure:"bombInterval"`
	BombJitter   time.Duration `mapstructure:"bombJitter"`
}

// ProjectileConfig holds shared projectile settings
type ProjectileConfig struct {
	Max           int     `mapstructure:"max"`
	LifetimeTicks uint64  `mapstructure:"lifetimeTicks"`
	LaserSpeed    float64 `mapstructure:"laserSpeed"`
	RocketSpeed   float64 `mapstructure:"rocketSpeed"`
	BombSpeed     float64 `mapstructure:"bombSpeed"`
}

// DamageConfig is the collision damage per kind
type DamageConfig struct {
	Tank    int `mapstructure:"tank"`
	Martian int `mapstructure:"martian"`
	Laser   int `mapstructure:"laser"`
	Rocket  int `mapstructure:"rocket"`
	Bomb    int `mapstructure:"bomb"`
}

// EdgeConfig is the edge strategy name per kind
type EdgeConfig struct {
	Tank    string `mapstructure:"tank"`
	Martian string `mapstructure:"martian"`
	Laser   string `mapstructure:"laser"`
	Rocket  string `mapstructure:"rocket"`
	Bomb    string `mapstructure:"bomb"`
}

// InputConfig sizes the pending command queue
type InputConfig struct {
	QueueSize int `mapstructure:"queueSize"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

// Config is the complete, immutable game configuration
type Config struct {
	Grid       GridConfig       `mapstructure:"grid"`
	Loop       LoopConfig       `mapstructure:"loop"`
	Tank       TankConfig       `mapstructure:"tank"`
	Enemies    EnemyConfig      `mapstructure:"enemies"`
	Projectile ProjectileConfig `mapstructure:"projectile"`
	Damage     DamageConfig     `mapstructure:"damage"`
	Edge       EdgeConfig       `mapstructure:"edge"`
	Input      InputConfig      `mapstructure:"input"`
	Log        LogConfig        `mapstructure:"log"`

	edges map[components.Kind]components.EdgeStrategy
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("grid.width", constants.GridWidth)
	v.SetDefault("grid.height", constants.GridHeight)

	v.SetDefault("loop.tick", constants.TickInterval)
	v.SetDefault("loop.endBannerWait", constants.EndBannerWait)

	v.SetDefault("tank.health", constants.TankHealth)
	v.SetDefault("tank.speed", constants.TankSpeed)
	v.SetDefault("tank.laserReload", constants.LaserReload)

	v.SetDefault("enemies.initialCount", constants.EnemiesInitialCount)
	v.SetDefault("enemies.max", constants.MaxMartians)
	v.SetDefault("enemies.health", constants.MartianHealth)
	v.SetDefault("enemies.speed", constants.MartianSpeed)
	v.SetDefault("enemies.drift", constants.MartianDrift)
	v.SetDefault("enemies.score", constants.MartianScore)
	v.SetDefault("enemies.bombInterval", constants.BombInterval)
	v.SetDefault("enemies.bombJitter", constants.BombJitter)

	v.SetDefault("projectile.max", constants.MaxProjectiles)
	v.SetDefault("projectile.lifetimeTicks", constants.ProjectileLifetimeTicks)
	v.SetDefault("projectile.laserSpeed", constants.LaserSpeed)
	v.SetDefault("projectile.rocketSpeed", constants.RocketSpeed)
	v.SetDefault("projectile.bombSpeed", constants.BombSpeed)

	v.SetDefault("damage.tank", constants.TankDamage)
	v.SetDefault("damage.martian", constants.MartianDamage)
	v.SetDefault("damage.laser", constants.LaserDamage)
	v.SetDefault("damage.rocket", constants.RocketDamage)
	v.SetDefault("damage.bomb", constants.BombDamage)

	v.SetDefault("edge.tank", constants.TankEdge)
	v.SetDefault("edge.martian", constants.MartianEdge)
	v.SetDefault("edge.laser", constants.LaserEdge)
	v.SetDefault("edge.rocket", constants.RocketEdge)
	v.SetDefault("edge.bomb", constants.BombEdge)

	v.SetDefault("input.queueSize", constants.InputQueueSize)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")
}

// Load reads configuration from path, or from ./martians.toml if path is empty.
// A missing default file is not an error, a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration without reading files or environment
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		panic(fmt.Sprintf("config: built-in defaults do not decode: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("config: built-in defaults are invalid: %v", err))
	}
	return cfg
}

// Validate checks value ranges and resolves edge strategy names
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		errs = append(errs, fmt.Errorf("grid dimensions must not be negative, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Loop.Tick <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick must be positive, got %v", c.Loop.Tick))
	}
	if c.Loop.EndBannerWait < 0 {
		errs = append(errs, fmt.Errorf("loop.endBannerWait must not be negative, got %v", c.Loop.EndBannerWait))
	}
	positive("tank.health", c.Tank.Health)
	positive("enemies.initialCount", c.Enemies.InitialCount)
	positive("enemies.max", c.Enemies.Max)
	positive("enemies.health", c.Enemies.Health)
	positive("projectile.max", c.Projectile.Max)
	positive("input.queueSize", c.Input.QueueSize)
	if c.Enemies.InitialCount > c.Enemies.Max {
		errs = append(errs, fmt.Errorf("enemies.initialCount %d exceeds enemies.max %d", c.Enemies.InitialCount, c.Enemies.Max))
	}
	if c.Projectile.LifetimeTicks == 0 {
		errs = append(errs, errors.New("projectile.lifetimeTicks must be positive"))
	}
	if c.Tank.Speed <= 0 || c.Enemies.Speed <= 0 || c.Projectile.LaserSpeed <= 0 ||
		c.Projectile.RocketSpeed <= 0 || c.Projectile.BombSpeed <= 0 {
		errs = append(errs, errors.New("speeds must be positive"))
	}
	if c.Enemies.BombInterval < 0 || c.Enemies.BombJitter < 0 {
		errs = append(errs, errors.New("bomb timing must not be negative"))
	}
	if c.Tank.LaserReload < 0 {
		errs = append(errs, errors.New("tank.laserReload must not be negative"))
	}
	if c.Damage.Tank < 0 || c.Damage.Martian < 0 {
		errs = append(errs, errors.New("contact damage must not be negative"))
	}
	if !(0 < c.Damage.Laser && c.Damage.Laser < c.Damage.Rocket && c.Damage.Rocket < c.Damage.Bomb) {
		errs = append(errs, fmt.Errorf("damage must satisfy 0 < laser < rocket < bomb, got %d, %d, %d",
			c.Damage.Laser, c.Damage.Rocket, c.Damage.Bomb))
	}

	edges := make(map[components.Kind]components.EdgeStrategy, len(components.Kinds))
	for kind, name := range map[components.Kind]string{
		components.KindTank:    c.Edge.Tank,
		components.KindMartian: c.Edge.Martian,
		components.KindLaser:   c.Edge.Laser,
		components.KindRocket:  c.Edge.Rocket,
		components.KindBomb:    c.Edge.Bomb,
	} {
		s, err := components.ParseEdgeStrategy(strings.ToLower(name))
		if err != nil {
			errs = append(errs, fmt.Errorf("edge.%s: %w", kind, err))
			continue
		}
		edges[kind] = s
	}
	c.edges = edges

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// EdgeStrategy returns the configured strategy for a kind
// Panics if the config was never validated
func (c *Config) EdgeStrategy(kind components.Kind) components.EdgeStrategy {
	s, ok := c.edges[kind]
	if !ok {
		panic(fmt.Sprintf("config: no edge strategy for %s", kind))
	}
	return s
}

// DamageFor returns the collision damage dealt by a kind
func (c *Config) DamageFor(kind components.Kind) int {
	switch kind {
	case components.KindTank:
		return c.Damage.Tank
	case components.KindMartian:
		return c.Damage.Martian
	case components.KindLaser:
		return c.Damage.Laser
	case components.KindRocket:
		return c.Damage.Rocket
	case components.KindBomb:
		return c.Damage.Bomb
	}
	panic(fmt.Sprintf("config: no damage for %s", kind))
}

// ResolveGrid picks the play field size, falling back to the terminal size for zero dimensions
func (c *Config) ResolveGrid(termWidth, termHeight int) (vmath.Grid, error) {
	w, h := c.Grid.Width, c.Grid.Height
	if w == 0 {
		w = termWidth
	}
	if h == 0 {
		h = termHeight - constants.HUDRows
	}
	if w < constants.MinGridWidth || h < constants.MinGridHeight {
		return vmath.Grid{}, fmt.Errorf("play field %dx%d is smaller than the minimum %dx%d",
			w, h, constants.MinGridWidth, constants.MinGridHeight)
	}
	return vmath.NewGrid(w, h), nil
}
