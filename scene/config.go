// =======================
// scene/config.go
// =======================

package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"approach/v2/debris"
	"approach/v2/flight"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultScene []byte

var ErrInvalidConfig = errors.New("invalid scene config")

// Config is the full authored scene.
type Config struct {
	Approach  ApproachConfig   `yaml:"approach"`
	Hold      HoldConfig       `yaml:"hold"`
	Descent   DescentConfig    `yaml:"descent"`
	Landing   LandingConfig    `yaml:"landing"`
	Flight    FlightConfig     `yaml:"flight"`
	Asteroids AsteroidConfig   `yaml:"asteroids"`
	Landmarks []LandmarkConfig `yaml:"landmarks"`
}

type ApproachConfig struct {
	Resolution int           `yaml:"resolution"`
	Curves     [][][]float64 `yaml:"curves"` // four [x,y,z] points per curve
}

type HoldConfig struct {
	Center     []float64 `yaml:"center"`
	Radius     float64   `yaml:"radius"`
	StartAngle float64   `yaml:"start_angle"`
	Samples    int       `yaml:"samples"`
}

type DescentConfig struct {
	Steps       int     `yaml:"steps"`
	Drop        float64 `yaml:"drop"`
	Revolutions float64 `yaml:"revolutions"`
}

type LandingConfig struct {
	Steps int `yaml:"steps"`
}

type FlightConfig struct {
	BaseIntervalMS int       `yaml:"base_interval_ms"`
	TurnRate       float64   `yaml:"turn_rate"`
	Forward        []float64 `yaml:"forward"`
}

type AsteroidConfig struct {
	Count     int     `yaml:"count"`
	OffsetMin float64 `yaml:"offset_min"`
	OffsetMax float64 `yaml:"offset_max"`
	ScaleMin  float64 `yaml:"scale_min"`
	ScaleMax  float64 `yaml:"scale_max"`
	MaxSpin   float64 `yaml:"max_spin"`
	Seed      int64   `yaml:"seed"`
}

// LandmarkConfig is a decorative body drawn as a ring of glyphs. A nonzero
// SpinY turns it about its own Y axis every frame.
type LandmarkConfig struct {
	Name     string    `yaml:"name"`
	Glyph    string    `yaml:"glyph"`
	Position []float64 `yaml:"position"`
	Radius   float64   `yaml:"radius"`
	SpinY    float64   `yaml:"spin_y"`
}

// Load reads a scene file; an empty path selects the built-in scene.
func Load(path string) (*Config, error) {
	if path == "" {
		return Parse(defaultScene)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes, fills defaults and validates a YAML scene.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Approach.Resolution == 0 {
		c.Approach.Resolution = flight.DefaultResolution
	}
	if c.Descent.Revolutions == 0 {
		c.Descent.Revolutions = flight.DefaultRevolutions
	}
	if c.Flight.BaseIntervalMS == 0 {
		c.Flight.BaseIntervalMS = int(flight.DefaultBaseInterval / time.Millisecond)
	}
	if c.Flight.TurnRate == 0 {
		c.Flight.TurnRate = flight.DefaultTurnRate
	}
	if c.Flight.Forward == nil {
		f := flight.DefaultForward
		c.Flight.Forward = f[:]
	}
	if c.Asteroids.OffsetMin == 0 && c.Asteroids.OffsetMax == 0 {
		c.Asteroids.OffsetMin, c.Asteroids.OffsetMax = 20, 70
	}
	if c.Asteroids.ScaleMin == 0 && c.Asteroids.ScaleMax == 0 {
		c.Asteroids.ScaleMin, c.Asteroids.ScaleMax = 0.5, 5.5
	}
	if c.Asteroids.MaxSpin == 0 {
		c.Asteroids.MaxSpin = debris.DefaultMaxSpin
	}
	for i := range c.Landmarks {
		if c.Landmarks[i].Radius == 0 {
			c.Landmarks[i].Radius = 1
		}
		if c.Landmarks[i].Glyph == "" {
			c.Landmarks[i].Glyph = "*"
		}
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func checkVec(field string, v []float64) error {
	if len(v) != 3 {
		return invalid("%s: want 3 components, got %d", field, len(v))
	}
	return nil
}

// Validate reports the first malformed field.
func (c *Config) Validate() error {
	if len(c.Approach.Curves) == 0 {
		return invalid("approach.curves: at least one curve required")
	}
	if c.Approach.Resolution < 0 {
		return invalid("approach.resolution: %d", c.Approach.Resolution)
	}
	for i, curve := range c.Approach.Curves {
		if len(curve) != 4 {
			return invalid("approach.curves[%d]: want 4 points, got %d", i, len(curve))
		}
		for j, p := range curve {
			if err := checkVec(fmt.Sprintf("approach.curves[%d][%d]", i, j), p); err != nil {
				return err
			}
		}
	}

	if c.Hold.Samples < 0 || c.Descent.Steps < 0 || c.Landing.Steps < 0 {
		return invalid("hold/descent/landing: negative sample count")
	}
	if c.Hold.Samples > 0 || c.Descent.Steps > 0 || c.Landing.Steps > 0 {
		if err := checkVec("hold.center", c.Hold.Center); err != nil {
			return err
		}
		if c.Hold.Radius <= 0 {
			return invalid("hold.radius: must be positive, got %g", c.Hold.Radius)
		}
	}

	if c.Flight.BaseIntervalMS < 0 {
		return invalid("flight.base_interval_ms: %d", c.Flight.BaseIntervalMS)
	}
	if c.Flight.TurnRate < 0 || c.Flight.TurnRate > 1 {
		return invalid("flight.turn_rate: %g outside [0, 1]", c.Flight.TurnRate)
	}
	if err := checkVec("flight.forward", c.Flight.Forward); err != nil {
		return err
	}
	if vec(c.Flight.Forward).Len() == 0 {
		return invalid("flight.forward: zero vector")
	}

	a := c.Asteroids
	if a.Count < 0 {
		return invalid("asteroids.count: %d", a.Count)
	}
	if a.OffsetMin < 0 || a.OffsetMin > a.OffsetMax {
		return invalid("asteroids.offset_min/max: [%g, %g]", a.OffsetMin, a.OffsetMax)
	}
	if a.ScaleMin <= 0 || a.ScaleMin > a.ScaleMax {
		return invalid("asteroids.scale_min/max: [%g, %g]", a.ScaleMin, a.ScaleMax)
	}
	if a.MaxSpin < 0 {
		return invalid("asteroids.max_spin: %g", a.MaxSpin)
	}

	for i, l := range c.Landmarks {
		if err := checkVec(fmt.Sprintf("landmarks[%d].position", i), l.Position); err != nil {
			return err
		}
		if l.Radius < 0 {
			return invalid("landmarks[%d].radius: %g", i, l.Radius)
		}
	}
	return nil
}

func vec(v []float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// Curves converts the approach section.
func (c *Config) Curves() []flight.Cubic {
	curves := make([]flight.Cubic, len(c.Approach.Curves))
	for i, p := range c.Approach.Curves {
		curves[i] = flight.Cubic{P0: vec(p[0]), P1: vec(p[1]), P2: vec(p[2]), P3: vec(p[3])}
	}
	return curves
}

// Route converts the path sections for flight.BuildRoute.
func (c *Config) Route() flight.Route {
	r := flight.Route{
		Curves:             c.Curves(),
		Resolution:         c.Approach.Resolution,
		HoldSamples:        c.Hold.Samples,
		DescentSteps:       c.Descent.Steps,
		DescentDrop:        c.Descent.Drop,
		DescentRevolutions: c.Descent.Revolutions,
		LandingSteps:       c.Landing.Steps,
	}
	if len(c.Hold.Center) == 3 {
		r.Circle = flight.Circle{
			Center:     vec(c.Hold.Center),
			Radius:     c.Hold.Radius,
			StartAngle: c.Hold.StartAngle,
		}
	}
	return r
}

// Options converts the flight section for flight.NewAnimator.
func (c *Config) Options() flight.Options {
	return flight.Options{
		BaseInterval: time.Duration(c.Flight.BaseIntervalMS) * time.Millisecond,
		Forward:      vec(c.Flight.Forward),
		TurnRate:     c.Flight.TurnRate,
	}
}

// Field converts the asteroid section for debris.Scatter.
func (c *Config) Field() debris.Config {
	a := c.Asteroids
	return debris.Config{
		Count:     a.Count,
		OffsetMin: a.OffsetMin,
		OffsetMax: a.OffsetMax,
		ScaleMin:  a.ScaleMin,
		ScaleMax:  a.ScaleMax,
		MaxSpin:   a.MaxSpin,
	}
}

// Instance places a landmark as a spinning body around model.
func (l LandmarkConfig) Instance(model debris.Model) *debris.Instance {
	r := l.Radius
	return debris.NewInstance(model, vec(l.Position), mgl64.Vec3{r, r, r}, mgl64.Vec3{0, l.SpinY, 0})
}
