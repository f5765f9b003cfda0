package debris

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"approach/v2/flight"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

const DefaultMaxSpin = 0.02

var (
	ErrNoCurves = errors.New("debris: no reference curves")
	ErrBadCount = errors.New("debris: negative instance count")
	ErrBadBand  = errors.New("debris: invalid range")
)

// Model is the visual template instances are duplicated from. The field
// never builds one; it only hangs transform data off each copy.
type Model interface {
	Duplicate() Model
}

// Config bounds the random draws for a field.
type Config struct {
	Count     int
	OffsetMin float64
	OffsetMax float64
	ScaleMin  float64
	ScaleMax  float64
	MaxSpin   float64 // radians per tick, per axis
}

func (c Config) validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: %d", ErrBadCount, c.Count)
	}
	if c.OffsetMin < 0 || c.OffsetMin > c.OffsetMax {
		return fmt.Errorf("%w: offset [%g, %g]", ErrBadBand, c.OffsetMin, c.OffsetMax)
	}
	if c.ScaleMin <= 0 || c.ScaleMin > c.ScaleMax {
		return fmt.Errorf("%w: scale [%g, %g]", ErrBadBand, c.ScaleMin, c.ScaleMax)
	}
	if c.MaxSpin < 0 {
		return fmt.Errorf("%w: max spin %g", ErrBadBand, c.MaxSpin)
	}
	return nil
}

// Instance is one piece of rotatable debris. Position, Scale and Spin are
// fixed at creation; Angle accumulates Spin once per Advance and is never
// wrapped.
type Instance struct {
	ID    uuid.UUID
	Model Model

	Position mgl64.Vec3
	Scale    mgl64.Vec3
	Spin     mgl64.Vec3
	Angle    mgl64.Vec3

	// AutoTransform is false for debris: World is written only by Advance.
	AutoTransform bool
	World         mgl64.Mat4
}

// NewInstance places a template copy at pos with the given scale and spin.
func NewInstance(model Model, pos, scale, spin mgl64.Vec3) *Instance {
	inst := &Instance{
		ID:       uuid.New(),
		Position: pos,
		Scale:    scale,
		Spin:     spin,
	}
	if model != nil {
		inst.Model = model.Duplicate()
	}
	inst.World = Compose(Translation(pos), Rotation(inst.Angle), Scaling(scale))
	return inst
}

// Advance steps the angle accumulator and rebuilds World from scratch.
func (inst *Instance) Advance() {
	inst.Angle = inst.Angle.Add(inst.Spin)
	inst.World = Compose(Translation(inst.Position), Rotation(inst.Angle), Scaling(inst.Scale))
}

// Field owns every debris instance for the session.
type Field struct {
	Instances []*Instance
}

// Len returns the instance count.
func (f *Field) Len() int { return len(f.Instances) }

// Update advances every instance once. Instances never read each other.
func (f *Field) Update() {
	for _, inst := range f.Instances {
		inst.Advance()
	}
}

// Scatter drops cfg.Count template copies near random points on curves.
func Scatter(curves []flight.Cubic, cfg Config, template Model, rng *rand.Rand) (*Field, error) {
	if len(curves) == 0 {
		return nil, ErrNoCurves
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	f := &Field{Instances: make([]*Instance, 0, cfg.Count)}
	for i := 0; i < cfg.Count; i++ {
		curve := curves[rng.Intn(len(curves))]
		base := curve.At(rng.Float64())
		pos := base.Add(SphericalOffset(rng, cfg.OffsetMin, cfg.OffsetMax))

		s := cfg.ScaleMin + rng.Float64()*(cfg.ScaleMax-cfg.ScaleMin)
		spin := mgl64.Vec3{
			rng.Float64() * cfg.MaxSpin,
			rng.Float64() * cfg.MaxSpin,
			rng.Float64() * cfg.MaxSpin,
		}

		f.Instances = append(f.Instances, NewInstance(template, pos, mgl64.Vec3{s, s, s}, spin))
	}
	return f, nil
}

// SphericalOffset draws theta and phi independently and uniformly in
// [0, 2pi) and a radius in [min, max). Density is not uniform over solid
// angle; points bunch toward the poles.
func SphericalOffset(rng *rand.Rand, min, max float64) mgl64.Vec3 {
	theta := rng.Float64() * 2 * math.Pi
	phi := rng.Float64() * 2 * math.Pi
	d := min + rng.Float64()*(max-min)

	return mgl64.Vec3{
		d * math.Sin(phi) * math.Cos(theta),
		d * math.Sin(phi) * math.Sin(theta),
		d * math.Cos(phi),
	}
}
