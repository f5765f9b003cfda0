package flight

import "math"

// SpeedCommand is a discrete user request against the global speed factor.
type SpeedCommand int

const (
	Increase SpeedCommand = iota
	Decrease
	Reset
)

func (c SpeedCommand) String() string {
	switch c {
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	case Reset:
		return "reset"
	}
	return "unknown"
}

// ClampSpeed bounds f to [MinSpeedFactor, MaxSpeedFactor] and rounds it to
// one decimal so repeated steps never drift.
func ClampSpeed(f float64) float64 {
	if math.IsNaN(f) {
		return DefaultSpeedFactor
	}
	f = math.Round(f*10) / 10
	if f < MinSpeedFactor {
		return MinSpeedFactor
	}
	if f > MaxSpeedFactor {
		return MaxSpeedFactor
	}
	return f
}

// ApplySpeed returns the factor after cmd. It never fails.
func ApplySpeed(factor float64, cmd SpeedCommand) float64 {
	switch cmd {
	case Increase:
		return ClampSpeed(factor + SpeedStep)
	case Decrease:
		return ClampSpeed(factor - SpeedStep)
	case Reset:
		return DefaultSpeedFactor
	}
	return ClampSpeed(factor)
}
