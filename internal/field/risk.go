package field

// Risk levels assigned to each cell
const (
	RiskNone     = 0.0
	RiskElevated = 0.5
	RiskHigh     = 1.0
)

// Thresholds classifies crowd density into turbulence risk. Both bounds are
// exclusive: a density equal to a threshold stays in the lower tier.
type Thresholds struct {
	Elevated float64
	High     float64
}

// Level returns the risk level for a single density value
func (t Thresholds) Level(density float64) float64 {
	switch {
	case density > t.High:
		return RiskHigh
	case density > t.Elevated:
		return RiskElevated
	default:
		return RiskNone
	}
}

// Risk derives the risk field from a (clamped) density field
func Risk(density *Field, t Thresholds) *Field {
	return density.Map(t.Level)
}
