// Package markers derives the angular ticks drawn on the year circle. Ticks
// either sit at fixed clock positions or mark where the seasonal coefficient
// crosses a threshold, found by inverting the seasonal cosine.
package markers

import (
	"math"

	"github.com/tobyhogan/seasons-viewer-tool/pkg/solar"
)

// Category tells the renderer how to draw a marker.
type Category int

const (
	Threshold Category = iota
	Peak
	Trough
	Cardinal
	Diagonal
)

func (c Category) String() string {
	switch c {
	case Threshold:
		return "threshold"
	case Peak:
		return "peak"
	case Trough:
		return "trough"
	case Cardinal:
		return "cardinal"
	case Diagonal:
		return "diagonal"
	}
	return "unknown"
}

// Marker is a single tick on the year circle.
type Marker struct {
	Angle float64 `json:"angle"`
	// Coefficient is the seasonal coefficient at Angle before any phase
	// shift. Time ticks carry -1.
	Coefficient float64  `json:"coefficient"`
	Category    Category `json:"category"`
	// Mirrored marks the second member of a pair, half a turn from the first.
	Mirrored bool `json:"mirrored,omitempty"`
}

// Params drives Compute.
type Params struct {
	Coefficients []float64
	TotalDays    int
	AnchorDay    int
	// PhaseShift rotates every emitted angle, in radians. A positive shift
	// models a response that lags the solar input.
	PhaseShift float64
}

// Compute inverts c = (cos θ + 1)/2 for every coefficient, emitting the
// primary solution and its partner half a turn away, followed by the peak
// and trough markers. The partner of threshold c carries 1-c because the
// cosine changes sign over half a turn.
func Compute(p Params) []Marker {
	out := make([]Marker, 0, 2*len(p.Coefficients)+2)
	if p.TotalDays <= 0 {
		return out
	}

	for _, c := range p.Coefficients {
		c = clamp01(c)
		theta := math.Acos(2*c - 1)
		offset := theta * float64(p.TotalDays) / (2 * math.Pi)
		angle := solar.AngleForDay(float64(p.AnchorDay)+offset, p.TotalDays, p.AnchorDay)

		out = append(out,
			Marker{Angle: angle + p.PhaseShift, Coefficient: c, Category: Threshold},
			Marker{Angle: angle + math.Pi + p.PhaseShift, Coefficient: 1 - c, Category: Threshold, Mirrored: true},
		)
	}

	top := solar.AngleForDay(float64(p.AnchorDay), p.TotalDays, p.AnchorDay)
	out = append(out,
		Marker{Angle: top + p.PhaseShift, Coefficient: 1, Category: Peak},
		Marker{Angle: top + math.Pi + p.PhaseShift, Coefficient: 0, Category: Trough},
	)
	return out
}

// TimeTicks are eight fixed ticks every eighth of a turn, starting at the top:
// solstices and equinoxes on the cardinal points, the cross-quarter days on
// the diagonals.
func TimeTicks() []Marker {
	out := make([]Marker, 0, 8)
	for i := 0; i < 8; i++ {
		cat := Cardinal
		if i%2 == 1 {
			cat = Diagonal
		}
		out = append(out, Marker{
			Angle:       solar.TopAngle + float64(i)*math.Pi/4,
			Coefficient: -1,
			Category:    cat,
		})
	}
	return out
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
