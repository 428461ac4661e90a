package markers

import (
	"fmt"
	"math"
	"strings"

	"github.com/tobyhogan/seasons-viewer-tool/pkg/solar"
)

// Mode selects which marker set the year circle shows.
type Mode int

const (
	ModeTime Mode = iota
	ModeIntensity
	ModeTemperature
	ModeCombined
)

var modeNames = map[Mode]string{
	ModeTime:        "time",
	ModeIntensity:   "intensity",
	ModeTemperature: "temperature",
	ModeCombined:    "combined",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the names produced by String, case-insensitively.
func ParseMode(s string) (Mode, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == want {
			return m, nil
		}
	}
	return ModeTime, fmt.Errorf("unknown marker mode %q (want time, intensity, temperature or combined)", s)
}

// Next cycles through the modes in declaration order.
func (m Mode) Next() Mode {
	return (m + 1) % Mode(len(modeNames))
}

// MarshalText lets modes travel as strings in JSON and YAML.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// PhaseWeeks is how far the mode's markers trail the solar input, in weeks.
// Temperature trails by about five weeks; the combined view splits the
// difference.
func (m Mode) PhaseWeeks() float64 {
	switch m {
	case ModeTemperature:
		return 5
	case ModeCombined:
		return 2.5
	}
	return 0
}

// PhaseShift is PhaseWeeks expressed as an angle on the year circle.
func (m Mode) PhaseShift() float64 {
	return PhaseShiftForWeeks(m.PhaseWeeks())
}

// PhaseShiftForWeeks converts a delay in weeks to radians on the year circle.
func PhaseShiftForWeeks(weeks float64) float64 {
	return weeks / 52 * 2 * math.Pi
}

// Daily peak intensity thresholds (75th percentile, average, 25th percentile)
// and the intensity the coefficient's zero maps to.
var IntensityThresholds = []float64{0.8, 0.595, 0.4}

const IntensityFloor = 0.197

// FromIntensities converts peak-intensity fractions into seasonal coefficients,
// undoing intensity = floor + (1-floor)·coefficient.
func FromIntensities(intensities []float64, floor float64) []float64 {
	b := solar.Bounds{Low: floor, High: 1}
	out := make([]float64, len(intensities))
	for i, v := range intensities {
		out[i] = b.Inverse(v)
	}
	return out
}

// ForMode is the single dispatch point for the year circle's markers.
func ForMode(mode Mode, totalDays, anchorDay int) []Marker {
	if mode == ModeTime {
		return TimeTicks()
	}
	return Compute(Params{
		Coefficients: FromIntensities(IntensityThresholds, IntensityFloor),
		TotalDays:    totalDays,
		AnchorDay:    anchorDay,
		PhaseShift:   mode.PhaseShift(),
	})
}
