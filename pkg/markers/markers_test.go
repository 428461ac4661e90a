package markers

import (
	"math"
	"testing"

	"github.com/tobyhogan/seasons-viewer-tool/pkg/solar"
)

const angleTolerance = 1e-9

func TestComputeMapsBackToCoefficient(t *testing.T) {
	tests := []struct {
		name      string
		totalDays int
		anchorDay int
	}{
		{"common year", 365, 172},
		{"leap year", 366, 173},
	}

	coeffs := []float64{0.8, 0.595, 0.4, 0.5, 0.1, 0.95}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := Compute(Params{Coefficients: coeffs, TotalDays: tt.totalDays, AnchorDay: tt.anchorDay})
			if len(ms) != 2*len(coeffs)+2 {
				t.Fatalf("got %d markers, expected %d", len(ms), 2*len(coeffs)+2)
			}
			for _, m := range ms {
				day := solar.DayForAngle(m.Angle, tt.totalDays, tt.anchorDay)
				got := solar.SeasonalCoefficient(float64(day), tt.totalDays, tt.anchorDay)
				if math.Abs(got-m.Coefficient) > 0.01 {
					t.Errorf("marker %+v maps to day %d with coefficient %.4f", m, day, got)
				}
			}
		})
	}
}

func TestComputePairsAreHalfATurnApart(t *testing.T) {
	ms := Compute(Params{Coefficients: []float64{0.75, 0.25}, TotalDays: 365, AnchorDay: 172, PhaseShift: 0.3})
	for i := 0; i < 4; i += 2 {
		primary, mirror := ms[i], ms[i+1]
		if primary.Mirrored || !mirror.Mirrored {
			t.Fatalf("pair %d not ordered primary/mirror: %+v %+v", i/2, primary, mirror)
		}
		if diff := mirror.Angle - primary.Angle; math.Abs(diff-math.Pi) > angleTolerance {
			t.Errorf("pair %d separated by %v, expected π", i/2, diff)
		}
		if math.Abs(primary.Coefficient+mirror.Coefficient-1) > angleTolerance {
			t.Errorf("pair %d coefficients %v and %v should sum to 1", i/2, primary.Coefficient, mirror.Coefficient)
		}
	}
}

func TestComputeExtrema(t *testing.T) {
	ms := Compute(Params{Coefficients: nil, TotalDays: 365, AnchorDay: 172})
	if len(ms) != 2 {
		t.Fatalf("got %d markers, expected only the two extrema", len(ms))
	}
	if ms[0].Category != Peak || math.Abs(ms[0].Angle-solar.TopAngle) > angleTolerance {
		t.Errorf("peak marker = %+v, expected angle -π/2", ms[0])
	}
	if ms[1].Category != Trough || math.Abs(ms[1].Angle-math.Pi/2) > angleTolerance {
		t.Errorf("trough marker = %+v, expected angle π/2", ms[1])
	}
}

func TestPhaseShiftRotatesUniformly(t *testing.T) {
	coeffs := FromIntensities(IntensityThresholds, IntensityFloor)
	base := Compute(Params{Coefficients: coeffs, TotalDays: 365, AnchorDay: 172})
	shift := PhaseShiftForWeeks(5)
	shifted := Compute(Params{Coefficients: coeffs, TotalDays: 365, AnchorDay: 172, PhaseShift: shift})

	if len(base) != len(shifted) {
		t.Fatalf("marker counts differ: %d vs %d", len(base), len(shifted))
	}
	for i := range base {
		if d := shifted[i].Angle - base[i].Angle; math.Abs(d-shift) > angleTolerance {
			t.Errorf("marker %d rotated by %v, expected %v", i, d, shift)
		}
		if shifted[i].Coefficient != base[i].Coefficient {
			t.Errorf("marker %d coefficient changed under phase shift", i)
		}
	}
}

func TestComputeDegenerateInput(t *testing.T) {
	if ms := Compute(Params{Coefficients: []float64{0.5}, TotalDays: 0}); len(ms) != 0 {
		t.Errorf("zero-length year produced %d markers", len(ms))
	}
	ms := Compute(Params{Coefficients: []float64{1.7, -3, math.NaN()}, TotalDays: 365, AnchorDay: 172})
	for _, m := range ms {
		if math.IsNaN(m.Angle) {
			t.Fatalf("NaN angle for out-of-range coefficient: %+v", m)
		}
	}
}

func TestFromIntensities(t *testing.T) {
	got := FromIntensities([]float64{IntensityFloor, 1, 0.1}, IntensityFloor)
	expected := []float64{0, 1, 0}
	for i := range expected {
		if math.Abs(got[i]-expected[i]) > 1e-12 {
			t.Errorf("FromIntensities[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}

	// The thresholds sit on the panel's peak intensity scale.
	coeffs := FromIntensities(IntensityThresholds, IntensityFloor)
	for i, v := range IntensityThresholds {
		if want := solar.PeakIntensity.Inverse(v * 100); math.Abs(coeffs[i]-want) > 1e-9 {
			t.Errorf("coefficient for %v = %v, expected %v", v, coeffs[i], want)
		}
	}
}

func TestTimeTicks(t *testing.T) {
	ticks := TimeTicks()
	if len(ticks) != 8 {
		t.Fatalf("got %d ticks, expected 8", len(ticks))
	}
	cardinals := 0
	for i, tick := range ticks {
		expected := -math.Pi/2 + float64(i)*math.Pi/4
		if math.Abs(tick.Angle-expected) > angleTolerance {
			t.Errorf("tick %d angle = %v, expected %v", i, tick.Angle, expected)
		}
		if tick.Category == Cardinal {
			cardinals++
		}
	}
	if cardinals != 4 {
		t.Errorf("got %d cardinal ticks, expected 4", cardinals)
	}
}

func TestModes(t *testing.T) {
	tests := []struct {
		mode  Mode
		name  string
		weeks float64
	}{
		{ModeTime, "time", 0},
		{ModeIntensity, "intensity", 0},
		{ModeTemperature, "temperature", 5},
		{ModeCombined, "combined", 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mode.String() != tt.name {
				t.Errorf("String() = %q", tt.mode.String())
			}
			parsed, err := ParseMode(" " + tt.name + " ")
			if err != nil || parsed != tt.mode {
				t.Errorf("ParseMode(%q) = %v, %v", tt.name, parsed, err)
			}
			if tt.mode.PhaseWeeks() != tt.weeks {
				t.Errorf("PhaseWeeks() = %v, expected %v", tt.mode.PhaseWeeks(), tt.weeks)
			}
		})
	}

	if _, err := ParseMode("lunar"); err == nil {
		t.Error("ParseMode accepted an unknown mode")
	}
	if ModeCombined.Next() != ModeTime {
		t.Errorf("ModeCombined.Next() = %v, expected time", ModeCombined.Next())
	}

	var m Mode
	if err := m.UnmarshalText([]byte("Temperature")); err != nil || m != ModeTemperature {
		t.Errorf("UnmarshalText = %v, %v", m, err)
	}
}

func TestForMode(t *testing.T) {
	if got := len(ForMode(ModeTime, 365, 172)); got != 8 {
		t.Errorf("time mode produced %d markers, expected 8", got)
	}

	intensity := ForMode(ModeIntensity, 365, 172)
	temperature := ForMode(ModeTemperature, 365, 172)
	if len(intensity) != 2*len(IntensityThresholds)+2 {
		t.Fatalf("intensity mode produced %d markers", len(intensity))
	}
	shift := ModeTemperature.PhaseShift()
	for i := range intensity {
		if d := temperature[i].Angle - intensity[i].Angle; math.Abs(d-shift) > angleTolerance {
			t.Errorf("temperature marker %d offset %v, expected %v", i, d, shift)
		}
	}
}
