package render

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorScheme is a resolved palette. Widgets read it, never mutate it.
type ColorScheme struct {
	Name       string
	Background colorful.Color
	Circle     colorful.Color
	Label      colorful.Color
	Blue       colorful.Color
	BlueLight  colorful.Color
	Red        colorful.Color
	Yellow     colorful.Color
	Green      colorful.Color
	Axis       colorful.Color
	AxisLabel  colorful.Color
	AxisDotted colorful.Color
	DotOutline colorful.Color

	// Gradient stops of the year circle: Summer1 at the top, Summer2 and
	// Winter2 at the horizontal diameter, Winter1 at the bottom.
	Summer1 colorful.Color
	Summer2 colorful.Color
	Winter1 colorful.Color
	Winter2 colorful.Color
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("render: bad palette color %q: %v", s, err))
	}
	return c
}

var (
	// Light is the default palette.
	Light = ColorScheme{
		Name:       "light",
		Background: mustHex("#ffffff"),
		Circle:     mustHex("#23272f"),
		Label:      mustHex("#23272f"),
		Blue:       mustHex("#0074d9"),
		BlueLight:  mustHex("#7ecbff"),
		Red:        mustHex("#e53935"),
		Yellow:     mustHex("#1e9636"),
		Green:      mustHex("#09bb4b"),
		Axis:       mustHex("#23272f"),
		AxisLabel:  mustHex("#23272f"),
		AxisDotted: mustHex("#888888"),
		DotOutline: mustHex("#23272f"),
		Summer1:    mustHex("#ffff00"),
		Summer2:    mustHex("#ffa8a8"),
		Winter1:    mustHex("#0077ff"),
		Winter2:    mustHex("#ffa8a8"),
	}

	// Dark is the palette used when the host enables its dark theme.
	Dark = ColorScheme{
		Name:       "dark",
		Background: mustHex("#23272f"),
		Circle:     mustHex("#e0e6f0"),
		Label:      mustHex("#e0e6f0"),
		Blue:       mustHex("#7ecbff"),
		BlueLight:  mustHex("#b3e0ff"),
		Red:        mustHex("#ff8a80"),
		Yellow:     mustHex("#20e648"),
		Green:      mustHex("#7fff9f"),
		Axis:       mustHex("#e0e6f0"),
		AxisLabel:  mustHex("#e0e6f0"),
		AxisDotted: mustHex("#b3b3b3"),
		DotOutline: mustHex("#e0e6f0"),
		Summer1:    mustHex("#ffff00"),
		Summer2:    mustHex("#ffa8a8"),
		Winter1:    mustHex("#0077ff"),
		Winter2:    mustHex("#ffa8a8"),
	}
)

// SchemeByName resolves "light" or "dark".
func SchemeByName(name string) (ColorScheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return ColorScheme{}, fmt.Errorf("unknown color scheme %q", name)
}

// Toggle returns the other built-in palette.
func (s ColorScheme) Toggle() ColorScheme {
	if s.Name == Dark.Name {
		return Light
	}
	return Dark
}

// Blend interpolates linearly in RGB between a and b.
func Blend(a, b colorful.Color, t float64) colorful.Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.BlendRgb(b, t)
}
