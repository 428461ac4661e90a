package scene

import (
	"github.com/tobyhogan/seasons-viewer-tool/internal/session"
	"github.com/tobyhogan/seasons-viewer-tool/internal/views/daycurve"
)

// Action is a keyboard command applied to the session.
type Action int

const (
	ActionToday Action = iota
	ActionNow
	ActionCycleMode
	ActionToggleScheme
	ActionToggleVariant
)

// Apply performs the action.
func (a Action) Apply(s *session.Session) {
	switch a {
	case ActionToday:
		s.ResetToToday()
	case ActionNow:
		s.ResetToNow()
	case ActionCycleMode:
		s.CycleMode()
	case ActionToggleScheme:
		s.ToggleScheme()
	case ActionToggleVariant:
		if s.State().Variant == daycurve.Intensity.String() {
			s.SetVariant(daycurve.Elevation)
		} else {
			s.SetVariant(daycurve.Intensity)
		}
	}
}
