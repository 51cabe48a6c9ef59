package core

import (
	"math"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes on/off toggles.
	ParamTypeBool ParamType = "bool"
	// ParamTypeColor denotes "#rrggbb" colors.
	ParamTypeColor ParamType = "color"
	// ParamTypeString denotes free-form names.
	ParamTypeString ParamType = "string"
)

// Parameter is one named value of the current configuration, rendered as text.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the full configuration at one point in time.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Float parses the parameter value as a number. Booleans map to 0/1.
func (p Parameter) Float() (float64, bool) {
	switch p.Type {
	case ParamTypeInt, ParamTypeFloat:
		v, err := strconv.ParseFloat(p.Value, 64)
		return v, err == nil
	case ParamTypeBool:
		v, err := strconv.ParseBool(p.Value)
		if err != nil {
			return 0, false
		}
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// ParameterControl describes a value the HUD can step up and down. Bounds are
// optional.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Clamp limits v to the control's bounds and rounds integer controls.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.Type == ParamTypeInt || c.Type == ParamTypeBool {
		v = math.Round(v)
	}
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// ParameterSetter applies a HUD adjustment. Integer and toggle controls
// receive whole numbers. It reports whether the value was accepted.
type ParameterSetter interface {
	SetParameter(key string, value float64) bool
}
