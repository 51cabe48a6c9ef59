package scene

import (
	"strconv"

	icore "isofield/internal/core"
)

var controls = []icore.ParameterControl{
	{Key: "threshold", Label: "Threshold", Type: icore.ParamTypeFloat, Step: 1, Min: DisplayMin, Max: DisplayMax, HasMin: true, HasMax: true},
	{Key: "octaves", Label: "Octaves", Type: icore.ParamTypeInt, Step: 1, Min: 1, Max: 8, HasMin: true, HasMax: true},
	{Key: "lacunarity", Label: "Lacunarity", Type: icore.ParamTypeFloat, Step: 0.1, Min: 1, Max: 4, HasMin: true, HasMax: true},
	{Key: "persistence", Label: "Persistence", Type: icore.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "base_scale", Label: "Base scale", Type: icore.ParamTypeFloat, Step: 0.001, Min: 0.0001, Max: 1, HasMin: true, HasMax: true},
	{Key: "grid", Label: "Grid size", Type: icore.ParamTypeInt, Step: 5, Min: 2, Max: 100, HasMin: true, HasMax: true},
	{Key: "opacity", Label: "Overlay opacity", Type: icore.ParamTypeFloat, Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
	{Key: "show_threshold", Label: "Threshold overlay", Type: icore.ParamTypeBool, Step: 1, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "show_samples", Label: "Sample points", Type: icore.ParamTypeBool, Step: 1, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "show_crossings", Label: "Crossing points", Type: icore.ParamTypeBool, Step: 1, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "show_lines", Label: "Lines", Type: icore.ParamTypeBool, Step: 1, Min: 0, Max: 1, HasMin: true, HasMax: true},
}

var controlByKey = func() map[string]icore.ParameterControl {
	m := make(map[string]icore.ParameterControl, len(controls))
	for _, c := range controls {
		m[c.Key] = c
	}
	return m
}()

// Parameters reports the configuration grouped for display.
func (c Config) Parameters() icore.ParameterSnapshot {
	groups := []icore.ParameterGroup{
		{
			Name: "Canvas",
			Params: []icore.Parameter{
				intParam("width", "Width", c.Width),
				intParam("height", "Height", c.Height),
				floatParam("offset_x", "Offset X", c.OffsetX),
				floatParam("offset_y", "Offset Y", c.OffsetY),
			},
		},
		{
			Name: "Fractal",
			Params: []icore.Parameter{
				intParam("octaves", "Octaves", c.Noise.Octaves),
				floatParam("lacunarity", "Lacunarity", c.Noise.Lacunarity),
				floatParam("persistence", "Persistence", c.Noise.Persistence),
				floatParam("base_scale", "Base scale", c.Noise.BaseScale),
				{Key: "primitive", Label: "Primitive", Type: icore.ParamTypeString, Value: c.Primitive},
				{Key: "seed", Label: "Seed", Type: icore.ParamTypeInt, Value: strconv.FormatInt(c.Seed, 10)},
			},
		},
		{
			Name: "Threshold",
			Params: []icore.Parameter{
				floatParam("threshold", "Threshold", c.Threshold),
				colorParam("below", "Below color", c.BelowColor),
				colorParam("above", "Above color", c.AboveColor),
				floatParam("opacity", "Overlay opacity", c.Opacity),
				boolParam("show_threshold", "Threshold overlay", c.Layers.Threshold),
			},
		},
		{
			Name: "Marching Squares",
			Params: []icore.Parameter{
				intParam("grid", "Grid size", c.GridStep),
				boolParam("show_samples", "Sample points", c.Layers.SamplePoints),
				boolParam("show_crossings", "Crossing points", c.Layers.CrossingPoints),
				boolParam("show_lines", "Lines", c.Layers.Lines),
			},
		},
	}
	return icore.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) icore.Parameter {
	return icore.Parameter{Key: key, Label: label, Type: icore.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) icore.Parameter {
	return icore.Parameter{Key: key, Label: label, Type: icore.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) icore.Parameter {
	return icore.Parameter{Key: key, Label: label, Type: icore.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func colorParam(key, label, value string) icore.Parameter {
	return icore.Parameter{Key: key, Label: label, Type: icore.ParamTypeColor, Value: value}
}
