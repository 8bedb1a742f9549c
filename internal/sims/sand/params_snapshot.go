package sand

import (
	"strconv"

	"falling-sand/internal/core"
)

// PresetKey is the HUD control key that selects a grid size preset.
const PresetKey = "preset"

// Parameters returns the grid, material and color values shown on the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	label := "custom"
	idx := PresetIndex(w.w, w.h)
	if idx >= 0 {
		label = presets[idx].Label
	}
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", w.w),
				intParam("h", "Height", w.h),
				intParam(PresetKey, "Grid size", idx),
				{Key: "preset_label", Label: "Preset", Type: core.ParamTypeString, Value: label},
			},
		},
		{
			Name: "Material",
			Params: []core.Parameter{
				intParam("grains", "Grains", w.Count()),
				{Key: "ticks", Label: "Ticks", Type: core.ParamTypeInt, Value: strconv.FormatUint(w.ticks, 10)},
			},
		},
		{
			Name: "Color",
			Params: []core.Parameter{
				floatParam("color_r", "Red", float64(w.cfg.Color.R)),
				floatParam("color_g", "Green", float64(w.cfg.Color.G)),
				floatParam("color_b", "Blue", float64(w.cfg.Color.B)),
				floatParam("tint", "Tint", w.cfg.Tint),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable values.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    PresetKey,
			Label:  "Grid size",
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    0,
			Max:    float64(len(presets) - 1),
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetIntParameter applies a HUD adjustment. Selecting a preset resizes the
// grid, which resets it to empty.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case PresetKey:
		if value < 0 || value >= len(presets) {
			return false
		}
		p := presets[value]
		return w.Resize(p.Width, p.Height) == nil
	default:
		return false
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
