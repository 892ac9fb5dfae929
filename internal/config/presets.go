package config

// Presets are the named scenarios from the reference test suite,
// covering the boundary and end-to-end cases the solver must handle:
// a plain bang-coast-bang line, sharp vs. blended corners, an
// infeasible repeated waypoint, a degenerate collinear blend, and a
// multi-segment zig-zag.
var Presets = map[string]*Config{
	"zig-zag": {
		Name: "zig-zag",
		Waypoints: [][]float64{
			{0, 0, 0},
			{0, 0.2, 1},
			{0, 3, 0.5},
			{1.1, 2, 0},
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
		MaxVelocity:     []float64{1, 1, 1},
		MaxAcceleration: []float64{1, 1, 1},
		MaxDeviation:    0.001,
		TimeStep:        DefaultTimeStep,
	},
	"straight-line": {
		Name:            "straight-line",
		Waypoints:       [][]float64{{0, 0, 0}, {1, 0, 0}},
		MaxVelocity:     []float64{1, 1, 1},
		MaxAcceleration: []float64{1, 1, 1},
		MaxDeviation:    0.001,
		TimeStep:        DefaultTimeStep,
	},
	"right-angle-sharp": {
		Name:            "right-angle-sharp",
		Waypoints:       [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		MaxVelocity:     []float64{1, 1, 1},
		MaxAcceleration: []float64{1, 1, 1},
		MaxDeviation:    0,
		TimeStep:        DefaultTimeStep,
	},
	"right-angle-blended": {
		Name:            "right-angle-blended",
		Waypoints:       [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		MaxVelocity:     []float64{1, 1, 1},
		MaxAcceleration: []float64{1, 1, 1},
		MaxDeviation:    0.1,
		TimeStep:        DefaultTimeStep,
	},
	"repeated-waypoint": {
		Name:            "repeated-waypoint",
		Waypoints:       [][]float64{{1, 1, 1}, {1, 1, 1}},
		MaxVelocity:     []float64{1, 1, 1},
		MaxAcceleration: []float64{1, 1, 1},
		MaxDeviation:    0.1,
		TimeStep:        DefaultTimeStep,
	},
	"collinear-blend": {
		Name:            "collinear-blend",
		Waypoints:       [][]float64{{0, 0}, {1, 0}, {2, 0}},
		MaxVelocity:     []float64{1, 1},
		MaxAcceleration: []float64{1, 1},
		MaxDeviation:    0.1,
		TimeStep:        DefaultTimeStep,
	},
}

// GetPreset returns the named preset, or nil if it doesn't exist.
// Callers must not mutate the returned Config in place; clone it via
// Load/Save round-trip or by copying fields.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the preset names in no particular order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
