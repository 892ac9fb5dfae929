package store

import (
	"encoding/json"
	"os"

	"github.com/san-kum/trajplan/internal/trajopt"
)

// ExportData is the full-fidelity JSON export of a solved trajectory,
// intended for downstream plotting or replay tooling outside this
// module.
type ExportData struct {
	Scenario     string    `json:"scenario"`
	Valid        bool      `json:"valid"`
	Duration     float64   `json:"duration"`
	Steps        int       `json:"steps"`
	PathPos      []float64 `json:"path_pos"`
	PathVel      []float64 `json:"path_vel"`
	Time         []float64 `json:"time"`
	PathLength   float64   `json:"path_length"`
	MaxDeviation float64   `json:"max_deviation"`
}

func buildExportData(scenario string, maxDeviation float64, traj *trajopt.Trajectory) ExportData {
	profile := traj.Profile()
	data := ExportData{
		Scenario:     scenario,
		Valid:        traj.IsValid(),
		Duration:     traj.Duration(),
		Steps:        len(profile),
		PathPos:      make([]float64, len(profile)),
		PathVel:      make([]float64, len(profile)),
		Time:         make([]float64, len(profile)),
		PathLength:   traj.Path().Length,
		MaxDeviation: maxDeviation,
	}
	for i, step := range profile {
		data.PathPos[i] = step.PathPos
		data.PathVel[i] = step.PathVel
		data.Time[i] = step.Time
	}
	return data
}

// ExportJSON writes the full sampled trajectory to path as indented
// JSON.
func ExportJSON(path, scenario string, maxDeviation float64, traj *trajopt.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(buildExportData(scenario, maxDeviation, traj))
}

// ExportJSONStdout writes the full sampled trajectory to stdout as
// indented JSON.
func ExportJSONStdout(scenario string, maxDeviation float64, traj *trajopt.Trajectory) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(buildExportData(scenario, maxDeviation, traj))
}
