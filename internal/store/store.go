// Package store persists solved trajectories to disk: JSON metadata
// plus a CSV phase-plane profile per run, and JSON export of the full
// sampled trajectory for downstream tooling.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/trajplan/internal/trajopt"
)

// Store persists trajectory runs under a base directory, one
// subdirectory per run.
type Store struct {
	baseDir string
}

// New returns a Store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the base directory if it does not already exist.
func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is the JSON sidecar written alongside a run's profile.
type RunMetadata struct {
	ID              string    `json:"id"`
	Scenario        string    `json:"scenario"`
	Timestamp       time.Time `json:"timestamp"`
	Valid           bool      `json:"valid"`
	Duration        float64   `json:"duration"`
	Steps           int       `json:"steps"`
	MaxVelocity     []float64 `json:"max_velocity"`
	MaxAcceleration []float64 `json:"max_acceleration"`
	MaxDeviation    float64   `json:"max_deviation"`
	TimeStep        float64   `json:"time_step"`
}

// Save writes traj's metadata and phase-plane profile under a new
// run directory named after scenario and the current time, returning
// the run ID.
func (s *Store) Save(scenario string, maxVelocity, maxAcceleration []float64, maxDeviation, timeStep float64, traj *trajopt.Trajectory) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:              runID,
		Scenario:        scenario,
		Timestamp:       time.Now(),
		Valid:           traj.IsValid(),
		Duration:        traj.Duration(),
		Steps:           len(traj.Profile()),
		MaxVelocity:     maxVelocity,
		MaxAcceleration: maxAcceleration,
		MaxDeviation:    maxDeviation,
		TimeStep:        timeStep,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeProfileCSV(filepath.Join(runDir, "profile.csv"), traj.Profile()); err != nil {
		return "", err
	}

	return runID, nil
}

func writeProfileCSV(path string, profile []trajopt.TrajectoryStep) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"path_pos", "path_vel", "time"}); err != nil {
		return err
	}
	for _, step := range profile {
		row := []string{
			strconv.FormatFloat(step.PathPos, 'f', 9, 64),
			strconv.FormatFloat(step.PathVel, 'f', 9, 64),
			strconv.FormatFloat(step.Time, 'f', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// List returns the metadata of every run stored under the base
// directory, skipping entries whose metadata cannot be read.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

// Load reads back a run's metadata by ID.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadProfile reads back a run's phase-plane profile by ID.
func (s *Store) LoadProfile(runID string) ([]trajopt.TrajectoryStep, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "profile.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []trajopt.TrajectoryStep{}, nil
	}

	steps := make([]trajopt.TrajectoryStep, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != 3 {
			continue
		}
		pos, err1 := strconv.ParseFloat(rec[0], 64)
		vel, err2 := strconv.ParseFloat(rec[1], 64)
		tm, err3 := strconv.ParseFloat(rec[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		steps = append(steps, trajopt.TrajectoryStep{PathPos: pos, PathVel: vel, Time: tm})
	}
	return steps, nil
}
