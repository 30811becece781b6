// Package storage persists simulation runs: one directory per run holding
// metadata.json and a long-format trajectory.csv (time, compartment,
// value).
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/ecodyn/metaflux/internal/ode"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string    `json:"id"`
	Preset       string    `json:"preset"`
	Timestamp    time.Time `json:"timestamp"`
	Temperature  float64   `json:"temperature"`
	Start        float64   `json:"start"`
	Stop         float64   `json:"stop"`
	Step         float64   `json:"step"`
	Compartments int       `json:"compartments"`
	Samples      int       `json:"samples"`
}

// Row is one CSV record: the value of one compartment at one sample time.
type Row struct {
	Time        float64 `csv:"time"`
	Compartment int     `csv:"compartment"`
	Value       float64 `csv:"value"`
}

// Save writes a run directory and returns its ID.
func (s *Store) Save(preset string, temperature, start, stop, step float64, traj *ode.Trajectory) (string, error) {
	runID := fmt.Sprintf("%s_%d", preset, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	compartments := 0
	if traj.Len() > 0 {
		compartments = len(traj.States[0])
	}

	meta := RunMetadata{
		ID:           runID,
		Preset:       preset,
		Timestamp:    time.Now(),
		Temperature:  temperature,
		Start:        start,
		Stop:         stop,
		Step:         step,
		Compartments: compartments,
		Samples:      traj.Len(),
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

	if err := writeTrajectory(filepath.Join(runDir, "trajectory.csv"), traj); err != nil {
		return "", err
	}

	return runID, nil
}

func writeTrajectory(path string, traj *ode.Trajectory) error {
	rows := make([]*Row, 0, traj.Len()*4)
	for i := 0; i < traj.Len(); i++ {
		tm, state := traj.At(i)
		for j, v := range state {
			rows = append(rows, &Row{Time: tm, Compartment: j, Value: v})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&rows, f)
}

// LoadTrajectory reads a run's CSV back into a trajectory.
func (s *Store) LoadTrajectory(runID string) (*ode.Trajectory, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []*Row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, err
	}

	traj := &ode.Trajectory{}
	var current ode.State
	lastTime := 0.0
	for _, r := range rows {
		if len(traj.Times) == 0 || r.Time != lastTime {
			if current != nil {
				traj.States = append(traj.States, current)
			}
			traj.Times = append(traj.Times, r.Time)
			lastTime = r.Time
			current = ode.State{}
		}
		current = append(current, r.Value)
	}
	if current != nil {
		traj.States = append(traj.States, current)
	}
	return traj, nil
}

// LoadMetadata reads a run's metadata.json.
func (s *Store) LoadMetadata(runID string) (*RunMetadata, error) {
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

// List returns the IDs of all stored runs, newest directory order not
// guaranteed.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}
