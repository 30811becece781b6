package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/ecodyn/metaflux/internal/ode"
)

type ExportData struct {
	Preset      string      `json:"preset"`
	Temperature float64     `json:"temperature"`
	Samples     int         `json:"samples"`
	Times       []float64   `json:"times"`
	States      [][]float64 `json:"states"`
}

func exportData(preset string, temperature float64, traj *ode.Trajectory) ExportData {
	data := ExportData{
		Preset:      preset,
		Temperature: temperature,
		Samples:     traj.Len(),
		Times:       traj.Times,
		States:      make([][]float64, len(traj.States)),
	}
	for i, s := range traj.States {
		data.States[i] = s
	}
	return data
}

// ExportJSON writes the trajectory as indented JSON to w.
func ExportJSON(w io.Writer, preset string, temperature float64, traj *ode.Trajectory) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(preset, temperature, traj))
}

// ExportJSONFile writes the trajectory as indented JSON to path.
func ExportJSONFile(path, preset string, temperature float64, traj *ode.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ExportJSON(f, preset, temperature, traj)
}
