package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Trajectory collects the accepted steps of one integration run in a
// form suitable for offline analysis.
type Trajectory struct {
	Model       string      `json:"model"`
	Duration    float64     `json:"duration"`
	Times       []float64   `json:"times"`
	Steps       []float64   `json:"steps"`
	States      [][]float64 `json:"states"`
	Accepted    int         `json:"accepted"`
	Rejected    int         `json:"rejected"`
	Evaluations int         `json:"evaluations"`
}

func NewTrajectory(model string, duration float64) *Trajectory {
	return &Trajectory{Model: model, Duration: duration}
}

// Record appends one accepted step. The state slice is copied so the
// caller may reuse its buffer.
func (tr *Trajectory) Record(t, h float64, state []float64) {
	tr.Times = append(tr.Times, t)
	tr.Steps = append(tr.Steps, h)
	tr.States = append(tr.States, append([]float64(nil), state...))
}

// Write picks the output format from the file extension: .csv writes a
// flat table, anything else writes indented JSON.
func Write(path string, tr *Trajectory) error {
	if filepath.Ext(path) == ".csv" {
		return WriteCSV(path, tr)
	}
	return WriteJSON(path, tr)
}

func WriteJSON(path string, tr *Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tr)
}

// WriteCSV writes one row per accepted step: time, step size, then the
// state components.
func WriteCSV(path string, tr *Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	header := []string{"time", "step"}
	dim := 0
	if len(tr.States) > 0 {
		dim = len(tr.States[0])
	}
	for i := 0; i < dim; i++ {
		header = append(header, fmt.Sprintf("y%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, t := range tr.Times {
		row := []string{
			strconv.FormatFloat(t, 'g', 17, 64),
			strconv.FormatFloat(tr.Steps[i], 'g', 17, 64),
		}
		for _, y := range tr.States[i] {
			row = append(row, strconv.FormatFloat(y, 'g', 17, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
