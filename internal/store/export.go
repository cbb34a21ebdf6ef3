package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/swingby/internal/dynamo"
)

// Header is the column layout of trajectory CSV files.
var Header = []string{"i", "t", "x", "y", "vx", "vy"}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// WriteCSV writes the header and one row per sample, index 0 through N.
func WriteCSV(w io.Writer, traj dynamo.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	row := make([]string, len(Header))
	for i, s := range traj {
		row[0] = strconv.Itoa(i)
		row[1] = formatFloat(s.Time)
		row[2] = formatFloat(s.X)
		row[3] = formatFloat(s.Y)
		row[4] = formatFloat(s.VX)
		row[5] = formatFloat(s.VY)
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type ExportData struct {
	Mu      float64            `json:"mu"`
	Dt      float64            `json:"dt"`
	Steps   int                `json:"steps"`
	Initial dynamo.State       `json:"initial"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
	Drift   float64            `json:"energy_drift"`
	Samples []dynamo.State     `json:"samples"`
}

func newExportData(result *dynamo.Result) ExportData {
	return ExportData{
		Mu:      result.Params.Mu,
		Dt:      result.Params.Dt,
		Steps:   result.Params.Steps,
		Initial: result.Params.Initial,
		Metrics: result.Metrics,
		Drift:   result.EnergyDrift,
		Samples: result.Trajectory,
	}
}

func WriteJSON(w io.Writer, result *dynamo.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(result))
}

func writerFor(format string, result *dynamo.Result) (func(io.Writer) error, error) {
	switch format {
	case "csv", "":
		return func(w io.Writer) error { return WriteCSV(w, result.Trajectory) }, nil
	case "json":
		return func(w io.Writer) error { return WriteJSON(w, result) }, nil
	default:
		return nil, dynamo.ConfigError("unknown output format %q", format)
	}
}

// Export writes result to path in the given format ("csv" or "json").
// Any failure to open, write or close the destination wraps dynamo.ErrOutput.
func Export(path, format string, result *dynamo.Result) (err error) {
	write, err := writerFor(format, result)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return dynamo.OutputError(path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = dynamo.OutputError(path, cerr)
		}
	}()

	if err := write(file); err != nil {
		return dynamo.OutputError(path, err)
	}
	return nil
}

// ExportTo streams result to w; dest names the stream in errors.
func ExportTo(w io.Writer, dest, format string, result *dynamo.Result) error {
	write, err := writerFor(format, result)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		return dynamo.OutputError(dest, err)
	}
	return nil
}
