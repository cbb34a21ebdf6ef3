package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/swingby/internal/dynamo"
)

// ReadCSV parses a trajectory written by WriteCSV. Files from the older
// four-label header ("i,t,x,v") are accepted as long as rows carry all
// six columns.
func ReadCSV(r io.Reader) (dynamo.Trajectory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, csvErrorf("empty trajectory file")
		}
		return nil, err
	}
	if len(header) == 0 || header[0] != "i" {
		return nil, csvErrorf("unexpected header %v", header)
	}

	traj := make(dynamo.Trajectory, 0)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < len(Header) {
			return nil, csvErrorf("line %d: expected %d columns, got %d", line, len(Header), len(record))
		}

		idx, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, csvErrorf("line %d: bad index %q", line, record[0])
		}
		if idx != len(traj) {
			return nil, csvErrorf("line %d: index %d out of sequence", line, idx)
		}

		var vals [5]float64
		for j := range vals {
			v, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return nil, csvErrorf("line %d: column %s: %v", line, Header[j+1], err)
			}
			vals[j] = v
		}

		traj = append(traj, dynamo.State{Time: vals[0], X: vals[1], Y: vals[2], VX: vals[3], VY: vals[4]})
	}

	return traj, nil
}

func LoadCSV(path string) (dynamo.Trajectory, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCSV(file)
}

func csvErrorf(format string, args ...any) error {
	return fmt.Errorf("store: "+format, args...)
}
