package dataio

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/sbinet/npyio"

	"github.com/YuminosukeSato/datasplit/pkg/errors"
)

// LoadLabels reads an integer label vector from path. CSV input may be
// a single column, a single row, or any rectangular layout; all cells
// are flattened in row order. Cells holding integral floats (such as
// "3.0") are converted with a DataConversionWarning.
func LoadLabels(path string) ([]int, error) {
	if formatFor(path) == formatNPY {
		return loadLabelsNPY(path)
	}
	return loadLabelsCSV(path)
}

// SaveLabels writes labels to path, one label per line for CSV or a
// one-dimensional int64 array for .npy.
func SaveLabels(path string, labels []int) error {
	if formatFor(path) == formatNPY {
		return saveLabelsNPY(path, labels)
	}
	return saveLabelsCSV(path, labels)
}

func loadLabelsCSV(path string) (_ []int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataio: opening %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "dataio: closing %s", path)
		}
	}()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "dataio: reading %s", path)
	}

	var labels []int
	for _, record := range records {
		for _, cell := range record {
			label, perr := parseLabel(cell, path)
			if perr != nil {
				return nil, perr
			}
			labels = append(labels, label)
		}
	}
	return labels, nil
}

func parseLabel(cell, path string) (int, error) {
	if v, err := strconv.Atoi(cell); err == nil {
		return v, nil
	}
	// Tolerate labels exported as floats, as long as they are integral.
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || v != math.Trunc(v) {
		return 0, errors.NewValueError("dataio.LoadLabels",
			fmt.Sprintf("cannot parse %q as an integer label (%s)", cell, path))
	}
	errors.Warn(errors.NewDataConversionWarning("float64", "int",
		fmt.Sprintf("label %q in %s", cell, path)))
	return int(v), nil
}

func saveLabelsCSV(path string, labels []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "dataio: creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "dataio: closing %s", path)
		}
	}()

	w := csv.NewWriter(f)
	for _, label := range labels {
		if err := w.Write([]string{strconv.Itoa(label)}); err != nil {
			return errors.Wrapf(err, "dataio: writing %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrapf(err, "dataio: writing %s", path)
	}
	return nil
}

func loadLabelsNPY(path string) (_ []int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataio: opening %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "dataio: closing %s", path)
		}
	}()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "dataio: reading %s", path)
	}

	var raw []int64
	if err := r.Read(&raw); err != nil {
		return nil, errors.Wrapf(err, "dataio: reading %s", path)
	}

	labels := make([]int, len(raw))
	for i, v := range raw {
		labels[i] = int(v)
	}
	return labels, nil
}

func saveLabelsNPY(path string, labels []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "dataio: creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "dataio: closing %s", path)
		}
	}()

	raw := make([]int64, len(labels))
	for i, v := range labels {
		raw[i] = int64(v)
	}
	if err := npyio.Write(f, raw); err != nil {
		return errors.Wrapf(err, "dataio: writing %s", path)
	}
	return nil
}
