package dataio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/datasplit/pkg/errors"
)

// LoadMatrix reads a data matrix from path and returns it in the
// column-oriented layout (features x points). The file stores one row
// per point; see the package documentation for format selection.
func LoadMatrix(path string) (*mat.Dense, error) {
	switch formatFor(path) {
	case formatNPY:
		return loadMatrixNPY(path)
	default:
		return loadMatrixCSV(path)
	}
}

// SaveMatrix writes a column-oriented matrix to path, one row per
// point. An empty matrix produces an empty file.
func SaveMatrix(path string, m mat.Matrix) error {
	switch formatFor(path) {
	case formatNPY:
		return saveMatrixNPY(path, m)
	default:
		return saveMatrixCSV(path, m)
	}
}

func loadMatrixCSV(path string) (_ *mat.Dense, err error) {
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
	r.FieldsPerRecord = -1 // checked below for a domain-specific error
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "dataio: reading %s", path)
	}
	if len(records) == 0 {
		return &mat.Dense{}, nil
	}

	d := len(records[0])
	out := mat.NewDense(d, len(records), nil)
	for j, record := range records {
		if len(record) != d {
			return nil, errors.NewDimensionError("dataio.LoadMatrix", d, len(record), 0)
		}
		for i, cell := range record {
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, errors.NewValueError("dataio.LoadMatrix",
					fmt.Sprintf("cannot parse %q as float64 (%s, point %d, feature %d)", cell, path, j, i))
			}
			out.Set(i, j, v)
		}
	}
	return out, nil
}

func saveMatrixCSV(path string, m mat.Matrix) (err error) {
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
	d, n := m.Dims()
	record := make([]string, d)
	for j := 0; j < n; j++ {
		for i := 0; i < d; i++ {
			record[i] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return errors.Wrapf(err, "dataio: writing %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrapf(err, "dataio: writing %s", path)
	}
	return nil
}

func loadMatrixNPY(path string) (_ *mat.Dense, err error) {
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

	raw := &mat.Dense{}
	if err := r.Read(raw); err != nil {
		return nil, errors.Wrapf(err, "dataio: reading %s", path)
	}
	return transpose(raw), nil
}

func saveMatrixNPY(path string, m mat.Matrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "dataio: creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "dataio: closing %s", path)
		}
	}()

	d, n := m.Dims()
	if d == 0 || n == 0 {
		// npyio cannot represent an empty gonum matrix; store an empty
		// one-dimensional array instead.
		if err := npyio.Write(f, []float64{}); err != nil {
			return errors.Wrapf(err, "dataio: writing %s", path)
		}
		return nil
	}
	if err := npyio.Write(f, transpose(m)); err != nil {
		return errors.Wrapf(err, "dataio: writing %s", path)
	}
	return nil
}
