// Package dataio loads and saves matrices and label vectors for the
// splitting tools.
//
// On disk a matrix is stored with one row per point, the layout both
// CSV exports and NumPy dumps commonly use. In memory the library is
// column-oriented (one point per column), so every load and save
// transposes. The format is chosen by file extension: ".npy" selects
// the NumPy binary format, anything else is parsed as CSV.
package dataio

import (
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const (
	formatCSV = "csv"
	formatNPY = "npy"
)

func formatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".npy") {
		return formatNPY
	}
	return formatCSV
}

// transpose copies m into a new matrix with rows and columns swapped.
// Empty matrices transpose to empty matrices.
func transpose(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}
