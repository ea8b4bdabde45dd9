package dataio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/datasplit/pkg/errors"
)

func TestMatrixCSVRoundTrip(t *testing.T) {
	// 3 features x 4 points.
	m := mat.NewDense(3, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})
	path := filepath.Join(t.TempDir(), "data.csv")

	require.NoError(t, SaveMatrix(path, m))
	got, err := LoadMatrix(path)
	require.NoError(t, err)

	assert.True(t, mat.Equal(m, got), "round trip should preserve the matrix")
}

func TestMatrixNPYRoundTrip(t *testing.T) {
	m := mat.NewDense(2, 5, []float64{
		0.5, 1.5, 2.5, 3.5, 4.5,
		-1, -2, -3, -4, -5,
	})
	path := filepath.Join(t.TempDir(), "data.npy")

	require.NoError(t, SaveMatrix(path, m))
	got, err := LoadMatrix(path)
	require.NoError(t, err)

	assert.True(t, mat.Equal(m, got), "round trip should preserve the matrix")
}

func TestLoadMatrixTransposesRows(t *testing.T) {
	// Two points with three features each: file rows are points, the
	// loaded matrix holds them as columns.
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2,3\n4,5,6\n"), 0o644))

	got, err := LoadMatrix(path)
	require.NoError(t, err)

	d, n := got.Dims()
	require.Equal(t, 3, d, "features")
	require.Equal(t, 2, n, "points")
	assert.Equal(t, 1.0, got.At(0, 0))
	assert.Equal(t, 3.0, got.At(2, 0))
	assert.Equal(t, 4.0, got.At(0, 1))
	assert.Equal(t, 6.0, got.At(2, 1))
}

func TestLoadMatrixEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := LoadMatrix(path)
	require.NoError(t, err)

	d, n := got.Dims()
	assert.Equal(t, 0, d)
	assert.Equal(t, 0, n)
}

func TestLoadMatrixRejectsNonNumeric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2\n3,abc\n"), 0o644))

	_, err := LoadMatrix(path)
	require.Error(t, err)

	var valErr *errors.ValueError
	assert.True(t, errors.As(err, &valErr), "expected a *ValueError, got %T", err)
}

func TestLoadMatrixRejectsRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2,3\n4,5\n"), 0o644))

	_, err := LoadMatrix(path)
	require.Error(t, err)

	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr), "expected a *DimensionError, got %T", err)
}

func TestSaveMatrixEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, SaveMatrix(path, &mat.Dense{}))

	got, err := LoadMatrix(path)
	require.NoError(t, err)
	_, n := got.Dims()
	assert.Equal(t, 0, n)
}

func TestLabelsCSVRoundTrip(t *testing.T) {
	labels := []int{3, 1, 4, 1, 5, 9, 2, 6}
	path := filepath.Join(t.TempDir(), "labels.csv")

	require.NoError(t, SaveLabels(path, labels))
	got, err := LoadLabels(path)
	require.NoError(t, err)

	assert.Equal(t, labels, got)
}

func TestLabelsNPYRoundTrip(t *testing.T) {
	labels := []int{0, 1, 1, 0, 2}
	path := filepath.Join(t.TempDir(), "labels.npy")

	require.NoError(t, SaveLabels(path, labels))
	got, err := LoadLabels(path)
	require.NoError(t, err)

	assert.Equal(t, labels, got)
}

func TestLoadLabelsRowLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2,3\n"), 0o644))

	got, err := LoadLabels(path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestLoadLabelsConvertsIntegralFloats(t *testing.T) {
	var warned error
	errors.SetWarningHandler(func(w error) { warned = w })
	defer errors.SetWarningHandler(nil)

	path := filepath.Join(t.TempDir(), "labels.csv")
	require.NoError(t, os.WriteFile(path, []byte("1.0\n2.0\n"), 0o644))

	got, err := LoadLabels(path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	require.NotNil(t, warned, "integral float labels should raise a conversion warning")
	var convWarn *errors.DataConversionWarning
	assert.True(t, errors.As(warned, &convWarn))
}

func TestLoadLabelsRejectsFractionalFloats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.csv")
	require.NoError(t, os.WriteFile(path, []byte("1.5\n"), 0o644))

	_, err := LoadLabels(path)
	require.Error(t, err)

	var valErr *errors.ValueError
	assert.True(t, errors.As(err, &valErr), "expected a *ValueError, got %T", err)
}
