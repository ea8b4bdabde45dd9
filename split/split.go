// Package split partitions column-oriented datasets into training and
// test subsets.
//
// A dataset is a gonum matrix with d rows (features) and n columns
// (points). Labels, when present, are an integer slice index-aligned
// with the columns. All randomness flows through an explicit
// *rand.Rand, so a fixed seed reproduces a split exactly and no hidden
// global state is shared between calls.
package split

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/datasplit/pkg/errors"
)

// NewRand returns a PCG-backed generator suitable for Split and
// Shuffle. A zero seed is resolved from the wall clock; any other
// value yields a deterministic stream.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Split partitions data into a training and a test subset.
//
// The test subset receives floor(n * testRatio) points, the training
// subset the remainder. Column indices are uniformly shuffled first;
// the leading indices of the permutation go to the training subset and
// the rest to the test subset, so the shuffle order is preserved
// within each side. The two results are freshly allocated and together
// cover every input column exactly once.
//
// testRatio must be in [0.0, 1.0]; anything else is a caller error and
// returns a ValidationError. A dataset with zero points yields two
// empty matrices.
func Split(data mat.Matrix, testRatio float64, rng *rand.Rand) (train, test *mat.Dense, err error) {
	if testRatio < 0.0 || testRatio > 1.0 {
		return nil, nil, errors.NewValidationError("testRatio", "must be between 0.0 and 1.0", testRatio)
	}

	_, n := data.Dims()
	testCount := int(float64(n) * testRatio)
	trainCount := n - testCount

	order := rng.Perm(n)
	train = gatherColumns(data, order[:trainCount])
	test = gatherColumns(data, order[trainCount:])
	return train, test, nil
}

// SplitLabeled partitions data and its aligned labels with a single
// shared permutation, so every output column keeps the label it had in
// the input. Sizing and ordering follow Split exactly.
//
// len(labels) must equal the number of columns in data; a mismatch
// returns a DimensionError before anything is shuffled.
func SplitLabeled(data mat.Matrix, labels []int, testRatio float64, rng *rand.Rand) (train, test *mat.Dense, trainLabels, testLabels []int, err error) {
	_, n := data.Dims()
	if len(labels) != n {
		return nil, nil, nil, nil, errors.NewDimensionError("split.SplitLabeled", n, len(labels), 1)
	}
	if testRatio < 0.0 || testRatio > 1.0 {
		return nil, nil, nil, nil, errors.NewValidationError("testRatio", "must be between 0.0 and 1.0", testRatio)
	}

	testCount := int(float64(n) * testRatio)
	trainCount := n - testCount

	order := rng.Perm(n)
	trainIdx, testIdx := order[:trainCount], order[trainCount:]

	train = gatherColumns(data, trainIdx)
	test = gatherColumns(data, testIdx)
	trainLabels = gatherLabels(labels, trainIdx)
	testLabels = gatherLabels(labels, testIdx)
	return train, test, trainLabels, testLabels, nil
}

// gatherColumns copies the selected columns of data, in order, into a
// new matrix. An empty selection yields an empty matrix.
func gatherColumns(data mat.Matrix, cols []int) *mat.Dense {
	d, _ := data.Dims()
	if len(cols) == 0 || d == 0 {
		return &mat.Dense{}
	}

	out := mat.NewDense(d, len(cols), nil)
	for j, src := range cols {
		for i := 0; i < d; i++ {
			out.Set(i, j, data.At(i, src))
		}
	}
	return out
}

func gatherLabels(labels []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, src := range idx {
		out[i] = labels[src]
	}
	return out
}
