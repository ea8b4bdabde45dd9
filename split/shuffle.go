package split

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/datasplit/pkg/errors"
)

// Shuffle returns a copy of data with its columns uniformly reordered.
// The input is never modified.
func Shuffle(data mat.Matrix, rng *rand.Rand) *mat.Dense {
	_, n := data.Dims()
	return gatherColumns(data, rng.Perm(n))
}

// ShuffleLabeled reorders data columns and labels in unison, keeping
// every (point, label) pair intact. len(labels) must equal the number
// of columns in data.
func ShuffleLabeled(data mat.Matrix, labels []int, rng *rand.Rand) (*mat.Dense, []int, error) {
	_, n := data.Dims()
	if len(labels) != n {
		return nil, nil, errors.NewDimensionError("split.ShuffleLabeled", n, len(labels), 1)
	}

	order := rng.Perm(n)
	return gatherColumns(data, order), gatherLabels(labels, order), nil
}
