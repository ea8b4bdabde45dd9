// Package datasplit provides utilities for partitioning datasets into
// training and test subsets, built on gonum matrices.
//
// The core lives in the split package: given a column-oriented data
// matrix (one point per column) and optionally an aligned integer
// label vector, it produces a random, disjoint train/test partition
// with a caller-specified test ratio. Randomness always flows through
// an explicit generator, so a fixed seed reproduces a split exactly.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/datasplit/split"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // 3 features x 5 points.
//	    X := mat.NewDense(3, 5, []float64{
//	        1, 2, 3, 4, 5,
//	        6, 7, 8, 9, 10,
//	        11, 12, 13, 14, 15,
//	    })
//
//	    rng := split.NewRand(42)
//	    train, test, err := split.Split(X, 0.4, rng)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    _, nTrain := train.Dims()
//	    _, nTest := test.Dims()
//	    fmt.Println("train points:", nTrain, "test points:", nTest)
//	}
//
// # Packages
//
//   - split: the splitting and shuffling core
//   - dataio: CSV and NumPy .npy persistence for matrices and labels
//   - pkg/errors: structured errors and warnings
//   - pkg/log: structured logging helpers
//
// The preprocess-split command under cmd wraps the core with file I/O
// and mirrors the parameter surface of mlpack's preprocess_split tool.
package datasplit
