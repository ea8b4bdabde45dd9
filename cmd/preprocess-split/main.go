// Command preprocess-split splits a dataset, and optionally labels,
// into a training set and a test set. Points are randomly reordered
// before the split; the fraction routed to the test set is controlled
// by -test_ratio (default 0.2).
//
// The parameter surface mirrors mlpack's preprocess_split tool:
//
//	preprocess-split -input X.csv -training X_train.csv -test X_test.csv -test_ratio 0.4
//	preprocess-split -input X.csv -input_labels y.csv \
//	    -training X_train.csv -training_labels y_train.csv \
//	    -test X_test.csv -test_labels y_test.csv -test_ratio 0.3
//
// Output parameters that are not given are skipped with a warning; the
// split itself always computes both sides.
package main

import (
	"flag"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/datasplit/dataio"
	"github.com/YuminosukeSato/datasplit/pkg/errors"
	dlog "github.com/YuminosukeSato/datasplit/pkg/log"
	"github.com/YuminosukeSato/datasplit/split"
)

func main() {
	input := flag.String("input", "", "file containing the data matrix (required)")
	training := flag.String("training", "", "file to save the training data to")
	test := flag.String("test", "", "file to save the test data to")
	inputLabels := flag.String("input_labels", "", "file containing the labels")
	trainingLabels := flag.String("training_labels", "", "file to save the training labels to")
	testLabels := flag.String("test_labels", "", "file to save the test labels to")
	testRatio := flag.Float64("test_ratio", 0.2, "ratio of the test set; if not set, defaults to 0.2")
	seed := flag.Uint64("seed", 0, "random seed (0 for time-based)")
	verbose := flag.Bool("verbose", false, "log informational output")
	flag.Parse()

	level := "warn"
	if *verbose {
		level = "info"
	}
	dlog.SetupLogger(level)
	dlog.EnableZerologWarnings()
	logger := slog.Default()

	ratioSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "test_ratio" {
			ratioSet = true
		}
	})

	if *input == "" {
		logger.Error("missing required parameter", slog.String("param", "input"))
		os.Exit(1)
	}

	// Cross-parameter consistency warnings, matching the original tool.
	if *training == "" {
		errors.Warn(errors.NewParameterWarning("training",
			"not specified; no training set will be saved"))
	}
	if *test == "" {
		errors.Warn(errors.NewParameterWarning("test",
			"not specified; no test set will be saved"))
	}
	if *inputLabels != "" {
		if *trainingLabels == "" {
			errors.Warn(errors.NewParameterWarning("training_labels",
				"not specified; no training set labels will be saved"))
		}
		if *testLabels == "" {
			errors.Warn(errors.NewParameterWarning("test_labels",
				"not specified; no test set labels will be saved"))
		}
	} else {
		if *trainingLabels != "" {
			errors.Warn(errors.NewParameterWarning("training_labels",
				"ignored because input_labels is not specified"))
		}
		if *testLabels != "" {
			errors.Warn(errors.NewParameterWarning("test_labels",
				"ignored because input_labels is not specified"))
		}
	}

	if ratioSet {
		if *testRatio < 0.0 || *testRatio > 1.0 {
			logger.Error("invalid parameter",
				dlog.ErrAttr(errors.NewValidationError("test_ratio", "must be between 0.0 and 1.0", *testRatio)))
			os.Exit(1)
		}
	} else {
		errors.Warn(errors.NewParameterWarning("test_ratio",
			"not specified; it will be automatically set to 0.2"))
	}

	data, err := dataio.LoadMatrix(*input)
	if err != nil {
		logger.Error("failed to load data", dlog.ErrAttr(err), slog.String(dlog.PathKey, *input))
		os.Exit(1)
	}
	d, n := data.Dims()
	logger.Info("loaded data",
		slog.String(dlog.PathKey, *input),
		slog.Int(dlog.FeaturesKey, d),
		slog.Int(dlog.PointsKey, n))

	rng := split.NewRand(*seed)

	if *inputLabels != "" {
		labels, err := dataio.LoadLabels(*inputLabels)
		if err != nil {
			logger.Error("failed to load labels", dlog.ErrAttr(err), slog.String(dlog.PathKey, *inputLabels))
			os.Exit(1)
		}
		if len(labels) != n {
			logger.Error("labels do not match the data",
				dlog.ErrAttr(errors.NewDimensionError("preprocess-split", n, len(labels), 1)),
				slog.Int(dlog.PointsKey, n),
				slog.Int(dlog.LabelsKey, len(labels)))
			os.Exit(1)
		}

		trainData, testData, trainLab, testLab, err := split.SplitLabeled(data, labels, *testRatio, rng)
		if err != nil {
			logger.Error("split failed", dlog.ErrAttr(err))
			os.Exit(1)
		}
		logCounts(logger, trainData, testData, *testRatio, *seed)

		saveMatrix(logger, *training, trainData)
		saveMatrix(logger, *test, testData)
		saveLabels(logger, *trainingLabels, trainLab)
		saveLabels(logger, *testLabels, testLab)
	} else {
		trainData, testData, err := split.Split(data, *testRatio, rng)
		if err != nil {
			logger.Error("split failed", dlog.ErrAttr(err))
			os.Exit(1)
		}
		logCounts(logger, trainData, testData, *testRatio, *seed)

		saveMatrix(logger, *training, trainData)
		saveMatrix(logger, *test, testData)
	}
}

func logCounts(logger *slog.Logger, train, test *mat.Dense, ratio float64, seed uint64) {
	_, nTrain := train.Dims()
	_, nTest := test.Dims()
	logger.Info("split complete",
		slog.Float64(dlog.TestRatioKey, ratio),
		slog.Uint64(dlog.SeedKey, seed),
		slog.Int(dlog.TrainPointsKey, nTrain),
		slog.Int(dlog.TestPointsKey, nTest))
}

func saveMatrix(logger *slog.Logger, path string, m *mat.Dense) {
	if path == "" {
		return
	}
	if err := dataio.SaveMatrix(path, m); err != nil {
		logger.Error("failed to save matrix", dlog.ErrAttr(err), slog.String(dlog.PathKey, path))
		os.Exit(1)
	}
	logger.Info("saved matrix", slog.String(dlog.PathKey, path))
}

func saveLabels(logger *slog.Logger, path string, labels []int) {
	if path == "" {
		return
	}
	if err := dataio.SaveLabels(path, labels); err != nil {
		logger.Error("failed to save labels", dlog.ErrAttr(err), slog.String(dlog.PathKey, path))
		os.Exit(1)
	}
	logger.Info("saved labels", slog.String(dlog.PathKey, path))
}
