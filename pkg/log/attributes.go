// Package log defines standard attribute keys for dataset splitting
// operations.
//
// Using these keys keeps log output consistent between the library and
// the command line tools, and makes runs easy to filter: every record
// about one dataset carries the same "data.points"/"data.features"
// pair, every record about one split the same "split.*" group.
package log

// Data shape.
const (
	// PointsKey is the number of points (columns) in a dataset.
	PointsKey = "data.points"

	// FeaturesKey is the number of features (rows) in a dataset.
	FeaturesKey = "data.features"

	// LabelsKey is the number of labels accompanying a dataset.
	LabelsKey = "data.labels"
)

// Split parameters and results.
const (
	// TestRatioKey is the requested fraction of points routed to the
	// test subset.
	TestRatioKey = "split.test_ratio"

	// SeedKey is the seed the random generator was built from.
	SeedKey = "split.seed"

	// TrainPointsKey is the number of points in the training subset.
	TrainPointsKey = "split.train_points"

	// TestPointsKey is the number of points in the test subset.
	TestPointsKey = "split.test_points"
)

// File I/O context.
const (
	// PathKey is the file being read or written.
	PathKey = "file.path"

	// FormatKey is the detected on-disk format ("csv" or "npy").
	FormatKey = "file.format"
)
