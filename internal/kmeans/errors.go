package kmeans

import "errors"

var (
	// ErrInvalidK is returned when k is zero or exceeds the sample count.
	ErrInvalidK = errors.New("k must be between 1 and the number of samples")

	// ErrEmptyInput is returned when no samples are supplied.
	ErrEmptyInput = errors.New("no samples supplied")

	// ErrMismatchedLength is returned when a replacement centroid set does
	// not have the same length as the fixed centroid set it substitutes.
	ErrMismatchedLength = errors.New("replacement centroid count does not match fixed centroid count")

	// ErrNumeric is returned when a non-finite distance or score is
	// encountered, indicating malformed input such as NaN components.
	ErrNumeric = errors.New("non-finite distance encountered")
)
