package simgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/simgo/similarity"
)

var (
	// ErrSnapshotCorrupt is returned when snapshot data fails structural
	// validation (bad magic, truncated sections, checksum mismatch).
	ErrSnapshotCorrupt = errors.New("snapshot corrupt")

	// ErrUnknownCodec is returned when a snapshot was written with a
	// codec this build does not know.
	ErrUnknownCodec = errors.New("unknown snapshot codec")
)

// ErrThresholdOutOfRange indicates a configured score threshold outside
// the valid [0, 1] range.
type ErrThresholdOutOfRange struct {
	Threshold float64
}

func (e *ErrThresholdOutOfRange) Error() string {
	return fmt.Sprintf("threshold out of range [0, 1]: %g", e.Threshold)
}

// ErrInvalidMetric indicates an unsupported similarity metric.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidMetric struct {
	Metric similarity.Metric
	cause  error
}

func (e *ErrInvalidMetric) Error() string {
	return fmt.Sprintf("invalid similarity metric: %v", e.Metric)
}

func (e *ErrInvalidMetric) Unwrap() error { return e.cause }

// corruptf reports an internal consistency violation between the forward
// mapping, the reverse mapping and the identifier bijection. This must
// never happen; if it does the index is corrupt and a silent wrong answer
// would be worse than a crash.
func corruptf(format string, args ...any) {
	panic(fmt.Sprintf("simgo: index corrupt: "+format, args...))
}
