package classify

import (
	"errors"
	"fmt"
)

// DefaultThreshold is the brightness above which a pixel counts as road.
const DefaultThreshold = 200

// Sentinel errors for classification.
var (
	// ErrNilImage is returned when FromImage receives a nil image.
	ErrNilImage = errors.New("classify: image is nil")

	// ErrBadThreshold is returned when the threshold lies outside [0,255].
	ErrBadThreshold = errors.New("classify: threshold must be within [0,255]")

	// ErrBadSymbol is returned by FromText for characters other than '.' and '#'.
	ErrBadSymbol = errors.New("classify: unexpected map symbol")
)

// Options configures FromImage.
type Options struct {
	// Threshold is the exclusive lower bound on mean brightness for road.
	Threshold int

	err error
}

// Option configures classification via functional arguments. An invalid
// Option is recorded and surfaced when FromImage runs.
type Option func(*Options)

// DefaultOptions returns Options with Threshold = DefaultThreshold.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// WithThreshold overrides the brightness threshold.
func WithThreshold(t int) Option {
	return func(o *Options) {
		if t < 0 || t > 255 {
			o.err = fmt.Errorf("%w: got %d", ErrBadThreshold, t)
			return
		}
		o.Threshold = t
	}
}
