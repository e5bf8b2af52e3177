package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Track identifies which of the two fulfillment pipelines an order follows.
type Track string

const (
	// TrackA is the direct-delivery pipeline.
	TrackA Track = "A"

	// TrackB is the hub-manufactured pipeline with air freight and last-mile
	// van delivery. Track B orders carry a hard delivery deadline.
	TrackB Track = "B"
)

// Validate checks that the track is one of the two known pipelines.
func (t Track) Validate() error {
	if t != TrackA && t != TrackB {
		return errs.NewValueIsInvalidErrorWithCause("track",
			fmt.Errorf("%q is not a valid track", string(t)))
	}
	return nil
}

// String returns the single-letter track code.
func (t Track) String() string {
	return string(t)
}
