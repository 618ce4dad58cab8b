package decoders

import (
	"context"
	"time"
)

// Decoder is one decode strategy of the surrounding multi-strategy search.
// Decode returns the recovered plaintext and true, or "" and false when the
// input cannot be decoded by this strategy. Implementations must be safe for
// concurrent calls: each attempt owns all of its state.
type Decoder interface {
	Decode(ctx context.Context, text string) (string, bool)

	// Priority is the relative scheduling weight among competing decoders,
	// higher first. It has no effect on correctness.
	Priority() float64

	// Target names the encoding this decoder recovers from.
	Target() string

	// Params describes the tunable parameters, nil if there are none.
	Params() map[string]ParamSpec
}

type ParamSpec struct {
	Desc     string
	Required bool
	Default  string
}

// Estimator is implemented by decoders that can predict their runtime,
// used purely for scheduling among competing attempts.
type Estimator interface {
	Estimate(inputLen int) time.Duration
}
