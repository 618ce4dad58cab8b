package ook

import (
	"context"
	"strings"
	"time"

	"github.com/reusee/deciph/brainfuck"
	"github.com/reusee/deciph/decoders"
	"github.com/reusee/deciph/logs"
)

const (
	DefaultPriority   = 0.25
	DefaultMinDensity = 0.1

	// anything shorter than one token pair cannot be a program
	minInputLen = 8

	// rough per-byte cost used for the scheduling estimate
	estimatePerByte = 10 * time.Microsecond
)

// Decoder transpiles the token-paired source into the primitive
// instruction set and runs it on the tape machine. Every internal failure
// kind collapses to an absent result; nothing is propagated to the caller.
type Decoder struct {
	dialect    Dialect
	config     brainfuck.Config
	priority   float64
	minDensity float64
	logger     logs.Logger
	newSpan    logs.NewSpan
}

var _ decoders.Decoder = new(Decoder)

func (d *Decoder) Decode(ctx context.Context, text string) (string, bool) {
	if d.fitness(text) <= 0 {
		d.logger.DebugContext(ctx, "ook not applicable")
		return "", false
	}
	ctx, _ = d.newSpan(ctx, "")
	d.logger.DebugContext(ctx, "attempting ook")

	program, err := d.dialect.Transpile(text)
	if err != nil {
		d.logger.DebugContext(ctx, "ook transpile failed", "error", err)
		return "", false
	}

	jumps, err := brainfuck.Validate(program)
	if err != nil {
		d.logger.DebugContext(ctx, "ook program invalid", "error", err)
		return "", false
	}

	output, err := brainfuck.NewMachine(program, jumps, d.config).Run(ctx)
	if err != nil {
		d.logger.DebugContext(ctx, "ook run failed", "error", logs.WrapSpan(ctx, err))
		return "", false
	}

	d.logger.InfoContext(ctx, "ook successful", "output_len", len(output))
	return output, true
}

// fitness is the cheap applicability pre-check: every dialect token must
// occur, their occurrences must be dense enough relative to the text
// length, and the score favors a balanced mix of tokens.
func (d *Decoder) fitness(text string) float64 {
	if len(text) < minInputLen {
		return 0
	}
	lower := strings.ToLower(text)

	total := 0
	minCount := -1
	maxCount := 0
	for _, marker := range d.dialect.Markers() {
		count := strings.Count(lower, marker)
		total += count
		if minCount < 0 || count < minCount {
			minCount = count
		}
		if count > maxCount {
			maxCount = count
		}
	}
	if minCount <= 0 {
		return 0
	}

	proportion := float64(total) / float64(len(text))
	if proportion <= d.minDensity {
		return 0
	}

	balance := float64(minCount) / float64(maxCount)
	return proportion*0.7 + balance*0.3
}

func (d *Decoder) Priority() float64 {
	return d.priority
}

func (d *Decoder) Target() string {
	return "ook"
}

func (d *Decoder) Params() map[string]decoders.ParamSpec {
	return nil
}

func (d *Decoder) Estimate(inputLen int) time.Duration {
	estimate := time.Duration(inputLen) * estimatePerByte
	if estimate > d.config.Timeout {
		return d.config.Timeout
	}
	return estimate
}
