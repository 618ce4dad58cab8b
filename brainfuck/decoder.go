package brainfuck

import (
	"context"
	"time"
	"unicode"

	"github.com/reusee/deciph/decoders"
	"github.com/reusee/deciph/logs"
)

const (
	DefaultPriority   = 0.1
	DefaultMinDensity = 0.9

	// rough per-byte cost used for the scheduling estimate
	estimatePerByte = 10 * time.Microsecond
)

// Decoder treats the raw text as a program in the primitive instruction
// alphabet and runs it. Every failure collapses to an absent result.
type Decoder struct {
	config     Config
	priority   float64
	minDensity float64
	logger     logs.Logger
	newSpan    logs.NewSpan
}

var _ decoders.Decoder = new(Decoder)

func (d *Decoder) Decode(ctx context.Context, text string) (string, bool) {
	if d.fitness(text) < d.minDensity {
		d.logger.DebugContext(ctx, "brainfuck not applicable")
		return "", false
	}
	ctx, _ = d.newSpan(ctx, "")
	d.logger.DebugContext(ctx, "attempting brainfuck")

	program, err := Parse(text)
	if err != nil || len(program) == 0 {
		d.logger.DebugContext(ctx, "brainfuck parse failed", "error", err)
		return "", false
	}

	jumps, err := Validate(program)
	if err != nil {
		d.logger.DebugContext(ctx, "brainfuck program invalid", "error", err)
		return "", false
	}

	output, err := NewMachine(program, jumps, d.config).Run(ctx)
	if err != nil {
		d.logger.DebugContext(ctx, "brainfuck run failed", "error", logs.WrapSpan(ctx, err))
		return "", false
	}

	d.logger.InfoContext(ctx, "brainfuck successful", "output_len", len(output))
	return output, true
}

// fitness is the density of instruction runes among the non-whitespace
// runes of the text.
func (d *Decoder) fitness(text string) float64 {
	var instructions, total int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if _, ok := OpForRune(r); ok {
			instructions++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(instructions) / float64(total)
}

func (d *Decoder) Priority() float64 {
	return d.priority
}

func (d *Decoder) Target() string {
	return "brainfuck"
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
