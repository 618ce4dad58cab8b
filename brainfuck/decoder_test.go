package brainfuck

import (
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/deciph/modes"
)

func TestDecoder(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		decoder *Decoder,
	) {

		output, ok := decoder.Decode(t.Context(), strings.Repeat("+", 65)+".")
		if !ok {
			t.Fatal()
		}
		if output != "A" {
			t.Fatalf("got %q", output)
		}

		// plain text is rejected by the pre-check
		if _, ok := decoder.Decode(t.Context(), "hello world, nothing to see"); ok {
			t.Fatal()
		}

		// dense but with an illegal rune, rejected after parsing
		if _, ok := decoder.Decode(t.Context(), "+++++++++a."); ok {
			t.Fatal()
		}

		// no output instruction
		if _, ok := decoder.Decode(t.Context(), "+++[-]"); ok {
			t.Fatal()
		}

		if decoder.Target() != "brainfuck" {
			t.Fatalf("got %q", decoder.Target())
		}
		if decoder.Priority() != DefaultPriority {
			t.Fatalf("got %v", decoder.Priority())
		}
		if decoder.Params() != nil {
			t.Fatal()
		}
		if decoder.Estimate(10) > decoder.Estimate(1000) {
			t.Fatal()
		}
		if decoder.Estimate(1 << 40) != decoder.config.Timeout {
			t.Fatal()
		}

	})
}
