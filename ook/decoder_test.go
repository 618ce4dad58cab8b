package ook

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/deciph/brainfuck"
	"github.com/reusee/deciph/modes"
)

// encode re-spells a primitive program with the standard tokens
func encode(t *testing.T, src string) string {
	t.Helper()
	spellings := map[rune]string{
		'>': "Ook. Ook?",
		'<': "Ook? Ook.",
		'+': "Ook. Ook.",
		'-': "Ook! Ook!",
		'.': "Ook! Ook.",
		',': "Ook. Ook!",
		'[': "Ook! Ook?",
		']': "Ook? Ook!",
	}
	var pairs []string
	for _, r := range src {
		spelling, ok := spellings[r]
		if !ok {
			t.Fatalf("bad instruction %q", r)
		}
		pairs = append(pairs, spelling)
	}
	return strings.Join(pairs, " ")
}

func TestDecoder(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		decoder *Decoder,
	) {

		// the >< round trip is a no-op that puts every token spelling on
		// the wire, which the applicability check insists on
		text := encode(t, "><"+strings.Repeat("+", 65)+".")
		output, ok := decoder.Decode(t.Context(), text)
		if !ok {
			t.Fatal()
		}
		if output != "A" {
			t.Fatalf("got %q", output)
		}

		output, ok = decoder.Decode(t.Context(),
			encode(t, "><"+strings.Repeat("+", 72)+"."+strings.Repeat("-", 7)+"."))
		if !ok {
			t.Fatal()
		}
		if output != "HA" {
			t.Fatalf("got %q", output)
		}

		// plain text
		if _, ok := decoder.Decode(t.Context(), "the quick brown fox jumps over the lazy dog"); ok {
			t.Fatal()
		}

		// unmatched loop start
		if _, ok := decoder.Decode(t.Context(), encode(t, "[+.")); ok {
			t.Fatal()
		}

		// balanced but never outputs
		if _, ok := decoder.Decode(t.Context(), encode(t, "+[-]")); ok {
			t.Fatal()
		}

		if decoder.Target() != "ook" {
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

func TestDecoderTimeout(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() brainfuck.Config {
			return brainfuck.Config{
				Timeout:   50 * time.Millisecond,
				TapeCells: 10,
			}
		},
	).Call(func(
		decoder *Decoder,
	) {

		started := time.Now()
		if _, ok := decoder.Decode(t.Context(), encode(t, "+[].")); ok {
			t.Fatal()
		}
		if time.Since(started) > 5*time.Second {
			t.Fatal("deadline not enforced")
		}

	})
}

func TestDecoderConcurrent(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		decoder *Decoder,
	) {

		text := encode(t, "><"+strings.Repeat("+", 65)+".")
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				output, ok := decoder.Decode(t.Context(), text)
				if !ok || output != "A" {
					t.Error("bad decode")
				}
			}()
		}
		wg.Wait()

	})
}

func TestFitness(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		decoder *Decoder,
	) {

		if score := decoder.fitness("ook."); score != 0 {
			t.Fatalf("got %v", score)
		}

		// one marker missing
		if score := decoder.fitness("Ook. Ook. Ook! Ook."); score != 0 {
			t.Fatalf("got %v", score)
		}

		// markers too sparse relative to the text
		sparse := encode(t, "><.") + strings.Repeat(" padding padding", 20)
		if score := decoder.fitness(sparse); score != 0 {
			t.Fatalf("got %v", score)
		}

		score := decoder.fitness(encode(t, "><+."))
		if score <= 0 || score > 1 {
			t.Fatalf("got %v", score)
		}

		// a balanced token mix scores higher than a lopsided one
		balanced := decoder.fitness(encode(t, "><[].,-+"))
		lopsided := decoder.fitness(encode(t, "><++++++++++++."))
		if balanced <= lopsided {
			t.Fatalf("balanced %v, lopsided %v", balanced, lopsided)
		}

	})
}
