package ook

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/reusee/deciph/brainfuck"
)

var (
	ErrBadPairTable   = errors.New("malformed token pair table")
	ErrNoInstructions = errors.New("no instructions")
)

// Dialect is an immutable mapping from two-token pairs to instructions.
// The token spellings are domain specific; the shape is always 8 pairs,
// one per instruction.
type Dialect struct {
	pairs   map[[2]string]brainfuck.Op
	markers []string
}

// New folds token case and checks the table at construction time: exactly
// 8 pairs, no duplicates, every instruction covered. A bad table is a
// configuration defect, not a per-input outcome.
func New(pairs map[[2]string]brainfuck.Op) (Dialect, error) {
	if len(pairs) != 8 {
		return Dialect{}, fmt.Errorf("%w: want 8 pairs, got %d", ErrBadPairTable, len(pairs))
	}

	folded := make(map[[2]string]brainfuck.Op, len(pairs))
	seenOps := make(map[brainfuck.Op]bool)
	markerSet := make(map[string]bool)

	for pair, op := range pairs {
		first := strings.ToLower(pair[0])
		second := strings.ToLower(pair[1])
		for _, token := range []string{first, second} {
			if token == "" || strings.ContainsFunc(token, unicode.IsSpace) {
				return Dialect{}, fmt.Errorf("%w: bad token %q", ErrBadPairTable, token)
			}
		}
		key := [2]string{first, second}
		if _, ok := folded[key]; ok {
			return Dialect{}, fmt.Errorf("%w: duplicated pair %q %q", ErrBadPairTable, first, second)
		}
		if seenOps[op] {
			return Dialect{}, fmt.Errorf("%w: instruction %q mapped twice", ErrBadPairTable, op.Rune())
		}
		seenOps[op] = true
		folded[key] = op
		markerSet[first] = true
		markerSet[second] = true
	}

	return Dialect{
		pairs:   folded,
		markers: slices.Sorted(maps.Keys(markerSet)),
	}, nil
}

// Default is the standard Ook! table.
func Default() Dialect {
	dialect, err := New(map[[2]string]brainfuck.Op{
		{"ook.", "ook?"}: brainfuck.OpRight,
		{"ook?", "ook."}: brainfuck.OpLeft,
		{"ook.", "ook."}: brainfuck.OpInc,
		{"ook!", "ook!"}: brainfuck.OpDec,
		{"ook!", "ook."}: brainfuck.OpOutput,
		{"ook.", "ook!"}: brainfuck.OpInput,
		{"ook!", "ook?"}: brainfuck.OpLoopStart,
		{"ook?", "ook!"}: brainfuck.OpLoopEnd,
	})
	if err != nil {
		panic(err)
	}
	return dialect
}

// Markers are the distinct token spellings of this dialect, case folded.
func (d Dialect) Markers() []string {
	return d.markers
}

// Transpile scans the whitespace-split tokens left to right, greedily
// consuming two tokens per instruction. A pair that matches nothing drops
// a single token and retries; this best-effort resynchronization survives
// stray tokens but may silently shift the pairing of the rest of the
// stream. The trailing token of an odd-length stream is dropped.
func (d Dialect) Transpile(text string) (brainfuck.Program, error) {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(text)))

	program := make(brainfuck.Program, 0, len(tokens)/2)
	i := 0
	for i < len(tokens)-1 {
		op, ok := d.pairs[[2]string{tokens[i], tokens[i+1]}]
		if ok {
			program = append(program, op)
			i += 2
		} else {
			i++
		}
	}

	if len(program) == 0 {
		return nil, ErrNoInstructions
	}
	return program, nil
}
