package brainfuck

import (
	"errors"
	"fmt"
	"unicode"
)

var ErrIllegalInstruction = errors.New("illegal instruction")

// Parse converts raw symbol text into a Program. Whitespace is ignored;
// any other rune outside the instruction alphabet fails.
func Parse(src string) (Program, error) {
	program := make(Program, 0, len(src))
	for i, r := range src {
		if unicode.IsSpace(r) {
			continue
		}
		op, ok := OpForRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrIllegalInstruction, r, i)
		}
		program = append(program, op)
	}
	return program, nil
}
