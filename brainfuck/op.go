package brainfuck

import "strings"

type Op uint8

const (
	OpRight Op = iota
	OpLeft
	OpInc
	OpDec
	OpOutput
	OpInput
	OpLoopStart
	OpLoopEnd
)

var opRunes = [...]rune{
	OpRight:     '>',
	OpLeft:      '<',
	OpInc:       '+',
	OpDec:       '-',
	OpOutput:    '.',
	OpInput:     ',',
	OpLoopStart: '[',
	OpLoopEnd:   ']',
}

func (o Op) Rune() rune {
	return opRunes[o]
}

func OpForRune(r rune) (Op, bool) {
	switch r {
	case '>':
		return OpRight, true
	case '<':
		return OpLeft, true
	case '+':
		return OpInc, true
	case '-':
		return OpDec, true
	case '.':
		return OpOutput, true
	case ',':
		return OpInput, true
	case '[':
		return OpLoopStart, true
	case ']':
		return OpLoopEnd, true
	}
	return 0, false
}

// Program is an instruction sequence. It is built once by Parse or a
// transpiler and never mutated afterwards.
type Program []Op

func (p Program) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, op := range p {
		sb.WriteRune(op.Rune())
	}
	return sb.String()
}
