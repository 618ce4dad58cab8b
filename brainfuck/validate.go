package brainfuck

import (
	"errors"
)

var (
	ErrUnmatchedLoopEnd   = errors.New("unmatched loop end")
	ErrUnmatchedLoopStart = errors.New("unmatched loop start")
	ErrNoOutput           = errors.New("program produces no output")
)

// JumpTable maps each loop instruction position to its matching partner,
// in both directions.
type JumpTable map[int]int

// Validate scans the program once, pairing loop instructions with an
// explicit stack. A nil error means the program is runnable: loops
// balanced and at least one output instruction present. The reason behind
// a non-nil error is for diagnostics only; callers treat any error as
// "not a valid program".
func Validate(program Program) (JumpTable, error) {
	jumps := make(JumpTable)
	var openStack []int
	prints := false

	for i, op := range program {
		switch op {
		case OpLoopStart:
			openStack = append(openStack, i)
		case OpLoopEnd:
			if len(openStack) == 0 {
				return nil, ErrUnmatchedLoopEnd
			}
			open := openStack[len(openStack)-1]
			openStack = openStack[:len(openStack)-1]
			jumps[open] = i
			jumps[i] = open
		case OpOutput:
			prints = true
		}
	}

	if len(openStack) > 0 {
		return nil, ErrUnmatchedLoopStart
	}
	if !prints {
		return nil, ErrNoOutput
	}
	return jumps, nil
}
