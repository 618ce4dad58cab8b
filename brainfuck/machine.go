package brainfuck

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultTimeout   = 60 * time.Second
	DefaultTapeCells = 100
)

var ErrDeadlineExceeded = errors.New("execution deadline exceeded")

type Config struct {
	// Timeout bounds one run's wall clock time.
	Timeout time.Duration
	// TapeCells is the initial tape length.
	TapeCells int
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.TapeCells <= 0 {
		c.TapeCells = DefaultTapeCells
	}
	return c
}

// Machine executes one validated program against a growable byte tape.
// A Machine runs once and is then discarded; it is never shared between
// concurrent attempts.
type Machine struct {
	program Program
	jumps   JumpTable
	tape    []byte
	ptr     int
	ip      int
	output  []rune
	timeout time.Duration
}

// NewMachine wants a program that Validate accepted, together with its
// jump table.
func NewMachine(program Program, jumps JumpTable, config Config) *Machine {
	config = config.withDefaults()
	return &Machine{
		program: program,
		jumps:   jumps,
		tape:    make([]byte, config.TapeCells),
		timeout: config.Timeout,
	}
}

// Run steps the machine until the instruction pointer leaves the program.
// Both ctx and the configured deadline are checked once per step; on
// expiry any accumulated output is discarded.
func (m *Machine) Run(ctx context.Context) (string, error) {
	deadline := time.Now().Add(m.timeout)

	for m.ip < len(m.program) {

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		if time.Now().After(deadline) {
			return "", ErrDeadlineExceeded
		}

		switch m.program[m.ip] {

		case OpInc:
			m.tape[m.ptr]++

		case OpDec:
			m.tape[m.ptr]--

		case OpRight:
			// the right edge grows, one cell at a time
			if m.ptr == len(m.tape)-1 {
				m.tape = append(m.tape, 0)
			}
			m.ptr++

		case OpLeft:
			// the left edge wraps to the current last cell
			if m.ptr == 0 {
				m.ptr = len(m.tape) - 1
			} else {
				m.ptr--
			}

		case OpLoopStart:
			if m.tape[m.ptr] == 0 {
				m.ip = m.jumps[m.ip]
				continue
			}

		case OpLoopEnd:
			if m.tape[m.ptr] != 0 {
				m.ip = m.jumps[m.ip]
				continue
			}

		case OpOutput:
			m.output = append(m.output, rune(m.tape[m.ptr]))

		case OpInput:
			// no interactive input channel, reads yield zero
			m.tape[m.ptr] = 0

		}

		m.ip++
	}

	return string(m.output), nil
}
