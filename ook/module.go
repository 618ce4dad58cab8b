package ook

import (
	"github.com/reusee/dscope"
	"github.com/reusee/deciph/brainfuck"
	"github.com/reusee/deciph/configs"
	"github.com/reusee/deciph/logs"
	"github.com/reusee/deciph/vars"
)

type Module struct {
	dscope.Module
	Brainfuck brainfuck.Module
}

type tokenTable struct {
	Right     []string `json:"right"`
	Left      []string `json:"left"`
	Increment []string `json:"increment"`
	Decrement []string `json:"decrement"`
	Output    []string `json:"output"`
	Input     []string `json:"input"`
	LoopStart []string `json:"loop_start"`
	LoopEnd   []string `json:"loop_end"`
}

func (Module) Dialect(
	loader configs.Loader,
	logger logs.Logger,
) Dialect {
	table := configs.First[tokenTable](loader, "ook.tokens")

	fields := map[brainfuck.Op][]string{
		brainfuck.OpRight:     table.Right,
		brainfuck.OpLeft:      table.Left,
		brainfuck.OpInc:       table.Increment,
		brainfuck.OpDec:       table.Decrement,
		brainfuck.OpOutput:    table.Output,
		brainfuck.OpInput:     table.Input,
		brainfuck.OpLoopStart: table.LoopStart,
		brainfuck.OpLoopEnd:   table.LoopEnd,
	}

	numSet := 0
	for _, tokens := range fields {
		if len(tokens) == 2 {
			numSet++
		}
	}

	if numSet == 0 {
		return Default()
	}
	if numSet < len(fields) {
		logger.Warn("incomplete ook token table in config, using the default dialect")
		return Default()
	}

	pairs := make(map[[2]string]brainfuck.Op, len(fields))
	for op, tokens := range fields {
		pairs[[2]string{tokens[0], tokens[1]}] = op
	}
	dialect, err := New(pairs)
	if err != nil {
		// a bad table is a deployment defect
		panic(err)
	}
	logger.Info("using ook token table from config")
	return dialect
}

func (Module) Decoder(
	dialect Dialect,
	config brainfuck.Config,
	loader configs.Loader,
	logger logs.Logger,
	newSpan logs.NewSpan,
) *Decoder {
	return &Decoder{
		dialect: dialect,
		config:  config,
		priority: vars.FirstNonZero(
			configs.First[float64](loader, "ook.priority"),
			DefaultPriority,
		),
		minDensity: vars.FirstNonZero(
			configs.First[float64](loader, "ook.min_density"),
			DefaultMinDensity,
		),
		logger:  logger,
		newSpan: newSpan,
	}
}
