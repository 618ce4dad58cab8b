package brainfuck

import (
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/deciph/cmds"
	"github.com/reusee/deciph/configs"
	"github.com/reusee/deciph/deciphconfigs"
	"github.com/reusee/deciph/logs"
	"github.com/reusee/deciph/vars"
)

type Module struct {
	dscope.Module
	Configs deciphconfigs.Module
	Logs    logs.Module
}

var (
	timeoutFlag   = cmds.Var[int]("-timeout")
	tapeCellsFlag = cmds.Var[int]("-tape-cells")
)

func (Module) Config(
	loader configs.Loader,
) Config {
	timeoutSeconds := vars.FirstNonZero(
		*timeoutFlag,
		configs.First[int](loader, "timeout_seconds"),
	)
	tapeCells := vars.FirstNonZero(
		*tapeCellsFlag,
		configs.First[int](loader, "tape_cells"),
	)
	return Config{
		Timeout:   time.Duration(timeoutSeconds) * time.Second,
		TapeCells: tapeCells,
	}.withDefaults()
}

func (Module) Decoder(
	config Config,
	loader configs.Loader,
	logger logs.Logger,
	newSpan logs.NewSpan,
) *Decoder {
	return &Decoder{
		config: config,
		priority: vars.FirstNonZero(
			configs.First[float64](loader, "brainfuck.priority"),
			DefaultPriority,
		),
		minDensity: vars.FirstNonZero(
			configs.First[float64](loader, "brainfuck.min_density"),
			DefaultMinDensity,
		),
		logger:  logger,
		newSpan: newSpan,
	}
}
