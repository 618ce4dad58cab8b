package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/reusee/dscope"
	"github.com/reusee/deciph/brainfuck"
	"github.com/reusee/deciph/cmds"
	"github.com/reusee/deciph/configs"
	"github.com/reusee/deciph/debugs"
	"github.com/reusee/deciph/decoders"
	"github.com/reusee/deciph/logs"
	"github.com/reusee/deciph/modes"
	"github.com/reusee/deciph/ook"
	"github.com/reusee/deciph/syncs"
	"github.com/reusee/deciph/vars"
)

var (
	textArg  = cmds.Var[string]("-text")
	fileArgs = cmds.Collect[string]("-file")
	jobsArg  = cmds.Var[int]("-jobs")
	debugArg = cmds.Switch("-debug")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		tap debugs.Tap,
		loader configs.Loader,
		ookDecoder *ook.Decoder,
		bfDecoder *brainfuck.Decoder,
	) {

		all := decoders.ByPriority([]decoders.Decoder{
			ookDecoder,
			bfDecoder,
		})

		type input struct {
			name string
			text string
		}
		var inputs []input
		if *textArg != "" {
			inputs = append(inputs, input{"text", *textArg})
		}
		for _, path := range *fileArgs {
			content, err := os.ReadFile(path)
			if err != nil {
				logger.Error("read input", "path", path, "error", err)
				os.Exit(1)
			}
			inputs = append(inputs, input{path, string(content)})
		}
		if len(inputs) == 0 {
			content, err := io.ReadAll(os.Stdin)
			if err != nil {
				logger.Error("read stdin", "error", err)
				os.Exit(1)
			}
			inputs = append(inputs, input{"stdin", string(content)})
		}

		jobs := vars.FirstNonZero(
			*jobsArg,
			configs.First[int](loader, "jobs"),
			runtime.NumCPU(),
		)
		semaphore := syncs.NewSemaphore(jobs)

		var anyFailed atomic.Bool
		var printMutex sync.Mutex
		var wg sync.WaitGroup
		for _, in := range inputs {
			semaphore.Acquire()
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer semaphore.Release()

				ctx, _ := newSpan(ctx, "")
				for _, decoder := range all {
					if estimator, ok := decoder.(decoders.Estimator); ok {
						logger.DebugContext(ctx, "decode attempt",
							"target", decoder.Target(),
							"input", in.name,
							"estimate", estimator.Estimate(len(in.text)),
						)
					}
					plaintext, ok := decoder.Decode(ctx, in.text)
					if !ok {
						continue
					}
					printMutex.Lock()
					if len(inputs) > 1 {
						fmt.Printf("%s: %s\n", in.name, plaintext)
					} else {
						fmt.Println(plaintext)
					}
					printMutex.Unlock()
					return
				}

				anyFailed.Store(true)
				logger.WarnContext(ctx, "no decoder succeeded", "input", in.name)
				if *debugArg {
					tap(ctx, "failed decode: "+in.name, map[string]any{
						"input":  in.text,
						"length": len(in.text),
					})
				}
			}()
		}
		wg.Wait()

		if anyFailed.Load() {
			os.Exit(1)
		}
	})
}
