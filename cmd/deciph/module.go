package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/deciph/brainfuck"
	"github.com/reusee/deciph/debugs"
	"github.com/reusee/deciph/ook"
)

type Module struct {
	dscope.Module
	Ook       ook.Module
	Brainfuck brainfuck.Module
	Debugs    debugs.Module
}
