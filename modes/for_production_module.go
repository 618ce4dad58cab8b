package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction provides the provisions a deployed binary runs with.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

// T is nil outside of tests.
func (ModuleForProduction) T() *testing.T {
	return nil
}
