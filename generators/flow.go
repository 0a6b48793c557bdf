package generators

import (
	"strconv"

	"github.com/1pkg/shellgen"
)

// FlowStep describes one positional slot in the completion flow of the
// target program, in the order the shell walks the command line.
type FlowStep struct {
	// Position is the 1-based argument slot, "*" for a variadic tail.
	Position string
	Name     string
	Help     string
	Variadic bool
}

// Flow derives the positional completion flow from the visible positionals
// of the specification. The last positional is treated as variadic, request
// items repeat until the end of the command line.
func Flow(spec *shellgen.Spec) []FlowStep {
	positionals := spec.Positionals()
	steps := make([]FlowStep, 0, len(positionals))
	for i, arg := range positionals {
		step := FlowStep{
			Position: strconv.Itoa(i + 1),
			Name:     arg.Metavar(),
			Help:     arg.ShortHelp,
		}
		if i == len(positionals)-1 {
			step.Position = "*"
			step.Variadic = true
		}

		steps = append(steps, step)
	}
	return steps
}
