package shellgen

import (
	"strings"

	"github.com/samber/lo"
)

// Argument describes a single CLI flag or positional parameter of the
// target program. Arguments are value objects, built once by the
// definition layer and never mutated afterwards.
type Argument struct {
	Aliases    []string
	Flag       bool
	Positional bool
	Hidden     bool
	ShortHelp  string
	Config     Config
}

// Config carries the optional per argument completion settings.
type Config struct {
	Metavar     *string
	Choices     []string
	LazyChoices bool
}

// Metavar resolves the placeholder name for the argument value. An explicit
// metavar from the config always wins. When the argument carries a choice
// list but no explicit metavar, the name is derived from the longest alias
// so that choices always have a placeholder to attach to.
func (a Argument) Metavar() string {
	if a.Config.Metavar != nil {
		return *a.Config.Metavar
	}
	if len(a.Config.Choices) == 0 || len(a.Aliases) == 0 {
		return ""
	}
	longest := lo.MaxBy(a.Aliases, func(alias, max string) bool {
		return len(alias) > len(max)
	})
	derived := strings.TrimLeft(longest, "-")
	derived = strings.ReplaceAll(derived, "-", "_")
	return strings.ToUpper(derived)
}

// Group is an ordered set of related arguments.
type Group struct {
	Name        string
	Description string
	Arguments   []Argument
}

// Spec is the full ordered argument specification of the target program.
// Group and argument order is stable and determines output order in every
// generated completion script.
type Spec struct {
	Program string
	Groups  []Group
}

// Flags returns all non hidden, non positional arguments in traversal order.
func (s *Spec) Flags() []Argument {
	args := make([]Argument, 0)
	for _, g := range s.Groups {
		args = append(args, lo.Filter(g.Arguments, func(a Argument, _ int) bool {
			return !a.Hidden && !a.Positional
		})...)
	}
	return args
}

// Positionals returns all non hidden positional arguments in traversal order.
func (s *Spec) Positionals() []Argument {
	args := make([]Argument, 0)
	for _, g := range s.Groups {
		args = append(args, lo.Filter(g.Arguments, func(a Argument, _ int) bool {
			return !a.Hidden && a.Positional
		})...)
	}
	return args
}
