package zsh

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/1pkg/shellgen"
	"github.com/1pkg/shellgen/generators"
)

func init() {
	generators.Register(generators.DriverNameZsh, new(driver))
}

type driver struct{}

func (driver) Name() generators.DriverName {
	return generators.DriverNameZsh
}

func (d driver) Funcs() template.FuncMap {
	return template.FuncMap{
		"escape_zsh":                Escape,
		"serialize_argument_to_zsh": d.Serialize,
		"compile_zsh":               d.compile,
	}
}

// Escape escapes literal colons, the field delimiter of a zsh completion spec.
func Escape(text string) string {
	return strings.ReplaceAll(text, ":", `\:`)
}

// Serialize produces a single zsh completion spec token of the form
// $prefix'$alias$has_value[$short_help]:$metavar:($choice_1 $choice_2)'.
func (driver) Serialize(arg shellgen.Argument) (string, error) {
	if len(arg.Aliases) == 0 {
		return "", fmt.Errorf("zsh: argument %q has no aliases", arg.ShortHelp)
	}

	var prefix string
	var decl []string

	// The declaration format changes with the number of aliases. A single
	// alias is embedded directly in the declaration string, multiple ones
	// move into a brace expansion prefix.
	if len(arg.Aliases) > 1 {
		prefix = "{" + strings.Join(arg.Aliases, ",") + "}"
	} else {
		decl = append(decl, arg.Aliases[0])
	}

	if !arg.Flag {
		decl = append(decl, "=")
	}

	decl = append(decl, "["+arg.ShortHelp+"]")

	// Choices always require a metavar, Metavar derives one from the
	// aliases when the config has none.
	if metavar := arg.Metavar(); metavar != "" {
		metavar = Escape(strings.Trim(metavar, " "))
		decl = append(decl, ":"+metavar+":")
	}

	if len(arg.Config.Choices) > 0 {
		decl = append(decl, "("+strings.Join(arg.Config.Choices, " ")+")")
	}

	return prefix + "'" + strings.Join(decl, "") + "'", nil
}

// compile serializes a whole argument list into an indented continuation
// block, ready to splice into an _arguments call.
func (d driver) compile(args []shellgen.Argument) (string, error) {
	lines := make([]string, 0, len(args))
	for _, arg := range args {
		decl, err := d.Serialize(arg)
		if err != nil {
			return "", err
		}
		lines = append(lines, "    "+decl+" \\")
	}
	return strings.Join(lines, "\n"), nil
}
