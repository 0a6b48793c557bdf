package fish

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/1pkg/shellgen"
	"github.com/1pkg/shellgen/generators"
)

// program is the fixed command name the emitted completions attach to.
const program = "http"

func init() {
	generators.Register(generators.DriverNameFish, new(driver))
}

type driver struct{}

func (driver) Name() generators.DriverName {
	return generators.DriverNameFish
}

func (d driver) Funcs() template.FuncMap {
	return template.FuncMap{
		"serialize_argument_to_fish": d.Serialize,
	}
}

// Serialize produces a single tab separated complete command, see
// <https://fishshell.com/docs/current/completions.html> for the format.
// Arguments are expected to carry either a long alias alone or a short and
// a long one, anything else is a shape mismatch.
func (driver) Serialize(arg shellgen.Argument) (string, error) {
	var short, long string
	switch len(arg.Aliases) {
	case 1:
		long = arg.Aliases[0]
	case 2:
		short, long = arg.Aliases[0], arg.Aliases[1]
	default:
		return "", fmt.Errorf(
			"fish: argument %q has %d aliases, expected one or two",
			arg.ShortHelp, len(arg.Aliases),
		)
	}

	decl := []string{"complete", "-c", program}

	if short != "" {
		decl = append(decl, "-s", strings.TrimLeft(short, "-"))
	}
	decl = append(decl, "-l", strings.TrimLeft(long, "-"))

	switch {
	case len(arg.Config.Choices) > 0:
		decl = append(decl, "-xa", `"`+strings.Join(arg.Config.Choices, " ")+`"`)
	case arg.Config.LazyChoices:
		// Choices computed at shell runtime, no literal set to bake in.
		decl = append(decl, "-x")
	}

	help := strings.ReplaceAll(arg.ShortHelp, "'", `\'`)
	decl = append(decl, "-d", "'"+help+"'")

	return strings.Join(decl, "\t"), nil
}
