package shellgen

import (
	"reflect"
	"testing"
)

func strp(s string) *string {
	return &s
}

func TestArgumentMetavar(t *testing.T) {
	table := map[string]struct {
		arg Argument
		out string
	}{
		"explicit metavar should always win": {
			arg: Argument{
				Aliases: []string{"-o", "--output-format"},
				Config:  Config{Metavar: strp("FORMAT"), Choices: []string{"json"}},
			},
			out: "FORMAT",
		},
		"choices without metavar should derive it from the longest alias": {
			arg: Argument{
				Aliases: []string{"-o", "--output-format"},
				Config:  Config{Choices: []string{"json", "csv"}},
			},
			out: "OUTPUT_FORMAT",
		},
		"single alias with choices should derive from that alias": {
			arg: Argument{
				Aliases: []string{"--ssl"},
				Config:  Config{Choices: []string{"tls1", "tls1.2"}},
			},
			out: "SSL",
		},
		"no explicit metavar and no choices should yield nothing": {
			arg: Argument{
				Aliases: []string{"-v", "--verbose"},
			},
			out: "",
		},
		"choices without aliases should yield nothing": {
			arg: Argument{
				Config: Config{Choices: []string{"a", "b"}},
			},
			out: "",
		},
		"explicit empty metavar should stay empty": {
			arg: Argument{
				Aliases: []string{"--print"},
				Config:  Config{Metavar: strp("")},
			},
			out: "",
		},
	}
	for tname, tcase := range table {
		t.Run(tname, func(t *testing.T) {
			if out := tcase.arg.Metavar(); out != tcase.out {
				t.Fatalf("metavar should be %q but got %q", tcase.out, out)
			}
		})
	}
}

func TestSpecTraversal(t *testing.T) {
	spec := &Spec{
		Program: "http",
		Groups: []Group{
			{
				Name: "Positional arguments",
				Arguments: []Argument{
					{Positional: true, ShortHelp: "method", Config: Config{Metavar: strp("METHOD")}},
					{Positional: true, ShortHelp: "url", Config: Config{Metavar: strp("URL")}},
				},
			},
			{
				Name: "Content types",
				Arguments: []Argument{
					{Aliases: []string{"-j", "--json"}, Flag: true, ShortHelp: "json"},
					{Aliases: []string{"--default-scheme"}, Hidden: true, ShortHelp: "scheme"},
					{Aliases: []string{"-f", "--form"}, Flag: true, ShortHelp: "form"},
				},
			},
		},
	}
	t.Run("flags should keep order and drop hidden and positional arguments", func(t *testing.T) {
		var helps []string
		for _, a := range spec.Flags() {
			helps = append(helps, a.ShortHelp)
		}
		if exp := []string{"json", "form"}; !reflect.DeepEqual(helps, exp) {
			t.Fatalf("flags should be %v but got %v", exp, helps)
		}
	})
	t.Run("positionals should keep order and drop flags", func(t *testing.T) {
		var helps []string
		for _, a := range spec.Positionals() {
			helps = append(helps, a.ShortHelp)
		}
		if exp := []string{"method", "url"}; !reflect.DeepEqual(helps, exp) {
			t.Fatalf("positionals should be %v but got %v", exp, helps)
		}
	})
}
