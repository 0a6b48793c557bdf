// Package definition builds the read-only argument specification of the
// target program from an embedded YAML document. The document mirrors the
// CLI's own parser definition, generation never mutates it.
package definition

import (
	_ "embed"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/1pkg/shellgen"
)

//go:embed definition.yaml
var raw []byte

type document struct {
	Program string  `yaml:"program"`
	Groups  []group `yaml:"groups"`
}

type group struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Arguments   []argument `yaml:"arguments"`
}

type argument struct {
	Aliases       []string               `yaml:"aliases"`
	Flag          bool                   `yaml:"flag"`
	Positional    bool                   `yaml:"positional"`
	Hidden        bool                   `yaml:"hidden"`
	Help          string                 `yaml:"help"`
	Configuration map[string]interface{} `yaml:"configuration"`
}

// configuration is the typed shape of the loose per argument configuration
// mapping, optional keys stay optional through pointer and zero values.
type configuration struct {
	Metavar     *string  `mapstructure:"metavar"`
	Choices     []string `mapstructure:"choices"`
	LazyChoices bool     `mapstructure:"lazy_choices"`
}

// Load decodes the embedded definition document into a specification.
// The result is deterministic, the same document always yields the same
// spec with the same group and argument order.
func Load() (*shellgen.Spec, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode definition document: %w", err)
	}
	spec := &shellgen.Spec{Program: doc.Program}
	for _, g := range doc.Groups {
		sg := shellgen.Group{Name: g.Name, Description: g.Description}
		for _, a := range g.Arguments {
			var cfg configuration
			if a.Configuration != nil {
				if err := mapstructure.Decode(a.Configuration, &cfg); err != nil {
					return nil, fmt.Errorf("decode configuration of %q: %w", a.Help, err)
				}
			}
			sg.Arguments = append(sg.Arguments, shellgen.Argument{
				Aliases:    a.Aliases,
				Flag:       a.Flag,
				Positional: a.Positional,
				Hidden:     a.Hidden,
				ShortHelp:  a.Help,
				Config: shellgen.Config{
					Metavar:     cfg.Metavar,
					Choices:     cfg.Choices,
					LazyChoices: cfg.LazyChoices,
				},
			})
		}
		spec.Groups = append(spec.Groups, sg)
	}
	return spec, nil
}
