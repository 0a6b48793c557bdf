package generators

import (
	"text/template"

	"github.com/1pkg/shellgen"
)

// DriverName holds names of shell driver implementations.
type DriverName string

const (
	DriverNameZsh  DriverName = "zsh"
	DriverNameFish DriverName = "fish"
)

// Driver turns a single argument into one shell's completion declaration
// and exposes the shell specific helpers a completion template may call.
type Driver interface {
	Name() DriverName
	Serialize(arg shellgen.Argument) (string, error)
	Funcs() template.FuncMap
}
