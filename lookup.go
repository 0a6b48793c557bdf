package shellgen

import "fmt"

// LookupError is returned when a named argument expected by a completion
// template is absent from the specification. It is fatal for generation,
// every subsequent template substitution depends on spec integrity.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("could not find argument with name %q", e.Name)
}

// FindByTargetName scans groups in order and returns the first argument
// whose target set contains name. The targets of an argument are its
// aliases when it has any, otherwise its metavar alone.
func (s *Spec) FindByTargetName(name string) (Argument, error) {
	for _, g := range s.Groups {
		for _, a := range g.Arguments {
			targets := a.Aliases
			if len(targets) == 0 {
				targets = []string{a.Metavar()}
			}
			for _, t := range targets {
				if t == name {
					return a, nil
				}
			}
		}
	}
	return Argument{}, &LookupError{Name: name}
}
