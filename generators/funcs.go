package generators

import (
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/1pkg/shellgen"
)

// CommonHTTPMethods is the fixed list of request methods offered as
// completion candidates for the method positional.
var CommonHTTPMethods = []string{
	"GET",
	"POST",
	"PUT",
	"DELETE",
	"HEAD",
	"OPTIONS",
	"PATCH",
	"TRACE",
	"CONNECT",
}

// RequestItemSeparators are the operators splitting a request item into key
// and value, longest first so template driven matchers stay unambiguous.
var RequestItemSeparators = []string{":=@", "=@", ":=", "==", "@", "=", ":"}

// FileUploadSeparator marks a request item whose value is read from a file.
const FileUploadSeparator = "@"

var (
	funcsMu sync.Mutex
	funcs   = make(template.FuncMap)
)

// RegisterFunc makes a host function callable from completion templates under
// the provided name. It panics on nil functions and duplicated names, the
// registry is assembled once at process start and is meant to stay explicit
// and enumerable.
func RegisterFunc(name string, fn interface{}) {
	funcsMu.Lock()
	defer funcsMu.Unlock()
	if fn == nil {
		panic("register func is nil")
	}
	if _, dup := funcs[name]; dup {
		panic(fmt.Errorf("register called twice for func %q", name))
	}
	funcs[name] = fn
}

// Funcs returns a copy of the base helper registry.
func Funcs() template.FuncMap {
	funcsMu.Lock()
	defer funcsMu.Unlock()
	m := make(template.FuncMap, len(funcs))
	for name, fn := range funcs {
		m[name] = fn
	}
	return m
}

// IsFileBasedOperator reports whether a request item separator denotes a
// file upload, such items complete file paths at shell runtime.
func IsFileBasedOperator(operator string) bool {
	return operator == FileUploadSeparator
}

func init() {
	RegisterFunc("is_file_based_operator", IsFileBasedOperator)
	RegisterFunc("join", strings.Join)
	RegisterFunc("upper", strings.ToUpper)
	RegisterFunc("trim", strings.TrimSpace)
}

// Bindings builds the global template bindings shared by every shell:
// the request item argument, the visible flag list, the method and separator
// tables and the positional completion flow.
func Bindings(spec *shellgen.Spec) (map[string]interface{}, error) {
	requestItems, err := spec.FindByTargetName("REQUEST_ITEM")
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"program":       spec.Program,
		"request_items": requestItems,
		"arguments":     spec.Flags(),
		"methods":       CommonHTTPMethods,
		"separators":    RequestItemSeparators,
		"flow":          Flow(spec),
	}, nil
}
