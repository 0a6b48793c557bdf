package generators

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/1pkg/shellgen"
	"go.uber.org/zap"
)

var (
	driversMu sync.Mutex
	drivers   = make(map[DriverName]Driver)
	order     []DriverName
)

// Register makes a shell driver available by the provided name.
// If Register is called twice with the same name or if driver is nil, it panics.
// Registration order is preserved and defines generation order.
func Register(name DriverName, driver Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if driver == nil {
		panic("register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic(fmt.Errorf("register called twice for driver %q", name))
	}
	drivers[name] = driver
	order = append(order, name)
}

// Drivers returns the names of all registered drivers in registration order.
func Drivers() []DriverName {
	driversMu.Lock()
	defer driversMu.Unlock()
	names := make([]DriverName, len(order))
	copy(names, order)
	return names
}

// Generate renders the completion script for a single shell to the provided
// writer. The template text is parsed with the base helper registry merged
// with the driver's own helpers, and executed against the global bindings
// built from the spec.
func Generate(drivern DriverName, spec *shellgen.Spec, tpl string, w io.Writer) error {
	driversMu.Lock()
	driver, ok := drivers[drivern]
	driversMu.Unlock()
	if !ok {
		return fmt.Errorf("unknown driver %q (forgotten import?)", drivern)
	}
	funcs := Funcs()
	funcs["serialize_argument"] = driver.Serialize
	for name, fn := range driver.Funcs() {
		funcs[name] = fn
	}
	t, err := template.New(string(drivern)).Funcs(funcs).Parse(tpl)
	if err != nil {
		return fmt.Errorf("parse %s template: %w", drivern, err)
	}
	bindings, err := Bindings(spec)
	if err != nil {
		return err
	}
	if err := t.Execute(w, bindings); err != nil {
		return fmt.Errorf("render %s template: %w", drivern, err)
	}
	return nil
}

// GenerateAll runs every registered driver, in registration order, against
// the one shared specification. For each shell the template
// completion.<shell>.tmpl is read from tfs and the rendered script is written
// to <outdir>/completion.<shell>, overwriting any previous run. The first
// failure aborts the whole run.
func GenerateAll(logger *zap.Logger, spec *shellgen.Spec, tfs fs.FS, outdir string) error {
	for _, name := range Drivers() {
		logger.Info("generating completer", zap.String("shell", string(name)))
		tpl, err := fs.ReadFile(tfs, fmt.Sprintf("completion.%s.tmpl", name))
		if err != nil {
			return fmt.Errorf("read %s template: %w", name, err)
		}
		path := filepath.Join(outdir, fmt.Sprintf("completion.%s", name))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s script: %w", name, err)
		}
		if err := Generate(name, spec, string(tpl), f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s script: %w", name, err)
		}
	}
	return nil
}
