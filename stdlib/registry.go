package stdlib

import (
	"fmt"
	"os"

	"github.com/gill-lang/gill/config"
	"github.com/gill-lang/gill/environment"
	"github.com/gill-lang/gill/interp"
	"github.com/gill-lang/gill/lexer"
	"github.com/gill-lang/gill/parser"
	"github.com/gill-lang/gill/value"
)

// builders maps a module name to the function that constructs a native
// module. Each call returns a fresh Environment so two `import` statements
// for the same name in the same process never alias mutable state — the
// interpreter's own Modules registry (environment.Environment.Modules)
// is what makes a single process's repeated imports share one handle
// (spec.md §3 invariant). This is the last resort Load consults, after the
// path table and conventional directory lookup below have had a chance to
// name a real source file.
var builders = map[string]func() *environment.Environment{
	"stdlib":   Module,
	"mathx":    MathxModule,
	"strs":     StrsModule,
	"fileio":   FileioModule,
	"encoding": EncodingModule,
}

// sourceExt is the conventional file extension Load looks for in the
// working directory when a module name has no path-table entry
// (spec.md §4.3 Import: "falling back to conventional directory lookup").
const sourceExt = ".gill"

// Loader implements interp.ModuleLoader. Resolution order follows spec.md
// §4.3 Import exactly: the interpreter's own module cache is checked by
// VisitImport before Loader.Load is ever called; from there Load consults
// the module_name -> file-path table (config.LoadModulePaths, backed by
// the optional gill.modules.yaml), then a conventional "<name>.gill" file
// in the working directory, and only falls back to this package's built-in
// native modules once both of those have failed to name a loadable file.
type Loader struct{}

// NewLoader constructs a Loader. It takes no arguments today; future
// growth (e.g. additional native modules registered at runtime) attaches
// here rather than changing the ModuleLoader interface itself.
func NewLoader() *Loader { return &Loader{} }

func (l *Loader) Load(name string) (*environment.Environment, error) {
	paths, err := config.LoadModulePaths()
	if err != nil {
		return nil, fmt.Errorf("module %q: reading module path table: %w", name, err)
	}

	if path, ok := paths[name]; ok {
		return loadSourceModule(name, path)
	}

	if conventional := name + sourceExt; fileExists(conventional) {
		return loadSourceModule(name, conventional)
	}

	if build, ok := builders[name]; ok {
		return build(), nil
	}

	return nil, fmt.Errorf(
		"no module named %q: not in the module path table, no %q in the working directory, and not a built-in native module (available: stdlib, mathx, strs, fileio, encoding)",
		name, name+sourceExt)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// loadSourceModule reads, lexes, parses, and evaluates a GILL source file
// as a module body, the "load the external module descriptor" step of
// spec.md §4.3 Import for the file-backed (non-native) case. The file runs
// against its own fresh sub-interpreter, so a module file may declare its
// own functions/variables and even `import` further modules of its own;
// only its top-level bindings and functions end up reachable from the
// caller, via the returned Environment's Bindings/Functions maps, exactly
// as a native module's are.
func loadSourceModule(name, path string) (*environment.Environment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("module %q: %w", name, err)
	}

	toks, err := lexer.New(string(data)).Tokenize()
	if err != nil {
		return nil, fmt.Errorf("module %q: %w", name, err)
	}
	program, err := parser.Parse(toks)
	if err != nil {
		return nil, fmt.Errorf("module %q: %w", name, err)
	}

	sub := interp.New(NewLoader())
	modEnv := environment.NewModule(name, sub.Global)
	sub.Current = modEnv
	result := sub.Eval(program)
	if value.IsError(result) {
		return nil, fmt.Errorf("module %q: %s", name, result.String())
	}
	return modEnv, nil
}
