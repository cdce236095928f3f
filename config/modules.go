package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// defaultModulePaths is the built-in module_name -> source-file table
// consulted before falling back to conventional directory lookup (the
// convention here: native modules resolve by name alone, through
// stdlib.Loader, so this table only matters for file-backed modules — it
// ships empty by default and exists so gill.modules.yaml can extend it
// without code changes).
var defaultModulePaths = map[string]string{}

// ModulePathsFile is the optional YAML file, read from the current working
// directory, holding additional module_name -> file-path entries (spec.md
// §4.3 Import: "module_name -> file-path table falling back to
// conventional directory lookup").
const ModulePathsFile = "gill.modules.yaml"

// LoadModulePaths reads ModulePathsFile if present and merges its entries
// over defaultModulePaths; entries are overridden, not replaced wholesale,
// so a project can extend the defaults rather than restate them.
func LoadModulePaths() (map[string]string, error) {
	paths := make(map[string]string, len(defaultModulePaths))
	for k, v := range defaultModulePaths {
		paths[k] = v
	}

	data, err := os.ReadFile(ModulePathsFile)
	if os.IsNotExist(err) {
		return paths, nil
	}
	if err != nil {
		return nil, err
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, err
	}
	for k, v := range overrides {
		paths[k] = v
	}
	return paths, nil
}
