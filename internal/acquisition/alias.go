package acquisition

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AliasTable maps a short human alias ("codigo-penal") to its canonical
// URN. Purely a lookup; the importer never writes to it (spec.md §1,
// "selection-by-alias lookup table, treated as external configuration").
type AliasTable map[string]string

// LoadAliasTable reads the YAML alias file configured via Config.Alias.File.
func LoadAliasTable(path string) (AliasTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading alias table %s: %w", path, err)
	}

	var table AliasTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing alias table %s: %w", path, err)
	}
	return table, nil
}

// Resolve looks up alias, returning its URN and whether it was found.
func (t AliasTable) Resolve(alias string) (string, bool) {
	urn, ok := t[alias]
	return urn, ok
}
