package blacklist

import (
	_ "embed"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

//go:embed defaults.hcl
var defaultConfig []byte

// configFile mirrors the HCL blacklist shape:
//
//	defaults {
//	  key "number.format.separator" { blocked = true }
//	}
//	locale "de" {
//	  key "number.format.separator" { blocked = false }
//	}
type configFile struct {
	Defaults *entriesBlock `hcl:"defaults,block"`
	Locales  []localeBlock `hcl:"locale,block"`
}

type entriesBlock struct {
	Entries []keyEntry `hcl:"key,block"`
}

type localeBlock struct {
	ID      string     `hcl:"id,label"`
	Entries []keyEntry `hcl:"key,block"`
}

type keyEntry struct {
	Path    string `hcl:"path,label"`
	Blocked bool   `hcl:"blocked"`
}

// DefaultTable parses the blacklist configuration bundled with the tool.
func DefaultTable() (*Table, error) {
	return Parse("defaults.hcl", defaultConfig)
}

// Parse decodes an HCL blacklist document into a Table. filename is
// used for diagnostics and must carry the .hcl suffix.
func Parse(filename string, content []byte) (*Table, error) {
	var cfg configFile
	if err := hclsimple.Decode(filename, content, nil, &cfg); err != nil {
		return nil, fmt.Errorf("decode blacklist %s: %w", filename, err)
	}

	table := &Table{
		Defaults: make(map[string]bool),
		Locales:  make(map[string]map[string]bool),
	}
	if cfg.Defaults != nil {
		for _, e := range cfg.Defaults.Entries {
			table.Defaults[e.Path] = e.Blocked
		}
	}
	for _, loc := range cfg.Locales {
		overrides := make(map[string]bool, len(loc.Entries))
		for _, e := range loc.Entries {
			overrides[e.Path] = e.Blocked
		}
		table.Locales[loc.ID] = overrides
	}
	return table, nil
}
