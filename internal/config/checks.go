package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// checksFile is the YAML shape of the optional check-toggle file:
//
//	checks:
//	  three_poles: true
//	  ngons: false
type checksFile struct {
	Checks map[string]bool `yaml:"checks"`
}

// LoadCheckToggles reads per-check enabled overrides from a YAML file. A
// missing path returns an empty map, not an error; new sessions then start
// from the registry defaults alone.
func LoadCheckToggles(path string) (map[string]bool, error) {
	if path == "" {
		return map[string]bool{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read checks file: %w", err)
	}
	var cf checksFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse checks file: %w", err)
	}
	if cf.Checks == nil {
		cf.Checks = map[string]bool{}
	}
	return cf.Checks, nil
}
