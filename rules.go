package patmatch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rule pairs a name with the pattern text it should compile. Rule files are
// how larger tools ship their pattern sets.
type Rule struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads a rule file:
//
//	rules:
//	  - name: power-of-two
//	    pattern: "arith<any '*' '2'>"
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg rulesFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing rules %s: %w", path, err)
	}
	return cfg.Rules, nil
}
