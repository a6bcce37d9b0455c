package classify

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ruleFile is the on-disk shape of a rule override file.
type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads an ordered rule list from a YAML file. The file replaces
// the built-in table entirely, so callers pass the result to NewWithRules.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var parsed ruleFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	if len(parsed.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s defines no rules", path)
	}
	return parsed.Rules, nil
}
