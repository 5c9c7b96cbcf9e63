package configuration

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// lowerKeys returns a copy of m in which the keys of all nested maps are lower cased.
// YAML decodes nested maps as map[interface{}]interface{}, those are converted to string keyed maps.
func lowerKeys(m map[string]interface{}) map[string]interface{} {
	lowered := make(map[string]interface{}, len(m))
	for key, val := range m {
		switch v := val.(type) {
		case map[string]interface{}:
			val = lowerKeys(v)
		case map[interface{}]interface{}:
			val = lowerKeys(cast.ToStringMap(v))
		}

		lowered[strings.ToLower(key)] = val
	}

	return lowered
}

// JSONLowerParser implements a koanf JSON parser with lower cased keys.
type JSONLowerParser struct{}

// Unmarshal parses the given JSON bytes.
func (p *JSONLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return lowerKeys(out), nil
}

// Marshal marshals the given config map to JSON bytes.
func (p *JSONLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return json.MarshalIndent(o, "", "  ")
}

// YAMLLowerParser implements a koanf YAML parser with lower cased keys.
type YAMLLowerParser struct{}

// Unmarshal parses the given YAML bytes.
func (p *YAMLLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return lowerKeys(out), nil
}

// Marshal marshals the given config map to YAML bytes.
func (p *YAMLLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}
