package codec

import (
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// YamlDecoder reads yaml (and so json) documents with YAML 1.2 scalars, so
// y, n, on and off stay strings. Mappings with non-string keys come back as
// map[interface{}]interface{}, keys are turned into strings on the way out.
type YamlDecoder struct{}

func (yd *YamlDecoder) Decode(value []byte) (any, error) {
	var rst any
	if err := yaml.Unmarshal(value, &rst); err != nil {
		return nil, err
	}
	return normalize(rst), nil
}

func normalize(v any) any {
	switch v := v.(type) {
	case map[any]any:
		return normalize(cast.ToStringMap(v))
	case map[string]any:
		for k, val := range v {
			v[k] = normalize(val)
		}
		return v
	case []any:
		for i, val := range v {
			v[i] = normalize(val)
		}
		return v
	}
	return v
}
