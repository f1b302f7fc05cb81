package codec

import (
	jsoniter "github.com/json-iterator/go"
)

const debugIndent = 2

// JsonEncoder encodes values to json, converting values json can not
// represent through an ordered rule list.
type JsonEncoder struct {
	rules  Rules
	config jsoniter.Config
}

// NewJsonEncoder builds an encoder whose rule list is extra followed by the
// defaults not overridden by extra. Output is indented by two spaces when
// debug is set and compact otherwise.
func NewJsonEncoder(debug bool, extra ...Rule) *JsonEncoder {
	indent := 0
	if debug {
		indent = debugIndent
	}
	return &JsonEncoder{
		rules: Merge(extra, DefaultRules()),
		config: jsoniter.Config{
			EscapeHTML:             true,
			SortMapKeys:            true,
			ValidateJsonRawMessage: true,
			IndentionStep:          indent,
		},
	}
}

// Encode is safe for concurrent use, every call freezes its own jsoniter
// config so encoder caches never outlive the call.
func (e *JsonEncoder) Encode(v any) ([]byte, error) {
	state := &encodeState{}
	api := e.config.Froze()
	api.RegisterExtension(&ruleExtension{rules: e.rules, state: state})

	b, err := api.Marshal(v)
	if state.err != nil {
		return nil, state.err
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Rules returns a copy of the effective rule list.
func (e *JsonEncoder) Rules() Rules {
	return append(Rules(nil), e.rules...)
}

// Encode renders v as json text. See NewJsonEncoder for debug and extra.
func Encode(v any, debug bool, extra ...Rule) (string, error) {
	b, err := NewJsonEncoder(debug, extra...).Encode(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
