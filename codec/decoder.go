package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Decoder turns a raw document into plain maps, slices and scalars.
type Decoder interface {
	Decode([]byte) (any, error)
}

func NewDecoder(t string) (Decoder, error) {
	switch t {
	case "json":
		return &JsonDecoder{useNumber: true}, nil
	case "json:not_usenumber":
		return &JsonDecoder{useNumber: false}, nil
	case "yaml", "yml":
		return &YamlDecoder{}, nil
	}
	return nil, fmt.Errorf("unknown codec `%s`", t)
}

// DecoderFor picks a decoder by file extension. Anything that is not json is
// read as yaml, which also accepts json.
func DecoderFor(filename string) Decoder {
	if strings.ToLower(filepath.Ext(filename)) == ".json" {
		return &JsonDecoder{useNumber: true}
	}
	return &YamlDecoder{}
}
