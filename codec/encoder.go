package codec

import (
	"fmt"
)

type Encoder interface {
	Encode(any) ([]byte, error)
}

// NewEncoder returns the encoder registered under t.
func NewEncoder(t string) (Encoder, error) {
	switch t {
	case "json":
		return NewJsonEncoder(false), nil
	case "json:debug":
		return NewJsonEncoder(true), nil
	}
	return nil, fmt.Errorf("unknown codec `%s`", t)
}
