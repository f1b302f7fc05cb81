package codec

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrTypeNotSerializable matches every UnsupportedTypeError.
var ErrTypeNotSerializable = errors.New("type is not JSON serializable")

// ErrRuleDepthExceeded is returned when rule conversions keep feeding each
// other values that need another rule.
var ErrRuleDepthExceeded = errors.New("rule conversions nested too deep")

// UnsupportedTypeError is returned when no rule converts a value that json
// cannot represent by itself.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("object of type %s is not JSON serializable", e.Type)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrTypeNotSerializable
}
