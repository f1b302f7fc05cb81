package codec

import (
	"fmt"
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
	"k8s.io/klog/v2"
)

// ruleExtension hooks the rule list into jsoniter. jsoniter asks extensions
// for an encoder before it builds its own, so a matching rule wins over
// struct encoding and MarshalJSON.
type ruleExtension struct {
	jsoniter.DummyExtension
	rules Rules
	state *encodeState
}

// maxRuleDepth bounds how many rule conversions may be nested inside each
// other. Rules whose output leads back to themselves stop here.
const maxRuleDepth = 512

// encodeState lives for one Marshal call. jsoniter prefixes errors raised
// inside struct fields and slices, the first error is kept here as raised.
type encodeState struct {
	err   error
	depth int
}

func (s *encodeState) fail(stream *jsoniter.Stream, err error) {
	if s.err == nil {
		s.err = err
	}
	if stream.Error == nil {
		stream.Error = err
	}
}

// DecorateEncoder makes empty maps come out as {} when indenting, jsoniter
// writes a blank indented line between the braces otherwise.
func (ext *ruleExtension) DecorateEncoder(typ reflect2.Type, encoder jsoniter.ValEncoder) jsoniter.ValEncoder {
	if typ.Kind() != reflect.Map {
		return encoder
	}
	return &emptyMapEncoder{typ: typ, ValEncoder: encoder}
}

func (ext *ruleExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	t := typ.Type1()
	if isNative(t.Kind()) {
		return nil
	}
	if rule, ok := ext.rules.Lookup(t); ok {
		klog.V(5).Infof("%s encoded by rule for %s", t, rule.Type)
		return &ruleEncoder{typ: typ, rule: rule, state: ext.state}
	}
	if isUnsupported(t.Kind()) {
		return &unsupportedEncoder{typ: t, state: ext.state}
	}
	// structs and pointers fall back to jsoniter
	return nil
}

// isNative lists the kinds json has a direct representation for. Interface
// is included because jsoniter resolves the dynamic type and asks again.
func isNative(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String, reflect.Map, reflect.Slice, reflect.Array, reflect.Interface:
		return true
	}
	return false
}

func isUnsupported(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return true
	}
	return false
}

type ruleEncoder struct {
	typ   reflect2.Type
	rule  Rule
	state *encodeState
}

func (e *ruleEncoder) value(ptr unsafe.Pointer) (any, bool) {
	v := e.typ.UnsafeIndirect(ptr)
	if e.typ.IsNullable() && reflect.ValueOf(v).IsNil() {
		return nil, false
	}
	return v, true
}

func (e *ruleEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	v, ok := e.value(ptr)
	if !ok {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}

func (e *ruleEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	v, ok := e.value(ptr)
	if !ok {
		stream.WriteNil()
		return
	}
	e.state.depth++
	defer func() { e.state.depth-- }()
	if e.state.depth > maxRuleDepth {
		e.state.fail(stream, fmt.Errorf("%w: rule for %s", ErrRuleDepthExceeded, e.rule.Type))
		return
	}
	out, err := e.rule.Convert(v)
	if err != nil {
		e.state.fail(stream, err)
		return
	}
	if out != nil && reflect.TypeOf(out) == e.typ.Type1() {
		e.state.fail(stream, fmt.Errorf("rule for %s returned a %s again", e.rule.Type, e.typ))
		return
	}
	stream.WriteVal(out)
}

type unsupportedEncoder struct {
	typ   reflect.Type
	state *encodeState
}

func (e *unsupportedEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return false
}

func (e *unsupportedEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	klog.V(4).Infof("no rule for %s", e.typ)
	e.state.fail(stream, &UnsupportedTypeError{Type: e.typ})
}

type emptyMapEncoder struct {
	jsoniter.ValEncoder
	typ reflect2.Type
}

func (e *emptyMapEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	m := reflect.ValueOf(e.typ.UnsafeIndirect(ptr))
	if !m.IsNil() && m.Len() == 0 {
		stream.WriteEmptyObject()
		return
	}
	e.ValEncoder.Encode(ptr, stream)
}
