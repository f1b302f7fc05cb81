package codec

import (
	"reflect"
	"time"

	"github.com/childe/jsonit/civil"
	"github.com/childe/jsonit/translation"
)

// ConvertFunc turns a value into something json can represent natively.
type ConvertFunc func(any) (any, error)

// Rule binds a type to the function that converts its values.
// Type may be an interface type, in which case every type implementing it matches.
type Rule struct {
	Type    reflect.Type
	Convert ConvertFunc
}

// RuleFor builds a Rule for T. T may be an interface.
func RuleFor[T any](fn func(T) (any, error)) Rule {
	return Rule{
		Type: reflect.TypeOf((*T)(nil)).Elem(),
		Convert: func(v any) (any, error) {
			return fn(v.(T))
		},
	}
}

// Matches reports whether values of type t are handled by r.
func (r Rule) Matches(t reflect.Type) bool {
	if t == r.Type {
		return true
	}
	return r.Type.Kind() == reflect.Interface && t.Implements(r.Type)
}

// Rules is an ordered rule list, the first match wins.
type Rules []Rule

// Lookup returns the first rule matching t.
func (rs Rules) Lookup(t reflect.Type) (Rule, bool) {
	for _, r := range rs {
		if r.Matches(t) {
			return r, true
		}
	}
	return Rule{}, false
}

func (rs Rules) has(t reflect.Type) bool {
	for _, r := range rs {
		if r.Type == t {
			return true
		}
	}
	return false
}

// Merge puts extra in front of defaults and drops every default whose type
// is identical to one of the extra rules. A default for a type that merely
// implements an extra interface is kept.
func Merge(extra, defaults Rules) Rules {
	rules := make(Rules, 0, len(extra)+len(defaults))
	rules = append(rules, extra...)
	for _, r := range defaults {
		if extra.has(r.Type) {
			continue
		}
		rules = append(rules, r)
	}
	return rules
}

// DateTime is satisfied by time.Time and civil.DateTime.
type DateTime interface {
	Date() (year int, month time.Month, day int)
	Clock() (hour, min, sec int)
}

// Date is satisfied by anything carrying a calendar date, datetimes included.
type Date interface {
	Date() (year int, month time.Month, day int)
}

// StatusMessage is satisfied by flash.Message and by any type embedding it.
type StatusMessage interface {
	Tags() string
	Body() string
}

type isoFormatter interface {
	IsoFormat() string
}

// DefaultRules returns a fresh copy of the built-in rule list.
// The datetime rule comes before the date rule since every datetime is a date too.
func DefaultRules() Rules {
	return Rules{
		RuleFor(encodePromise),
		RuleFor(encodeMessage),
		RuleFor(encodeDateTime),
		RuleFor(encodeDate),
	}
}

func encodePromise(p translation.Promise) (any, error) {
	return p.Evaluate(), nil
}

func encodeMessage(m StatusMessage) (any, error) {
	return map[string]any{
		"class":   m.Tags(),
		"message": m.Body(),
	}, nil
}

func encodeDateTime(d DateTime) (any, error) {
	switch t := d.(type) {
	case time.Time:
		return civil.FormatTime(t), nil
	case *time.Time:
		return civil.FormatTime(*t), nil
	case isoFormatter:
		return t.IsoFormat(), nil
	}
	year, month, day := d.Date()
	hour, min, sec := d.Clock()
	dt := civil.DateTime{Year: year, Month: month, Day: day, Hour: hour, Minute: min, Second: sec}
	return dt.IsoFormat(), nil
}

func encodeDate(d Date) (any, error) {
	year, month, day := d.Date()
	return civil.Date{Year: year, Month: month, Day: day}.IsoFormat(), nil
}
