// Package translation defers message translation until a string is needed.
package translation

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLanguage is used by Lazy.
var DefaultLanguage = language.English

// Promise is a value that produces its string only when asked.
type Promise interface {
	Evaluate() string
}

// LazyString is a message key and its arguments, formatted against the
// default catalog each time it is evaluated.
type LazyString struct {
	tag  language.Tag
	key  string
	args []any
}

var _ Promise = LazyString{}

func Lazy(key string, args ...any) LazyString {
	return LazyIn(DefaultLanguage, key, args...)
}

func LazyIn(tag language.Tag, key string, args ...any) LazyString {
	return LazyString{tag: tag, key: key, args: args}
}

// Evaluate formats the message. Keys missing from the catalog are used as
// the format string.
func (s LazyString) Evaluate() string {
	return message.NewPrinter(s.tag).Sprintf(s.key, s.args...)
}

func (s LazyString) String() string {
	return s.Evaluate()
}

func (s LazyString) Language() language.Tag {
	return s.tag
}

// SetString registers the translation of key for tag in the default catalog.
func SetString(tag language.Tag, key, msg string) error {
	return message.SetString(tag, key, msg)
}
