package main

import (
	"io"
	"os"

	"github.com/childe/jsonit/civil"
	"github.com/childe/jsonit/codec"
	"github.com/relvacode/iso8601"
)

func readDocument(input string) (any, error) {
	var (
		buffer []byte
		err    error
	)
	if input == "-" {
		buffer, err = io.ReadAll(os.Stdin)
	} else {
		buffer, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, err
	}
	return codec.DecoderFor(input).Decode(buffer)
}

// parseTimes replaces ISO-8601 datetime strings by datetime values. Strings
// with a zone become time.Time, the others civil.DateTime.
func parseTimes(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, val := range v {
			v[k] = parseTimes(val)
		}
		return v
	case []any:
		for i, val := range v {
			v[i] = parseTimes(val)
		}
		return v
	case string:
		if t, ok := parseTime(v); ok {
			return t
		}
	}
	return v
}

// shortest accepted form is YYYY-MM-DDTHH:MM
const minDateTimeLen = len("2006-01-02T15:04")

func parseTime(s string) (any, bool) {
	if len(s) < minDateTimeLen || s[10] != 'T' {
		return nil, false
	}
	if !civil.HasZone(s) {
		dt, err := civil.ParseDateTime(s)
		if err != nil {
			return nil, false
		}
		return dt, true
	}
	t, err := iso8601.ParseString(s)
	if err != nil {
		return nil, false
	}
	return t, true
}
