package codec

import (
	"bytes"
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var ErrTrailingData = errors.New("trailing data after json document")

type JsonDecoder struct {
	useNumber bool
}

func (jd *JsonDecoder) Decode(value []byte) (any, error) {
	var rst any
	d := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(bytes.NewReader(value))
	if jd.useNumber {
		d.UseNumber()
	}
	if err := d.Decode(&rst); err != nil {
		return nil, err
	}
	if d.More() {
		return nil, ErrTrailingData
	}
	return rst, nil
}
