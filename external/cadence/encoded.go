package cadence

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v4"
)

// MsgPackDataConverter serializes workflow and activity payloads with
// msgpack instead of cadence's default json converter. Workers and the
// API client must both be configured with it.
type MsgPackDataConverter struct{}

func NewMsgPackDataConverter() *MsgPackDataConverter {
	return &MsgPackDataConverter{}
}

// ToData encodes a list of argument values into one payload.
func (c *MsgPackDataConverter) ToData(values ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for i, v := range values {
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode argument %d (%v) with msgpack: %v", i, reflect.TypeOf(v), err)
		}
	}
	return buf.Bytes(), nil
}

// FromData decodes a payload back into the given argument pointers.
func (c *MsgPackDataConverter) FromData(input []byte, valuePtrs ...interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(input))
	for i, v := range valuePtrs {
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("decode argument %d (%v) with msgpack: %v", i, reflect.TypeOf(v), err)
		}
	}
	return nil
}
