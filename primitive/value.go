// Copyright 2020 DataStax
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package primitive

import (
	"errors"
	"fmt"
	"io"
)

// ValueType identifies which of the three wire shapes a [value] occupies.
type ValueType int32

const (
	// ValueTypeRegular is a normal, length-prefixed value.
	ValueTypeRegular ValueType = 0
	// ValueTypeNull is an explicit null value: length -1 on the wire.
	ValueTypeNull ValueType = -1
	// ValueTypeUnset is an explicit "not set" value: length -2 on the wire.
	// Only valid from protocol version 4 onwards; it tells the server to
	// leave the corresponding column untouched rather than setting it to null.
	ValueTypeUnset ValueType = -2
)

// Value is the wire-level [value] primitive used by bound variables in QUERY,
// EXECUTE and BATCH messages: either a regular byte sequence, an explicit null,
// or (v4+) an explicit "unset" marker. This type only carries the envelope; it
// does not interpret the bytes of a regular value as any particular CQL type.
type Value struct {
	Type     ValueType
	Contents []byte
}

func NewValue(contents []byte) *Value {
	return &Value{Type: ValueTypeRegular, Contents: contents}
}

var NilValue = &Value{Type: ValueTypeNull}

var UnsetValue = &Value{Type: ValueTypeUnset}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	return &Value{Type: v.Type, Contents: CloneByteSlice(v.Contents)}
}

func (v *Value) String() string {
	switch v.Type {
	case ValueTypeNull:
		return "NULL"
	case ValueTypeUnset:
		return "UNSET"
	default:
		return fmt.Sprintf("%v", v.Contents)
	}
}

func WriteValue(value *Value, dest io.Writer) error {
	if value == nil {
		return errors.New("cannot write a nil *Value, use NilValue instead")
	}
	switch value.Type {
	case ValueTypeNull:
		if err := WriteInt(-1, dest); err != nil {
			return fmt.Errorf("cannot write null [value]: %w", err)
		}
	case ValueTypeUnset:
		if err := WriteInt(-2, dest); err != nil {
			return fmt.Errorf("cannot write unset [value]: %w", err)
		}
	case ValueTypeRegular:
		if err := WriteBytes(value.Contents, dest); err != nil {
			return fmt.Errorf("cannot write [value] contents: %w", err)
		}
	default:
		return fmt.Errorf("invalid value type: %v", value.Type)
	}
	return nil
}

func LengthOfValue(value *Value) (int, error) {
	if value == nil {
		return -1, errors.New("cannot compute length of a nil *Value")
	}
	switch value.Type {
	case ValueTypeNull, ValueTypeUnset:
		return LengthOfInt, nil
	case ValueTypeRegular:
		return LengthOfBytes(value.Contents), nil
	default:
		return -1, fmt.Errorf("invalid value type: %v", value.Type)
	}
}

func ReadValue(source io.Reader) (*Value, error) {
	length, err := ReadInt(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read [value] length: %w", err)
	}
	switch length {
	case -1:
		return NilValue, nil
	case -2:
		return UnsetValue, nil
	default:
		if length < 0 {
			return nil, fmt.Errorf("invalid [value] length: %v", length)
		}
		contents := make([]byte, length)
		if read, err := source.Read(contents); err != nil {
			return nil, fmt.Errorf("cannot read [value] contents: %w", err)
		} else if read != int(length) {
			return nil, errors.New("not enough bytes to read [value] contents")
		}
		return NewValue(contents), nil
	}
}

// CheckValidUnsetValue rejects ValueTypeUnset for protocol versions that
// cannot represent it (v3 and below).
func CheckValidUnsetValue(value *Value, version ProtocolVersion) error {
	if value != nil && value.Type == ValueTypeUnset && !version.SupportsUnsetValues() {
		return fmt.Errorf("%v does not support unset values", version)
	}
	return nil
}

// [value list]

func WritePositionalValues(values []*Value, dest io.Writer, version ProtocolVersion) error {
	if err := WriteShort(uint16(len(values)), dest); err != nil {
		return fmt.Errorf("cannot write positional [value]s length: %w", err)
	}
	for i, value := range values {
		if err := CheckValidUnsetValue(value, version); err != nil {
			return err
		}
		if err := WriteValue(value, dest); err != nil {
			return fmt.Errorf("cannot write positional [value] %d: %w", i, err)
		}
	}
	return nil
}

func LengthOfPositionalValues(values []*Value) (length int, err error) {
	length += LengthOfShort
	for i, value := range values {
		valueLength, err := LengthOfValue(value)
		if err != nil {
			return -1, fmt.Errorf("cannot compute length of positional [value] %d: %w", i, err)
		}
		length += valueLength
	}
	return length, nil
}

func ReadPositionalValues(source io.Reader, version ProtocolVersion) (values []*Value, err error) {
	var length uint16
	if length, err = ReadShort(source); err != nil {
		return nil, fmt.Errorf("cannot read positional [value]s length: %w", err)
	}
	values = make([]*Value, length)
	for i := 0; i < int(length); i++ {
		if values[i], err = ReadValue(source); err != nil {
			return nil, fmt.Errorf("cannot read positional [value] %d: %w", i, err)
		}
	}
	return values, nil
}

// [named value list]
//
// Named values are modeled as a plain Go map: unlike reason maps and custom
// payloads, the protocol gives named bind-marker values set semantics (a
// server looks a value up by name, it never iterates them in wire order), so
// there is no observable order to preserve here.

func WriteNamedValues(values map[string]*Value, dest io.Writer, version ProtocolVersion) error {
	if err := WriteShort(uint16(len(values)), dest); err != nil {
		return fmt.Errorf("cannot write named [value]s length: %w", err)
	}
	for name, value := range values {
		if err := WriteString(name, dest); err != nil {
			return fmt.Errorf("cannot write named [value] %v name: %w", name, err)
		}
		if err := CheckValidUnsetValue(value, version); err != nil {
			return err
		}
		if err := WriteValue(value, dest); err != nil {
			return fmt.Errorf("cannot write named [value] %v: %w", name, err)
		}
	}
	return nil
}

func LengthOfNamedValues(values map[string]*Value) (length int, err error) {
	length += LengthOfShort
	for name, value := range values {
		length += LengthOfString(name)
		valueLength, err := LengthOfValue(value)
		if err != nil {
			return -1, fmt.Errorf("cannot compute length of named [value] %v: %w", name, err)
		}
		length += valueLength
	}
	return length, nil
}

func ReadNamedValues(source io.Reader, version ProtocolVersion) (values map[string]*Value, err error) {
	var length uint16
	if length, err = ReadShort(source); err != nil {
		return nil, fmt.Errorf("cannot read named [value]s length: %w", err)
	}
	values = make(map[string]*Value, length)
	for i := 0; i < int(length); i++ {
		var name string
		if name, err = ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read named [value] %d name: %w", i, err)
		}
		var value *Value
		if value, err = ReadValue(source); err != nil {
			return nil, fmt.Errorf("cannot read named [value] %d: %w", i, err)
		}
		values[name] = value
	}
	return values, nil
}

func CloneValuesSlice(o []*Value) []*Value {
	if o == nil {
		return nil
	}
	newSlice := make([]*Value, len(o))
	for i, v := range o {
		newSlice[i] = v.Clone()
	}
	return newSlice
}

func CloneNamedValues(o map[string]*Value) map[string]*Value {
	if o == nil {
		return nil
	}
	newMap := make(map[string]*Value, len(o))
	for name, v := range o {
		newMap[name] = v.Clone()
	}
	return newMap
}
