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

package message

import (
	"fmt"
	"io"

	"github.com/cql-wire/native-protocol/primitive"
)

// SchemaChange carries the fields common to a schema-change RESULT and a
// schema-change EVENT. Both messages are byte-for-byte identical on the wire;
// this type and its encode/length/decode functions are the single place that
// wire layout is expressed, so SchemaChangeResult and SchemaChangeEvent cannot
// drift apart from each other.
type SchemaChange struct {
	// The schema change type.
	ChangeType primitive.SchemaChangeType
	// The schema change target, that is, the kind of schema object affected by the change. This field has been
	// introduced in protocol version 3.
	Target primitive.SchemaChangeTarget
	// The name of the keyspace affected by the change.
	Keyspace string
	// If the schema object affected by the change is not the keyspace itself, this field contains its name. Otherwise,
	// this field is irrelevant.
	Object string
	// If the schema object affected by the change is a function or an aggregate, this field contains its arguments.
	// Otherwise, this field is irrelevant. Valid from protocol version 4 onwards.
	Arguments []string
}

func (s *SchemaChange) Clone() *SchemaChange {
	if s == nil {
		return nil
	}
	return &SchemaChange{
		ChangeType: s.ChangeType,
		Target:     s.Target,
		Keyspace:   s.Keyspace,
		Object:     s.Object,
		Arguments:  primitive.CloneStringSlice(s.Arguments),
	}
}

func (s *SchemaChange) String() string {
	return fmt.Sprintf("(type=%v target=%v keyspace=%v object=%v args=%v)",
		s.ChangeType, s.Target, s.Keyspace, s.Object, s.Arguments)
}

func encodeSchemaChange(sc *SchemaChange, dest io.Writer, version primitive.ProtocolVersion, context string) (err error) {
	if err = primitive.CheckValidSchemaChangeType(sc.ChangeType); err != nil {
		return err
	} else if err = primitive.WriteString(string(sc.ChangeType), dest); err != nil {
		return fmt.Errorf("cannot write %v.ChangeType: %w", context, err)
	}
	if version >= primitive.ProtocolVersion3 {
		if err = primitive.CheckValidSchemaChangeTarget(sc.Target, version); err != nil {
			return err
		} else if err = primitive.WriteString(string(sc.Target), dest); err != nil {
			return fmt.Errorf("cannot write %v.Target: %w", context, err)
		}
		if sc.Keyspace == "" {
			return fmt.Errorf("%v: cannot write empty keyspace", context)
		} else if err = primitive.WriteString(sc.Keyspace, dest); err != nil {
			return fmt.Errorf("cannot write %v.Keyspace: %w", context, err)
		}
		switch sc.Target {
		case primitive.SchemaChangeTargetKeyspace:
		case primitive.SchemaChangeTargetTable, primitive.SchemaChangeTargetType:
			if sc.Object == "" {
				return fmt.Errorf("%v: cannot write empty object", context)
			} else if err = primitive.WriteString(sc.Object, dest); err != nil {
				return fmt.Errorf("cannot write %v.Object: %w", context, err)
			}
		case primitive.SchemaChangeTargetFunction, primitive.SchemaChangeTargetAggregate:
			if sc.Object == "" {
				return fmt.Errorf("%v: cannot write empty object", context)
			} else if err = primitive.WriteString(sc.Object, dest); err != nil {
				return fmt.Errorf("cannot write %v.Object: %w", context, err)
			}
			if err = primitive.WriteStringList(sc.Arguments, dest); err != nil {
				return fmt.Errorf("cannot write %v.Arguments: %w", context, err)
			}
		}
	} else {
		if err = primitive.CheckValidSchemaChangeTarget(sc.Target, version); err != nil {
			return err
		}
		if sc.Keyspace == "" {
			return fmt.Errorf("%v: cannot write empty keyspace", context)
		} else if err = primitive.WriteString(sc.Keyspace, dest); err != nil {
			return fmt.Errorf("cannot write %v.Keyspace: %w", context, err)
		}
		switch sc.Target {
		case primitive.SchemaChangeTargetKeyspace:
			if sc.Object != "" {
				return fmt.Errorf("%v: table must be empty for keyspace targets", context)
			} else if err = primitive.WriteString("", dest); err != nil {
				return fmt.Errorf("cannot write %v.Object: %w", context, err)
			}
		case primitive.SchemaChangeTargetTable:
			if sc.Object == "" {
				return fmt.Errorf("%v: cannot write empty table", context)
			} else if err = primitive.WriteString(sc.Object, dest); err != nil {
				return fmt.Errorf("cannot write %v.Object: %w", context, err)
			}
		}
	}
	return nil
}

func lengthOfSchemaChange(sc *SchemaChange, version primitive.ProtocolVersion) (length int, err error) {
	length += primitive.LengthOfString(string(sc.ChangeType))
	if err = primitive.CheckValidSchemaChangeTarget(sc.Target, version); err != nil {
		return -1, err
	}
	if version >= primitive.ProtocolVersion3 {
		length += primitive.LengthOfString(string(sc.Target))
		length += primitive.LengthOfString(sc.Keyspace)
		switch sc.Target {
		case primitive.SchemaChangeTargetKeyspace:
		case primitive.SchemaChangeTargetTable, primitive.SchemaChangeTargetType:
			length += primitive.LengthOfString(sc.Object)
		case primitive.SchemaChangeTargetFunction, primitive.SchemaChangeTargetAggregate:
			length += primitive.LengthOfString(sc.Object)
			length += primitive.LengthOfStringList(sc.Arguments)
		}
	} else {
		length += primitive.LengthOfString(sc.Keyspace)
		length += primitive.LengthOfString(sc.Object)
	}
	return length, nil
}

func decodeSchemaChange(source io.Reader, version primitive.ProtocolVersion, context string) (sc *SchemaChange, err error) {
	sc = &SchemaChange{}
	var changeType string
	if changeType, err = primitive.ReadString(source); err != nil {
		return nil, fmt.Errorf("cannot read %v.ChangeType: %w", context, err)
	}
	sc.ChangeType = primitive.SchemaChangeType(changeType)
	if version >= primitive.ProtocolVersion3 {
		var target string
		if target, err = primitive.ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read %v.Target: %w", context, err)
		}
		sc.Target = primitive.SchemaChangeTarget(target)
		if err = primitive.CheckValidSchemaChangeTarget(sc.Target, version); err != nil {
			return nil, err
		}
		if sc.Keyspace, err = primitive.ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read %v.Keyspace: %w", context, err)
		}
		switch sc.Target {
		case primitive.SchemaChangeTargetKeyspace:
		case primitive.SchemaChangeTargetTable, primitive.SchemaChangeTargetType:
			if sc.Object, err = primitive.ReadString(source); err != nil {
				return nil, fmt.Errorf("cannot read %v.Object: %w", context, err)
			}
		case primitive.SchemaChangeTargetFunction, primitive.SchemaChangeTargetAggregate:
			if sc.Object, err = primitive.ReadString(source); err != nil {
				return nil, fmt.Errorf("cannot read %v.Object: %w", context, err)
			}
			if sc.Arguments, err = primitive.ReadStringList(source); err != nil {
				return nil, fmt.Errorf("cannot read %v.Arguments: %w", context, err)
			}
		default:
			return nil, fmt.Errorf("unknown schema change target: %v", sc.Target)
		}
	} else {
		if sc.Keyspace, err = primitive.ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read %v.Keyspace: %w", context, err)
		}
		if sc.Object, err = primitive.ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read %v.Object: %w", context, err)
		}
		if sc.Object == "" {
			sc.Target = primitive.SchemaChangeTargetKeyspace
		} else {
			sc.Target = primitive.SchemaChangeTargetTable
		}
	}
	return sc, nil
}
