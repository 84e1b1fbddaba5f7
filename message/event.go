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
	"errors"
	"fmt"
	"io"

	"github.com/cql-wire/native-protocol/primitive"
)

type Event interface {
	Message
	GetEventType() primitive.EventType
}

// SCHEMA CHANGE EVENT

// SchemaChangeEvent is a response sent when a schema change event occurs. Its wire
// layout is shared with SchemaChangeResult via the embedded SchemaChange type.
// +k8s:deepcopy-gen=true
// +k8s:deepcopy-gen:interfaces=github.com/cql-wire/native-protocol/message.Message
type SchemaChangeEvent struct {
	SchemaChange
}

func (m *SchemaChangeEvent) IsResponse() bool {
	return true
}

func (m *SchemaChangeEvent) GetOpCode() primitive.OpCode {
	return primitive.OpCodeEvent
}

func (m *SchemaChangeEvent) GetEventType() primitive.EventType {
	return primitive.EventTypeSchemaChange
}

func (m *SchemaChangeEvent) Clone() Message {
	return &SchemaChangeEvent{SchemaChange: *m.SchemaChange.Clone()}
}

func (m *SchemaChangeEvent) String() string {
	return "EVENT SCHEMA CHANGE " + m.SchemaChange.String()
}

// STATUS CHANGE EVENT

// StatusChangeEvent is a response sent when a node status change event occurs.
// +k8s:deepcopy-gen=true
// +k8s:deepcopy-gen:interfaces=github.com/cql-wire/native-protocol/message.Message
type StatusChangeEvent struct {
	ChangeType primitive.StatusChangeType
	Address    *primitive.Inet
}

func (m *StatusChangeEvent) IsResponse() bool {
	return true
}

func (m *StatusChangeEvent) GetOpCode() primitive.OpCode {
	return primitive.OpCodeEvent
}

func (m *StatusChangeEvent) GetEventType() primitive.EventType {
	return primitive.EventTypeStatusChange
}

func (m *StatusChangeEvent) Clone() Message {
	return &StatusChangeEvent{ChangeType: m.ChangeType, Address: primitive.CloneInet(m.Address)}
}

func (m *StatusChangeEvent) String() string {
	return fmt.Sprintf("EVENT STATUS CHANGE (type=%v address=%v)", m.ChangeType, m.Address)
}

// TOPOLOGY CHANGE EVENT

// TopologyChangeEvent is a response sent when a topology change event occurs.
// +k8s:deepcopy-gen=true
// +k8s:deepcopy-gen:interfaces=github.com/cql-wire/native-protocol/message.Message
type TopologyChangeEvent struct {
	// The topology change type. Note that MOVED_NODE is only valid from protocol version 3 onwards.
	ChangeType primitive.TopologyChangeType
	// The address of the node.
	Address *primitive.Inet
}

func (m *TopologyChangeEvent) IsResponse() bool {
	return true
}

func (m *TopologyChangeEvent) GetOpCode() primitive.OpCode {
	return primitive.OpCodeEvent
}

func (m *TopologyChangeEvent) GetEventType() primitive.EventType {
	return primitive.EventTypeTopologyChange
}

func (m *TopologyChangeEvent) Clone() Message {
	return &TopologyChangeEvent{ChangeType: m.ChangeType, Address: primitive.CloneInet(m.Address)}
}

func (m *TopologyChangeEvent) String() string {
	return fmt.Sprintf("EVENT TOPOLOGY CHANGE (type=%v address=%v)", m.ChangeType, m.Address)
}

// EVENT SUB-REGISTRY
//
// Each EventType carries its own wire shape, so rather than a single codec
// switching on event.GetEventType(), the event kinds register a function
// triple each. eventCodec.Encode/EncodedLength/Decode never inspect a
// concrete event type themselves; they read the sub-discriminator off the
// wire (or the message) and hand off to whatever is registered for it.

type eventSubCodec struct {
	encode        func(event Event, dest io.Writer, version primitive.ProtocolVersion) error
	encodedLength func(event Event, version primitive.ProtocolVersion) (int, error)
	decode        func(source io.Reader, version primitive.ProtocolVersion) (Message, error)
}

var eventSubCodecs = map[primitive.EventType]eventSubCodec{
	primitive.EventTypeSchemaChange:   {encodeSchemaChangeEvent, lengthOfSchemaChangeEvent, decodeSchemaChangeEvent},
	primitive.EventTypeStatusChange:   {encodeStatusChangeEvent, lengthOfStatusChangeEvent, decodeStatusChangeEvent},
	primitive.EventTypeTopologyChange: {encodeTopologyChangeEvent, lengthOfTopologyChangeEvent, decodeTopologyChangeEvent},
}

func encodeSchemaChangeEvent(event Event, dest io.Writer, version primitive.ProtocolVersion) error {
	sce, ok := event.(*SchemaChangeEvent)
	if !ok {
		return fmt.Errorf("expected *message.SchemaChangeEvent, got %T", event)
	}
	return encodeSchemaChange(&sce.SchemaChange, dest, version, "SchemaChangeEvent")
}

func lengthOfSchemaChangeEvent(event Event, version primitive.ProtocolVersion) (int, error) {
	sce, ok := event.(*SchemaChangeEvent)
	if !ok {
		return -1, fmt.Errorf("expected *message.SchemaChangeEvent, got %T", event)
	}
	return lengthOfSchemaChange(&sce.SchemaChange, version)
}

func decodeSchemaChangeEvent(source io.Reader, version primitive.ProtocolVersion) (Message, error) {
	sc, err := decodeSchemaChange(source, version, "SchemaChangeEvent")
	if err != nil {
		return nil, err
	}
	return &SchemaChangeEvent{SchemaChange: *sc}, nil
}

func encodeStatusChangeEvent(event Event, dest io.Writer, version primitive.ProtocolVersion) (err error) {
	sce, ok := event.(*StatusChangeEvent)
	if !ok {
		return fmt.Errorf("expected *message.StatusChangeEvent, got %T", event)
	}
	if err = primitive.CheckValidStatusChangeType(sce.ChangeType); err != nil {
		return err
	} else if err = primitive.WriteString(string(sce.ChangeType), dest); err != nil {
		return fmt.Errorf("cannot write StatusChangeEvent.ChangeType: %w", err)
	}
	if err = primitive.WriteInet(sce.Address, dest); err != nil {
		return fmt.Errorf("cannot write StatusChangeEvent.Address: %w", err)
	}
	return nil
}

func lengthOfStatusChangeEvent(event Event, version primitive.ProtocolVersion) (int, error) {
	sce, ok := event.(*StatusChangeEvent)
	if !ok {
		return -1, fmt.Errorf("expected *message.StatusChangeEvent, got %T", event)
	}
	length := primitive.LengthOfString(string(sce.ChangeType))
	inetLength, err := primitive.LengthOfInet(sce.Address)
	if err != nil {
		return -1, fmt.Errorf("cannot compute length of StatusChangeEvent.Address: %w", err)
	}
	return length + inetLength, nil
}

func decodeStatusChangeEvent(source io.Reader, version primitive.ProtocolVersion) (Message, error) {
	sce := &StatusChangeEvent{}
	changeType, err := primitive.ReadString(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read StatusChangeEvent.ChangeType: %w", err)
	}
	sce.ChangeType = primitive.StatusChangeType(changeType)
	if sce.Address, err = primitive.ReadInet(source); err != nil {
		return nil, fmt.Errorf("cannot read StatusChangeEvent.Address: %w", err)
	}
	return sce, nil
}

func encodeTopologyChangeEvent(event Event, dest io.Writer, version primitive.ProtocolVersion) (err error) {
	tce, ok := event.(*TopologyChangeEvent)
	if !ok {
		return fmt.Errorf("expected *message.TopologyChangeEvent, got %T", event)
	}
	if err = primitive.CheckValidTopologyChangeType(tce.ChangeType, version); err != nil {
		return err
	} else if err = primitive.WriteString(string(tce.ChangeType), dest); err != nil {
		return fmt.Errorf("cannot write TopologyChangeEvent.ChangeType: %w", err)
	}
	if err = primitive.WriteInet(tce.Address, dest); err != nil {
		return fmt.Errorf("cannot write TopologyChangeEvent.Address: %w", err)
	}
	return nil
}

func lengthOfTopologyChangeEvent(event Event, version primitive.ProtocolVersion) (int, error) {
	tce, ok := event.(*TopologyChangeEvent)
	if !ok {
		return -1, fmt.Errorf("expected *message.TopologyChangeEvent, got %T", event)
	}
	length := primitive.LengthOfString(string(tce.ChangeType))
	inetLength, err := primitive.LengthOfInet(tce.Address)
	if err != nil {
		return -1, fmt.Errorf("cannot compute length of TopologyChangeEvent.Address: %w", err)
	}
	return length + inetLength, nil
}

func decodeTopologyChangeEvent(source io.Reader, version primitive.ProtocolVersion) (Message, error) {
	tce := &TopologyChangeEvent{}
	changeType, err := primitive.ReadString(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read TopologyChangeEvent.ChangeType: %w", err)
	}
	tce.ChangeType = primitive.TopologyChangeType(changeType)
	if tce.Address, err = primitive.ReadInet(source); err != nil {
		return nil, fmt.Errorf("cannot read TopologyChangeEvent.Address: %w", err)
	}
	return tce, nil
}

// EVENT CODEC

type eventCodec struct{}

func (c *eventCodec) Encode(msg Message, dest io.Writer, version primitive.ProtocolVersion) (err error) {
	event, ok := msg.(Event)
	if !ok {
		return fmt.Errorf("expected message.Event, got %T", msg)
	}
	if err = primitive.CheckValidEventType(event.GetEventType()); err != nil {
		return err
	} else if err = primitive.WriteString(string(event.GetEventType()), dest); err != nil {
		return fmt.Errorf("cannot write EVENT type: %v", err)
	}
	sub, ok := eventSubCodecs[event.GetEventType()]
	if !ok {
		return fmt.Errorf("unknown EVENT type: %v", event.GetEventType())
	}
	return sub.encode(event, dest, version)
}

func (c *eventCodec) EncodedLength(msg Message, version primitive.ProtocolVersion) (length int, err error) {
	event, ok := msg.(Event)
	if !ok {
		return -1, fmt.Errorf("expected message.Event, got %T", msg)
	}
	length = primitive.LengthOfString(string(event.GetEventType()))
	sub, ok := eventSubCodecs[event.GetEventType()]
	if !ok {
		return -1, fmt.Errorf("unknown EVENT type: %v", event.GetEventType())
	}
	subLength, err := sub.encodedLength(event, version)
	if err != nil {
		return -1, err
	}
	return length + subLength, nil
}

func (c *eventCodec) Decode(source io.Reader, version primitive.ProtocolVersion) (Message, error) {
	eventType, err := primitive.ReadString(source)
	if err != nil {
		return nil, err
	}
	sub, ok := eventSubCodecs[primitive.EventType(eventType)]
	if !ok {
		return nil, errors.New("unknown EVENT type: " + eventType)
	}
	return sub.decode(source, version)
}

func (c *eventCodec) GetOpCode() primitive.OpCode {
	return primitive.OpCodeEvent
}
