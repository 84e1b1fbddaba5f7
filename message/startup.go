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

const (
	StartupOptionCqlVersion  = "CQL_VERSION"
	StartupOptionCompression = "COMPRESSION"
	StartupOptionNoCompact   = "NO_COMPACT"
	StartupOptionThrowOnOverload = "THROW_ON_OVERLOAD"

	defaultCqlVersion = "3.0.0"
)

// Startup is the first message a client sends on a connection. The CQL_VERSION
// option is mandatory; NewStartup sets it to defaultCqlVersion unless overridden.
// +k8s:deepcopy-gen=true
type Startup struct {
	Options map[string]string
}

// NewStartup creates a new Startup message. kvs is a flat list of alternating
// option keys and values (e.g. StartupOptionCompression, "LZ4"); a missing
// CQL_VERSION entry defaults to "3.0.0".
func NewStartup(kvs ...string) *Startup {
	options := make(map[string]string)
	for i := 0; i+1 < len(kvs); i += 2 {
		options[kvs[i]] = kvs[i+1]
	}
	if _, ok := options[StartupOptionCqlVersion]; !ok {
		options[StartupOptionCqlVersion] = defaultCqlVersion
	}
	return &Startup{Options: options}
}

func (m *Startup) IsResponse() bool {
	return false
}

func (m *Startup) GetOpCode() primitive.OpCode {
	return primitive.OpCodeStartup
}

func (m *Startup) Clone() Message {
	return &Startup{Options: primitive.CloneOptions(m.Options)}
}

func (m *Startup) String() string {
	return fmt.Sprintf("STARTUP %v", m.Options)
}

type startupCodec struct{}

func (c *startupCodec) Encode(msg Message, dest io.Writer, _ primitive.ProtocolVersion) error {
	startup, ok := msg.(*Startup)
	if !ok {
		return errors.New(fmt.Sprintf("expected *message.Startup, got %T", msg))
	}
	if err := primitive.WriteStringMap(startup.Options, dest); err != nil {
		return fmt.Errorf("cannot write STARTUP options: %w", err)
	}
	return nil
}

func (c *startupCodec) EncodedLength(msg Message, _ primitive.ProtocolVersion) (int, error) {
	startup, ok := msg.(*Startup)
	if !ok {
		return -1, errors.New(fmt.Sprintf("expected *message.Startup, got %T", msg))
	}
	return primitive.LengthOfStringMap(startup.Options), nil
}

func (c *startupCodec) Decode(source io.Reader, _ primitive.ProtocolVersion) (Message, error) {
	options, err := primitive.ReadStringMap(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read STARTUP options: %w", err)
	}
	return &Startup{Options: options}, nil
}

func (c *startupCodec) GetOpCode() primitive.OpCode {
	return primitive.OpCodeStartup
}
