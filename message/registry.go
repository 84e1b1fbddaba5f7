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

	"github.com/cql-wire/native-protocol/primitive"
)

// mandatoryOpCodes lists every opcode a Registry must have a codec for,
// regardless of protocol version. All sixteen CQL message kinds apply to every
// supported version; DSE opcodes, by contrast, are optional and version-scoped.
var mandatoryOpCodes = []primitive.OpCode{
	primitive.OpCodeStartup,
	primitive.OpCodeOptions,
	primitive.OpCodeQuery,
	primitive.OpCodePrepare,
	primitive.OpCodeExecute,
	primitive.OpCodeRegister,
	primitive.OpCodeBatch,
	primitive.OpCodeAuthResponse,
	primitive.OpCodeError,
	primitive.OpCodeReady,
	primitive.OpCodeAuthenticate,
	primitive.OpCodeSupported,
	primitive.OpCodeResult,
	primitive.OpCodeEvent,
	primitive.OpCodeAuthChallenge,
	primitive.OpCodeAuthSuccess,
}

// Registry is an immutable, O(1)-lookup mapping from opcode to Codec, built for a
// single protocol version by Builder. It never changes after Build returns, so
// concurrent readers need no synchronization.
//
// This is the outer, opcode-level registry. Three opcodes carry their own
// inner registry one level down: errorCodec, resultCodec and eventCodec each
// dispatch through errorSubCodecs, resultSubCodecs and eventSubCodecs
// (defined in error.go, result.go and event.go respectively), keyed by
// ErrorCode, ResultType and EventType. Registry itself stays opcode-only; it
// has no business knowing that ERROR, RESULT and EVENT are sub-discriminated.
type Registry struct {
	version primitive.ProtocolVersion
	codecs  map[primitive.OpCode]Codec
}

func (r *Registry) CodecFor(opCode primitive.OpCode) (Codec, bool) {
	codec, ok := r.codecs[opCode]
	return codec, ok
}

func (r *Registry) Version() primitive.ProtocolVersion {
	return r.version
}

// Builder assembles a Registry for one protocol version, rejecting duplicate
// opcode registrations and missing mandatory ones at Build time rather than
// failing lazily on first use.
type Builder struct {
	version primitive.ProtocolVersion
	codecs  map[primitive.OpCode]Codec
	err     error
}

func NewBuilder(version primitive.ProtocolVersion) *Builder {
	return &Builder{version: version, codecs: make(map[primitive.OpCode]Codec)}
}

// WithCodec registers codec for its own opcode. Calling WithCodec twice for the
// same opcode is recorded as an error and surfaced by Build, not panicked here,
// so callers can chain WithCodec calls freely.
func (b *Builder) WithCodec(codec Codec) *Builder {
	if b.err != nil {
		return b
	}
	opCode := codec.GetOpCode()
	if _, exists := b.codecs[opCode]; exists {
		b.err = fmt.Errorf("duplicate codec registration for %v", opCode)
		return b
	}
	b.codecs[opCode] = codec
	return b
}

// WithDefaultCodecs registers every codec in DefaultMessageCodecs.
func (b *Builder) WithDefaultCodecs() *Builder {
	for _, codec := range DefaultMessageCodecs {
		b.WithCodec(codec)
	}
	return b
}

func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	for _, opCode := range mandatoryOpCodes {
		if _, ok := b.codecs[opCode]; !ok {
			return nil, fmt.Errorf("missing mandatory codec for %v in protocol version %v", opCode, b.version)
		}
	}
	codecs := make(map[primitive.OpCode]Codec, len(b.codecs))
	for opCode, codec := range b.codecs {
		codecs[opCode] = codec
	}
	return &Registry{version: b.version, codecs: codecs}, nil
}
