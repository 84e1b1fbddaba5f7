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

// Command frametool round-trips a handful of sample frames through the
// library's encode/decode path and logs the outcome of each step. It exists
// to exercise frame, message and primitive together the way a real client
// would, not as a protocol-testing tool.
package main

import (
	"bytes"
	"os"

	"github.com/rs/zerolog"

	"github.com/cql-wire/native-protocol/frame"
	"github.com/cql-wire/native-protocol/message"
	"github.com/cql-wire/native-protocol/primitive"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

func main() {
	registry, err := message.NewBuilder(primitive.ProtocolVersion4).WithDefaultCodecs().Build()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build message registry")
	}
	codec := frame.NewCodecFromRegistry(registry, nil)

	roundTrip(codec, frame.NewFrame(primitive.ProtocolVersion4, 1, message.NewStartup()))

	roundTrip(codec, frame.NewFrame(
		primitive.ProtocolVersion4,
		2,
		&message.Query{
			Query:   "SELECT * FROM system.local",
			Options: &message.QueryOptions{Consistency: primitive.ConsistencyLevelOne},
		},
	))

	roundTrip(codec, frame.NewFrame(
		primitive.ProtocolVersion4,
		3,
		&message.RowsResult{
			Metadata: &message.RowsMetadata{ColumnCount: 0},
			Data:     message.RowSet{},
		},
	))
}

func roundTrip(codec frame.RawCodec, original *frame.Frame) {
	entry := log.Info().
		Str("opcode", original.Header.OpCode.String()).
		Int("version", int(original.Header.Version)).
		Int16("stream_id", original.Header.StreamId)

	encoded := &bytes.Buffer{}
	if err := codec.EncodeFrame(original, encoded); err != nil {
		log.Error().Err(err).Str("opcode", original.Header.OpCode.String()).Msg("encode failed")
		return
	}
	dump, err := original.Dump()
	if err != nil {
		log.Error().Err(err).Msg("dump failed")
		return
	}
	entry.Int("encoded_bytes", encoded.Len()).Msg("encoded frame")

	decoded, err := codec.DecodeFrame(bytes.NewReader(encoded.Bytes()))
	if err != nil {
		log.Error().Err(err).Str("opcode", original.Header.OpCode.String()).Msg("decode failed")
		return
	}
	log.Info().
		Str("opcode", decoded.Header.OpCode.String()).
		Str("message", decoded.Body.Message.String()).
		Msg("decoded frame")
	log.Debug().Msg("\n" + dump)
}
