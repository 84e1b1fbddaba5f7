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
	"github.com/cql-wire/native-protocol/primitive"
	"io"
)

type Result interface {
	Message
	GetResultType() primitive.ResultType
}

// VOID

type VoidResult struct{}

func (m *VoidResult) IsResponse() bool {
	return true
}

func (m *VoidResult) GetOpCode() primitive.OpCode {
	return primitive.OpCodeResult
}

func (m *VoidResult) GetResultType() primitive.ResultType {
	return primitive.ResultTypeVoid
}

func (m *VoidResult) Clone() Message {
	return &VoidResult{}
}

func (m *VoidResult) String() string {
	return "RESULT VOID"
}

// SET KEYSPACE

type SetKeyspaceResult struct {
	Keyspace string
}

func (m *SetKeyspaceResult) IsResponse() bool {
	return true
}

func (m *SetKeyspaceResult) Clone() Message {
	return &SetKeyspaceResult{
		Keyspace: m.Keyspace,
	}
}

func (m *SetKeyspaceResult) GetOpCode() primitive.OpCode {
	return primitive.OpCodeResult
}

func (m *SetKeyspaceResult) GetResultType() primitive.ResultType {
	return primitive.ResultTypeSetKeyspace
}

func (m *SetKeyspaceResult) String() string {
	return "RESULT SET KEYSPACE " + m.Keyspace
}

// SCHEMA CHANGE

// SchemaChangeResult's wire layout is shared with SchemaChangeEvent via the
// embedded SchemaChange type.
type SchemaChangeResult struct {
	SchemaChange
}

func (m *SchemaChangeResult) IsResponse() bool {
	return true
}

func (m *SchemaChangeResult) GetOpCode() primitive.OpCode {
	return primitive.OpCodeResult
}

func (m *SchemaChangeResult) Clone() Message {
	return &SchemaChangeResult{SchemaChange: *m.SchemaChange.Clone()}
}

func (m *SchemaChangeResult) GetResultType() primitive.ResultType {
	return primitive.ResultTypeSchemaChange
}

func (m *SchemaChangeResult) String() string {
	return "RESULT SCHEMA CHANGE " + m.SchemaChange.String()
}

// PREPARED

type PreparedResult struct {
	PreparedQueryId []byte
	// The result set metadata id; valid for protocol version 5, if the prepared statement is a SELECT. Also valid in DSE v2. See Execute.
	ResultMetadataId []byte
	// Reflects the prepared statement's bound variables, if any, or empty (but not nil) if there are no bound variables.
	VariablesMetadata *VariablesMetadata
	// When the prepared statement is a SELECT, reflects the result set columns; empty (but not nil) otherwise.
	ResultMetadata *RowsMetadata
}

func (m *PreparedResult) IsResponse() bool {
	return true
}

func (m *PreparedResult) Clone() Message {
	return &PreparedResult{
		PreparedQueryId:   primitive.CloneByteSlice(m.PreparedQueryId),
		ResultMetadataId:  primitive.CloneByteSlice(m.ResultMetadataId),
		VariablesMetadata: m.VariablesMetadata.DeepCopy(),
		ResultMetadata:    m.ResultMetadata.DeepCopy(),
	}
}

func (m *PreparedResult) GetOpCode() primitive.OpCode {
	return primitive.OpCodeResult
}

func (m *PreparedResult) GetResultType() primitive.ResultType {
	return primitive.ResultTypePrepared
}

func (m *PreparedResult) String() string {
	return fmt.Sprintf("RESULT PREPARED (%v)", m.PreparedQueryId)
}

// ROWS

type Column = []byte

type Row = []Column

type RowSet = []Row

type RowsResult struct {
	Metadata *RowsMetadata
	Data     RowSet
}

func (m *RowsResult) IsResponse() bool {
	return true
}

func (m *RowsResult) GetOpCode() primitive.OpCode {
	return primitive.OpCodeResult
}

func (m *RowsResult) Clone() Message {
	return &RowsResult{
		Metadata: m.Metadata.DeepCopy(),
		Data:     cloneRowSet(m.Data),
	}
}

func (m *RowsResult) GetResultType() primitive.ResultType {
	return primitive.ResultTypeRows
}

func (m *RowsResult) String() string {
	return fmt.Sprintf("RESULT ROWS (%v rows x %v cols)", len(m.Data), m.Metadata.ColumnCount)
}

// RESULT SUB-REGISTRY
//
// Like the error and event codecs, resultCodec never switches on the
// concrete result type. Each ResultType owns a registered function triple
// keyed in resultSubCodecs; resultCodec only reads/writes the common
// ResultType discriminator and dispatches.

type resultSubCodec struct {
	encode        func(result Result, dest io.Writer, version primitive.ProtocolVersion) error
	encodedLength func(result Result, version primitive.ProtocolVersion) (int, error)
	decode        func(source io.Reader, version primitive.ProtocolVersion) (Message, error)
}

var resultSubCodecs = map[primitive.ResultType]resultSubCodec{
	primitive.ResultTypeVoid:         {encodeVoidResult, lengthOfVoidResult, decodeVoidResult},
	primitive.ResultTypeSetKeyspace:  {encodeSetKeyspaceResult, lengthOfSetKeyspaceResult, decodeSetKeyspaceResult},
	primitive.ResultTypeSchemaChange: {encodeSchemaChangeResult, lengthOfSchemaChangeResult, decodeSchemaChangeResult},
	primitive.ResultTypePrepared:     {encodePreparedResult, lengthOfPreparedResult, decodePreparedResult},
	primitive.ResultTypeRows:         {encodeRowsResult, lengthOfRowsResult, decodeRowsResult},
}

func encodeVoidResult(Result, io.Writer, primitive.ProtocolVersion) error { return nil }

func lengthOfVoidResult(Result, primitive.ProtocolVersion) (int, error) { return 0, nil }

func decodeVoidResult(io.Reader, primitive.ProtocolVersion) (Message, error) {
	return &VoidResult{}, nil
}

func encodeSetKeyspaceResult(result Result, dest io.Writer, version primitive.ProtocolVersion) error {
	sk, ok := result.(*SetKeyspaceResult)
	if !ok {
		return fmt.Errorf("expected *message.SetKeyspaceResult, got %T", result)
	}
	if sk.Keyspace == "" {
		return errors.New("RESULT SetKeyspace: cannot write empty keyspace")
	}
	if err := primitive.WriteString(sk.Keyspace, dest); err != nil {
		return fmt.Errorf("cannot write RESULT SET KEYSPACE keyspace: %w", err)
	}
	return nil
}

func lengthOfSetKeyspaceResult(result Result, version primitive.ProtocolVersion) (int, error) {
	sk, ok := result.(*SetKeyspaceResult)
	if !ok {
		return -1, fmt.Errorf("expected *message.SetKeyspaceResult, got %T", result)
	}
	return primitive.LengthOfString(sk.Keyspace), nil
}

func decodeSetKeyspaceResult(source io.Reader, version primitive.ProtocolVersion) (Message, error) {
	setKeyspace := &SetKeyspaceResult{}
	var err error
	if setKeyspace.Keyspace, err = primitive.ReadString(source); err != nil {
		return nil, fmt.Errorf("cannot read RESULT SetKeyspaceResult.Keyspace: %w", err)
	}
	return setKeyspace, nil
}

func encodeSchemaChangeResult(result Result, dest io.Writer, version primitive.ProtocolVersion) error {
	sce, ok := result.(*SchemaChangeResult)
	if !ok {
		return fmt.Errorf("expected *message.SchemaChangeResult, got %T", result)
	}
	return encodeSchemaChange(&sce.SchemaChange, dest, version, "SchemaChangeResult")
}

func lengthOfSchemaChangeResult(result Result, version primitive.ProtocolVersion) (int, error) {
	sc, ok := result.(*SchemaChangeResult)
	if !ok {
		return -1, fmt.Errorf("expected *message.SchemaChangeResult, got %T", result)
	}
	return lengthOfSchemaChange(&sc.SchemaChange, version)
}

func decodeSchemaChangeResult(source io.Reader, version primitive.ProtocolVersion) (Message, error) {
	sc, err := decodeSchemaChange(source, version, "SchemaChangeResult")
	if err != nil {
		return nil, err
	}
	return &SchemaChangeResult{SchemaChange: *sc}, nil
}

func encodePreparedResult(result Result, dest io.Writer, version primitive.ProtocolVersion) (err error) {
	p, ok := result.(*PreparedResult)
	if !ok {
		return fmt.Errorf("expected *message.PreparedResult, got %T", result)
	}
	if len(p.PreparedQueryId) == 0 {
		return errors.New("cannot write empty RESULT Prepared query id")
	} else if err = primitive.WriteShortBytes(p.PreparedQueryId, dest); err != nil {
		return fmt.Errorf("cannot write RESULT Prepared prepared query id: %w", err)
	}
	if hasResultMetadataId(version) {
		if len(p.ResultMetadataId) == 0 {
			return errors.New("cannot write empty RESULT Prepared result metadata id")
		} else if err = primitive.WriteShortBytes(p.ResultMetadataId, dest); err != nil {
			return fmt.Errorf("cannot write RESULT Prepared result metadata id: %w", err)
		}
	}
	if err = encodeVariablesMetadata(p.VariablesMetadata, dest, version); err != nil {
		return fmt.Errorf("cannot write RESULT Prepared variables metadata: %w", err)
	}
	if err = encodeRowsMetadata(p.ResultMetadata, dest, version); err != nil {
		return fmt.Errorf("cannot write RESULT Prepared result metadata: %w", err)
	}
	return nil
}

func lengthOfPreparedResult(result Result, version primitive.ProtocolVersion) (length int, err error) {
	p, ok := result.(*PreparedResult)
	if !ok {
		return -1, fmt.Errorf("expected *message.PreparedResult, got %T", result)
	}
	length += primitive.LengthOfShortBytes(p.PreparedQueryId)
	if hasResultMetadataId(version) {
		length += primitive.LengthOfShortBytes(p.ResultMetadataId)
	}
	if lengthOfMetadata, err := lengthOfVariablesMetadata(p.VariablesMetadata, version); err != nil {
		return -1, fmt.Errorf("cannot compute length of RESULT Prepared variables metadata: %w", err)
	} else {
		length += lengthOfMetadata
	}
	if lengthOfMetadata, err := lengthOfRowsMetadata(p.ResultMetadata, version); err != nil {
		return -1, fmt.Errorf("cannot compute length of RESULT Prepared result metadata: %w", err)
	} else {
		length += lengthOfMetadata
	}
	return length, nil
}

func decodePreparedResult(source io.Reader, version primitive.ProtocolVersion) (Message, error) {
	p := &PreparedResult{}
	var err error
	if p.PreparedQueryId, err = primitive.ReadShortBytes(source); err != nil {
		return nil, fmt.Errorf("cannot read RESULT Prepared prepared query id: %w", err)
	}
	if hasResultMetadataId(version) {
		if p.ResultMetadataId, err = primitive.ReadShortBytes(source); err != nil {
			return nil, fmt.Errorf("cannot read RESULT Prepared result metadata id: %w", err)
		}
	}
	if p.VariablesMetadata, err = decodeVariablesMetadata(source, version); err != nil {
		return nil, fmt.Errorf("cannot read RESULT Prepared variables metadata: %w", err)
	}
	if p.ResultMetadata, err = decodeRowsMetadata(source, version); err != nil {
		return nil, fmt.Errorf("cannot read RESULT Prepared result metadata: %w", err)
	}
	return p, nil
}

func encodeRowsResult(result Result, dest io.Writer, version primitive.ProtocolVersion) (err error) {
	rows, ok := result.(*RowsResult)
	if !ok {
		return fmt.Errorf("expected *message.RowsResult, got %T", result)
	}
	if err = encodeRowsMetadata(rows.Metadata, dest, version); err != nil {
		return fmt.Errorf("cannot write RESULT Rows metadata: %w", err)
	}
	if err = primitive.WriteInt(int32(len(rows.Data)), dest); err != nil {
		return fmt.Errorf("cannot write RESULT Rows data length: %w", err)
	}
	for i, row := range rows.Data {
		for j, col := range row {
			if err = primitive.WriteBytes(col, dest); err != nil {
				return fmt.Errorf("cannot write RESULT Rows data row %d col %d: %w", i, j, err)
			}
		}
	}
	return nil
}

func lengthOfRowsResult(result Result, version primitive.ProtocolVersion) (length int, err error) {
	rows, ok := result.(*RowsResult)
	if !ok {
		return -1, fmt.Errorf("expected *message.RowsResult, got %T", result)
	}
	if rows.Metadata == nil {
		return -1, errors.New("cannot compute length of nil RESULT Rows metadata")
	}
	lengthOfMetadata, err := lengthOfRowsMetadata(rows.Metadata, version)
	if err != nil {
		return -1, fmt.Errorf("cannot compute length of RESULT Rows metadata: %w", err)
	}
	length += lengthOfMetadata
	length += primitive.LengthOfInt // number of rows
	for _, row := range rows.Data {
		for _, col := range row {
			length += primitive.LengthOfBytes(col)
		}
	}
	return length, nil
}

func decodeRowsResult(source io.Reader, version primitive.ProtocolVersion) (Message, error) {
	rows := &RowsResult{}
	var err error
	if rows.Metadata, err = decodeRowsMetadata(source, version); err != nil {
		return nil, fmt.Errorf("cannot read RESULT Rows metadata: %w", err)
	}
	var rowsCount int32
	if rowsCount, err = primitive.ReadInt(source); err != nil {
		return nil, fmt.Errorf("cannot read RESULT Rows data length: %w", err)
	}
	rows.Data = make(RowSet, rowsCount)
	for i := 0; i < int(rowsCount); i++ {
		rows.Data[i] = make(Row, rows.Metadata.ColumnCount)
		for j := 0; j < int(rows.Metadata.ColumnCount); j++ {
			if rows.Data[i][j], err = primitive.ReadBytes(source); err != nil {
				return nil, fmt.Errorf("cannot read RESULT Rows data row %d col %d: %w", i, j, err)
			}
		}
	}
	return rows, nil
}

// CODEC

type resultCodec struct{}

func (c *resultCodec) Encode(msg Message, dest io.Writer, version primitive.ProtocolVersion) (err error) {
	result, ok := msg.(Result)
	if !ok {
		return fmt.Errorf("expected message.Result, got %T", msg)
	}
	if err = primitive.CheckValidResultType(result.GetResultType()); err != nil {
		return err
	} else if err = primitive.WriteInt(int32(result.GetResultType()), dest); err != nil {
		return fmt.Errorf("cannot write RESULT type: %w", err)
	}
	sub, ok := resultSubCodecs[result.GetResultType()]
	if !ok {
		return fmt.Errorf("unknown RESULT type: %v", result.GetResultType())
	}
	return sub.encode(result, dest, version)
}

func (c *resultCodec) EncodedLength(msg Message, version primitive.ProtocolVersion) (length int, err error) {
	result, ok := msg.(Result)
	if !ok {
		return -1, fmt.Errorf("expected interface Result, got %T", msg)
	}
	length += primitive.LengthOfInt
	sub, ok := resultSubCodecs[result.GetResultType()]
	if !ok {
		return -1, fmt.Errorf("unknown RESULT type: %v", result.GetResultType())
	}
	subLength, err := sub.encodedLength(result, version)
	if err != nil {
		return -1, err
	}
	return length + subLength, nil
}

func (c *resultCodec) Decode(source io.Reader, version primitive.ProtocolVersion) (msg Message, err error) {
	var resultType int32
	if resultType, err = primitive.ReadInt(source); err != nil {
		return nil, fmt.Errorf("cannot read RESULT type: %w", err)
	}
	sub, ok := resultSubCodecs[primitive.ResultType(resultType)]
	if !ok {
		return nil, fmt.Errorf("unknown RESULT type: %v", resultType)
	}
	return sub.decode(source, version)
}

func (c *resultCodec) GetOpCode() primitive.OpCode {
	return primitive.OpCodeResult
}

func hasResultMetadataId(version primitive.ProtocolVersion) bool {
	return version >= primitive.ProtocolVersion5 &&
		version != primitive.ProtocolVersionDse1
}

func cloneRowSet(o RowSet) RowSet {
	newRowSet := make(RowSet, len(o))
	for idx, v := range o {
		newRowSet[idx] = cloneRow(v)
	}
	return newRowSet
}

func cloneRow(o Row) Row {
	newRow := make(Row, len(o))
	for idx, v := range o {
		newRow[idx] = primitive.CloneByteSlice(v)
	}
	return newRow
}
