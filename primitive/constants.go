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

import "fmt"

// isOneOf reports whether v equals any of values. Every enum-like type below
// uses it for membership checks instead of a fallthrough switch.
func isOneOf[T comparable](v T, values ...T) bool {
	for _, x := range values {
		if v == x {
			return true
		}
	}
	return false
}

type ProtocolVersion uint8

// Supported OSS versions
const (
	ProtocolVersion2 = ProtocolVersion(0x2)
	ProtocolVersion3 = ProtocolVersion(0x3)
	ProtocolVersion4 = ProtocolVersion(0x4)
	ProtocolVersion5 = ProtocolVersion(0x5)
)

// Supported DSE versions
// Note: all DSE versions have the 7th bit set to 1
const (
	ProtocolVersionDse1 = ProtocolVersion(0b_1_000001) // 1 + DSE bit = 65
	ProtocolVersionDse2 = ProtocolVersion(0b_1_000010) // 2 + DSE bit = 66
)

func (v ProtocolVersion) IsSupported() bool {
	for _, supported := range SupportedProtocolVersions() {
		if v == supported {
			return true
		}
	}
	return false
}

func (v ProtocolVersion) IsOss() bool {
	return isOneOf(v, ProtocolVersion2, ProtocolVersion3, ProtocolVersion4, ProtocolVersion5)
}

func (v ProtocolVersion) IsDse() bool {
	return isOneOf(v, ProtocolVersionDse1, ProtocolVersionDse2)
}

func (v ProtocolVersion) IsBeta() bool {
	return false // no beta version supported currently
}

var protocolVersionNames = map[ProtocolVersion]string{
	ProtocolVersion2:    "ProtocolVersion OSS 2",
	ProtocolVersion3:    "ProtocolVersion OSS 3",
	ProtocolVersion4:    "ProtocolVersion OSS 4",
	ProtocolVersion5:    "ProtocolVersion OSS 5",
	ProtocolVersionDse1: "ProtocolVersion DSE 1",
	ProtocolVersionDse2: "ProtocolVersion DSE 2",
}

func (v ProtocolVersion) String() string {
	if name, ok := protocolVersionNames[v]; ok {
		return name
	}
	return fmt.Sprintf("ProtocolVersion ? [%#.2X]", uint8(v))
}

func (v ProtocolVersion) Uses4BytesCollectionLength() bool {
	return v >= ProtocolVersion3
}

func (v ProtocolVersion) Uses4BytesQueryFlags() bool {
	return v >= ProtocolVersion5
}

func (v ProtocolVersion) SupportsCompression(compression Compression) bool {
	switch compression {
	case CompressionNone:
		return true
	case CompressionLz4:
		return true
	case CompressionSnappy:
		return v != ProtocolVersion5
	}
	return false // unknown compression
}

func (v ProtocolVersion) SupportsBatchQueryFlags() bool {
	return v >= ProtocolVersion3
}

func (v ProtocolVersion) SupportsPrepareFlags() bool {
	return v >= ProtocolVersion5 && v != ProtocolVersionDse1
}

func (v ProtocolVersion) SupportsQueryFlag(flag QueryFlag) bool {
	switch flag {
	case QueryFlagValues:
		return v >= ProtocolVersion2
	case QueryFlagSkipMetadata:
		return v >= ProtocolVersion2
	case QueryFlagPageSize:
		return v >= ProtocolVersion2
	case QueryFlagPagingState:
		return v >= ProtocolVersion2
	case QueryFlagSerialConsistency:
		return v >= ProtocolVersion2
	case QueryFlagDefaultTimestamp:
		return v >= ProtocolVersion3
	case QueryFlagValueNames:
		return v >= ProtocolVersion3
	case QueryFlagWithKeyspace:
		return v >= ProtocolVersion5 && v != ProtocolVersionDse1
	case QueryFlagNowInSeconds:
		return v >= ProtocolVersion5 && v != ProtocolVersionDse1 && v != ProtocolVersionDse2
	// DSE-specific flags
	case QueryFlagDsePageSizeBytes:
		return v.IsDse()
	case QueryFlagDseWithContinuousPagingOptions:
		return v.IsDse()
	}
	// Unknown flag
	return false
}

func (v ProtocolVersion) SupportsResultMetadataId() bool {
	return v >= ProtocolVersion5 && v != ProtocolVersionDse1
}

func (v ProtocolVersion) SupportsReadWriteFailureReasonMap() bool {
	return v >= ProtocolVersion5
}

func (v ProtocolVersion) SupportsWriteTimeoutContentions() bool {
	return v >= ProtocolVersion5 && v != ProtocolVersionDse1 && v != ProtocolVersionDse2
}

func (v ProtocolVersion) SupportsDataType(code DataTypeCode) bool {
	switch code {
	case DataTypeCodeText:
		return v <= ProtocolVersion2 // removed in version 3
	case DataTypeCodeUdt, DataTypeCodeTuple:
		return v >= ProtocolVersion3
	case DataTypeCodeDate, DataTypeCodeTime, DataTypeCodeSmallint, DataTypeCodeTinyint:
		return v >= ProtocolVersion4
	case DataTypeCodeDuration:
		return v >= ProtocolVersion5
	}
	if code.IsPrimitive() {
		return true
	}
	return isOneOf(code, DataTypeCodeList, DataTypeCodeMap, DataTypeCodeSet)
}

func (v ProtocolVersion) SupportsSchemaChangeTarget(target SchemaChangeTarget) bool {
	switch target {
	case SchemaChangeTargetKeyspace, SchemaChangeTargetTable:
		return true
	case SchemaChangeTargetType:
		return v >= ProtocolVersion3
	case SchemaChangeTargetFunction, SchemaChangeTargetAggregate:
		return v >= ProtocolVersion4
	}
	// Unknown target
	return false
}

func (v ProtocolVersion) SupportsTopologyChangeType(t TopologyChangeType) bool {
	switch t {
	case TopologyChangeTypeNewNode, TopologyChangeTypeRemovedNode:
		return true
	case TopologyChangeTypeMovedNode:
		return v >= ProtocolVersion3
	}
	// Unknown type
	return false
}

func (v ProtocolVersion) SupportsDseRevisionType(t DseRevisionType) bool {
	switch t {
	case DseRevisionTypeCancelContinuousPaging:
		return v >= ProtocolVersionDse1
	case DseRevisionTypeMoreContinuousPages:
		return v >= ProtocolVersionDse2
	}
	// Unknown type
	return false
}

const (
	FrameHeaderLengthV3AndHigher = 9
	FrameHeaderLengthV2AndLower  = 8
)

func (v ProtocolVersion) FrameHeaderLengthInBytes() int {
	if v >= ProtocolVersion3 {
		return FrameHeaderLengthV3AndHigher
	}
	return FrameHeaderLengthV2AndLower
}

func (v ProtocolVersion) SupportsModernFramingLayout() bool {
	return v >= ProtocolVersion5 && v != ProtocolVersionDse1 && v != ProtocolVersionDse2
}

func (v ProtocolVersion) SupportsUnsetValues() bool {
	return v >= ProtocolVersion4
}

type OpCode uint8

// requests
const (
	OpCodeStartup      = OpCode(0x01)
	OpCodeOptions      = OpCode(0x05)
	OpCodeQuery        = OpCode(0x07)
	OpCodePrepare      = OpCode(0x09)
	OpCodeExecute      = OpCode(0x0A)
	OpCodeRegister     = OpCode(0x0B)
	OpCodeBatch        = OpCode(0x0D)
	OpCodeAuthResponse = OpCode(0x0F)
	OpCodeDseRevise    = OpCode(0xFF) // DSE v1
)

// responses
const (
	OpCodeError         = OpCode(0x00)
	OpCodeReady         = OpCode(0x02)
	OpCodeAuthenticate  = OpCode(0x03)
	OpCodeSupported     = OpCode(0x06)
	OpCodeResult        = OpCode(0x08)
	OpCodeEvent         = OpCode(0x0C)
	OpCodeAuthChallenge = OpCode(0x0E)
	OpCodeAuthSuccess   = OpCode(0x10)
)

var requestOpCodes = []OpCode{
	OpCodeStartup, OpCodeOptions, OpCodeQuery, OpCodePrepare, OpCodeExecute,
	OpCodeRegister, OpCodeBatch, OpCodeAuthResponse, OpCodeDseRevise,
}

var responseOpCodes = []OpCode{
	OpCodeError, OpCodeReady, OpCodeAuthenticate, OpCodeSupported,
	OpCodeResult, OpCodeEvent, OpCodeAuthChallenge, OpCodeAuthSuccess,
}

func (c OpCode) IsValid() bool {
	return isOneOf(c, append(append([]OpCode{}, requestOpCodes...), responseOpCodes...)...)
}

func (c OpCode) IsRequest() bool {
	return isOneOf(c, requestOpCodes...)
}

func (c OpCode) IsResponse() bool {
	return isOneOf(c, responseOpCodes...)
}

func (c OpCode) IsDse() bool {
	return c == OpCodeDseRevise
}

var opCodeNames = map[OpCode]string{
	OpCodeStartup:      "OpCode STARTUP [0x01]",
	OpCodeOptions:      "OpCode OPTIONS [0x05]",
	OpCodeQuery:        "OpCode QUERY [0x07]",
	OpCodePrepare:      "OpCode PREPARE [0x09]",
	OpCodeExecute:      "OpCode EXECUTE [0x0A]",
	OpCodeRegister:     "OpCode REGISTER [0x0B]",
	OpCodeBatch:        "OpCode BATCH [0x0D]",
	OpCodeAuthResponse: "OpCode AUTH RESPONSE [0x0F]",
	OpCodeDseRevise:    "OpCode REVISE [0xFF]",
	// responses
	OpCodeError:         "OpCode ERROR [0x00]",
	OpCodeReady:         "OpCode READY [0x02]",
	OpCodeAuthenticate:  "OpCode AUTHENTICATE [0x03]",
	OpCodeSupported:     "OpCode SUPPORTED [0x06]",
	OpCodeResult:        "OpCode RESULT [0x08]",
	OpCodeEvent:         "OpCode EVENT [0x0C]",
	OpCodeAuthChallenge: "OpCode AUTH CHALLENGE [0x0E]",
	OpCodeAuthSuccess:   "OpCode AUTH SUCCESS [0x10]",
}

func (c OpCode) String() string {
	if name, ok := opCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("OpCode ? [%#.2X]", uint8(c))
}

type ResultType uint32

const (
	ResultTypeVoid         = ResultType(0x00000001)
	ResultTypeRows         = ResultType(0x00000002)
	ResultTypeSetKeyspace  = ResultType(0x00000003)
	ResultTypePrepared     = ResultType(0x00000004)
	ResultTypeSchemaChange = ResultType(0x00000005)
)

func (t ResultType) IsValid() bool {
	return isOneOf(t, ResultTypeVoid, ResultTypeRows, ResultTypeSetKeyspace, ResultTypePrepared, ResultTypeSchemaChange)
}

var resultTypeNames = map[ResultType]string{
	ResultTypeVoid:         "ResultType Void [0x00000001]",
	ResultTypeRows:         "ResultType Rows [0x00000002]",
	ResultTypeSetKeyspace:  "ResultType SetKeyspace [0x00000003]",
	ResultTypePrepared:     "ResultType Prepared [0x00000004]",
	ResultTypeSchemaChange: "ResultType SchemaChange [0x00000005]",
}

func (t ResultType) String() string {
	if name, ok := resultTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ResultType ? [%#.8X]", uint32(t))
}

type ErrorCode uint32

// 0xx: fatal errors
const (
	ErrorCodeServerError         = ErrorCode(0x00000000)
	ErrorCodeProtocolError       = ErrorCode(0x0000000A)
	ErrorCodeAuthenticationError = ErrorCode(0x00000100)
)

// 1xx: request execution
const (
	ErrorCodeUnavailable     = ErrorCode(0x00001000)
	ErrorCodeOverloaded      = ErrorCode(0x00001001)
	ErrorCodeIsBootstrapping = ErrorCode(0x00001002)
	ErrorCodeTruncateError   = ErrorCode(0x00001003)
	ErrorCodeWriteTimeout    = ErrorCode(0x00001100)
	ErrorCodeReadTimeout     = ErrorCode(0x00001200)
	ErrorCodeReadFailure     = ErrorCode(0x00001300)
	ErrorCodeFunctionFailure = ErrorCode(0x00001400)
	ErrorCodeWriteFailure    = ErrorCode(0x00001500)
)

// 2xx: query validation
const (
	ErrorCodeSyntaxError   = ErrorCode(0x00002000)
	ErrorCodeUnauthorized  = ErrorCode(0x00002100)
	ErrorCodeInvalid       = ErrorCode(0x00002200)
	ErrorCodeConfigError   = ErrorCode(0x00002300)
	ErrorCodeAlreadyExists = ErrorCode(0x00002400)
	ErrorCodeUnprepared    = ErrorCode(0x00002500)
)

var fatalErrorCodes = []ErrorCode{ErrorCodeServerError, ErrorCodeProtocolError, ErrorCodeAuthenticationError}

var requestExecutionErrorCodes = []ErrorCode{
	ErrorCodeUnavailable, ErrorCodeOverloaded, ErrorCodeIsBootstrapping, ErrorCodeTruncateError,
	ErrorCodeWriteTimeout, ErrorCodeReadTimeout, ErrorCodeReadFailure, ErrorCodeFunctionFailure, ErrorCodeWriteFailure,
}

var queryValidationErrorCodes = []ErrorCode{
	ErrorCodeSyntaxError, ErrorCodeUnauthorized, ErrorCodeInvalid,
	ErrorCodeConfigError, ErrorCodeAlreadyExists, ErrorCodeUnprepared,
}

func (c ErrorCode) IsValid() bool {
	return c.IsFatalError() || c.IsRequestExecutionError() || c.IsQueryValidationError()
}

func (c ErrorCode) IsFatalError() bool {
	return isOneOf(c, fatalErrorCodes...)
}

func (c ErrorCode) IsRequestExecutionError() bool {
	return isOneOf(c, requestExecutionErrorCodes...)
}

func (c ErrorCode) IsQueryValidationError() bool {
	return isOneOf(c, queryValidationErrorCodes...)
}

var errorCodeNames = map[ErrorCode]string{
	ErrorCodeServerError:         "ErrorCode ServerError [0x00000000]",
	ErrorCodeProtocolError:       "ErrorCode ProtocolError [0x0000000A]",
	ErrorCodeAuthenticationError: "ErrorCode AuthenticationError [0x00000100]",
	ErrorCodeUnavailable:         "ErrorCode Unavailable [0x00001000]",
	ErrorCodeOverloaded:          "ErrorCode Overloaded [0x00001001]",
	ErrorCodeIsBootstrapping:     "ErrorCode IsBootstrapping [0x00001002]",
	ErrorCodeTruncateError:       "ErrorCode TruncateError [0x00001003]",
	ErrorCodeWriteTimeout:        "ErrorCode WriteTimeout [0x00001100]",
	ErrorCodeReadTimeout:         "ErrorCode ReadTimeout [0x00001200]",
	ErrorCodeReadFailure:         "ErrorCode ReadFailure [0x00001300]",
	ErrorCodeFunctionFailure:     "ErrorCode FunctionFailure [0x00001400]",
	ErrorCodeWriteFailure:        "ErrorCode WriteFailure [0x00001500]",
	ErrorCodeSyntaxError:         "ErrorCode SyntaxError [0x00002000]",
	ErrorCodeUnauthorized:        "ErrorCode Unauthorized [0x00002100]",
	ErrorCodeInvalid:             "ErrorCode Invalid [0x00002200]",
	ErrorCodeConfigError:         "ErrorCode ConfigError [0x00002300]",
	ErrorCodeAlreadyExists:       "ErrorCode AlreadyExists [0x00002400]",
	ErrorCodeUnprepared:          "ErrorCode Unprepared [0x00002500]",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode ? [%#.8X]", uint32(c))
}

// ConsistencyLevel corresponds to protocol section 3 [consistency] data type.
type ConsistencyLevel uint16

const (
	ConsistencyLevelAny         = ConsistencyLevel(0x0000)
	ConsistencyLevelOne         = ConsistencyLevel(0x0001)
	ConsistencyLevelTwo         = ConsistencyLevel(0x0002)
	ConsistencyLevelThree       = ConsistencyLevel(0x0003)
	ConsistencyLevelQuorum      = ConsistencyLevel(0x0004)
	ConsistencyLevelAll         = ConsistencyLevel(0x0005)
	ConsistencyLevelLocalQuorum = ConsistencyLevel(0x0006)
	ConsistencyLevelEachQuorum  = ConsistencyLevel(0x0007)
	ConsistencyLevelSerial      = ConsistencyLevel(0x0008)
	ConsistencyLevelLocalSerial = ConsistencyLevel(0x0009)
	ConsistencyLevelLocalOne    = ConsistencyLevel(0x000A)
)

func (c ConsistencyLevel) IsValid() bool {
	return isOneOf(c,
		ConsistencyLevelAny, ConsistencyLevelOne, ConsistencyLevelTwo, ConsistencyLevelThree,
		ConsistencyLevelQuorum, ConsistencyLevelAll, ConsistencyLevelLocalQuorum, ConsistencyLevelEachQuorum,
		ConsistencyLevelSerial, ConsistencyLevelLocalSerial, ConsistencyLevelLocalOne,
	)
}

func (c ConsistencyLevel) IsSerial() bool {
	return isOneOf(c, ConsistencyLevelSerial, ConsistencyLevelLocalSerial)
}

func (c ConsistencyLevel) IsNonSerial() bool {
	return c.IsValid() && !c.IsSerial()
}

func (c ConsistencyLevel) IsLocal() bool {
	return isOneOf(c, ConsistencyLevelLocalQuorum, ConsistencyLevelLocalSerial, ConsistencyLevelLocalOne)
}

func (c ConsistencyLevel) IsNonLocal() bool {
	return isOneOf(c,
		ConsistencyLevelAny, ConsistencyLevelOne, ConsistencyLevelTwo, ConsistencyLevelThree,
		ConsistencyLevelQuorum, ConsistencyLevelAll, ConsistencyLevelEachQuorum, ConsistencyLevelSerial,
	)
}

var consistencyLevelNames = map[ConsistencyLevel]string{
	ConsistencyLevelAny:         "ConsistencyLevel ANY [0x0000]",
	ConsistencyLevelOne:         "ConsistencyLevel ONE [0x0001]",
	ConsistencyLevelTwo:         "ConsistencyLevel TWO [0x0002]",
	ConsistencyLevelThree:       "ConsistencyLevel THREE [0x0003]",
	ConsistencyLevelQuorum:      "ConsistencyLevel QUORUM [0x0004]",
	ConsistencyLevelAll:         "ConsistencyLevel ALL [0x0005]",
	ConsistencyLevelLocalQuorum: "ConsistencyLevel LOCAL_QUORUM [0x0006]",
	ConsistencyLevelEachQuorum:  "ConsistencyLevel EACH_QUORUM [0x0007]",
	ConsistencyLevelSerial:      "ConsistencyLevel SERIAL [0x0008]",
	ConsistencyLevelLocalSerial: "ConsistencyLevel LOCAL_SERIAL [0x0009]",
	ConsistencyLevelLocalOne:    "ConsistencyLevel LOCAL_ONE [0x000A]",
}

func (c ConsistencyLevel) String() string {
	if name, ok := consistencyLevelNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ConsistencyLevel ? [%#.4X]", uint16(c))
}

type WriteType string

const (
	WriteTypeSimple        = WriteType("SIMPLE")
	WriteTypeBatch         = WriteType("BATCH")
	WriteTypeUnloggedBatch = WriteType("UNLOGGED_BATCH")
	WriteTypeCounter       = WriteType("COUNTER")
	WriteTypeBatchLog      = WriteType("BATCH_LOG")
	WriteTypeCas           = WriteType("CAS")
	WriteTypeView          = WriteType("VIEW")
	WriteTypeCdc           = WriteType("CDC")
)

func (t WriteType) IsValid() bool {
	return isOneOf(t,
		WriteTypeSimple, WriteTypeBatch, WriteTypeUnloggedBatch, WriteTypeCounter,
		WriteTypeBatchLog, WriteTypeCas, WriteTypeView, WriteTypeCdc,
	)
}

type DataTypeCode uint16

const (
	DataTypeCodeCustom    = DataTypeCode(0x0000)
	DataTypeCodeAscii     = DataTypeCode(0x0001)
	DataTypeCodeBigint    = DataTypeCode(0x0002)
	DataTypeCodeBlob      = DataTypeCode(0x0003)
	DataTypeCodeBoolean   = DataTypeCode(0x0004)
	DataTypeCodeCounter   = DataTypeCode(0x0005)
	DataTypeCodeDecimal   = DataTypeCode(0x0006)
	DataTypeCodeDouble    = DataTypeCode(0x0007)
	DataTypeCodeFloat     = DataTypeCode(0x0008)
	DataTypeCodeInt       = DataTypeCode(0x0009)
	DataTypeCodeText      = DataTypeCode(0x000A) // removed in v3, alias for DataTypeCodeVarchar
	DataTypeCodeTimestamp = DataTypeCode(0x000B)
	DataTypeCodeUuid      = DataTypeCode(0x000C)
	DataTypeCodeVarchar   = DataTypeCode(0x000D)
	DataTypeCodeVarint    = DataTypeCode(0x000E)
	DataTypeCodeTimeuuid  = DataTypeCode(0x000F)
	DataTypeCodeInet      = DataTypeCode(0x0010)
	DataTypeCodeDate      = DataTypeCode(0x0011) // v4+
	DataTypeCodeTime      = DataTypeCode(0x0012) // v4+
	DataTypeCodeSmallint  = DataTypeCode(0x0013) // v4+
	DataTypeCodeTinyint   = DataTypeCode(0x0014) // v4+
	DataTypeCodeDuration  = DataTypeCode(0x0015) // v5, DSE v1 and DSE v2
	DataTypeCodeList      = DataTypeCode(0x0020)
	DataTypeCodeMap       = DataTypeCode(0x0021)
	DataTypeCodeSet       = DataTypeCode(0x0022)
	DataTypeCodeUdt       = DataTypeCode(0x0030) // v3+
	DataTypeCodeTuple     = DataTypeCode(0x0031) // v3+
)

var primitiveDataTypeCodes = []DataTypeCode{
	DataTypeCodeCustom, DataTypeCodeAscii, DataTypeCodeBigint, DataTypeCodeBlob, DataTypeCodeBoolean,
	DataTypeCodeCounter, DataTypeCodeDecimal, DataTypeCodeDouble, DataTypeCodeFloat, DataTypeCodeInt,
	DataTypeCodeText, DataTypeCodeTimestamp, DataTypeCodeUuid, DataTypeCodeVarchar, DataTypeCodeVarint,
	DataTypeCodeTimeuuid, DataTypeCodeInet, DataTypeCodeDate, DataTypeCodeTime, DataTypeCodeSmallint,
	DataTypeCodeTinyint, DataTypeCodeDuration,
}

var collectionDataTypeCodes = []DataTypeCode{DataTypeCodeList, DataTypeCodeMap, DataTypeCodeSet}

var complexDataTypeCodes = []DataTypeCode{DataTypeCodeUdt, DataTypeCodeTuple}

func (c DataTypeCode) IsValid() bool {
	return c.IsPrimitive() || isOneOf(c, collectionDataTypeCodes...) || isOneOf(c, complexDataTypeCodes...)
}

func (c DataTypeCode) IsPrimitive() bool {
	return isOneOf(c, primitiveDataTypeCodes...)
}

var dataTypeCodeNames = map[DataTypeCode]string{
	DataTypeCodeCustom:    "DataTypeCode Custom [0x0000]",
	DataTypeCodeAscii:     "DataTypeCode Ascii [0x0001]",
	DataTypeCodeBigint:    "DataTypeCode Bigint [0x0002]",
	DataTypeCodeBlob:      "DataTypeCode Blob [0x0003]",
	DataTypeCodeBoolean:   "DataTypeCode Boolean [0x0004]",
	DataTypeCodeCounter:   "DataTypeCode Counter [0x0005]",
	DataTypeCodeDecimal:   "DataTypeCode Decimal [0x0006]",
	DataTypeCodeDouble:    "DataTypeCode Double [0x0007]",
	DataTypeCodeFloat:     "DataTypeCode Float [0x0008]",
	DataTypeCodeInt:       "DataTypeCode Int [0x0009]",
	DataTypeCodeText:      "DataTypeCode Text [0x000A]",
	DataTypeCodeTimestamp: "DataTypeCode Timestamp [0x000B]",
	DataTypeCodeUuid:      "DataTypeCode Uuid [0x000C]",
	DataTypeCodeVarchar:   "DataTypeCode Varchar [0x000D]",
	DataTypeCodeVarint:    "DataTypeCode Varint [0x000E]",
	DataTypeCodeTimeuuid:  "DataTypeCode Timeuuid [0x000F]",
	DataTypeCodeInet:      "DataTypeCode Inet [0x0010]",
	DataTypeCodeDate:      "DataTypeCode Date [0x0011]",
	DataTypeCodeTime:      "DataTypeCode Time [0x0012]",
	DataTypeCodeSmallint:  "DataTypeCode Smallint [0x0013]",
	DataTypeCodeTinyint:   "DataTypeCode Tinyint [0x0014]",
	DataTypeCodeDuration:  "DataTypeCode Duration [0x0015]",
	DataTypeCodeList:      "DataTypeCode List [0x0020]",
	DataTypeCodeMap:       "DataTypeCode Map [0x0021]",
	DataTypeCodeSet:       "DataTypeCode Set [0x0022]",
	DataTypeCodeUdt:       "DataTypeCode Udt [0x0030]",
	DataTypeCodeTuple:     "DataTypeCode Tuple [0x0031]",
}

func (c DataTypeCode) String() string {
	if name, ok := dataTypeCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("DataType ? [%#.4X]", uint16(c))
}

type EventType string

const (
	EventTypeTopologyChange = EventType("TOPOLOGY_CHANGE")
	EventTypeStatusChange   = EventType("STATUS_CHANGE")
	EventTypeSchemaChange   = EventType("SCHEMA_CHANGE")
)

func (e EventType) IsValid() bool {
	return isOneOf(e, EventTypeSchemaChange, EventTypeTopologyChange, EventTypeStatusChange)
}

type SchemaChangeType string

const (
	SchemaChangeTypeCreated = SchemaChangeType("CREATED")
	SchemaChangeTypeUpdated = SchemaChangeType("UPDATED")
	SchemaChangeTypeDropped = SchemaChangeType("DROPPED")
)

func (t SchemaChangeType) IsValid() bool {
	return isOneOf(t, SchemaChangeTypeCreated, SchemaChangeTypeUpdated, SchemaChangeTypeDropped)
}

type SchemaChangeTarget string

const (
	SchemaChangeTargetKeyspace  = SchemaChangeTarget("KEYSPACE")
	SchemaChangeTargetTable     = SchemaChangeTarget("TABLE")
	SchemaChangeTargetType      = SchemaChangeTarget("TYPE")      // v3+
	SchemaChangeTargetFunction  = SchemaChangeTarget("FUNCTION")  // v3+
	SchemaChangeTargetAggregate = SchemaChangeTarget("AGGREGATE") // v3+
)

func (t SchemaChangeTarget) IsValid() bool {
	return isOneOf(t,
		SchemaChangeTargetKeyspace, SchemaChangeTargetTable,
		SchemaChangeTargetType, SchemaChangeTargetFunction, SchemaChangeTargetAggregate,
	)
}

type TopologyChangeType string

const (
	TopologyChangeTypeNewNode     = TopologyChangeType("NEW_NODE")
	TopologyChangeTypeRemovedNode = TopologyChangeType("REMOVED_NODE")
	TopologyChangeTypeMovedNode   = TopologyChangeType("MOVED_NODE") // v3+
)

func (t TopologyChangeType) IsValid() bool {
	return isOneOf(t, TopologyChangeTypeNewNode, TopologyChangeTypeRemovedNode, TopologyChangeTypeMovedNode)
}

type StatusChangeType string

const (
	StatusChangeTypeUp   = StatusChangeType("UP")
	StatusChangeTypeDown = StatusChangeType("DOWN")
)

func (t StatusChangeType) IsValid() bool {
	return isOneOf(t, StatusChangeTypeUp, StatusChangeTypeDown)
}

type BatchType uint8

const (
	BatchTypeLogged   = BatchType(0x00)
	BatchTypeUnlogged = BatchType(0x01)
	BatchTypeCounter  = BatchType(0x02)
)

func (t BatchType) IsValid() bool {
	return isOneOf(t, BatchTypeLogged, BatchTypeUnlogged, BatchTypeCounter)
}

var batchTypeNames = map[BatchType]string{
	BatchTypeLogged:   "BatchType LOGGED [0x00]",
	BatchTypeUnlogged: "BatchType UNLOGGED [0x01]",
	BatchTypeCounter:  "BatchType COUNTER [0x02]",
}

func (t BatchType) String() string {
	if name, ok := batchTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("BatchType ? [%#.2X]", uint8(t))
}

type BatchChildType uint8

const (
	BatchChildTypeQueryString = BatchChildType(0x00)
	BatchChildTypePreparedId  = BatchChildType(0x01)
)

func (t BatchChildType) IsValid() bool {
	return isOneOf(t, BatchChildTypeQueryString, BatchChildTypePreparedId)
}

var batchChildTypeNames = map[BatchChildType]string{
	BatchChildTypeQueryString: "BatchChildType QueryString [0x00]",
	BatchChildTypePreparedId:  "BatchChildType PreparedId [0x01]",
}

func (t BatchChildType) String() string {
	if name, ok := batchChildTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("BatchChildType ? [%#.2X]", uint8(t))
}

type HeaderFlag uint8

const (
	HeaderFlagCompressed    = HeaderFlag(0x01)
	HeaderFlagTracing       = HeaderFlag(0x02)
	HeaderFlagCustomPayload = HeaderFlag(0x04)
	HeaderFlagWarning       = HeaderFlag(0x08)
	HeaderFlagUseBeta       = HeaderFlag(0x10)
)

func (f HeaderFlag) Add(other HeaderFlag) HeaderFlag {
	return f | other
}

func (f HeaderFlag) Remove(other HeaderFlag) HeaderFlag {
	return f &^ other
}

func (f HeaderFlag) Contains(other HeaderFlag) bool {
	return f&other != 0
}

var headerFlagNames = map[HeaderFlag]string{
	HeaderFlagCompressed:    "Compressed [0x01",
	HeaderFlagTracing:       "Tracing [0x02",
	HeaderFlagCustomPayload: "CustomPayload [0x04",
	HeaderFlagWarning:       "Warning [0x08",
	HeaderFlagUseBeta:       "UseBeta [0x10",
}

func (f HeaderFlag) String() string {
	if name, ok := headerFlagNames[f]; ok {
		return fmt.Sprintf("HeaderFlag %s %#.8b]", name, f)
	}
	return fmt.Sprintf("HeaderFlag ? [%#.2X %#.8b]", uint8(f), uint8(f))
}

// QueryFlag was encoded as [byte] in v3 and v4, but changed to [int] in v5.
type QueryFlag uint32

const (
	QueryFlagValues            = QueryFlag(0x00000001)
	QueryFlagSkipMetadata      = QueryFlag(0x00000002)
	QueryFlagPageSize          = QueryFlag(0x00000004)
	QueryFlagPagingState       = QueryFlag(0x00000008)
	QueryFlagSerialConsistency = QueryFlag(0x00000010)
	QueryFlagDefaultTimestamp  = QueryFlag(0x00000020)
	QueryFlagValueNames        = QueryFlag(0x00000040)
	QueryFlagWithKeyspace      = QueryFlag(0x00000080) // protocol v5+ and DSE v2
	QueryFlagNowInSeconds      = QueryFlag(0x00000100) // protocol v5+
)

// DSE-specific query flags
const (
	QueryFlagDsePageSizeBytes               = QueryFlag(0x40000000) // DSE v1+
	QueryFlagDseWithContinuousPagingOptions = QueryFlag(0x80000000) // DSE v1+
)

func (f QueryFlag) Add(other QueryFlag) QueryFlag {
	return f | other
}

func (f QueryFlag) Remove(other QueryFlag) QueryFlag {
	return f &^ other
}

func (f QueryFlag) Contains(other QueryFlag) bool {
	return f&other != 0
}

var queryFlagNames = map[QueryFlag]string{
	QueryFlagValues:                         "Values [0x00000001",
	QueryFlagSkipMetadata:                   "SkipMetadata [0x00000002",
	QueryFlagPageSize:                       "PageSize [0x00000004",
	QueryFlagPagingState:                    "PagingState [0x00000008",
	QueryFlagSerialConsistency:              "SerialConsistency [0x00000010",
	QueryFlagDefaultTimestamp:               "DefaultTimestamp [0x00000020",
	QueryFlagValueNames:                     "ValueNames [0x00000040",
	QueryFlagWithKeyspace:                   "WithKeyspace [0x00000080",
	QueryFlagNowInSeconds:                   "NowInSeconds [0x00000100",
	QueryFlagDsePageSizeBytes:               "DsePageSizeBytes [0x40000000",
	QueryFlagDseWithContinuousPagingOptions: "DseWithContinuousPagingOptions [0x80000000",
}

func (f QueryFlag) String() string {
	if name, ok := queryFlagNames[f]; ok {
		return fmt.Sprintf("QueryFlag %s %#.32b]", name, f)
	}
	return fmt.Sprintf("QueryFlag ? [%#.8X %#.32b]", uint32(f), uint32(f))
}

type RowsFlag uint32

const (
	RowsFlagGlobalTablesSpec = RowsFlag(0x00000001)
	RowsFlagHasMorePages     = RowsFlag(0x00000002)
	RowsFlagNoMetadata       = RowsFlag(0x00000004)
	RowsFlagMetadataChanged  = RowsFlag(0x00000008)
)

// DSE-specific rows flags
const (
	RowsFlagDseContinuousPaging   = RowsFlag(0x40000000) // DSE v1+
	RowsFlagDseLastContinuousPage = RowsFlag(0x80000000) // DSE v1+
)

func (f RowsFlag) Add(other RowsFlag) RowsFlag {
	return f | other
}

func (f RowsFlag) Remove(other RowsFlag) RowsFlag {
	return f &^ other
}

func (f RowsFlag) Contains(other RowsFlag) bool {
	return f&other != 0
}

var rowsFlagNames = map[RowsFlag]string{
	RowsFlagGlobalTablesSpec:      "GlobalTablesSpec [0x00000001",
	RowsFlagHasMorePages:          "HasMorePages [0x00000002",
	RowsFlagNoMetadata:            "NoMetadata [0x00000004",
	RowsFlagMetadataChanged:       "MetadataChanged [0x00000008",
	RowsFlagDseContinuousPaging:   "ContinuousPaging [0x40000000",
	RowsFlagDseLastContinuousPage: "LastContinuousPage [0x80000000",
}

func (f RowsFlag) String() string {
	if name, ok := rowsFlagNames[f]; ok {
		return fmt.Sprintf("RowsFlag %s %#.32b]", name, f)
	}
	return fmt.Sprintf("RowsFlag ? [%#.8X %#.32b]", uint32(f), uint32(f))
}

type VariablesFlag uint32

const (
	VariablesFlagGlobalTablesSpec = VariablesFlag(0x00000001)
)

func (f VariablesFlag) Add(other VariablesFlag) VariablesFlag {
	return f | other
}

func (f VariablesFlag) Remove(other VariablesFlag) VariablesFlag {
	return f &^ other
}

func (f VariablesFlag) Contains(other VariablesFlag) bool {
	return f&other != 0
}

func (f VariablesFlag) String() string {
	if f == VariablesFlagGlobalTablesSpec {
		return fmt.Sprintf("VariablesFlag GlobalTablesSpec [0x00000001 %#.32b]", f)
	}
	return fmt.Sprintf("VariablesFlag ? [%#.8X %#.32b]", uint32(f), uint32(f))
}

type PrepareFlag uint32

const (
	PrepareFlagWithKeyspace = PrepareFlag(0x00000001) // v5 and DSE v2
)

func (f PrepareFlag) Add(other PrepareFlag) PrepareFlag {
	return f | other
}

func (f PrepareFlag) Remove(other PrepareFlag) PrepareFlag {
	return f &^ other
}

func (f PrepareFlag) Contains(other PrepareFlag) bool {
	return f&other != 0
}

func (f PrepareFlag) String() string {
	if f == PrepareFlagWithKeyspace {
		return fmt.Sprintf("PrepareFlag WithKeyspace [0x00000001 %#.32b]", f)
	}
	return fmt.Sprintf("PrepareFlag ? [%#.8X %#.32b]", uint32(f), uint32(f))
}

type DseRevisionType uint32

const (
	DseRevisionTypeCancelContinuousPaging = DseRevisionType(0x00000001)
	DseRevisionTypeMoreContinuousPages    = DseRevisionType(0x00000002) // DSE v2+
)

func (t DseRevisionType) IsValid() bool {
	return isOneOf(t, DseRevisionTypeCancelContinuousPaging, DseRevisionTypeMoreContinuousPages)
}

var dseRevisionTypeNames = map[DseRevisionType]string{
	DseRevisionTypeCancelContinuousPaging: "DseRevisionType CancelContinuousPaging [0x00000001]",
	DseRevisionTypeMoreContinuousPages:    "DseRevisionType MoreContinuousPages [0x00000002]",
}

func (t DseRevisionType) String() string {
	if name, ok := dseRevisionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DseRevisionType ? [%#.8X]", uint32(t))
}

type FailureCode uint16

const (
	FailureCodeUnknown               = FailureCode(0x0000)
	FailureCodeTooManyTombstonesRead = FailureCode(0x0001)
	FailureCodeIndexNotAvailable     = FailureCode(0x0002)
	FailureCodeCdcSpaceFull          = FailureCode(0x0003)
	FailureCodeCounterWrite          = FailureCode(0x0004)
	FailureCodeTableNotFound         = FailureCode(0x0005)
	FailureCodeKeyspaceNotFound      = FailureCode(0x0006)
)

func (c FailureCode) IsValid() bool {
	return isOneOf(c,
		FailureCodeUnknown, FailureCodeTooManyTombstonesRead, FailureCodeIndexNotAvailable,
		FailureCodeCdcSpaceFull, FailureCodeCounterWrite, FailureCodeTableNotFound, FailureCodeKeyspaceNotFound,
	)
}

var failureCodeNames = map[FailureCode]string{
	FailureCodeUnknown:               "FailureCode Unknown [0x0000]",
	FailureCodeTooManyTombstonesRead: "FailureCode TooManyTombstonesRead [0x0001]",
	FailureCodeIndexNotAvailable:     "FailureCode IndexNotAvailable [0x0002]",
	FailureCodeCdcSpaceFull:          "FailureCode CdcSpaceFull [0x0003]",
	FailureCodeCounterWrite:          "FailureCode CounterWrite [0x0004]",
	FailureCodeTableNotFound:         "FailureCode TableNotFound [0x0005]",
	FailureCodeKeyspaceNotFound:      "FailureCode KeyspaceNotFound [0x0006]",
}

func (c FailureCode) String() string {
	if name, ok := failureCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("FailureCode ? [%#.4X]", uint16(c))
}

type Compression string

const (
	CompressionNone   Compression = "NONE"
	CompressionLz4    Compression = "LZ4"
	CompressionSnappy Compression = "SNAPPY"
)

func (c Compression) IsValid() bool {
	return isOneOf(c, CompressionNone, CompressionLz4, CompressionSnappy)
}
