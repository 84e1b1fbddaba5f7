package message

// DefaultMessageCodecs lists one codec singleton per opcode this package knows how
// to encode and decode, independent of protocol version. NewBuilder uses this list
// to seed a Registry and validate it against a specific version's mandatory opcodes.
var DefaultMessageCodecs = []Codec{
	&startupCodec{},
	&optionsCodec{},
	&queryCodec{},
	&prepareCodec{},
	&executeCodec{},
	&registerCodec{},
	&batchCodec{},
	&authResponseCodec{},
	&errorCodec{},
	&readyCodec{},
	&authenticateCodec{},
	&supportedCodec{},
	&resultCodec{},
	&eventCodec{},
	&authChallengeCodec{},
	&authSuccessCodec{},
}
