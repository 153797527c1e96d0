package cipher

import (
	"context"
)

// Codec operations wrap the plain codec functions for the registry, so
// pipelines and recipes can chain them by name.

// Base64EncodeOp encodes data as standard Base64
type Base64EncodeOp struct {
	BaseOperation
}

func (op *Base64EncodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	return []byte(EncodeBase64(string(input))), nil
}

// Base64DecodeOp decodes standard Base64 data
type Base64DecodeOp struct {
	BaseOperation
}

func (op *Base64DecodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	decoded, err := DecodeBase64(string(input))
	if err != nil {
		return nil, err
	}
	return []byte(decoded), nil
}

// HexEncodeOp encodes bytes as space-separated hex groups
type HexEncodeOp struct {
	BaseOperation
}

func (op *HexEncodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	return []byte(EncodeHex(string(input))), nil
}

// HexDecodeOp decodes space-separated hex groups
type HexDecodeOp struct {
	BaseOperation
}

func (op *HexDecodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	decoded, err := DecodeHex(string(input))
	if err != nil {
		return nil, err
	}
	return []byte(decoded), nil
}

// OctalEncodeOp encodes bytes as space-separated octal groups
type OctalEncodeOp struct {
	BaseOperation
}

func (op *OctalEncodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	return []byte(EncodeOctal(string(input))), nil
}

// OctalDecodeOp decodes space-separated octal groups
type OctalDecodeOp struct {
	BaseOperation
}

func (op *OctalDecodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	decoded, err := DecodeOctal(string(input))
	if err != nil {
		return nil, err
	}
	return []byte(decoded), nil
}

// BinaryEncodeOp encodes bytes as space-separated 8-bit groups
type BinaryEncodeOp struct {
	BaseOperation
}

func (op *BinaryEncodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	return []byte(EncodeBinary(string(input))), nil
}

// BinaryDecodeOp decodes 8-bit binary groups
type BinaryDecodeOp struct {
	BaseOperation
}

func (op *BinaryDecodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	decoded, err := DecodeBinary(string(input))
	if err != nil {
		return nil, err
	}
	return []byte(decoded), nil
}

// MorseEncodeOp encodes text as ITU Morse code
type MorseEncodeOp struct {
	BaseOperation
}

func (op *MorseEncodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	return []byte(EncodeMorse(string(input))), nil
}

// MorseDecodeOp decodes ITU Morse code
type MorseDecodeOp struct {
	BaseOperation
}

func (op *MorseDecodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	decoded, err := DecodeMorse(string(input))
	if err != nil {
		return nil, err
	}
	return []byte(decoded), nil
}

// init registers all codec operations as reversible pairs
func init() {
	base64Encode := &Base64EncodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "base64_encode",
			TypeValue:        OperationTypeEncode,
			DescriptionValue: "Encode data as standard Base64",
		},
	}
	base64Decode := &Base64DecodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "base64_decode",
			TypeValue:        OperationTypeDecode,
			DescriptionValue: "Decode standard Base64 data",
		},
	}
	base64Encode.ReverseOp = base64Decode
	base64Decode.ReverseOp = base64Encode

	hexEncode := &HexEncodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "hex_encode",
			TypeValue:        OperationTypeEncode,
			DescriptionValue: "Encode bytes as space-separated hex character codes",
		},
	}
	hexDecode := &HexDecodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "hex_decode",
			TypeValue:        OperationTypeDecode,
			DescriptionValue: "Decode space-separated hex character codes",
		},
	}
	hexEncode.ReverseOp = hexDecode
	hexDecode.ReverseOp = hexEncode

	octalEncode := &OctalEncodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "octal_encode",
			TypeValue:        OperationTypeEncode,
			DescriptionValue: "Encode bytes as space-separated octal character codes",
		},
	}
	octalDecode := &OctalDecodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "octal_decode",
			TypeValue:        OperationTypeDecode,
			DescriptionValue: "Decode space-separated octal character codes",
		},
	}
	octalEncode.ReverseOp = octalDecode
	octalDecode.ReverseOp = octalEncode

	binaryEncode := &BinaryEncodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "binary_encode",
			TypeValue:        OperationTypeEncode,
			DescriptionValue: "Encode bytes as space-separated 8-bit groups",
		},
	}
	binaryDecode := &BinaryDecodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "binary_decode",
			TypeValue:        OperationTypeDecode,
			DescriptionValue: "Decode 8-bit binary groups",
		},
	}
	binaryEncode.ReverseOp = binaryDecode
	binaryDecode.ReverseOp = binaryEncode

	morseEncode := &MorseEncodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "morse_encode",
			TypeValue:        OperationTypeEncode,
			DescriptionValue: "Encode text as ITU Morse code",
		},
	}
	morseDecode := &MorseDecodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "morse_decode",
			TypeValue:        OperationTypeDecode,
			DescriptionValue: "Decode ITU Morse code",
		},
	}
	morseEncode.ReverseOp = morseDecode
	morseDecode.ReverseOp = morseEncode

	RegisterOperation(base64Encode)
	RegisterOperation(base64Decode)
	RegisterOperation(hexEncode)
	RegisterOperation(hexDecode)
	RegisterOperation(octalEncode)
	RegisterOperation(octalDecode)
	RegisterOperation(binaryEncode)
	RegisterOperation(binaryDecode)
	RegisterOperation(morseEncode)
	RegisterOperation(morseDecode)
}
