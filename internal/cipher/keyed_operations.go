package cipher

import (
	"context"
	"fmt"

	"github.com/scytale-dev/scytale/internal/alphabet"
)

// Keyed cipher operations. Each reads its key material from the params
// map so recipes can persist it alongside the pipeline definition.

// shiftParam extracts an integer shift, accepting float64 because JSON
// numbers decode that way.
func shiftParam(params map[string]interface{}) (int, bool) {
	switch v := params["shift"].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	}
	return 0, false
}

// alphabetParam returns the configured alphabet letters, falling back
// to the standard Latin alphabet.
func alphabetParam(params map[string]interface{}) string {
	if letters, ok := params["alphabet"].(string); ok && letters != "" {
		return letters
	}
	return alphabet.StandardLetters
}

// CaesarEncryptOp shifts letters forward by a fixed amount
type CaesarEncryptOp struct {
	BaseOperation
}

func (op *CaesarEncryptOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	shift, ok := shiftParam(params)
	if !ok {
		return nil, fmt.Errorf("shift parameter required for caesar cipher")
	}
	return []byte(CaesarShift(string(input), shift)), nil
}

// CaesarDecryptOp shifts letters backward by a fixed amount
type CaesarDecryptOp struct {
	BaseOperation
}

func (op *CaesarDecryptOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	shift, ok := shiftParam(params)
	if !ok {
		return nil, fmt.Errorf("shift parameter required for caesar cipher")
	}
	return []byte(CaesarShift(string(input), -shift)), nil
}

// VigenereEncryptOp encrypts with a repeating keyword
type VigenereEncryptOp struct {
	BaseOperation
}

func (op *VigenereEncryptOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return nil, fmt.Errorf("key parameter required for vigenere cipher")
	}
	v, err := NewVigenere().Alphabet(alphabetParam(params)).Key(key).Build()
	if err != nil {
		return nil, err
	}
	encrypted, err := v.Encrypt(string(input))
	if err != nil {
		return nil, err
	}
	return []byte(encrypted), nil
}

// VigenereDecryptOp decrypts with a repeating keyword
type VigenereDecryptOp struct {
	BaseOperation
}

func (op *VigenereDecryptOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return nil, fmt.Errorf("key parameter required for vigenere cipher")
	}
	v, err := NewVigenere().Alphabet(alphabetParam(params)).Key(key).Build()
	if err != nil {
		return nil, err
	}
	decrypted, err := v.Decrypt(string(input))
	if err != nil {
		return nil, err
	}
	return []byte(decrypted), nil
}

// GronsfeldEncryptOp encrypts with a repeating numeric key
type GronsfeldEncryptOp struct {
	BaseOperation
}

func (op *GronsfeldEncryptOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return nil, fmt.Errorf("key parameter required for gronsfeld cipher")
	}
	g, err := NewGronsfeld().Alphabet(alphabetParam(params)).Key(key).Build()
	if err != nil {
		return nil, err
	}
	encrypted, err := g.Encrypt(string(input))
	if err != nil {
		return nil, err
	}
	return []byte(encrypted), nil
}

// GronsfeldDecryptOp decrypts with a repeating numeric key
type GronsfeldDecryptOp struct {
	BaseOperation
}

func (op *GronsfeldDecryptOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return nil, fmt.Errorf("key parameter required for gronsfeld cipher")
	}
	g, err := NewGronsfeld().Alphabet(alphabetParam(params)).Key(key).Build()
	if err != nil {
		return nil, err
	}
	decrypted, err := g.Decrypt(string(input))
	if err != nil {
		return nil, err
	}
	return []byte(decrypted), nil
}

// RunningKeyEncryptOp encrypts with a non-repeating key text
type RunningKeyEncryptOp struct {
	BaseOperation
}

func (op *RunningKeyEncryptOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return nil, fmt.Errorf("key parameter required for running key cipher")
	}
	r, err := NewRunningKey().Alphabet(alphabetParam(params)).Key(key).Build()
	if err != nil {
		return nil, err
	}
	encrypted, err := r.Encrypt(string(input))
	if err != nil {
		return nil, err
	}
	return []byte(encrypted), nil
}

// RunningKeyDecryptOp decrypts with a non-repeating key text
type RunningKeyDecryptOp struct {
	BaseOperation
}

func (op *RunningKeyDecryptOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return nil, fmt.Errorf("key parameter required for running key cipher")
	}
	r, err := NewRunningKey().Alphabet(alphabetParam(params)).Key(key).Build()
	if err != nil {
		return nil, err
	}
	decrypted, err := r.Decrypt(string(input))
	if err != nil {
		return nil, err
	}
	return []byte(decrypted), nil
}

// ColumnarEncryptOp transposes text by writing columns in key order
type ColumnarEncryptOp struct {
	BaseOperation
}

func (op *ColumnarEncryptOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return nil, fmt.Errorf("key parameter required for columnar transposition")
	}
	c, err := NewColumnarTransposition(key)
	if err != nil {
		return nil, err
	}
	return []byte(c.Encrypt(string(input))), nil
}

// ColumnarDecryptOp restores text transposed by a columnar key
type ColumnarDecryptOp struct {
	BaseOperation
}

func (op *ColumnarDecryptOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	key, ok := params["key"].(string)
	if !ok || key == "" {
		return nil, fmt.Errorf("key parameter required for columnar transposition")
	}
	c, err := NewColumnarTransposition(key)
	if err != nil {
		return nil, err
	}
	return []byte(c.Decrypt(string(input))), nil
}

// init registers keyed cipher operations as reversible pairs
func init() {
	caesarEncrypt := &CaesarEncryptOp{
		BaseOperation: BaseOperation{
			NameValue:        "caesar_encrypt",
			TypeValue:        OperationTypeEncrypt,
			DescriptionValue: "Encrypt with a fixed-shift substitution",
		},
	}
	caesarDecrypt := &CaesarDecryptOp{
		BaseOperation: BaseOperation{
			NameValue:        "caesar_decrypt",
			TypeValue:        OperationTypeDecrypt,
			DescriptionValue: "Decrypt a fixed-shift substitution",
		},
	}
	caesarEncrypt.ReverseOp = caesarDecrypt
	caesarDecrypt.ReverseOp = caesarEncrypt

	vigenereEncrypt := &VigenereEncryptOp{
		BaseOperation: BaseOperation{
			NameValue:        "vigenere_encrypt",
			TypeValue:        OperationTypeEncrypt,
			DescriptionValue: "Encrypt with a repeating keyword",
		},
	}
	vigenereDecrypt := &VigenereDecryptOp{
		BaseOperation: BaseOperation{
			NameValue:        "vigenere_decrypt",
			TypeValue:        OperationTypeDecrypt,
			DescriptionValue: "Decrypt with a repeating keyword",
		},
	}
	vigenereEncrypt.ReverseOp = vigenereDecrypt
	vigenereDecrypt.ReverseOp = vigenereEncrypt

	gronsfeldEncrypt := &GronsfeldEncryptOp{
		BaseOperation: BaseOperation{
			NameValue:        "gronsfeld_encrypt",
			TypeValue:        OperationTypeEncrypt,
			DescriptionValue: "Encrypt with a repeating numeric key",
		},
	}
	gronsfeldDecrypt := &GronsfeldDecryptOp{
		BaseOperation: BaseOperation{
			NameValue:        "gronsfeld_decrypt",
			TypeValue:        OperationTypeDecrypt,
			DescriptionValue: "Decrypt with a repeating numeric key",
		},
	}
	gronsfeldEncrypt.ReverseOp = gronsfeldDecrypt
	gronsfeldDecrypt.ReverseOp = gronsfeldEncrypt

	runningKeyEncrypt := &RunningKeyEncryptOp{
		BaseOperation: BaseOperation{
			NameValue:        "running_key_encrypt",
			TypeValue:        OperationTypeEncrypt,
			DescriptionValue: "Encrypt with a non-repeating key text",
		},
	}
	runningKeyDecrypt := &RunningKeyDecryptOp{
		BaseOperation: BaseOperation{
			NameValue:        "running_key_decrypt",
			TypeValue:        OperationTypeDecrypt,
			DescriptionValue: "Decrypt with a non-repeating key text",
		},
	}
	runningKeyEncrypt.ReverseOp = runningKeyDecrypt
	runningKeyDecrypt.ReverseOp = runningKeyEncrypt

	columnarEncrypt := &ColumnarEncryptOp{
		BaseOperation: BaseOperation{
			NameValue:        "columnar_encrypt",
			TypeValue:        OperationTypeEncrypt,
			DescriptionValue: "Transpose text by writing columns in key order",
		},
	}
	columnarDecrypt := &ColumnarDecryptOp{
		BaseOperation: BaseOperation{
			NameValue:        "columnar_decrypt",
			TypeValue:        OperationTypeDecrypt,
			DescriptionValue: "Restore text transposed by a columnar key",
		},
	}
	columnarEncrypt.ReverseOp = columnarDecrypt
	columnarDecrypt.ReverseOp = columnarEncrypt

	RegisterOperation(caesarEncrypt)
	RegisterOperation(caesarDecrypt)
	RegisterOperation(vigenereEncrypt)
	RegisterOperation(vigenereDecrypt)
	RegisterOperation(gronsfeldEncrypt)
	RegisterOperation(gronsfeldDecrypt)
	RegisterOperation(runningKeyEncrypt)
	RegisterOperation(runningKeyDecrypt)
	RegisterOperation(columnarEncrypt)
	RegisterOperation(columnarDecrypt)
}
