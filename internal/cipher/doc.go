// Package cipher provides classical cipher and codec operations for
// encrypting, decrypting, and unwrapping layered ciphertexts.
//
// # Overview
//
// The package covers two kinds of transformations:
//   - Codecs: octal, hex, Base64, binary, and Morse encodings, registered
//     as reversible operation pairs
//   - Keyed ciphers: Caesar, Vigenère, Gronsfeld, running key, one-time
//     pad, and columnar transposition
//
// # Quick Start
//
// Basic encoding/decoding through the registry:
//
//	// Get an operation
//	op, _ := cipher.GetOperation("octal_encode")
//
//	// Execute it
//	result, _ := op.Execute(context.Background(), []byte("hi"), nil)
//	// result: []byte("150 151")
//
// Keyed ciphers are also available as typed structs with builders:
//
//	vigenere, err := cipher.NewVigenere().
//	    Alphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ").
//	    Key("LEMON").
//	    Build()
//	ciphertext, err := vigenere.Encrypt("ATTACKATDAWN")
//	// ciphertext: "LXFOPVEFRNHR"
//
// # Transformation Pipelines
//
// Chain multiple operations together:
//
//	pipeline := &cipher.Pipeline{
//	    Operations: []cipher.OperationConfig{
//	        {Name: "base64_encode"},
//	        {Name: "octal_encode"},
//	    },
//	    Reversible: true,
//	}
//
//	// Execute forward
//	encoded, _ := pipeline.Execute(ctx, []byte("test"))
//
//	// Reverse the pipeline
//	reversed, _ := pipeline.Reverse()
//	decoded, _ := reversed.Execute(ctx, encoded)
//
// # Recipe Management
//
// Save and load transformation recipes:
//
//	rm := cipher.NewRecipeManager("/path/to/recipes")
//
//	recipe := &cipher.Recipe{
//	    Name:        "octal-over-base64",
//	    Description: "Base64 wrapped in octal groups",
//	    Tags:        []string{"encoding", "layered"},
//	    Pipeline: cipher.Pipeline{
//	        Operations: []cipher.OperationConfig{
//	            {Name: "base64_encode"},
//	            {Name: "octal_encode"},
//	        },
//	        Reversible: true,
//	    },
//	}
//
//	rm.SaveRecipe(recipe)
//
// # Available Operations
//
// Codecs:
//   - base64_encode/decode - Standard Base64
//   - hex_encode/decode - Space-separated hex character codes
//   - octal_encode/decode - Space-separated octal character codes
//   - binary_encode/decode - Space-separated 8-bit groups
//   - morse_encode/decode - ITU Morse code
//
// Keyed ciphers (parameters passed per call):
//   - caesar_encrypt/decrypt - Fixed-shift substitution ("shift")
//   - vigenere_encrypt/decrypt - Repeating-key substitution ("key", "alphabet")
//   - gronsfeld_encrypt/decrypt - Digit-key substitution ("key", "alphabet")
//   - running_key_encrypt/decrypt - Non-repeating key ("key", "alphabet")
//   - columnar_encrypt/decrypt - Columnar transposition ("key")
//
// The one-time pad is deliberately absent from the registry: its decryptor
// is single-use and cannot be expressed as a stateless operation. Use
// OneTimePadEncrypt directly.
//
// # Thread Safety
//
// The operation registry is thread-safe and can be accessed concurrently.
// Individual operations are stateless and safe for concurrent use.
// RecipeManager uses internal locking for thread-safe recipe management.
package cipher
