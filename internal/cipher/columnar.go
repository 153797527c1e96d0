package cipher

import (
	"fmt"
	"sort"
	"strings"
)

// ColumnarTransposition rearranges text by dealing characters into
// columns round-robin, then reading the columns back in the order given
// by sorting the key bytes. Ties keep their original column order, so
// repeated key bytes are fine.
type ColumnarTransposition struct {
	key []byte
}

// NewColumnarTransposition builds the cipher from a key string; each
// byte keys one column.
func NewColumnarTransposition(key string) (*ColumnarTransposition, error) {
	return NewColumnarTranspositionDigits([]byte(key))
}

// NewColumnarTranspositionDigits builds the cipher from raw key digits.
func NewColumnarTranspositionDigits(digits []byte) (*ColumnarTransposition, error) {
	if len(digits) == 0 {
		return nil, fmt.Errorf("columnar transposition key cannot be empty")
	}
	key := make([]byte, len(digits))
	copy(key, digits)
	return &ColumnarTransposition{key: key}, nil
}

// Encrypt deals plaintext into columns and concatenates them in sorted
// key order.
func (c *ColumnarTransposition) Encrypt(plaintext string) string {
	k := len(c.key)
	columns := make([][]rune, k)
	for i, r := range []rune(plaintext) {
		columns[i%k] = append(columns[i%k], r)
	}

	var out strings.Builder
	for _, column := range c.columnOrder() {
		out.WriteString(string(columns[column]))
	}
	return out.String()
}

// Decrypt inverts Encrypt: it slices the ciphertext back into columns
// of the lengths the round-robin deal produced, then reads across them.
func (c *ColumnarTransposition) Decrypt(ciphertext string) string {
	k := len(c.key)
	runes := []rune(ciphertext)
	n := len(runes)

	columns := make([][]rune, k)
	start := 0
	for _, column := range c.columnOrder() {
		length := n / k
		if column < n%k {
			length++
		}
		columns[column] = runes[start : start+length]
		start += length
	}

	out := make([]rune, n)
	for j := 0; j < n; j++ {
		out[j] = columns[j%k][j/k]
	}
	return string(out)
}

// columnOrder returns column indices sorted by key byte, stable on ties.
func (c *ColumnarTransposition) columnOrder() []int {
	order := make([]int, len(c.key))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return c.key[order[a]] < c.key[order[b]]
	})
	return order
}
