package alphabet

import "fmt"

// Index is a validated 1-based alphabet position, always in [1, 26].
// Arithmetic goes through AddMod/SubMod so positions can never silently
// leave the valid range.
type Index int

// NewIndex validates that i is in [1, 26].
func NewIndex(i int) (Index, error) {
	if i < 1 || i > Size {
		return 0, fmt.Errorf("alphabet index out of range: %d", i)
	}
	return Index(i), nil
}

// AddMod returns the index advanced by n positions, wrapping mod 26 and
// staying 1-based. Negative n steps backwards.
func (i Index) AddMod(n int) Index {
	zero := (int(i) - 1 + n) % Size
	if zero < 0 {
		zero += Size
	}
	return Index(zero + 1)
}

// SubMod returns the index moved back by n positions, wrapping mod 26.
func (i Index) SubMod(n int) Index {
	return i.AddMod(-n)
}

// Int returns the 1-based position as a plain int.
func (i Index) Int() int {
	return int(i)
}
