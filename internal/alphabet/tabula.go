package alphabet

// TabulaRecta is the full 26x26 substitution square of an alphabet: row r
// holds the alphabet shifted by r-1 positions, indexed by row letter and
// column letter. Polyalphabetic ciphers over an alphabet are lookups into
// this table.
type TabulaRecta struct {
	rows map[rune]map[rune]rune
}

// NewTabulaRecta builds the substitution square for a full cipher alphabet.
func NewTabulaRecta(a *Alphabet) TabulaRecta {
	rows := make(map[rune]map[rune]rune, a.Len())
	for row := 1; row <= a.Len(); row++ {
		shifted := a.Shift(row - 1)
		columns := make(map[rune]rune, a.Len())
		for _, c := range a.Characters() {
			idx, _ := a.IndexOf(c)
			columns[c] = shifted.LetterAt(idx)
		}
		rows[a.LetterAt(Index(row))] = columns
	}
	return TabulaRecta{rows: rows}
}

// At returns the substitution for the given row and column letters. The
// second return is false when either letter is outside the alphabet.
func (t TabulaRecta) At(row, column rune) (rune, bool) {
	columns, ok := t.rows[row]
	if !ok {
		return 0, false
	}
	c, ok := columns[column]
	return c, ok
}
