package enigma

import (
	"fmt"
	"strings"
	"testing"
)

func benchText(size int) string {
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(byte('A' + i%26))
	}
	return sb.String()
}

func BenchmarkDecrypt(b *testing.B) {
	m := Must(NewMachine().
		Rotors(1, 2, 3).
		Reflector("B").
		RingSettings(10, 12, 14).
		RingPositions(5, 22, 3).
		Plugboard("BY EW FZ GI QM RV UX").
		Build())
	sizes := []int{16, 256, 4096}

	for _, size := range sizes {
		text := benchText(size)
		b.Run(fmt.Sprintf("len=%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Decrypt(text)
			}
		})
	}
}

func BenchmarkDecryptAt(b *testing.B) {
	m := Must(NewMachineUnchecked().
		Rotors(1, 2, 3).
		Reflector("B").
		Build())
	text := benchText(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.DecryptAt(text, 1+i%26, 1, 1); err != nil {
			b.Fatal(err)
		}
	}
}
