package cryptoutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHexString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", true},
		{"lowercase hex", "deadbeef", true},
		{"uppercase hex", "DEADBEEF", true},
		{"mixed case", "DeAdBeEf", true},
		{"digits only", "0123456789", true},
		{"placeholder hash segment", "ba7816bf", true},
		{"full sha256 digest", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", true},
		{"contains g", "0123abcg", false},
		{"space", "ab cd", false},
		{"special char", "abcd!!", false},
		{"newline", "abcd\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHexString(tt.in))
		})
	}
}
