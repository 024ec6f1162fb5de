package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  []Key
	}{
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []Key{KeyUp, KeyDown, KeyRight, KeyLeft}},
		{"vi keys", "kjlh", []Key{KeyUp, KeyDown, KeyRight, KeyLeft}},
		{"choose", " \r", []Key{KeyChoose, KeyChoose}},
		{"sizes and reset", "246r", []Key{KeySize2, KeySize4, KeySize6, KeyReset}},
		{"quit", "q\x03", []Key{KeyQuit, KeyQuit}},
		{"unknown dropped", "x\x1b[Z9", nil},
		{"lone escape", "\x1b", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode([]byte(tt.input)))
		})
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "choose", KeyChoose.String())
	assert.Equal(t, "size-6", KeySize6.String())
	assert.Equal(t, "none", Key(99).String())
}
