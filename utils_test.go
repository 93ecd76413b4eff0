package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPastedText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello", "hello"},
		{"crlf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs", "a\tb", "a    b"},
		{"control", "a\x07b\x00c", "abc"},
		{"rtf", `{\rtf1\ansi\deff0 {\fonttbl {\f0 Arial;}}\f0\fs24 Hello\par World}`, "Arial;Hello\nWorld"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanPastedText(tt.in))
		})
	}
}

func TestStripRTFEscapes(t *testing.T) {
	assert.Equal(t, `a{b}c\d`, stripRTF(`{\rtf1 a\{b\}c\\d}`))
	assert.Equal(t, "one\ntwo", stripRTF("{\\rtf1 one\\line two}"))
}
