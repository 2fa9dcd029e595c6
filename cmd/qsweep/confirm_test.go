package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleConfirmer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "s", input: "s\n", expected: true},
		{name: "sim", input: "sim\n", expected: true},
		{name: "y", input: "y\n", expected: true},
		{name: "yes", input: "yes\n", expected: true},
		{name: "uppercase S", input: "S\n", expected: true},
		{name: "uppercase SIM", input: "SIM\n", expected: true},
		{name: "mixed case Yes", input: "Yes\n", expected: true},
		{name: "surrounding whitespace", input: "  yes  \n", expected: true},
		{name: "empty line declines", input: "\n", expected: false},
		{name: "n declines", input: "n\n", expected: false},
		{name: "no declines", input: "no\n", expected: false},
		{name: "arbitrary text declines", input: "sure why not\n", expected: false},
		{name: "eof declines", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &consoleConfirmer{
				in:  strings.NewReader(tt.input),
				out: &bytes.Buffer{},
			}
			assert.Equal(t, tt.expected, c.Confirm("Delete everything?"))
		})
	}
}

func TestConsoleConfirmer_PrintsPrompt(t *testing.T) {
	var out bytes.Buffer
	c := &consoleConfirmer{in: strings.NewReader("n\n"), out: &out}

	c.Confirm("Clear 2 collection(s)?")

	assert.Contains(t, out.String(), "Clear 2 collection(s)?")
	assert.Contains(t, out.String(), "[s/N]")
}
