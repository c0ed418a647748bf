package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	tcs := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "Empty", input: "", want: nil},
		{name: "TrailingNewline", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "NoTrailingNewline", input: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "CRLF", input: "a\r\nb\r\n", want: []string{"a", "b"}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadFileLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("1abc2\ntreb7uchet\n"), 0644))

	got, err := ReadFileLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1abc2", "treb7uchet"}, got)

	_, err = ReadFileLines(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
