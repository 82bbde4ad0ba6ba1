package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	text, err := GetSimpleText(reader("  hello  \n"), "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello", text)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	text, err := GetSimpleText(reader("no newline"), "Prompt", io.Discard)
	require.NoError(t, err)
	require.Equal(t, "no newline", text)
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	_, err := GetSimpleText(reader(""), "Prompt", io.Discard)
	require.Error(t, err)
}

func TestGetOptionalText(t *testing.T) {
	value, err := GetOptionalText(reader("something\n"), "Prompt", io.Discard)
	require.NoError(t, err)
	require.NotNil(t, value)
	require.Equal(t, "something", *value)

	value, err = GetOptionalText(reader("\n"), "Prompt", io.Discard)
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestGetBool(t *testing.T) {
	for input, want := range map[string]bool{
		"y\n": true, "Y\n": true, "yes\n": true,
		"n\n": false, "\n": false, "maybe\n": false,
	} {
		got, err := GetBool(reader(input), "Sure?", io.Discard)
		require.NoError(t, err)
		require.Equal(t, want, got, "input %q", input)
	}
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(fd int) ([]byte, error) {
		return []byte("s3cret"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", pw)
	require.Contains(t, out.String(), "Enter password")
}
