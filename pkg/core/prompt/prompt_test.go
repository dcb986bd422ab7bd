package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titlelookup/pkg/core/prompt"
)

func TestChooseResultRepromptsUntilValid(t *testing.T) {
	in := strings.NewReader("abc\n9\n2\n")
	var out strings.Builder
	p := prompt.New(in, &out)

	index, err := p.ChooseResult(3)

	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid Entry."))
	assert.Equal(t, 3, strings.Count(out.String(), "Enter title number: "))
}

func TestChooseResultBounds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		index int
	}{
		{"lowest entry", "1\n", 0},
		{"highest entry", "3\n", 2},
		{"zero rejected then valid", "0\n3\n", 2},
		{"negative rejected then valid", "-1\n1\n", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			p := prompt.New(strings.NewReader(tc.input), &out)

			index, err := p.ChooseResult(3)

			require.NoError(t, err)
			assert.Equal(t, tc.index, index)
		})
	}
}

func TestChooseResultCancelledOnEOF(t *testing.T) {
	var out strings.Builder
	p := prompt.New(strings.NewReader(""), &out)

	_, err := p.ChooseResult(3)

	require.Error(t, err)
	assert.ErrorIs(t, err, prompt.ErrCancelled)
}

func TestReadLineTrims(t *testing.T) {
	var out strings.Builder
	p := prompt.New(strings.NewReader("  the matrix \n"), &out)

	line, err := p.ReadLine("Enter production title: ")

	require.NoError(t, err)
	assert.Equal(t, "the matrix", line)
	assert.Equal(t, "Enter production title: ", out.String())
}

func TestReadLineLastLineWithoutNewline(t *testing.T) {
	var out strings.Builder
	p := prompt.New(strings.NewReader("tt0133093"), &out)

	line, err := p.ReadLine("Enter IMDb ID: ")

	require.NoError(t, err)
	assert.Equal(t, "tt0133093", line)
}
