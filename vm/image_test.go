package vm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImage(t *testing.T) {
	assert := assert.New(t)

	image, err := ParseImage(strings.NewReader("1002,4,3,4,-33"))
	assert.NoError(err)
	assert.Equal([]Word{1002, 4, 3, 4, -33}, image)
}

func TestParseImage_Whitespace(t *testing.T) {
	assert := assert.New(t)

	listing := strings.Join([]string{
		"109 1          ; adjust base",
		"204, -1",
		"99",
	}, "\n")

	image, err := ParseImage(strings.NewReader(listing))
	assert.NoError(err)
	assert.Equal([]Word{109, 1, 204, -1, 99}, image)
}

func TestParseImage_Expression(t *testing.T) {
	assert := assert.New(t)

	image, err := ParseImage(strings.NewReader("104, $(1 << 50), $(3 * 5 + 1), 99"))
	assert.NoError(err)
	assert.Equal([]Word{104, 1 << 50, 16, 99}, image)
}

func TestParseImage_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseImage(strings.NewReader("1,fish,2"))
	var perr ErrParseNumber
	assert.ErrorAs(err, &perr)
	assert.Equal("fish", string(perr))

	_, err = ParseImage(strings.NewReader("$(fish)"))
	var xerr ErrParseExpression
	assert.ErrorAs(err, &xerr)

	_, err = ParseImage(strings.NewReader("$('word')"))
	assert.ErrorAs(err, &xerr)

	_, err = ParseImage(strings.NewReader("  ; nothing but comment\n"))
	assert.ErrorIs(err, ErrImageEmpty)
}
