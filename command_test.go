package cmusnotify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCommandRequest(t *testing.T) {
	assert.Equal(t, []byte("status\n"), StatusCommand().Request())
	assert.Equal(t, `status`, StatusCommand().String())
}

func TestCommandArgumentsAreQuoted(t *testing.T) {
	c := NewCommand(`player-play`, `/music/some album/01.flac`)
	assert.Equal(t, "player-play '/music/some album/01.flac'\n", string(c.Request()))
}

func TestDecodeResponse(t *testing.T) {
	response, err := DecodeResponse("status playing\nfile /music/a b/c.flac\ntag title Hello World\n\n")
	require.NoError(t, err)
	require.Len(t, response.Records, 3)

	assert.Equal(t, `status`, response.Records[0].Keyword)
	assert.Equal(t, `playing`, response.Records[0].Value)
	assert.Equal(t, 1, response.Records[0].Line)

	assert.Equal(t, `file`, response.Records[1].Keyword)
	assert.Equal(t, `/music/a b/c.flac`, response.Records[1].Value)

	assert.True(t, response.Records[2].IsTag())
	name, value, err := response.Records[2].Tag()
	require.NoError(t, err)
	assert.Equal(t, `title`, name)
	assert.Equal(t, `Hello World`, value)
}

func TestDecodeResponseSkipsBlankLines(t *testing.T) {
	response, err := DecodeResponse("\nstatus paused\n\n\nposition 3\n\n")
	require.NoError(t, err)
	require.Len(t, response.Records, 2)
	assert.Equal(t, 2, response.Records[0].Line)
	assert.Equal(t, 5, response.Records[1].Line)
}

func TestDecodeResponseHandlesCRLF(t *testing.T) {
	response, err := DecodeResponse("status playing\r\nduration 10\r\n\r\n")
	require.NoError(t, err)
	require.Len(t, response.Records, 2)
	assert.Equal(t, `playing`, response.Records[0].Value)
	assert.Equal(t, `10`, response.Records[1].Value)
}

func TestDecodeResponseEmptyValue(t *testing.T) {
	response, err := DecodeResponse("status \n\n")
	require.NoError(t, err)
	require.Len(t, response.Records, 1)
	assert.Equal(t, ``, response.Records[0].Value)
}

func TestDecodeResponseMissingSpace(t *testing.T) {
	_, err := DecodeResponse("status playing\nbogus\n\n")
	require.Error(t, err)

	var merr *MalformedError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 2, merr.Line)
	assert.Equal(t, `bogus`, merr.Text)
	assert.ErrorIs(t, err, ErrMissingSpace)
}

func TestRecordTagMissingSpace(t *testing.T) {
	response, err := DecodeResponse("tag title\n\n")
	require.NoError(t, err)
	require.Len(t, response.Records, 1)

	_, _, err = response.Records[0].Tag()
	assert.True(t, IsMalformedError(err))
}
