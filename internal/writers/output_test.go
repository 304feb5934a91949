package writers

import (
	"bytes"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errWriter struct{ err error }

func (e errWriter) Write([]byte) (int, error) { return 0, e.err }

func TestOutputBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	o := NewOutput(&buf)
	_, err := o.Write([]byte("ACGT"))
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
	require.NoError(t, o.Flush())
	assert.Equal(t, "ACGT", buf.String())
}

func TestOutputBrokenPipe(t *testing.T) {
	o := NewOutput(errWriter{err: syscall.EPIPE})
	_, err := o.Write([]byte("ACGT"))
	require.NoError(t, err, "still buffered")
	err = o.Flush()
	assert.ErrorIs(t, err, ErrReaderGone)
	assert.ErrorIs(t, err, syscall.EPIPE)
	assert.True(t, IsBrokenPipe(err))
}

func TestOutputBrokenPipeOnLargeWrite(t *testing.T) {
	o := NewOutput(errWriter{err: syscall.EPIPE})
	_, err := o.Write([]byte(strings.Repeat("A", 10000)))
	assert.ErrorIs(t, err, ErrReaderGone)
}

func TestOutputOtherFailure(t *testing.T) {
	full := errors.New("disk full")
	o := NewOutput(errWriter{err: full})
	_, _ = o.Write([]byte("ACGT"))
	err := o.Flush()
	assert.ErrorIs(t, err, full)
	assert.NotErrorIs(t, err, ErrReaderGone)
}
