package writers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrReaderGone marks output abandoned because the reader downstream of the
// stream closed it. Commands treat it as a normal end of output.
var ErrReaderGone = errors.New("output reader closed")

// Output buffers extracted bases on their way to one stream. Broken-pipe
// failures come back wrapping ErrReaderGone so the caller stops reading
// input at once.
type Output struct {
	bw *bufio.Writer
}

func NewOutput(w io.Writer) *Output {
	return &Output{bw: bufio.NewWriter(w)}
}

func (o *Output) Write(p []byte) (int, error) {
	n, err := o.bw.Write(p)
	return n, classify(err)
}

// Flush pushes buffered bytes to the underlying stream.
func (o *Output) Flush() error {
	return classify(o.bw.Flush())
}

func classify(err error) error {
	if IsBrokenPipe(err) {
		return fmt.Errorf("%w: %w", ErrReaderGone, err)
	}
	return err
}
