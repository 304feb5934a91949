package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err, or anything it wraps, is a broken or
// closed pipe: the reader downstream of stdout (`head`, `less`) went away.
// Extraction treats that as a normal end of output.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
