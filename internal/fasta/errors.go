package fasta

import (
	"errors"
	"fmt"
)

// Format violations. They are always returned wrapped in a *FormatError.
var (
	ErrNotFASTA      = errors.New("not a fasta file")
	ErrLineTooWide   = errors.New("FASTA sequence lines are too wide")
	ErrHeaderTooLong = errors.New("FASTA header line is too long")
	ErrEmptyLine     = errors.New("first sequence line is empty")
	ErrCompressed    = errors.New("compressed input cannot be seeked; decompress it first")
)

// ErrOffsetRange reports a coordinate whose byte offset does not fit in an int64.
var ErrOffsetRange = errors.New("coordinate is outside the addressable file range")

// IOError reports a failure to open or read the input file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string { return e.Op + " " + e.Path + ": " + e.Err.Error() }
func (e *IOError) Unwrap() error { return e.Err }

// FormatError reports input that is not a usable single-record FASTA file.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string { return e.Path + ": " + e.Err.Error() }
func (e *FormatError) Unwrap() error { return e.Err }

// SeekError reports a translated offset the source refused to seek to.
type SeekError struct {
	Offset int64
	Err    error
}

func (e *SeekError) Error() string {
	return fmt.Sprintf("seek error at offset %d: %v", e.Offset, e.Err)
}
func (e *SeekError) Unwrap() error { return e.Err }

// OutputError wraps a failure writing extracted bytes to the destination.
type OutputError struct{ Err error }

func (e *OutputError) Error() string { return "write output: " + e.Err.Error() }
func (e *OutputError) Unwrap() error { return e.Err }
