package fasta

import (
	"bufio"
	"errors"
	"io"
	"math"
)

// Layout locates sequence data inside a single-record FASTA file.
type Layout struct {
	Beginning int64 // offset of the first byte after the header line
	LineWidth int64 // sequence bytes per full line, terminator excluded
}

// ReadLayout consumes the header and first sequence line from r, which must
// be positioned at the start of the file. path is only used in errors.
func ReadLayout(path string, r io.Reader) (Layout, error) {
	br := bufio.NewReaderSize(r, MaxLine+1)

	beginning, err := parseHeader(br)
	if err != nil {
		return Layout{}, wrapLayoutErr(path, err)
	}
	width, err := probeLineWidth(br)
	if err != nil {
		return Layout{}, wrapLayoutErr(path, err)
	}
	return Layout{Beginning: beginning, LineWidth: width}, nil
}

// parseHeader returns the number of bytes in the header line.
func parseHeader(br *bufio.Reader) (int64, error) {
	line, err := readLine(br, MaxLine)
	if len(line) == 0 {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	if line[0] != '>' {
		return 0, ErrNotFASTA
	}
	switch {
	case errors.Is(err, errLineBound):
		return 0, ErrHeaderTooLong
	case err != nil && err != io.EOF:
		return 0, err
	}
	// An unterminated header is accepted here; the width probe then fails on EOF.
	return int64(len(line)), nil
}

func probeLineWidth(br *bufio.Reader) (int64, error) {
	line, err := readLine(br, MaxLine)
	switch {
	case errors.Is(err, errLineBound):
		return 0, ErrLineTooWide
	case err == io.EOF && len(line) == 0:
		return 0, io.ErrUnexpectedEOF
	case err == io.EOF:
		// Unterminated last line: no terminator within the bound.
		return 0, ErrLineTooWide
	case err != nil:
		return 0, err
	}
	width := int64(len(line) - 1)
	if width == 0 {
		return 0, ErrEmptyLine
	}
	return width, nil
}

func wrapLayoutErr(path string, err error) error {
	switch err {
	case ErrNotFASTA, ErrLineTooWide, ErrHeaderTooLong, ErrEmptyLine:
		return &FormatError{Path: path, Err: err}
	}
	return ioError("read", path, err)
}

// Offset translates a 1-based sequence position into an absolute byte offset,
// adding one terminator byte per full line preceding pos. Division truncates
// toward zero, so positions below 1 land just before the sequence data.
// Positions whose offset does not fit in an int64 yield ErrOffsetRange.
func (l Layout) Offset(pos int64) (int64, error) {
	prev, ok := addInt64(pos, -1)
	if !ok {
		return 0, ErrOffsetRange
	}
	off, ok := addInt64(l.Beginning, pos)
	if ok {
		off, ok = addInt64(off, prev/l.LineWidth)
	}
	if ok {
		off, ok = addInt64(off, -1)
	}
	if !ok {
		return 0, ErrOffsetRange
	}
	return off, nil
}

// addInt64 returns a+b and whether the sum did not overflow.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	return s, (s > a) == (b > 0)
}

// Region is an inclusive, 1-based range of sequence positions.
type Region struct {
	Start, Stop int64
}

// NewRegion builds a Region from two coordinates given in either order.
func NewRegion(a, b int64) Region {
	if a > b {
		a, b = b, a
	}
	return Region{Start: a, Stop: b}
}

// Span returns the byte offsets of r's first and last positions. A
// coordinate past the addressable range is reported as a *SeekError carrying
// the saturated offset, stop checked before start.
func (l Layout) Span(r Region) (from, to int64, err error) {
	if to, err = l.Offset(r.Stop); err != nil {
		return 0, 0, &SeekError{Offset: saturate(r.Stop), Err: err}
	}
	if from, err = l.Offset(r.Start); err != nil {
		return 0, 0, &SeekError{Offset: saturate(r.Start), Err: err}
	}
	if to < from {
		return 0, 0, &SeekError{Offset: to, Err: ErrOffsetRange}
	}
	return from, to, nil
}

func saturate(pos int64) int64 {
	if pos < 0 {
		return math.MinInt64
	}
	return math.MaxInt64
}
