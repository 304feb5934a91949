package fasta

import (
	"context"
	"io"
)

const chunkSize = 64 * 1024

// Result summarizes one extraction.
type Result struct {
	Written   int64 // sequence bytes written, trailing newline excluded
	Truncated bool  // a '>' or EOF was hit before the requested stop
}

// Extractor pulls regions out of one open FASTA source.
type Extractor struct {
	path   string
	src    io.ReadSeeker
	layout Layout
}

// NewExtractor reads the layout of src, which must be positioned at offset 0.
func NewExtractor(path string, src io.ReadSeeker) (*Extractor, error) {
	l, err := ReadLayout(path, src)
	if err != nil {
		return nil, err
	}
	return &Extractor{path: path, src: src, layout: l}, nil
}

// Extract writes the bases of r to w followed by a single '\n'.
//
// The stop offset is seeked first so an unreachable range fails before any
// output. Line terminators inside the range are dropped. Reaching a '>' or
// EOF before the computed end, or running out of bases before r.Stop, is not
// an error: the bases read so far are written and Result.Truncated is set.
func (e *Extractor) Extract(ctx context.Context, w io.Writer, r Region) (Result, error) {
	r = NewRegion(r.Start, r.Stop)
	from, to, err := e.layout.Span(r)
	if err != nil {
		return Result{}, err
	}

	if _, err := e.src.Seek(to, io.SeekStart); err != nil {
		return Result{}, &SeekError{Offset: to, Err: err}
	}
	if _, err := e.src.Seek(from, io.SeekStart); err != nil {
		return Result{}, &SeekError{Offset: from, Err: err}
	}

	var (
		res       Result
		remaining = to - from + 1
		in        = make([]byte, min(remaining, chunkSize))
		out       = make([]byte, 0, len(in))
	)
	for remaining > 0 && !res.Truncated {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		n, rerr := io.ReadFull(e.src, in[:min(remaining, int64(len(in)))])
		remaining -= int64(n)

		out = out[:0]
		for _, c := range in[:n] {
			if c == '\n' {
				continue
			}
			if c == '>' {
				res.Truncated = true
				break
			}
			out = append(out, c)
		}
		if len(out) > 0 {
			if _, err := w.Write(out); err != nil {
				return res, &OutputError{Err: err}
			}
			res.Written += int64(len(out))
		}

		switch rerr {
		case nil:
		case io.EOF, io.ErrUnexpectedEOF:
			res.Truncated = true
		default:
			return res, ioError("read", e.path, rerr)
		}
	}
	// A short last line can leave 'to' on its terminator, which ends the loop
	// cleanly even though fewer bases exist than were asked for.
	if !res.Truncated && r.Start >= 1 && res.Written < r.Stop-r.Start+1 {
		res.Truncated = true
	}

	if _, err := w.Write([]byte{'\n'}); err != nil {
		return res, &OutputError{Err: err}
	}
	return res, nil
}
