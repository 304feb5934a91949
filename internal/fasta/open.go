// internal/fasta/open.go
package fasta

import (
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/exp/mmap"
)

// OpenOptions selects how the input file is backed.
type OpenOptions struct {
	// Mmap maps the file into memory instead of reading through the file descriptor.
	Mmap bool
}

// mmapSource adapts an mmapped file to io.ReadSeekCloser.
type mmapSource struct {
	*io.SectionReader
	ra *mmap.ReaderAt
}

func (m *mmapSource) Close() error { return m.ra.Close() }

// Open returns a seekable handle on path. Gzip input is rejected up front
// (by magic number 1F 8B or by .gz suffix) since byte offsets into a
// compressed stream do not address sequence positions.
func Open(path string, opt OpenOptions) (io.ReadSeekCloser, error) {
	var (
		src io.ReadSeekCloser
		err error
	)
	if opt.Mmap {
		src, err = openMmap(path)
	} else {
		src, err = os.Open(path)
	}
	if err != nil {
		return nil, ioError("open", path, err)
	}

	var sig [2]byte
	n, _ := io.ReadFull(src, sig[:])
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		_ = src.Close()
		return nil, ioError("seek", path, err)
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		_ = src.Close()
		return nil, &FormatError{Path: path, Err: ErrCompressed}
	}
	return src, nil
}

func openMmap(path string) (io.ReadSeekCloser, error) {
	ra, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	return &mmapSource{SectionReader: io.NewSectionReader(ra, 0, int64(ra.Len())), ra: ra}, nil
}

// ioError strips a *fs.PathError so the message names the file only once.
func ioError(op, path string, err error) *IOError {
	if pe, ok := err.(*fs.PathError); ok {
		err = pe.Err
	}
	return &IOError{Op: op, Path: path, Err: err}
}
