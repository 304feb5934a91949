package fasta

import (
	"bufio"
	"errors"
)

// MaxLine bounds every line read while probing the file layout. A line,
// terminator included, must be shorter than MaxLine bytes.
const MaxLine = 1023

var errLineBound = errors.New("line exceeds read bound")

// readLine reads up to and including the next '\n', but never more than
// limit-1 bytes. It returns errLineBound if no terminator was found within
// the bound, or the reader's error (io.EOF included) together with whatever
// was read before it. It never reads past the bound to find the real end.
func readLine(br *bufio.Reader, limit int) ([]byte, error) {
	line := make([]byte, 0, 128)
	for len(line) < limit-1 {
		c, err := br.ReadByte()
		if err != nil {
			return line, err
		}
		line = append(line, c)
		if c == '\n' {
			return line, nil
		}
	}
	return line, errLineBound
}
