package fasta

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wrap lays seq out as a single-record FASTA file with lines of width w.
func wrap(header, seq string, w int) string {
	var b strings.Builder
	b.WriteString(header + "\n")
	for len(seq) > 0 {
		n := min(w, len(seq))
		b.WriteString(seq[:n] + "\n")
		seq = seq[n:]
	}
	return b.String()
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func extract(t *testing.T, data string, a, b int64) (string, Result, error) {
	t.Helper()
	ex, err := NewExtractor("in.fa", bytes.NewReader([]byte(data)))
	require.NoError(t, err)
	var out bytes.Buffer
	res, err := ex.Extract(context.Background(), &out, NewRegion(a, b))
	return out.String(), res, err
}

func TestExtractCrossesLineBoundary(t *testing.T) {
	data := ">seq1\nACGTACGTAC\nACGTACGTAC\nACGTACGTAC\n"
	got, res, err := extract(t, data, 5, 14)
	require.NoError(t, err)
	assert.Equal(t, "ACGTACACGT\n", got)
	assert.Equal(t, Result{Written: 10}, res)
}

func TestExtractEveryRange(t *testing.T) {
	const seq = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcd"
	for _, w := range []int{1, 7, 10, 30, 64} {
		data := wrap(">s", seq, w)
		for s := 1; s <= len(seq); s++ {
			for e := s; e <= len(seq); e++ {
				want := seq[s-1:e] + "\n"
				got, res, err := extract(t, data, int64(s), int64(e))
				require.NoError(t, err)
				require.Equal(t, want, got, "width %d range %d-%d", w, s, e)
				require.False(t, res.Truncated, "width %d range %d-%d", w, s, e)

				rev, _, err := extract(t, data, int64(e), int64(s))
				require.NoError(t, err)
				require.Equal(t, got, rev, "width %d reversed %d-%d", w, e, s)
			}
		}
	}
}

func TestExtractFullSequence(t *testing.T) {
	seq := strings.Repeat("ACGTN", 41)
	got, res, err := extract(t, wrap(">chr1 test", seq, 60), 1, int64(len(seq)))
	require.NoError(t, err)
	assert.Equal(t, seq+"\n", got)
	assert.Equal(t, int64(len(seq)), res.Written)
	assert.False(t, res.Truncated)
}

func TestExtractPastEnd(t *testing.T) {
	const seq = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcd"
	for _, w := range []int{7, 10} {
		data := wrap(">s", seq, w)
		for _, stop := range []int64{31, 35, 1000} {
			got, res, err := extract(t, data, 25, stop)
			require.NoError(t, err)
			assert.Equal(t, "YZabcd\n", got, "width %d stop %d", w, stop)
			assert.True(t, res.Truncated, "width %d stop %d", w, stop)
		}
	}
}

func TestExtractStopsAtNextRecord(t *testing.T) {
	data := ">one\nACGTAC\nGG\n>two\nTTTTTT\n"
	got, res, err := extract(t, data, 5, 12)
	require.NoError(t, err)
	assert.Equal(t, "ACGG\n", got)
	assert.True(t, res.Truncated)
}

func TestExtractNegativeOffsetIsSeekError(t *testing.T) {
	data := ">s\nACGT\n"
	got, _, err := extract(t, data, -10, 2)
	var se *SeekError
	require.ErrorAs(t, err, &se)
	assert.Negative(t, se.Offset)
	assert.Empty(t, got)
}

func TestExtractBothNegativeChecksStopFirst(t *testing.T) {
	data := ">s\nACGT\n"
	_, _, err := extract(t, data, -20, -10)
	var se *SeekError
	require.ErrorAs(t, err, &se)
	want, err := Layout{Beginning: 3, LineWidth: 4}.Offset(-10)
	require.NoError(t, err)
	assert.Equal(t, want, se.Offset)
}

func TestExtractHugeStopIsSeekError(t *testing.T) {
	for _, data := range []string{">seq1\nA\nC\nG\nT\n", ">s\nA\nC\nG\nT\n", ">s\nACGTACGT\nAC\n"} {
		got, res, err := extract(t, data, 1, math.MaxInt64)
		var se *SeekError
		require.ErrorAs(t, err, &se, "data %q", data)
		assert.ErrorIs(t, err, ErrOffsetRange)
		assert.Empty(t, got)
		assert.Zero(t, res)
	}
}

func TestExtractZeroStart(t *testing.T) {
	// Position 0 maps onto the header terminator, which is skipped.
	got, res, err := extract(t, ">s\nACGT\n", 0, 3)
	require.NoError(t, err)
	assert.Equal(t, "ACG\n", got)
	assert.False(t, res.Truncated)
}

func TestExtractHonoursCancel(t *testing.T) {
	ex, err := NewExtractor("in.fa", strings.NewReader(">s\nACGT\n"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	_, err = ex.Extract(ctx, &out, NewRegion(1, 4))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, out.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestExtractWriteFailure(t *testing.T) {
	ex, err := NewExtractor("in.fa", strings.NewReader(">s\nACGT\n"))
	require.NoError(t, err)
	_, err = ex.Extract(context.Background(), failingWriter{}, NewRegion(1, 4))
	var oe *OutputError
	require.ErrorAs(t, err, &oe)
	assert.Contains(t, err.Error(), "disk full")
}

func TestExtractLargeRangeSpansChunks(t *testing.T) {
	seq := strings.Repeat("ACGTTGCA", 30000) // 240 kb, several read chunks
	data := wrap(">big", seq, 80)
	got, res, err := extract(t, data, 12345, 200000)
	require.NoError(t, err)
	assert.Equal(t, seq[12344:200000]+"\n", got)
	assert.Equal(t, int64(200000-12345+1), res.Written)
}

func TestExtractFromFileBackends(t *testing.T) {
	seq := strings.Repeat("GATTACA", 500)
	path := writeFile(t, "g.fa", wrap(">g", seq, 61))
	for _, mm := range []bool{false, true} {
		src, err := Open(path, OpenOptions{Mmap: mm})
		require.NoError(t, err)
		ex, err := NewExtractor(path, src)
		require.NoError(t, err)
		var out bytes.Buffer
		_, err = ex.Extract(context.Background(), &out, NewRegion(3000, 100))
		require.NoError(t, err)
		require.NoError(t, src.Close())
		assert.Equal(t, seq[99:3000]+"\n", out.String(), "mmap=%v", mm)
	}
}
