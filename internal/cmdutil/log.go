// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Reporter writes human diagnostics to the error stream.
type Reporter struct {
	dst   io.Writer
	quiet bool
	warn  *color.Color
	fail  *color.Color
}

// NewReporter returns a Reporter writing to dst. Warnings are dropped when
// quiet is set; errors never are.
func NewReporter(dst io.Writer, quiet, colored bool) *Reporter {
	r := &Reporter{
		dst:   dst,
		quiet: quiet,
		warn:  color.New(color.FgYellow, color.Bold),
		fail:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{r.warn, r.fail} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *Reporter) Warnf(format string, a ...any) {
	if r.quiet {
		return
	}
	_, _ = r.warn.Fprint(r.dst, "WARNING:")
	_, _ = fmt.Fprintf(r.dst, " "+format+"\n", a...)
}

func (r *Reporter) Errorf(format string, a ...any) {
	_, _ = r.fail.Fprint(r.dst, "ERROR:")
	_, _ = fmt.Fprintf(r.dst, " "+format+"\n", a...)
}

// Plainf writes a message with no prefix, e.g. usage lines.
func (r *Reporter) Plainf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.dst, format+"\n", a...)
}

// ColorEnabled reports whether diagnostics to w should be coloured: only when
// w is a terminal and neither the caller nor NO_COLOR disabled it.
func ColorEnabled(w io.Writer, disabled bool) bool {
	if disabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
