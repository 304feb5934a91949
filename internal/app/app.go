// internal/app/app.go
package app

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"subseq/internal/cmdutil"
	"subseq/internal/config"
	"subseq/internal/fasta"
	"subseq/internal/version"
	"subseq/internal/writers"
)

const name = "subseq"

// Exit statuses.
const (
	exitOK          = 0
	exitFailure     = 1 // usage, format, seek, config
	exitIO          = 2 // opening or reading the FASTA file
	exitWrite       = 3 // writing stdout, other than a closed pipe
	exitInterrupted = 130
)

// usageError is returned for a wrong argument count or an unparsable flag.
type usageError struct{ detail string }

func (e *usageError) Error() string {
	if e.detail == "" {
		return "usage error"
	}
	return e.detail
}

type runner struct {
	prog   string
	stdout io.Writer
	stderr io.Writer
	rep    *cmdutil.Reporter
}

// RunProgram runs the command as invoked under prog, with argv (program name
// excluded), and returns the process exit status. prog appears in the usage
// and version lines.
func RunProgram(parent context.Context, prog string, argv []string, stdout, stderr io.Writer) int {
	outw := writers.NewOutput(stdout)
	r := &runner{prog: prog, stdout: outw, stderr: stderr}

	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}
	cmd := r.command()
	cmd.SetArgs(argv)
	cmd.SetOut(outw)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	if ferr := outw.Flush(); ferr != nil && err == nil {
		err = &fasta.OutputError{Err: ferr}
	}
	return r.exit(err)
}

// RunContext is RunProgram under the default program name.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunProgram(parent, name, argv, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func (r *runner) command() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   r.prog + " [flags] <fasta_file> <start> <stop>",
		Short: "Extract a subsequence from a single-entry FASTA file",
		Long: `Extract bases start..stop (1-based, inclusive) from a single-entry FASTA file
by seeking straight to them. Sequence lines must all share the width of the
first one, except the last. Reversed coordinates are swapped.

Flags must come before the file name; anything after it is positional, so
negative coordinates need no escaping.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 3 {
				return &usageError{}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.New(), cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}
			r.rep = cmdutil.NewReporter(r.stderr, cfg.Quiet, cmdutil.ColorEnabled(r.stderr, cfg.NoColor))
			return r.extract(cmd.Context(), cfg, args)
		},
	}
	cmd.SetVersionTemplate(r.prog + " version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{detail: err.Error()}
	})

	fs := cmd.Flags()
	fs.SetInterspersed(false)
	fs.StringVar(&cfgFile, "config", "", "read settings from a YAML, TOML or JSON file")
	config.RegisterFlags(fs)
	return cmd
}

func (r *runner) extract(ctx context.Context, cfg config.Config, args []string) error {
	path := args[0]
	region := fasta.NewRegion(parseCoord(args[1]), parseCoord(args[2]))

	src, err := fasta.Open(path, fasta.OpenOptions{Mmap: cfg.Mmap})
	if err != nil {
		return err
	}
	defer src.Close()

	ex, err := fasta.NewExtractor(path, src)
	if err != nil {
		return err
	}
	res, err := ex.Extract(ctx, r.stdout, region)
	if err != nil {
		return err
	}
	if res.Truncated {
		r.rep.Warnf("%d is past the end of the sequence", region.Stop)
	}
	return nil
}

// exit reports err on stderr and maps it to an exit status.
func (r *runner) exit(err error) int {
	if err == nil {
		return exitOK
	}
	rep := r.rep
	if rep == nil {
		rep = cmdutil.NewReporter(r.stderr, false, cmdutil.ColorEnabled(r.stderr, false))
	}

	var (
		ue  *usageError
		oe  *fasta.OutputError
		ioe *fasta.IOError
	)
	switch {
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.As(err, &ue):
		if ue.detail != "" {
			rep.Errorf("%s", ue.detail)
		}
		rep.Plainf("Usage: %s fasta_file start stop", r.prog)
		return exitFailure
	case errors.Is(err, writers.ErrReaderGone):
		return exitOK
	case errors.As(err, &oe):
		rep.Errorf("%v", err)
		return exitWrite
	case errors.As(err, &ioe):
		rep.Errorf("%v", err)
		return exitIO
	default:
		rep.Errorf("%v", err)
		return exitFailure
	}
}
