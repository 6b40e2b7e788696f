// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"arrseg-core/model"
	"arrseg-core/splitter"
	"arrseg/internal/bamio"
	"arrseg/internal/cli"
	"arrseg/internal/output"
	"arrseg/internal/pipeline"
	"arrseg/internal/runutil"
	"arrseg/internal/version"
	"arrseg/internal/writers"
)

// Counter-only template: the input BAM is streamed without an index, so
// the total read count is unknown up front.
var progressTemplate pb.ProgressBarTemplate = `{{counters . }} reads {{speed . }}`

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("arrseg")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "arrseg version %s\n", version.Version)
		return 0
	}

	structure := model.Default()
	if opts.ModelFile != "" {
		structure, err = model.Load(opts.ModelFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	threads := runutil.EffectiveThreads(opts.Threads)
	mode := "bounded-region"
	if opts.SimpleSplitting {
		mode = "simple"
	}
	if !opts.Quiet {
		fmt.Fprintf(stderr, "arrseg %s: %s splitting with %d worker(s)\n", version.Version, mode, threads)
	}

	in, err := bamio.Open(opts.InputBAM)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer in.Close()

	hdr, err := bamio.OutputHeader(in.Header(), "arrseg "+strings.Join(argv, " "))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	var out io.WriteCloser
	if opts.Output == "-" {
		out = nopWriteCloser{stdout}
	} else {
		gz := opts.Format == cli.FormatFASTQ && writers.IsGzipPath(opts.Output)
		out, err = writers.OpenOutput(opts.Output, gz)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var bar *pb.ProgressBar
	if !opts.Quiet && !opts.NoProgress {
		bar = progressTemplate.Start64(0)
		bar.SetWriter(stderr)
	}

	windows := structure.DelimiterWindows()
	wIn, wErr := writers.Start(opts.Format, out, hdr, threads*4)

	var elements int
	reads, perr := pipeline.ForEachRead(ctx, pipeline.Config{Threads: threads}, in, func(r pipeline.Result) error {
		seq := r.Rec.Seq.Expand()

		var els []splitter.Element
		if opts.SimpleSplitting {
			els, _ = splitter.SplitSimple(r.Segs, windows, len(seq), opts.KeepDelimiters)
		} else {
			els, _ = splitter.SplitBounded(r.Segs, structure, opts.KeepDelimiters)
		}
		for _, el := range els {
			rec, err := output.ElementRecord(r.Rec, seq, r.Segs, el)
			if err != nil {
				return err
			}
			wIn <- rec
			elements++
		}
		if bar != nil {
			bar.Increment()
		}
		return nil
	})

	close(wIn)
	werr := <-wErr
	if cerr := out.Close(); cerr != nil && werr == nil {
		werr = cerr
	}
	if bar != nil {
		bar.Finish()
	}

	if writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}

	if !opts.Quiet {
		fmt.Fprintf(stderr, "arrseg: segmented %d reads into %d array elements\n", reads, elements)
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
