// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"arrseg/internal/version"
)

// Output formats.
const (
	FormatBAM   = "bam"
	FormatFASTQ = "fastq"
)

// Options holds all CLI flags and arguments.
type Options struct {
	InputBAM string // positional; "-" = stdin
	Output   string // -o, required

	Threads int // 0 = auto (NumCPU-1)

	SimpleSplitting bool // boundary-only delimiter matching
	KeepDelimiters  bool // retain delimiter bases in emitted elements

	ModelFile string // optional JSON array element structure
	Format    string // bam | fastq

	Quiet      bool
	NoProgress bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: split segment-annotated array reads into array elements

Version: %s

Usage: %s [options] <input.bam | ->
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Output, "o", "", "output path for split array elements [*]")
	fs.StringVar(&opt.Output, "output", "", "output path for split array elements [*]")

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = CPUs-1) [0]")

	fs.BoolVar(&opt.SimpleSplitting, "simple", false, "split on delimiter windows only, not the whole array structure [false]")
	fs.BoolVar(&opt.KeepDelimiters, "keep-delimiters", false, "keep delimiter bases in the emitted elements [false]")

	fs.StringVar(&opt.ModelFile, "model", "", "JSON array element structure (default: built-in MAS-seq 15-element model)")
	fs.StringVar(&opt.Format, "format", FormatBAM, "output format: bam | fastq [bam]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress banner and totals on stderr [false]")
	fs.BoolVar(&opt.NoProgress, "no-progress", false, "disable the progress counter [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		if fs.Usage != nil {
			fs.Usage()
		}
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	switch fs.NArg() {
	case 0:
		return opt, errors.New("an input BAM is required ('-' for stdin)")
	case 1:
		opt.InputBAM = fs.Arg(0)
	default:
		return opt, fmt.Errorf("expected one input BAM, got %d arguments", fs.NArg())
	}
	if opt.Output == "" {
		return opt, errors.New("-o/--output is required")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Format != FormatBAM && opt.Format != FormatFASTQ {
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	return opt, nil
}
