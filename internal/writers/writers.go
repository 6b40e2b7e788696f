// internal/writers/writers.go
//
// Package writers owns the single output goroutine of the pipeline: every
// Start* factory returns a send channel and an error channel, writes each
// record it receives in arrival order, and reports the first failure (or
// nil) on the error channel after the send channel is closed and the
// underlying stream is finalized.
package writers

import (
	"fmt"
	"io"

	"github.com/biogo/hts/sam"
)

// Start dispatches on format ("bam" | "fastq") and spins up the matching
// writer goroutine.
func Start(format string, out io.Writer, h *sam.Header, bufSize int) (chan<- *sam.Record, <-chan error) {
	switch format {
	case "bam":
		return StartBAM(out, h, bufSize)
	case "fastq":
		return StartFASTQ(out, bufSize)
	default:
		in := make(chan *sam.Record)
		errCh := make(chan error, 1)
		go func() {
			for range in {
			}
			errCh <- fmt.Errorf("unsupported output format %q", format)
		}()
		return in, errCh
	}
}

// start is the shared writer loop: one goroutine, one record at a time,
// first error wins and later records are drained unwritten.
func start(bufSize int, write func(*sam.Record) error, finish func() error) (chan<- *sam.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan *sam.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		for rec := range in {
			if err != nil {
				continue
			}
			err = write(rec)
		}
		if ferr := finish(); ferr != nil && err == nil {
			err = ferr
		}
		errCh <- err
	}()

	return in, errCh
}
