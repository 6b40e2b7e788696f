// internal/pipeline/pipeline.go
//
// Package pipeline streams BAM records through a pool of segment-decoding
// workers and hands each (read, segments) pair to a single collector
// callback. The caller's visit function is the only consumer, which is
// what keeps the output stream single-writer without locks.
package pipeline

import (
	"context"
	"io"
	"sync"

	"github.com/biogo/hts/sam"
	"golang.org/x/sync/errgroup"

	"arrseg-core/segment"
	"arrseg/internal/bamio"
)

// Config controls the splitting pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// RecordSource is the minimal capability the pipeline needs from the
// input stream: sequential records, io.EOF at the end. *bamio.Reader
// satisfies it; fakes do in tests.
type RecordSource interface {
	Read() (*sam.Record, error)
}

// Result pairs a read with its decoded segment list. The segment list is
// owned by the result; nothing is shared across reads.
type Result struct {
	Rec  *sam.Record
	Segs []segment.Segment
}

// ForEachRead feeds records from src to cfg.Threads workers over a
// bounded queue (capacity = worker count, providing producer
// backpressure), decodes each read's segment annotation in the workers,
// and delivers results to visit on one collector goroutine. Shutdown is
// two-phase: the jobs channel closes when input is exhausted, the results
// channel closes when every worker has exited. Any error — read failure,
// missing/malformed annotation, or a visit error — cancels the whole run;
// there is no partial-result salvage. Returns the number of reads
// delivered to visit.
func ForEachRead(ctx context.Context, cfg Config, src RecordSource, visit func(Result) error) (int, error) {
	threads := cfg.Threads
	if threads < 1 {
		threads = 1
	}

	g, ctx := errgroup.WithContext(ctx)

	jobs := make(chan *sam.Record, threads)
	results := make(chan Result, threads*4)

	// Producer
	g.Go(func() error {
		defer close(jobs)
		for {
			rec, err := src.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case jobs <- rec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	// Workers: stateless, one read at a time.
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		g.Go(func() error {
			defer wg.Done()
			for rec := range jobs {
				segs, err := bamio.Segments(rec)
				if err != nil {
					return err
				}
				select {
				case results <- Result{Rec: rec, Segs: segs}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector
	var n int
	g.Go(func() error {
		for r := range results {
			if err := visit(r); err != nil {
				return err
			}
			n++
		}
		return nil
	})

	err := g.Wait()
	return n, err
}
