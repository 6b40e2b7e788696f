// internal/writers/bam.go
package writers

import (
	"io"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// StartBAM streams records into a BAM with the given header. BGZF
// compression is handled by the BAM writer itself.
func StartBAM(out io.Writer, h *sam.Header, bufSize int) (chan<- *sam.Record, <-chan error) {
	bw, err := bam.NewWriter(out, h, 1)
	if err != nil {
		in := make(chan *sam.Record)
		errCh := make(chan error, 1)
		go func() {
			for range in {
			}
			errCh <- err
		}()
		return in, errCh
	}
	return start(bufSize, bw.Write, bw.Close)
}
