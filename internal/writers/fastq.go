// internal/writers/fastq.go
package writers

import (
	"bufio"
	"fmt"
	"io"

	"github.com/biogo/hts/sam"
)

const missingQual = 0xff

// StartFASTQ streams records as 4-line FASTQ with Phred+33 qualities.
// Records without base qualities get '!' placeholders.
func StartFASTQ(out io.Writer, bufSize int) (chan<- *sam.Record, <-chan error) {
	bw := bufio.NewWriter(out)
	return start(bufSize,
		func(rec *sam.Record) error {
			seq := rec.Seq.Expand()
			_, err := fmt.Fprintf(bw, "@%s\n%s\n+\n%s\n", rec.Name, seq, qualString(rec.Qual, len(seq)))
			return err
		},
		bw.Flush,
	)
}

func qualString(qual []byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		q := byte(missingQual)
		if i < len(qual) {
			q = qual[i]
		}
		switch {
		case q == missingQual:
			out[i] = '!'
		case q > 93:
			out[i] = '~'
		default:
			out[i] = q + 33
		}
	}
	return out
}
