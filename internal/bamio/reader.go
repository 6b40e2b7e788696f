// internal/bamio/reader.go
package bamio

import (
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// Reader streams records from a BAM file or stdin ("-"). No index is
// required; records are read in file order.
type Reader struct {
	f  *os.File
	br *bam.Reader
}

// Open opens path for reading. path "-" reads from stdin.
func Open(path string) (*Reader, error) {
	if path == "-" {
		br, err := bam.NewReader(os.Stdin, 1)
		if err != nil {
			return nil, err
		}
		return &Reader{br: br}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br, err := bam.NewReader(f, 1)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Reader{f: f, br: br}, nil
}

// Header returns the input BAM header.
func (r *Reader) Header() *sam.Header { return r.br.Header() }

// Read returns the next record, or io.EOF after the last one.
func (r *Reader) Read() (*sam.Record, error) { return r.br.Read() }

func (r *Reader) Close() error {
	err := r.br.Close()
	if r.f != nil {
		if cerr := r.f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err == io.EOF {
		return nil
	}
	return err
}
