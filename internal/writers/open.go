// internal/writers/open.go
package writers

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// multiWriteCloser closes its closers in order when Close is called.
type multiWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (m *multiWriteCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// IsGzipPath reports whether path asks for gzip-compressed output.
func IsGzipPath(path string) bool { return strings.HasSuffix(path, ".gz") }

// OpenOutput creates the output stream for path ("-" = stdout). When gz
// is true the stream is wrapped in parallel gzip; BAM output never sets
// gz since BGZF is applied by the BAM writer.
func OpenOutput(path string, gz bool) (io.WriteCloser, error) {
	var (
		w       io.Writer
		closers []io.Closer
	)
	if path == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		w = f
		closers = append(closers, f)
	}
	if gz {
		zw := pgzip.NewWriter(w)
		w = zw
		closers = append([]io.Closer{zw}, closers...)
	}
	return &multiWriteCloser{Writer: w, closers: closers}, nil
}
