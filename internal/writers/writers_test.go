package writers

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"arrseg/internal/bamio"
)

func rec(name, seq string, q byte) *sam.Record {
	qual := make([]byte, len(seq))
	for i := range qual {
		qual[i] = q
	}
	return bamio.NewUnmappedRecord(name, []byte(seq), qual, nil)
}

func TestStartFASTQ(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartFASTQ(&buf, 4)
	in <- rec("el1", "ACGT", 30)
	in <- rec("el2", "GG", 40)
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	got := buf.String()
	exp := "@el1\nACGT\n+\n????\n@el2\nGG\n+\nII\n"
	if got != exp {
		t.Fatalf("fastq output:\n%q\nwant\n%q", got, exp)
	}
}

func TestStartFASTQMissingQualities(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartFASTQ(&buf, 1)
	in <- bamio.NewUnmappedRecord("r", []byte("AC"), nil, nil)
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	if got := buf.String(); got != "@r\nAC\n+\n!!\n" {
		t.Fatalf("fastq output: %q", got)
	}
}

func TestStartBAMRoundTrip(t *testing.T) {
	h, err := sam.NewHeader(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	in, errCh := StartBAM(&buf, h, 2)
	in <- rec("a", "ACGT", 30)
	in <- rec("b", "TTTT", 30)
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer err: %v", err)
	}

	br, err := bam.NewReader(bytes.NewReader(buf.Bytes()), 1)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	var names []string
	for {
		r, err := br.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		names = append(names, r.Name)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("records out of order or missing: %v", names)
	}
}

func TestStartUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := Start("sam", &buf, nil, 1)
	close(in)
	if err := <-errCh; err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestOpenOutputGzip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.fastq.gz")
	if !IsGzipPath(fn) {
		t.Fatal("IsGzipPath")
	}
	w, err := OpenOutput(fn, true)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := w.Write([]byte("@r\nAC\n+\n!!\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	f, err := os.Open(fn)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("not gzip: %v", err)
	}
	data, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "@r\nAC\n+\n!!\n" {
		t.Fatalf("payload = %q", data)
	}
}
