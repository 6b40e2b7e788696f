package bamio

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"arrseg-core/segment"
)

func mustAux(t *testing.T, tag sam.Tag, value interface{}) sam.Aux {
	t.Helper()
	a, err := sam.NewAux(tag, value)
	if err != nil {
		t.Fatalf("aux: %v", err)
	}
	return a
}

func writeTestBAM(t *testing.T, path string, recs ...*sam.Record) {
	t.Helper()
	h, err := sam.NewHeader(nil, nil)
	if err != nil {
		t.Fatalf("header: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	w, err := bam.NewWriter(f, h, 1)
	if err != nil {
		t.Fatalf("bam writer: %v", err)
	}
	for _, r := range recs {
		if err := w.Write(r); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
}

func TestOpenReadRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "in.bam")
	rec := NewUnmappedRecord("read1", []byte("ACGTACGT"), bytes.Repeat([]byte{30}, 8),
		[]sam.Aux{mustAux(t, SegmentsTag, "A:0-3|B:4-7")})
	writeTestBAM(t, fn, rec)

	r, err := Open(fn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	got, err := r.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Name != "read1" {
		t.Errorf("name = %q", got.Name)
	}
	if string(got.Seq.Expand()) != "ACGTACGT" {
		t.Errorf("seq = %q", got.Seq.Expand())
	}
	if _, err := r.Read(); err != io.EOF {
		t.Fatalf("want io.EOF, got %v", err)
	}
}

func TestSegmentsDecode(t *testing.T) {
	rec := NewUnmappedRecord("r", []byte("ACGT"), []byte{30, 30, 30, 30},
		[]sam.Aux{mustAux(t, SegmentsTag, "A:0-1|B:2-3")})
	segs, err := Segments(rec)
	if err != nil {
		t.Fatalf("segments: %v", err)
	}
	if len(segs) != 2 || segs[1] != (segment.Segment{Name: "B", Start: 2, End: 3}) {
		t.Fatalf("bad decode: %+v", segs)
	}
}

func TestSegmentsMissingTagIsTypedError(t *testing.T) {
	rec := NewUnmappedRecord("r", []byte("ACGT"), []byte{30, 30, 30, 30}, nil)
	if _, err := Segments(rec); !errors.Is(err, ErrNoSegments) {
		t.Fatalf("want ErrNoSegments, got %v", err)
	}
}

func TestSegmentsMalformedTag(t *testing.T) {
	rec := NewUnmappedRecord("r", []byte("ACGT"), []byte{30, 30, 30, 30},
		[]sam.Aux{mustAux(t, SegmentsTag, "not-a-segment")})
	if _, err := Segments(rec); !errors.Is(err, segment.ErrMalformed) {
		t.Fatalf("want segment.ErrMalformed, got %v", err)
	}
}

func TestSetSegmentsReplaces(t *testing.T) {
	rec := NewUnmappedRecord("r", []byte("ACGT"), []byte{30, 30, 30, 30},
		[]sam.Aux{mustAux(t, sam.NewTag("RG"), "grp"), mustAux(t, SegmentsTag, "A:0-1")})
	want := []segment.Segment{{Name: "C", Start: 0, End: 3}}
	if err := SetSegments(rec, want); err != nil {
		t.Fatalf("set: %v", err)
	}
	if len(rec.AuxFields) != 2 {
		t.Fatalf("tag count changed: %d", len(rec.AuxFields))
	}
	got, err := Segments(rec)
	if err != nil {
		t.Fatalf("segments: %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("bad round trip: %+v", got)
	}
}

func TestOutputHeaderAddsProgram(t *testing.T) {
	h, err := sam.NewHeader(nil, nil)
	if err != nil {
		t.Fatalf("header: %v", err)
	}
	out, err := OutputHeader(h, "arrseg -o out.bam in.bam")
	if err != nil {
		t.Fatalf("output header: %v", err)
	}
	if len(out.Progs()) != len(h.Progs())+1 {
		t.Fatalf("program line not added: %d vs %d", len(out.Progs()), len(h.Progs()))
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.bam")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
