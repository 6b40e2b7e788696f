// core/segment/segment.go
package segment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Segment is one labeled sub-range of a read's sequence, 0-based inclusive
// on both ends. Segments arrive pre-computed on the read as an annotation
// tag; this package only encodes and decodes them.
type Segment struct {
	Name  string
	Start int
	End   int
}

// ErrMalformed wraps all annotation decode failures.
var ErrMalformed = errors.New("malformed segment annotation")

// Token renders a segment in annotation form: "name:start-end".
func (s Segment) Token() string {
	return s.Name + ":" + strconv.Itoa(s.Start) + "-" + strconv.Itoa(s.End)
}

func (s Segment) String() string { return s.Token() }

// ParseToken decodes a single "name:start-end" token.
func ParseToken(tok string) (Segment, error) {
	name, span, ok := strings.Cut(tok, ":")
	if !ok || name == "" {
		return Segment{}, fmt.Errorf("%w: token %q", ErrMalformed, tok)
	}
	a, b, ok := strings.Cut(span, "-")
	if !ok {
		return Segment{}, fmt.Errorf("%w: token %q", ErrMalformed, tok)
	}
	start, err := strconv.Atoi(a)
	if err != nil {
		return Segment{}, fmt.Errorf("%w: start in token %q", ErrMalformed, tok)
	}
	end, err := strconv.Atoi(b)
	if err != nil {
		return Segment{}, fmt.Errorf("%w: end in token %q", ErrMalformed, tok)
	}
	if start < 0 || end < start {
		return Segment{}, fmt.Errorf("%w: span in token %q", ErrMalformed, tok)
	}
	return Segment{Name: name, Start: start, End: end}, nil
}

// ParseAnnotation decodes a full pipe-separated annotation string into the
// ordered segment list.
func ParseAnnotation(s string) ([]Segment, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty annotation", ErrMalformed)
	}
	toks := strings.Split(s, "|")
	segs := make([]Segment, 0, len(toks))
	for _, tok := range toks {
		seg, err := ParseToken(tok)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// Annotation renders a segment list back into annotation form. It is the
// inverse of ParseAnnotation for well-formed input.
func Annotation(segs []Segment) string {
	toks := make([]string, len(segs))
	for i, s := range segs {
		toks[i] = s.Token()
	}
	return strings.Join(toks, "|")
}
