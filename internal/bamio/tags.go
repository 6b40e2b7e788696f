// internal/bamio/tags.go
package bamio

import (
	"errors"
	"fmt"

	"github.com/biogo/hts/sam"

	"arrseg-core/segment"
)

// SegmentsTag is the aux tag carrying a read's per-segment annotation:
// pipe-separated "label:start-end" tokens.
var SegmentsTag = sam.NewTag("SG")

// ErrNoSegments reports a read that reached the splitter without a
// segment annotation. Upstream annotation is a precondition; this is not
// recoverable.
var ErrNoSegments = errors.New("bamio: read has no segment annotation")

// Segments decodes the ordered segment list from a record's SG tag.
func Segments(rec *sam.Record) ([]segment.Segment, error) {
	aux := rec.AuxFields.Get(SegmentsTag)
	if aux == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSegments, rec.Name)
	}
	s, ok := aux.Value().(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s: SG tag is not a string", ErrNoSegments, rec.Name)
	}
	segs, err := segment.ParseAnnotation(s)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rec.Name, err)
	}
	return segs, nil
}

// SetSegments replaces (or adds) the record's SG tag with the annotation
// for segs.
func SetSegments(rec *sam.Record, segs []segment.Segment) error {
	aux, err := sam.NewAux(SegmentsTag, segment.Annotation(segs))
	if err != nil {
		return err
	}
	for i, a := range rec.AuxFields {
		if a.Tag() == SegmentsTag {
			rec.AuxFields[i] = aux
			return nil
		}
	}
	rec.AuxFields = append(rec.AuxFields, aux)
	return nil
}
