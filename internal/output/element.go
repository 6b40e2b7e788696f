// internal/output/element.go
package output

import (
	"fmt"

	"github.com/biogo/hts/sam"

	"arrseg-core/segment"
	"arrseg-core/splitter"
	"arrseg/internal/bamio"
)

// ElementRecord materializes one located array element as a new output
// record. seq must be the source read's expanded sequence (expanded once
// per read by the caller). The element's sequence and qualities are
// sliced [Start,End] inclusive, all source tags are copied, and the SG
// tag is recomputed to hold only the segments inside [SegStart,SegEnd].
// The source record is never modified.
func ElementRecord(src *sam.Record, seq []byte, segs []segment.Segment, el splitter.Element) (*sam.Record, error) {
	if el.Start < 0 || el.End >= len(seq) || el.Start > el.End {
		return nil, fmt.Errorf("read %s: element span [%d,%d] outside read of length %d",
			src.Name, el.Start, el.End, len(seq))
	}

	name := fmt.Sprintf("%s_%d-%d_%s-%s", src.Name, el.Start, el.End, el.PrevDelim, el.Delim)

	sub := make([]byte, el.End-el.Start+1)
	copy(sub, seq[el.Start:el.End+1])

	qual := make([]byte, len(sub))
	if len(src.Qual) >= el.End+1 {
		copy(qual, src.Qual[el.Start:el.End+1])
	} else {
		for i := range qual {
			qual[i] = 0xff
		}
	}

	aux := make([]sam.Aux, 0, len(src.AuxFields)+1)
	for _, a := range src.AuxFields {
		if a.Tag() == bamio.SegmentsTag {
			continue
		}
		aux = append(aux, a)
	}

	rec := bamio.NewUnmappedRecord(name, sub, qual, aux)

	var kept []segment.Segment
	for _, s := range segs {
		if el.SegStart <= s.Start && s.Start <= el.SegEnd {
			kept = append(kept, s)
		}
	}
	if err := bamio.SetSegments(rec, kept); err != nil {
		return nil, fmt.Errorf("read %s: %w", src.Name, err)
	}
	return rec, nil
}
