// core/splitter/bounded.go
package splitter

import (
	"arrseg-core/model"
	"arrseg-core/segment"
)

// boundedState tracks one element template's progress through the
// segment list.
type boundedState struct {
	idx   int
	segs  []segment.Segment
	score int
	done  bool
}

// SplitBounded splits a read by matching each element template of the
// structure in full. A segment equal to the template's next expected
// label advances the match (MatchScore); otherwise, if a partial match is
// in progress, the remaining template positions are scanned for the
// segment's label and the match jumps forward (IndelScore), tolerating
// dropped-out labels. Any other mismatch resets the template's progress
// entirely. A template is complete exactly when its match index reaches
// the template length.
//
// Each template is assumed to occur at most once per read and instances
// are assumed not to overlap. Completed templates become elements in
// template order; incomplete ones produce nothing. The second return is
// the number of completed templates.
func SplitBounded(segs []segment.Segment, structure model.Structure, keep bool) ([]Element, int) {
	states := make([]boundedState, len(structure))

	for _, seg := range segs {
		for i := range states {
			st := &states[i]
			if st.done {
				continue
			}
			tmpl := structure[i]

			if seg.Name == tmpl[st.idx] {
				st.idx++
				st.segs = append(st.segs, seg)
				st.score += MatchScore
			} else {
				matched := false
				if st.idx > 0 {
					// Peek ahead over the unmatched remainder of the
					// template to resynchronize after a missing label.
					for peek := 1; peek < len(tmpl)-st.idx; peek++ {
						if seg.Name == tmpl[st.idx+peek] {
							st.idx += 1 + peek
							st.segs = append(st.segs, seg)
							st.score += IndelScore
							matched = true
							break
						}
					}
				}
				if !matched {
					// A reset discards all partial progress.
					st.idx = 0
					st.segs = nil
					st.score = 0
				}
			}

			if st.idx >= len(tmpl) {
				st.done = true
			}
		}
	}

	var out []Element
	completed := 0
	for i := range states {
		st := &states[i]
		if !st.done {
			continue
		}
		completed++

		startSeg := st.segs[0]
		endSeg := st.segs[len(st.segs)-1]
		start, end := startSeg.Start, endSeg.End
		if !keep {
			// The outermost captured segments are the delimiters; drop
			// them from the emitted span.
			if len(st.segs) < 2 {
				continue
			}
			start = st.segs[1].Start
			end = st.segs[len(st.segs)-2].End
		}
		if end < start {
			continue
		}
		out = append(out, Element{
			Start: start, End: end,
			SegStart: startSeg.Start, SegEnd: endSeg.End,
			PrevDelim: startSeg.Name, Delim: endSeg.Name,
			Score: st.score,
		})
	}
	return out, completed
}
