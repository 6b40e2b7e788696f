// core/splitter/simple.go
package splitter

import (
	"sort"
	"strings"

	"arrseg-core/segment"
)

// simpleState tracks one delimiter window's progress through the segment
// list. A window is complete once every label has matched contiguously;
// any mismatch resets it (matches never carry over across a reset).
type simpleState struct {
	idx      int
	startSeg segment.Segment
	endSeg   segment.Segment
	done     bool
}

// SplitSimple splits a read using only the delimiter windows between
// element templates (see model.Structure.DelimiterWindows). Each window is
// assumed to occur at most once per read. readLen is the read's sequence
// length; keep controls whether delimiter bases stay in the emitted spans
// (when true, a delimiter is duplicated into both elements it bounds).
//
// It returns the located elements, including the implicit final remainder
// element, plus the number of delimiter boundaries found (elements may be
// fewer than boundaries+1 when a delimiter sits flush against a read edge
// and its exclusion leaves an empty span).
func SplitSimple(segs []segment.Segment, windows [][]string, readLen int, keep bool) ([]Element, int) {
	states := make([]simpleState, len(windows))

	for _, seg := range segs {
		for i := range states {
			st := &states[i]
			if st.done {
				continue
			}
			if seg.Name == windows[i][st.idx] {
				if st.idx == 0 {
					st.startSeg = seg
				}
				st.idx++
				if st.idx == len(windows[i]) {
					st.endSeg = seg
					st.done = true
				}
			} else {
				st.idx = 0
			}
		}
	}

	// Order completed boundaries by where they start in the read; which
	// window completed first is irrelevant.
	type boundary struct {
		win        int
		start, end segment.Segment
	}
	var bounds []boundary
	for i := range states {
		if states[i].done {
			bounds = append(bounds, boundary{win: i, start: states[i].startSeg, end: states[i].endSeg})
		}
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i].start.Start < bounds[j].start.Start })

	var out []Element
	cur := 0
	prev := startDelim
	for _, b := range bounds {
		segStart, segEnd := cur, b.end.End
		name := strings.Join(windows[b.win], "/")

		start, end := segStart, segEnd
		if !keep {
			end = b.start.Start - 1
		}
		if end >= start {
			out = append(out, Element{
				Start: start, End: end,
				SegStart: segStart, SegEnd: segEnd,
				PrevDelim: prev, Delim: name,
			})
		}

		if keep {
			cur = b.start.Start
		} else {
			cur = b.end.End + 1
		}
		prev = name
	}

	// Final remainder element: last boundary to the read's last base.
	if end := readLen - 1; end >= cur {
		out = append(out, Element{
			Start: cur, End: end,
			SegStart: cur, SegEnd: end,
			PrevDelim: prev, Delim: endDelim,
		})
	}
	return out, len(bounds)
}
