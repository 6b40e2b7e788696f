// core/splitter/splitter.go
//
// Package splitter locates array element boundaries in a read's segment
// list. Two policies are provided: SplitSimple matches only short
// delimiter windows between elements and tolerates arbitrary interior
// content; SplitBounded requires each element to match its full template,
// with a small fuzzy-matching score.
package splitter

// Scoring increments for bounded-region matching. An exact label match at
// the expected template position scores MatchScore; resynchronizing past
// one or more missing labels scores IndelScore.
const (
	MatchScore = 2
	IndelScore = 1
)

// Pseudo-delimiter names for the edges of a read in simple splitting.
const (
	startDelim = "START"
	endDelim   = "END"
)

// Element is one located array element within a read. Start/End are the
// emitted sequence span (0-based inclusive, already adjusted for
// delimiter retention); SegStart/SegEnd bound which of the read's
// segments belong to this element. PrevDelim and Delim are the flanking
// delimiter names used in the output read name.
type Element struct {
	Start    int
	End      int
	SegStart int
	SegEnd   int

	PrevDelim string
	Delim     string

	// Score is only meaningful for bounded-region splitting.
	Score int
}
