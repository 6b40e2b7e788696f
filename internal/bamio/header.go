// internal/bamio/header.go
package bamio

import (
	"github.com/biogo/hts/sam"

	"arrseg/internal/version"
)

// OutputHeader clones the input header and appends the arrseg @PG line,
// recording the command line that produced the output.
func OutputHeader(in *sam.Header, commandLine string) (*sam.Header, error) {
	out := in.Clone()
	pg := sam.NewProgram("arrseg-"+version.Version, "arrseg", commandLine, "", version.Version)
	if err := out.AddProgram(pg); err != nil {
		return nil, err
	}
	return out, nil
}

// NewUnmappedRecord builds an unmapped, unplaced record: the shape of
// every array element arrseg emits. qual is raw Phred scores, one per
// base; aux tags are attached as given.
func NewUnmappedRecord(name string, seq, qual []byte, aux []sam.Aux) *sam.Record {
	return &sam.Record{
		Name:      name,
		Flags:     sam.Unmapped,
		Pos:       -1,
		MatePos:   -1,
		MapQ:      255,
		Seq:       sam.NewSeq(seq),
		Qual:      qual,
		AuxFields: aux,
	}
}
