// core/model/model.go
package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Structure is the expected repeating layout of one concatenated array
// read: an ordered list of array element templates, each an ordered list
// of segment label names. A Structure is immutable once validated and is
// passed explicitly into the splitters.
type Structure [][]string

// delimiterLen is how many labels from each template edge form a
// simple-splitting delimiter window.
const delimiterLen = 2

// Default returns the 15-element MAS-seq array structure: elements are
// bounded by the MAS adapters A..P, each carrying the standard single-cell
// segment layout between them.
func Default() Structure {
	const adapters = "ABCDEFGHIJKLMNOP"
	body := []string{"10x_Adapter", "CBC", "UMI", "cDNA", "Poly_A", "3p_Adapter"}

	s := make(Structure, 0, len(adapters)-1)
	for i := 0; i+1 < len(adapters); i++ {
		el := make([]string, 0, len(body)+2)
		el = append(el, adapters[i:i+1])
		el = append(el, body...)
		if i+2 == len(adapters) {
			// Terminal adapter closes the final element.
			el = append(el, adapters[i+1:i+2])
		}
		s = append(s, el)
	}
	return s
}

// Load reads a Structure from a JSON file: an array of arrays of label
// strings. The result is validated.
func Load(path string) (Structure, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Structure
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the structural preconditions both splitting modes rely
// on: at least two element templates, each with at least two labels, all
// labels non-empty.
func (s Structure) Validate() error {
	if len(s) < 2 {
		return fmt.Errorf("structure needs at least 2 element templates, have %d", len(s))
	}
	for i, el := range s {
		if len(el) < delimiterLen {
			return fmt.Errorf("element template %d needs at least %d labels, has %d", i, delimiterLen, len(el))
		}
		for j, label := range el {
			if label == "" {
				return fmt.Errorf("element template %d: empty label at position %d", i, j)
			}
		}
	}
	return nil
}

// DelimiterWindows derives the simple-splitting delimiter windows: the
// last two labels of the first template merged with the first two of the
// second, then the first two labels of every subsequent template. Each
// window must match contiguously in a read's segment list.
func (s Structure) DelimiterWindows() [][]string {
	if len(s) == 0 {
		return nil
	}
	windows := make([][]string, 0, len(s)-1)

	first := s[0]
	w := append([]string{}, first[len(first)-delimiterLen:]...)
	for i, el := range s[1:] {
		if i == 0 {
			w = append(w, el[:delimiterLen]...)
			windows = append(windows, w)
			continue
		}
		windows = append(windows, append([]string{}, el[:delimiterLen]...))
	}
	return windows
}
