package series

import "github.com/matzehuels/chartscript/pkg/js"

// Container exposes its content as a series array.
type Container interface {
	AsArray() js.Sequence
}

// Seria is an ordered list of [x,y] tuples.
type Seria struct {
	tuples *js.Array[*js.Array[js.Value]]
}

// NewSeria returns an empty seria.
func NewSeria() *Seria {
	return &Seria{tuples: js.NewArray[*js.Array[js.Value]]()}
}

// AddTupleIfComplete appends [x,y] when both x and y are present.
func (s *Seria) AddTupleIfComplete(x, y js.Value) *Seria {
	if !js.IsPresent(x) || !js.IsPresent(y) {
		return s
	}
	s.tuples.Add(js.NewArray(x, y))
	return s
}

// Len returns the number of tuples.
func (s *Seria) Len() int { return s.tuples.Len() }

// AsArray returns the tuple array, or nil for a nil seria.
func (s *Seria) AsArray() js.Sequence {
	if s == nil {
		return nil
	}
	return s.tuples
}

func (s *Seria) Render() (string, bool) { return s.tuples.Render() }
