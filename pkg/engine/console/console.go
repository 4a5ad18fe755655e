// Package console defines the sink that entities narrate their actions to.
package console

// Narrator receives narration as a message key plus format arguments.
// Implementations decide how (and whether) a key becomes visible text.
type Narrator interface {
	Say(key string, args ...any)
}

type discard struct{}

func (discard) Say(string, ...any) {}

// Discard is a Narrator that drops everything.
var Discard Narrator = discard{}

// OrDiscard returns n, or Discard when n is nil.
func OrDiscard(n Narrator) Narrator {
	if n == nil {
		return Discard
	}
	return n
}

// Line is one recorded narration.
type Line struct {
	Key  string
	Args []any
}

// Recorder is a Narrator that keeps every line it is given.
type Recorder struct {
	Lines []Line
}

// Say records the key and its arguments
func (r *Recorder) Say(key string, args ...any) {
	r.Lines = append(r.Lines, Line{Key: key, Args: args})
}

// Keys returns the recorded keys in order
func (r *Recorder) Keys() []string {
	keys := make([]string, 0, len(r.Lines))
	for _, l := range r.Lines {
		keys = append(keys, l.Key)
	}
	return keys
}

// Count returns how many times key was said
func (r *Recorder) Count(key string) int {
	n := 0
	for _, l := range r.Lines {
		if l.Key == key {
			n++
		}
	}
	return n
}

// Last returns the most recent line, or the zero Line if nothing was said.
func (r *Recorder) Last() Line {
	if len(r.Lines) == 0 {
		return Line{}
	}
	return r.Lines[len(r.Lines)-1]
}

// Reset forgets everything recorded so far
func (r *Recorder) Reset() {
	r.Lines = nil
}
