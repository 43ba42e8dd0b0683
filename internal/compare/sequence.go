package compare

const firstID = 1

// IDSource hands out entry identities.
type IDSource interface {
	Next() int
}

// Sequence is the monotonic identity counter of a comparison session.
//
// The zero value is ready to use and starts at 1. Values are never reused until [Sequence.Reset].
type Sequence struct {
	next int
}

var _ IDSource = (*Sequence)(nil)

// NewSequence returns a [Sequence] starting at 1.
func NewSequence() *Sequence {
	return &Sequence{next: firstID}
}

// Next returns the current identity and advances the counter.
func (s *Sequence) Next() int {
	id := s.Peek()
	s.next = id + 1
	return id
}

// Peek returns the identity the next call to [Sequence.Next] will hand out.
func (s *Sequence) Peek() int {
	if s.next < firstID {
		return firstID
	}
	return s.next
}

// Reset restarts the counter so the next identity is 1.
func (s *Sequence) Reset() {
	s.next = firstID
}
