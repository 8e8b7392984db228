package adapter

import "io"

// IO abstracts reading response bodies so delivery tests can inject
// read failures
//
//go:generate mockgen -source=io.go -destination=../mocks/io.go -package=mocks -mock_names=IO=MockIO
type IO interface {
	ReadAll(r io.Reader) ([]byte, error)
}

// RealIO reads through the standard io package
type RealIO struct{}

// NewIO returns the real IO implementation
func NewIO() IO {
	return &RealIO{}
}

func (i *RealIO) ReadAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}
