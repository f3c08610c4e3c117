package graphfile

import "errors"

// Sentinel errors returned by graphfile. Callers should branch with
// errors.Is, not string comparison.
var (
	// ErrBadMagic is returned when a file does not start with the expected
	// magic number.
	ErrBadMagic = errors.New("graphfile: bad magic number")

	// ErrSizeMismatch is returned when the file size does not match the
	// size derived from its own header fields.
	ErrSizeMismatch = errors.New("graphfile: file size does not match header")

	// ErrTooSmall is returned when a buffer is smaller than the fixed
	// header, so the header fields themselves cannot be read.
	ErrTooSmall = errors.New("graphfile: buffer smaller than header")

	// ErrInvalidVertex is returned by the builder when AddEdge is called
	// with vertex id 0.
	ErrInvalidVertex = errors.New("graphfile: invalid vertex id")

	// ErrSelfLoop is returned by the builder when AddEdge is called with
	// equal endpoints.
	ErrSelfLoop = errors.New("graphfile: self-loops are not allowed")

	// ErrAdjacencyInvariant is returned by the encoder when a non-empty
	// forward row contains a zero entry, or when the total forward and
	// backward edge counts disagree.
	ErrAdjacencyInvariant = errors.New("graphfile: adjacency invariant violated")
)
