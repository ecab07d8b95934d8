package parser

// Commit wraps a parser so that its failures become permanent: past this
// point backtracking is off the table, which lets upstream combinators
// release anything they were retaining for a retry. Outcomes map as
// Undecided -> Committed, Failed(any) -> Failed(no backtrack); Committed
// and Matched pass through. Done delegates unchanged.
func Commit[T any](inner Parser[T]) Parser[T] {
	return &commitParser[T]{inner: inner}
}

type commitParser[T any] struct {
	inner Parser[T]
}

func (p *commitParser[T]) Push(chunk []byte, sink Sink[T]) Result {
	result := p.inner.Push(chunk, sink)
	switch result.Kind {
	case Undecided, Committed:
		return ResultCommitted()
	case Failed:
		return ResultFailed(false)
	default:
		return result
	}
}

func (p *commitParser[T]) Done(sink Sink[T]) bool {
	return p.inner.Done(sink)
}
