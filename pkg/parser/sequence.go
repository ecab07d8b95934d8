package parser

// Seq runs left and then, once left has matched, runs right against the
// remaining input of the same chunk. The right side is commit-wrapped at
// construction: by the time it runs, left's emissions cannot be
// un-emitted, so a right-side failure must be permanent rather than
// retried as if left had never matched.
func Seq[T any](left, right Parser[T]) Parser[T] {
	return &seqParser[T]{left: left, right: Commit(right), inLeft: true}
}

type seqParser[T any] struct {
	left   Parser[T]
	right  Parser[T] // commit-wrapped
	inLeft bool
}

func (p *seqParser[T]) Push(chunk []byte, sink Sink[T]) Result {
	if !p.inLeft {
		return p.right.Push(chunk, sink)
	}
	result := p.left.Push(chunk, sink)
	if result.Kind != Matched {
		return result
	}
	// Hand the remainder to the right side within the same call.
	p.inLeft = false
	return p.right.Push(result.Rest, sink)
}

func (p *seqParser[T]) Done(sink Sink[T]) bool {
	// Done doubles as each child's reset, so both must be called even
	// when the left side reports no match.
	leftMatched := p.left.Done(sink)
	rightMatched := p.right.Done(sink)
	p.inLeft = true
	return leftMatched && rightMatched
}
