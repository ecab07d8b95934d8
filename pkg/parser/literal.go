package parser

import "bytes"

// literalState tracks progress through the target text.
type literalState int

const (
	// litActive means offset bytes of the target are confirmed so far.
	litActive literalState = iota
	litMatched
	litFailed
)

// LiteralParser recognizes one fixed byte sequence, resuming across chunk
// boundaries. It is non-capturing: it emits a single Unit when the full
// target has been seen. A bare literal never commits on its own; its
// failures are always backtrackable, and permanence is the composition
// layer's job (see Commit).
type LiteralParser struct {
	target []byte
	state  literalState
	offset int // bytes of target confirmed, 0 <= offset <= len(target)
}

// Literal creates a parser recognizing exactly text. A zero-length target
// matches immediately against any chunk, including an empty one.
//
// Comparison is byte-wise: callers pushing multi-byte encoded text must
// keep chunk boundaries on valid element boundaries themselves; the
// parser does not re-validate encoding.
func Literal(text string) *LiteralParser {
	return &LiteralParser{target: []byte(text)}
}

func (p *LiteralParser) Push(chunk []byte, sink Sink[Unit]) Result {
	switch p.state {
	case litMatched:
		return ResultMatched(chunk)
	case litFailed:
		return ResultFailed(true)
	}

	remaining := p.target[p.offset:]
	switch {
	case bytes.HasPrefix(chunk, remaining):
		// The literal completes within this chunk.
		sink(Unit{})
		p.state = litMatched
		return ResultMatched(chunk[len(remaining):])
	case bytes.HasPrefix(remaining, chunk):
		// Chunk exhausted before the literal did.
		p.offset += len(chunk)
		return ResultUndecided()
	default:
		p.state = litFailed
		return ResultFailed(true)
	}
}

func (p *LiteralParser) Done(sink Sink[Unit]) bool {
	matched := p.state == litMatched
	p.state = litActive
	p.offset = 0
	return matched
}
