package parser

// bufferState tracks the adapter's progress independently of the inner
// parser, so repeated post-terminal pushes are answered without
// re-invoking it.
type bufferState int

const (
	// bufBeginning: no partial match accumulated.
	bufBeginning bufferState = iota
	// bufMiddle: a partial match spans at least one chunk boundary; the
	// consumed-so-far bytes live in buf.
	bufMiddle
	bufEndMatch
	bufEndFail
)

// BufferedParser upgrades a non-capturing parser into one that emits
// exactly the span of input the inner parser matched. A match fully
// contained in one chunk is emitted as a zero-copy view into the caller's
// chunk; only a match crossing a chunk boundary pays a copy, bounded by
// the bytes actually consumed.
//
// For example, with an inner parser matching quoted strings, input `"abc`
// followed by `def"` forces `"abc` to be buffered; input `"abcdef"` in
// one chunk allocates nothing.
type BufferedParser struct {
	inner     Parser[Unit]
	state     bufferState
	buf       []byte // owned by this instance, present only in bufMiddle
	backtrack bool   // failure flag, meaningful only in bufEndFail
}

// Buffer wraps a non-capturing parser into a capturing one. The emitted
// value is valid only for the duration of the emitting call: it aliases
// either the pushed chunk or a buffer the adapter may reuse or discard.
func Buffer(inner Parser[Unit]) *BufferedParser {
	return &BufferedParser{inner: inner}
}

func (p *BufferedParser) Push(chunk []byte, sink Sink[[]byte]) Result {
	switch p.state {
	case bufEndMatch:
		return ResultMatched(chunk)
	case bufEndFail:
		return ResultFailed(p.backtrack)
	}

	result := p.inner.Push(chunk, Discard[Unit])
	switch result.Kind {
	case Undecided, Committed:
		// An empty chunk must leave the initial state alone, or a later
		// single-chunk match would lose its zero-copy emission.
		if p.state == bufMiddle || len(chunk) > 0 {
			p.buf = append(p.buf, chunk...)
			p.state = bufMiddle
		}
	case Failed:
		p.state = bufEndFail
		p.backtrack = result.Backtrack
		p.buf = nil
	case Matched:
		consumed := len(chunk) - len(result.Rest)
		if p.state == bufBeginning {
			sink(chunk[:consumed])
		} else {
			p.buf = append(p.buf, chunk[:consumed]...)
			sink(p.buf)
		}
		p.state = bufEndMatch
		p.buf = nil
	}
	return result
}

func (p *BufferedParser) Done(sink Sink[[]byte]) bool {
	matched := p.inner.Done(Discard[Unit])
	if matched && p.state == bufMiddle {
		// The match completed exactly at end-of-input, never observed
		// through a Push outcome; flush it now.
		sink(p.buf)
	}
	p.state = bufBeginning
	p.buf = nil
	p.backtrack = false
	return matched
}
