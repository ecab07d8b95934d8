package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSink collects emitted spans as string copies, since the spans
// themselves are only valid during the emitting call.
func captureSink(spans *[]string) Sink[[]byte] {
	return func(span []byte) { *spans = append(*spans, string(span)) }
}

func TestBufferEmitsAcrossChunkBoundary(t *testing.T) {
	p := Buffer(Literal("ab"))
	var spans []string

	result := p.Push([]byte("a"), captureSink(&spans))
	assert.Equal(t, Undecided, result.Kind)
	assert.Empty(t, spans, "nothing emitted before the match is known")

	result = p.Push([]byte("bc"), captureSink(&spans))
	require.Equal(t, Matched, result.Kind)
	assert.Equal(t, []byte("c"), result.Rest)
	assert.Equal(t, []string{"ab"}, spans)

	assert.True(t, p.Done(captureSink(&spans)))
	assert.Equal(t, []string{"ab"}, spans, "Done must not re-emit an already-flushed match")
}

func TestBufferSingleChunkMatchIsZeroCopy(t *testing.T) {
	p := Buffer(Literal("ab"))
	chunk := []byte("abc")

	var emitted []byte
	result := p.Push(chunk, func(span []byte) { emitted = span })
	require.Equal(t, Matched, result.Kind)
	require.Len(t, emitted, 2)
	assert.Same(t, &chunk[0], &emitted[0], "single-chunk match must alias the caller's chunk")
	assert.Equal(t, "ab", string(emitted))
}

func TestBufferLeadingEmptyPushKeepsZeroCopy(t *testing.T) {
	p := Buffer(Literal("ab"))

	result := p.Push(nil, Discard[[]byte])
	assert.Equal(t, Undecided, result.Kind)

	// The empty push must not have started a buffer.
	chunk := []byte("abc")
	var emitted []byte
	result = p.Push(chunk, func(span []byte) { emitted = span })
	require.Equal(t, Matched, result.Kind)
	require.Len(t, emitted, 2)
	assert.Same(t, &chunk[0], &emitted[0])
}

func TestBufferFailurePassesThrough(t *testing.T) {
	p := Buffer(Literal("ab"))
	var spans []string

	result := p.Push([]byte("xy"), captureSink(&spans))
	require.Equal(t, Failed, result.Kind)
	assert.True(t, result.Backtrack)
	assert.Empty(t, spans)

	// Idempotent terminal reply without re-invoking the inner parser.
	result = p.Push([]byte("ab"), captureSink(&spans))
	assert.Equal(t, Failed, result.Kind)
	assert.True(t, result.Backtrack)
	assert.Empty(t, spans)

	assert.False(t, p.Done(captureSink(&spans)))
}

func TestBufferFailureMidMatchDiscardsBuffer(t *testing.T) {
	p := Buffer(Literal("abc"))
	var spans []string

	assert.Equal(t, Undecided, p.Push([]byte("ab"), captureSink(&spans)).Kind)

	result := p.Push([]byte("zz"), captureSink(&spans))
	assert.Equal(t, Failed, result.Kind)
	assert.Empty(t, spans)
	assert.Nil(t, p.buf, "buffer is discarded on failure")
}

func TestBufferTerminalMatchIsIdempotent(t *testing.T) {
	p := Buffer(Literal("ab"))
	var spans []string

	require.Equal(t, Matched, p.Push([]byte("ab"), captureSink(&spans)).Kind)
	require.Equal(t, []string{"ab"}, spans)

	result := p.Push([]byte("tail"), captureSink(&spans))
	assert.Equal(t, Matched, result.Kind)
	assert.Equal(t, []byte("tail"), result.Rest)
	assert.Equal(t, []string{"ab"}, spans, "no emission after the terminal state")
}

// restMatcher consumes everything pushed to it and reports a match only
// at end-of-input. It lets the tests reach the state where a buffered
// match is first observed by Done rather than by a Push outcome.
type restMatcher struct {
	failed bool
}

func (m *restMatcher) Push(chunk []byte, sink Sink[Unit]) Result {
	if m.failed {
		return ResultFailed(true)
	}
	return ResultUndecided()
}

func (m *restMatcher) Done(sink Sink[Unit]) bool {
	matched := !m.failed
	if matched {
		sink(Unit{})
	}
	m.failed = false
	return matched
}

func TestBufferFlushesOnDone(t *testing.T) {
	p := Buffer(&restMatcher{})
	var spans []string

	assert.Equal(t, Undecided, p.Push([]byte("ab"), captureSink(&spans)).Kind)
	assert.Equal(t, Undecided, p.Push([]byte("cd"), captureSink(&spans)).Kind)
	assert.Empty(t, spans)

	assert.True(t, p.Done(captureSink(&spans)))
	assert.Equal(t, []string{"abcd"}, spans, "match seen only at end-of-input is flushed by Done")
}

func TestBufferResetCompleteness(t *testing.T) {
	p := Buffer(Literal("ab"))
	var spans []string

	// Run 1: abandoned mid-match.
	assert.Equal(t, Undecided, p.Push([]byte("a"), captureSink(&spans)).Kind)
	assert.False(t, p.Done(captureSink(&spans)))
	assert.Empty(t, spans)
	assert.Nil(t, p.buf)

	// Run 2: behaves like a fresh instance, including zero-copy.
	chunk := []byte("abX")
	var emitted []byte
	result := p.Push(chunk, func(span []byte) { emitted = span })
	require.Equal(t, Matched, result.Kind)
	assert.Same(t, &chunk[0], &emitted[0])
	assert.True(t, p.Done(Discard[[]byte]))
}

func TestBufferCopyBoundedByConsumedBytes(t *testing.T) {
	p := Buffer(Literal("abcd"))
	var spans []string

	assert.Equal(t, Undecided, p.Push([]byte("ab"), captureSink(&spans)).Kind)

	// Only the consumed prefix of the final chunk joins the buffer; the
	// remainder is never copied.
	result := p.Push([]byte("cdEXTRA"), captureSink(&spans))
	require.Equal(t, Matched, result.Kind)
	assert.Equal(t, []byte("EXTRA"), result.Rest)
	assert.Equal(t, []string{"abcd"}, spans)
}
