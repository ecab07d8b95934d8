// Package pushparse provides an incremental, push-based parser-combinator
// library.
//
// Parsers consume input delivered in arbitrary, caller-chosen chunks —
// network reads, piped files — and emit recognized values to a sink as
// soon as they are known, without holding the whole input in memory and
// without re-scanning already-consumed bytes. Splitting the input
// differently never changes the result.
//
// # Basic Usage
//
// Match fixed text arriving in pieces:
//
//	p := pushparse.Literal("abc")
//	p.Push([]byte("ab"), pushparse.DiscardUnit) // Undecided: need more input
//	p.Push([]byte("cd"), pushparse.DiscardUnit) // Matched, Rest "d"
//	p.Done(pushparse.DiscardUnit)               // true, and resets for the next run
//
// # Capturing the matched span
//
// Capture wraps a matcher so it emits the exact bytes it consumed. A
// match contained in one chunk is emitted as a view into that chunk;
// only a match straddling a chunk boundary is buffered:
//
//	p := pushparse.Capture("ab")
//	sink := func(span []byte) { fmt.Printf("%s\n", span) }
//	p.Push([]byte("a"), sink)  // Undecided, nothing emitted
//	p.Push([]byte("bc"), sink) // Matched, Rest "c", sink receives "ab"
//
// Emitted spans and Rest values are borrowed views, valid only for the
// duration of the call.
//
// # Composition
//
// Seq chains two parsers; once the left side has matched, the right side
// is committed, so its failures are permanent rather than backtrackable:
//
//	p := pushparse.Seq[pushparse.Unit](
//		pushparse.Literal("ab"),
//		pushparse.Literal("cd"),
//	)
//	p.Push([]byte("abcd"), pushparse.DiscardUnit) // Matched, Rest ""
package pushparse

import "github.com/pushparse/pushparse/pkg/parser"

// Re-export commonly used types for convenience.
// Users can import just "github.com/pushparse/pushparse" without subpackages.
type (
	// Result is the outcome of one Push call.
	Result = parser.Result

	// Kind classifies a Result.
	Kind = parser.Kind

	// Unit is the emission type of non-capturing parsers.
	Unit = parser.Unit

	// Parser recognizes chunked input and emits values of type T.
	Parser[T any] = parser.Parser[T]

	// Sink receives values emitted during a Push or Done call.
	Sink[T any] = parser.Sink[T]
)

// Re-export outcome kinds.
const (
	Undecided = parser.Undecided
	Committed = parser.Committed
	Matched   = parser.Matched
	Failed    = parser.Failed
)

// DiscardUnit drops the empty emissions of non-capturing parsers.
var DiscardUnit = parser.Discard[parser.Unit]

// Literal creates a parser recognizing exactly text across any chunking.
func Literal(text string) *parser.LiteralParser {
	return parser.Literal(text)
}

// Capture creates a parser recognizing exactly text and emitting the
// matched bytes, buffering only when the match spans a chunk boundary.
func Capture(text string) *parser.BufferedParser {
	return parser.Buffer(parser.Literal(text))
}

// Buffer upgrades any non-capturing parser into one emitting the span it
// matched.
func Buffer(inner Parser[Unit]) *parser.BufferedParser {
	return parser.Buffer(inner)
}

// Seq runs left, then right against the remaining input, committing the
// right side once left has matched.
func Seq[T any](left, right Parser[T]) Parser[T] {
	return parser.Seq(left, right)
}

// Commit makes a parser's failures permanent.
func Commit[T any](inner Parser[T]) Parser[T] {
	return parser.Commit(inner)
}
