// Package parser implements an incremental, push-based parser-combinator
// core: stateful matchers that consume input delivered in caller-chosen
// chunks and emit recognized values downstream as soon as they are known,
// buffering only what a chunk boundary forces them to.
package parser

// Sink receives values emitted during a Push or Done call. It is called
// synchronously. An emitted value that aliases the pushed chunk or an
// internal buffer is valid only for the duration of the call and must not
// be retained. A sink must not re-enter the emitting parser.
type Sink[T any] func(T)

// Discard is a Sink that drops every value. It satisfies combinators that
// require a downstream consumer when the emission carries no information.
func Discard[T any](T) {}

// Unit is the emission type of non-capturing parsers. It carries no
// payload; only the match/fail signal matters.
type Unit struct{}

// Parser recognizes input pushed to it in chunks and emits values of type
// T to a sink. A Parser owns all state needed to resume recognition
// across calls within one run; instances are constructed once and reused
// across runs, and must be driven by exactly one caller at a time.
//
// Implementations must uphold:
//
//   - Pushing a followed by b is equivalent, in classification and
//     cumulative emissions, to pushing the concatenation of a and b, for
//     every split point. Chunk boundaries are the driver's choice and
//     never affect results.
//   - Pushing an empty chunk is a no-op returning Undecided.
//   - A call returning Undecided or Failed with Backtrack set emits
//     nothing; the caller may discard the chunk and retry an alternative
//     parser from the same logical position.
//   - Matched and Failed are per-run terminal: further pushes repeat the
//     terminal reply (Matched echoes the whole chunk as Rest) until Done
//     resets the instance.
type Parser[T any] interface {
	// Push consumes as much of chunk as it can, emitting any values
	// recognized along the way. The chunk is borrowed for the duration
	// of the call.
	Push(chunk []byte, sink Sink[T]) Result

	// Done ends the run, flushes any emission implied by reaching
	// end-of-input mid-match, resets all per-run state, and reports
	// whether the run matched.
	Done(sink Sink[T]) bool
}
