package parser

// Kind classifies the outcome of a single Push call.
type Kind int

const (
	// Undecided indicates more input is needed; the call had no effect.
	Undecided Kind = iota
	// Committed indicates more input is needed and backtracking is no
	// longer permitted for this run.
	Committed
	// Matched indicates the parser recognized its input.
	Matched
	// Failed indicates recognition failed.
	Failed
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case Undecided:
		return "undecided"
	case Committed:
		return "committed"
	case Matched:
		return "matched"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Push call.
//
// Per-run, outcomes follow a fixed automaton:
//
//	init      -Undecided->     init
//	init      -Committed->     committed
//	init      -Matched->       matched
//	init      -Failed(b)->     failed(b)
//	committed -Committed->     committed
//	committed -Matched->       matched
//	committed -Failed(false)-> failed(false)
//	matched   -Matched->       matched
//	failed(b) -Failed(b)->     failed(b)
//
// There is no committed -> failed-with-backtrack transition: once a parser
// has committed, callers may release anything retained for backtracking.
type Result struct {
	Kind Kind

	// Rest is the unconsumed suffix of the pushed chunk. Set only when
	// Kind is Matched. It aliases the caller's chunk and is valid only
	// for the duration of the call.
	Rest []byte

	// Backtrack reports whether retrying an alternative parser against
	// the same logical input is sound. Set only when Kind is Failed.
	Backtrack bool
}

// ResultUndecided reports that more input is needed with no effect yet.
func ResultUndecided() Result {
	return Result{Kind: Undecided}
}

// ResultCommitted reports that more input is needed and failure, if it
// comes, will be permanent.
func ResultCommitted() Result {
	return Result{Kind: Committed}
}

// ResultMatched reports recognition, with rest the unconsumed suffix of
// the chunk just pushed.
func ResultMatched(rest []byte) Result {
	return Result{Kind: Matched, Rest: rest}
}

// ResultFailed reports failure. backtrack tells the caller whether an
// alternative parser may be tried against the same logical input.
func ResultFailed(backtrack bool) Result {
	return Result{Kind: Failed, Backtrack: backtrack}
}
