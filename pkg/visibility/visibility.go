package visibility

// Evaluator decides whether a catalog question applies to the current record.
// Rules are small declarative strings (see the expr package) so catalogs can
// be serialized and tested without executing arbitrary code.
type Evaluator interface {
	Eval(questionID, rule string, ctx Context) (bool, error)
}

// Context carries the two record partitions a rule can reference. Bare
// identifiers read from Questions; the `personal.` prefix reads from
// Personal.
type Context struct {
	Questions map[string]any
	Personal  map[string]any
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(questionID, rule string, ctx Context) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(questionID, rule string, ctx Context) (bool, error) {
	return fn(questionID, rule, ctx)
}
