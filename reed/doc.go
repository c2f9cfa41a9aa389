// Package reed implements the Reed evaluator: a single-pass, forward-only
// interpreter for a homoiconic, expression-oriented language in the Rebol
// lineage. The initial version supports the following constructs:
//   - Literals for integers, decimals, strings, tags, blanks, and logic.
//   - Words, set-words (`x:`), get-words (`:x`), lit-words (`'x`).
//   - Blocks `[...]` (inert data), groups `(...)` (sub-expressions), and
//     paths `a/b/c` for picking, field access, and refinement-style calls.
//   - Actions with positional, refinement, quoted, variadic, and enfix
//     argument conventions; user functions via `func spec body`.
//   - Enfix operators (`+`, `*`, `=`, `and`, `then`, `else`, ...) resolved
//     by one-unit lookahead, with deferred lookback for operators that
//     prefer to let an enclosing call finish first.
//   - Non-local control (`break`, `continue`, `return`, `throw`) carried as
//     typed signals distinct from hard errors.
//
// Comments beginning with `;` run to end of line. The interpreter enforces a
// simple step quota and recursion limit, rejecting programs that exceed the
// configured execution bounds, and polls its context for cancellation at
// each new-expression boundary.
package reed
