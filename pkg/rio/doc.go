// Package rio provides the three-variant Result[T] at the heart of the
// toolkit: success carrying one value, failure carrying one error
// cause, and empty carrying nothing at all.
//
// Empty is not an error. A blank input line or a non-qualifying value
// produced no result, but nothing went wrong; conflating the two would
// force callers to inspect error text to tell them apart. Failure
// always carries a cause, and causes can be re-annotated with
// MapFailure without losing the chain.
//
// Construction goes through the From* family, which is the single
// place nil inputs are reconciled with the three variants:
// - FromValue / FromValueWithMessage: nil becomes failure
// - FromPredicate: false predicate becomes empty
// - FromPredicateWithMessage: false predicate becomes failure
// - FromComputation: panics become failures
//
// All operations are total: no method or constructor panics, and
// panics raised by caller-supplied functions are captured as failures.
// Type-changing combinators (Map, Switch, Try, Finally) live in the
// solo subpackage; a fluent wrapper lives in chain.
package rio
