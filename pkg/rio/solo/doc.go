// Package solo contains single-value, synchronous primitives that
// operate on Result[T]. These functions form the core building blocks
// for error-aware pipelines.
//
// Highlights:
// - Succeed/Fail/Empty: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/empty handlers
//
// Go methods cannot introduce new type parameters, so the operations
// that change the value type live here as package functions; same-type
// operations are methods on Result itself. Failure and empty always
// short-circuit: the supplied function is never invoked for them.
package solo
