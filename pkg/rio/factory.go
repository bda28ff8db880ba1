package rio

import (
	"errors"
	"fmt"
)

// ErrNilValue is the cause carried by results built from a nil input.
var ErrNilValue = errors.New("value is nil")

// FromValue lifts a value into a result. A nil value is a failure,
// never a success holding nil.
func FromValue[T any](value T) Result[T] {
	if IsNil(value) {
		return Fail[T](ErrNilValue)
	}
	return Success(value)
}

func FromValueWithMessage[T any](value T, msg string) Result[T] {
	if IsNil(value) {
		return FailMsg[T](msg)
	}
	return Success(value)
}

// FromPredicate lifts a value checked against pred. A false predicate
// yields empty: the value was present and valid input, it just did not
// qualify. Compare FromPredicateWithMessage, where a false predicate is
// a failure. The asymmetry is intentional: supplying a message states
// that non-qualification is an error worth reporting.
func FromPredicate[T any](value T, pred func(T) bool) (out Result[T]) {
	if IsNil(value) {
		return Fail[T](ErrNilValue)
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = Fail[T](PanicToError(rec))
		}
	}()
	if pred(value) {
		return Success(value)
	}
	return Empty[T]()
}

func FromPredicateWithMessage[T any](value T, pred func(T) bool, msg string) (out Result[T]) {
	if IsNil(value) {
		return Fail[T](ErrNilValue)
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = Fail[T](PanicToError(rec))
		}
	}()
	if pred(value) {
		return Success(value)
	}
	return Fail[T](fmt.Errorf("assertion failed for value %v: %s", value, msg))
}

// FromComputation evaluates f and lifts its outcome. A panic inside f
// becomes a failure; a nil outcome is handled as in FromValue.
func FromComputation[T any](f func() T) (out Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			out = Fail[T](PanicToError(rec))
		}
	}()
	return FromValue(f())
}

// TestPredicate evaluates pred against value. True yields the value as
// a success; false or a panicking predicate yields a failure carrying
// the contextual message.
func TestPredicate[T any](pred func(T) bool, value T, msg string) (out Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			out = Fail[T](fmt.Errorf("exception while evaluating predicate: %s: %w", msg, PanicToError(rec)))
		}
	}()
	if pred(value) {
		return Success(value)
	}
	return FailMsg[T](msg)
}
