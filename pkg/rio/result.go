package rio

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isEmpty   bool
	hasResult bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		isEmpty:   false,
		createdAt: time.Now().UTC(),
		hasResult: true,
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		isEmpty:   false,
		createdAt: time.Now().UTC(),
		hasResult: false,
		id:        uuid.New(),
	}
}

func FailMsg[T any](msg string) Result[T] {
	return Fail[T](fmt.Errorf("%s", msg))
}

// Empty is the no-error, no-value outcome. It is distinct from failure:
// nothing went wrong, there was simply nothing to produce.
func Empty[T any]() Result[T] {
	return Result[T]{
		isSuccess: false,
		isEmpty:   true,
		createdAt: time.Now().UTC(),
		hasResult: false,
		id:        uuid.New(),
	}
}

func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		isEmpty:   false,
		createdAt: from.createdAt,
		hasResult: false,
		id:        from.id,
	}
}

func EmptyFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		isSuccess: false,
		isEmpty:   true,
		createdAt: from.createdAt,
		hasResult: false,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.isEmpty
}

func (r Result[T]) IsEmpty() bool {
	return r.isEmpty
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// MapFailure re-annotates a failure under msg, keeping the original
// cause reachable through errors.Is/As. Success and empty pass through.
func (r Result[T]) MapFailure(msg string) Result[T] {
	if r.IsFailure() {
		return Fail[T](fmt.Errorf("%s: %w", msg, r.err))
	}
	return r
}

// ForEach invokes exactly one of the three callbacks, matching the
// active variant. Nil callbacks are no-ops.
func (r Result[T]) ForEach(onSuccess func(T), onFailure func(error), onEmpty func()) {
	switch {
	case r.isSuccess:
		if onSuccess != nil {
			onSuccess(r.result)
		}
	case r.isEmpty:
		if onEmpty != nil {
			onEmpty()
		}
	default:
		if onFailure != nil {
			onFailure(r.err)
		}
	}
}

func (r Result[T]) GetOrElse(defaultValue T) T {
	if r.isSuccess {
		return r.result
	}
	return defaultValue
}

func (r Result[T]) GetOrElseGet(defaultValue func() T) T {
	if r.isSuccess {
		return r.result
	}
	return defaultValue()
}

// OrElse returns r on success, otherwise the result of fallback.
// A panic inside fallback is converted into a failure.
func (r Result[T]) OrElse(fallback func() Result[T]) (out Result[T]) {
	if r.isSuccess {
		return r
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = Fail[T](PanicToError(rec))
		}
	}()
	return fallback()
}

func (r Result[T]) Filter(pred func(T) bool) Result[T] {
	return r.FilterWithMessage(pred, "condition not matched")
}

// FilterWithMessage keeps a success whose value satisfies pred and
// turns one that does not into a failure carrying msg. Failure and
// empty short-circuit unchanged, and a panicking predicate becomes a
// failure rather than escaping.
func (r Result[T]) FilterWithMessage(pred func(T) bool, msg string) (out Result[T]) {
	if !r.isSuccess {
		return r
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = Fail[T](PanicToError(rec))
		}
	}()
	if pred(r.result) {
		return r
	}
	return FailMsg[T](msg)
}

// Exists reports whether r is a success whose value satisfies pred.
// Failure and empty are always false, as is a panicking predicate.
func (r Result[T]) Exists(pred func(T) bool) (ok bool) {
	if !r.isSuccess {
		return false
	}
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
		}
	}()
	return pred(r.result)
}
