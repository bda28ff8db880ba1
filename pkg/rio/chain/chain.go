package chain

import (
	"github.com/ib-77/rio/pkg/rio"
	"github.com/ib-77/rio/pkg/rio/solo"
)

// Chain wraps a rio.Result to enable fluent chaining
type Chain[T any] struct {
	result rio.Result[T]
}

// Start creates a new chain from a rio.Result
func Start[T any](result rio.Result[T]) *Chain[T] {
	return &Chain[T]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{
		result: rio.Success(value),
	}
}

// Result returns the underlying rio.Result
func (c *Chain[T]) Result() rio.Result[T] {
	return c.result
}

// Then chains a function that returns rio.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(T) rio.Result[U]) *Chain[U] {
	return &Chain[U]{
		result: solo.Switch[T, U](c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return &Chain[U]{
		result: solo.Try[T, U](c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{
		result: solo.Map[T, U](c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(T)) *Chain[T] {
	return &Chain[T]{
		result: solo.Tee[T](c.result,
			func(result rio.Result[T]) {
				if result.IsSuccess() {
					onSuccess(result.Result())
				}
			}),
	}
}

// MapFailure re-annotates a failure without changing other variants
func (c *Chain[T]) MapFailure(msg string) *Chain[T] {
	return &Chain[T]{
		result: c.result.MapFailure(msg),
	}
}

// Filter turns a success not satisfying pred into a failure
func (c *Chain[T]) Filter(pred func(T) bool) *Chain[T] {
	return &Chain[T]{
		result: c.result.Filter(pred),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(error) U, onEmpty func() U) U {
	return solo.Finally[T, U](c.result, onSuccess, onFailure, onEmpty)
}
