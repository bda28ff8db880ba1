package solo

import (
	"errors"

	"github.com/ib-77/rio/pkg/rio"
)

func Succeed[T any](input T) rio.Result[T] {
	return rio.Success(input)
}

func Fail[T any](err error) rio.Result[T] {
	return rio.Fail[T](err)
}

func Empty[T any]() rio.Result[T] {
	return rio.Empty[T]()
}

func Validate[T any](input T,
	validate func(in T) (isValid bool, errMsg string)) rio.Result[T] {
	return AndValidate(rio.Success(input), validate)
}

func AndValidate[T any](input rio.Result[T],
	validate func(in T) (valid bool, errMsg string)) rio.Result[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(input.Result()); isValid {
			return rio.Success(input.Result())
		} else {
			return rio.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	input rio.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(in rio.Result[T]) rio.Result[T]) rio.Result[T] {

	var err error
	return Join(
		input,
		breakOnError,
		func(current rio.Result[T]) rio.Result[T] {

			if current.IsFailure() {
				e := rio.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if rio.IsNil(err) {
				return current
			}

			return rio.Fail[T](err)
		},
		inputsF...,
	)
}

// Switch moves from Result[In] to Result[Out] through a function that
// already returns a result. Failure and empty short-circuit without
// invoking onSuccess, and a panic inside onSuccess becomes a failure.
func Switch[In any, Out any](input rio.Result[In],
	onSuccess func(r In) rio.Result[Out]) (out rio.Result[Out]) {

	if input.IsSuccess() {
		defer func() {
			if rec := recover(); rec != nil {
				out = rio.Fail[Out](rio.PanicToError(rec))
			}
		}()
		return onSuccess(input.Result())
	}
	if input.IsEmpty() {
		return rio.EmptyFrom[In, Out](input)
	}
	return rio.FailFrom[In, Out](input)
}

// Map transforms the successful value to a new value. Failure and
// empty short-circuit without invoking onSuccess, and a panic inside
// onSuccess becomes a failure.
func Map[In any, Out any](input rio.Result[In],
	onSuccess func(r In) Out) (out rio.Result[Out]) {

	if input.IsSuccess() {
		defer func() {
			if rec := recover(); rec != nil {
				out = rio.Fail[Out](rio.PanicToError(rec))
			}
		}()
		return rio.Success(onSuccess(input.Result()))
	}
	if input.IsEmpty() {
		return rio.EmptyFrom[In, Out](input)
	}
	return rio.FailFrom[In, Out](input)
}

func Tee[T any](input rio.Result[T],
	onSuccess func(r rio.Result[T])) rio.Result[T] {

	if input.IsSuccess() {
		onSuccess(input)
	}

	return input
}

func TeeIf[T any](input rio.Result[T],
	condition func(r rio.Result[T]) bool,
	onSuccessAndCondition func(r rio.Result[T])) rio.Result[T] {

	if input.IsSuccess() {
		if condition(input) {
			onSuccessAndCondition(input)
		}
	}

	return input
}

func DoubleTee[T any](input rio.Result[T],
	onSuccess func(r T),
	onError func(err error),
	onEmpty func()) rio.Result[T] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	} else {
		if input.IsEmpty() {
			onEmpty()
		} else {
			onError(input.Err())
		}
	}

	return input
}

// Try calls a function returning (Out, error) and converts the error,
// if any, to a failure.
func Try[In any, Out any](input rio.Result[In],
	onTryExecute func(r In) (Out, error)) rio.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(input.Result())
		if err != nil {
			return rio.Fail[Out](err)
		}

		return rio.Success(out)
	}

	if input.IsEmpty() {
		return rio.EmptyFrom[In, Out](input)
	}
	return rio.FailFrom[In, Out](input)
}

func FailOnError[T any](input rio.Result[T],
	maybeErr func(in T) error) rio.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(input.Result())
		if err != nil {
			return rio.Fail[T](err)
		} else {
			return input
		}
	}
	return input
}

// Finally reduces the result to a concrete value through exactly one
// of the three handlers.
func Finally[In, Out any](input rio.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out,
	onEmpty func() Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	} else if input.IsEmpty() {
		return onEmpty()
	} else {
		return onError(input.Err())
	}
}

func Join[T any](input rio.Result[T],
	breakOnError bool, // exit on first error
	concat func(current rio.Result[T]) rio.Result[T],
	inputsF ...func(in rio.Result[T]) rio.Result[T]) rio.Result[T] {

	if len(inputsF) == 0 || concat == nil {
		return input
	}

	finalResult := concat(inputsF[0](input))

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {

			nextRes := concat(in(finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
