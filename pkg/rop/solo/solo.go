package solo

import (
	"context"

	"github.com/ib-77/rop4/pkg/rop"
)

func Succeed[T any, E rop.Failure](input T) rop.Result[T, E] {
	return rop.Success[T, E](input)
}

func Fail[T any, E rop.Failure](err E) rop.Result[T, E] {
	return rop.Fail[T](err)
}

func Validate[T any, E rop.Failure](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, failure E)) rop.Result[T, E] {
	return AndValidate(ctx, Succeed[T, E](input), validate)
}

func AndValidate[T any, E rop.Failure](ctx context.Context, input rop.Result[T, E],
	validate func(ctx context.Context, in T) (isValid bool, failure E)) rop.Result[T, E] {

	if v, ok := input.Value(); ok {
		if isValid, failure := validate(ctx, v); !isValid {
			return rop.Fail[T](failure)
		}
	}
	return input
}

func Switch[In any, Out any, E rop.Failure](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if v, ok := input.Value(); ok {
		return onSuccess(ctx, v)
	}
	return rop.FailFrom[Out](input)
}

func Map[In any, Out any, E rop.Failure](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	if v, ok := input.Value(); ok {
		return rop.Success[Out, E](onSuccess(ctx, v))
	}
	return rop.FailFrom[Out](input)
}

// MapError translates a failure into another error algebra, typically a wider
// one that a caller further up declares.
func MapError[T any, In rop.Failure, Out rop.Failure](ctx context.Context,
	input rop.Result[T, In],
	onFailure func(ctx context.Context, err In) Out) rop.Result[T, Out] {

	if v, ok := input.Value(); ok {
		return rop.Success[T, Out](v)
	}
	err, _ := input.Err()
	if err.IsEmpty() {
		return rop.Result[T, Out]{}
	}
	return rop.Fail[T](onFailure(ctx, err))
}

func Tee[T any, E rop.Failure](ctx context.Context,
	input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T)) rop.Result[T, E] {

	if v, ok := input.Value(); ok {
		onSuccess(ctx, v)
	}

	return input
}

func TeeIf[T any, E rop.Failure](ctx context.Context,
	input rop.Result[T, E],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) rop.Result[T, E] {

	if v, ok := input.Value(); ok {
		if condition(ctx, v) {
			onSuccessAndCondition(ctx, v)
		}
	}

	return input
}

func DoubleTee[T any, E rop.Failure](ctx context.Context, input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err E)) rop.Result[T, E] {

	if v, ok := input.Value(); ok {
		onSuccess(ctx, v)
	} else {
		err, _ := input.Err()
		onFailure(ctx, err)
	}

	return input
}

func DoubleMap[In any, Out any, E rop.Failure](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err E)) rop.Result[Out, E] {

	if v, ok := input.Value(); ok {
		return rop.Success[Out, E](onSuccess(ctx, v))
	}

	err, _ := input.Err()
	onFailure(ctx, err)

	return rop.FailFrom[Out](input)
}

// Try runs a conventional (Out, error) call and classifies a returned error
// into the failure algebra through onError.
func Try[In any, Out any, E rop.Failure](ctx context.Context, input rop.Result[In, E],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onError func(ctx context.Context, err error) E) rop.Result[Out, E] {

	v, ok := input.Value()
	if !ok {
		return rop.FailFrom[Out](input)
	}

	out, err := onTryExecute(ctx, v)
	if err != nil {
		return rop.Fail[Out](onError(ctx, err))
	}

	return rop.Success[Out, E](out)
}

func FailOnError[T any, E rop.Failure](ctx context.Context, input rop.Result[T, E],
	maybeErr func(ctx context.Context, in T) error,
	onError func(ctx context.Context, err error) E) rop.Result[T, E] {

	if v, ok := input.Value(); ok {
		if err := maybeErr(ctx, v); err != nil {
			return rop.Fail[T](onError(ctx, err))
		}
	}
	return input
}

func Finally[In, Out any, E rop.Failure](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	if v, ok := input.Value(); ok {
		return onSuccess(ctx, v)
	}
	err, _ := input.Err()
	return onFailure(ctx, err)
}

// Join feeds input through inputsF in order, passing every step's output through
// concat. With breakOnError the first failed step ends the run. A done context
// stops the run and returns what has been computed so far.
func Join[T any, E rop.Failure](ctx context.Context,
	input rop.Result[T, E],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T, E]) rop.Result[T, E],
	inputsF ...func(ctx context.Context, in rop.Result[T, E]) rop.Result[T, E]) rop.Result[T, E] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.Successful() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.Failed() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
