package tiny

import (
	"context"

	"github.com/ib-77/rop4/pkg/rop"
	"github.com/ib-77/rop4/pkg/rop/solo"
)

type Chain[T any, E rop.Failure] struct {
	ctx context.Context
	res rop.Result[T, E]
}

func Start[T any, E rop.Failure](ctx context.Context, r rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[T any, E rop.Failure](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, rop.Success[T, E](v))
}

func (c Chain[T, E]) Result() rop.Result[T, E] {
	return c.res
}

// Then composes functions that already return rop.Result[T, E]
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T, E]) Chain[T, E] {
	v, ok := c.res.Value()
	if !ok {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onSuccess(c.ctx, v)}
}

// RepeatUntil runs onSuccess at least once and keeps going while the chain
// succeeds and until reports true.
func (c Chain[T, E]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T, E],
	until func(ctx context.Context, t T) bool) Chain[T, E] {

	if c.res.Failed() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		v, ok := c.res.Value()
		if !ok || !until(c.ctx, v) {
			return c
		}
	}
}

func (c Chain[T, E]) While(onSuccess func(ctx context.Context, t T) rop.Result[T, E],
	while func(ctx context.Context, t T) bool) Chain[T, E] {

	for {
		v, ok := c.res.Value()
		if !ok || !while(c.ctx, v) {
			return c
		}
		c = c.Then(onSuccess)
	}
}

// Or returns the first successful chain among c and alternatives, else the
// first failure.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.Successful() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.Successful() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required, else the last one.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if ch.res.Failed() {
			return ch
		}
		last = ch
	}
	return last
}

// ThenTry composes functions that return (T, error), like repository calls
func (c Chain[T, E]) ThenTry(try func(ctx context.Context, t T) (T, error),
	onError func(ctx context.Context, err error) E) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try, onError)}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, E)) Chain[T, E] {
	if v, ok := c.res.Value(); ok {
		if onSuccess != nil {
			onSuccess(c.ctx, v)
		}
		return c
	}

	if onFailure != nil {
		err, _ := c.res.Err()
		onFailure(c.ctx, err)
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T, E]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, E) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}
