package chain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/rop4/pkg/rop"
	"github.com/ib-77/rop4/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining.
// Every chain started with Start or FromValue gets a run id and a start time
// that survive every step, so callbacks can correlate what they observe.
type Chain[T any, E rop.Failure] struct {
	ctx       context.Context
	id        uuid.UUID
	startedAt time.Time
	result    rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T any, E rop.Failure](ctx context.Context, result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:       ctx,
		id:        uuid.New(),
		startedAt: time.Now().UTC(),
		result:    result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any, E rop.Failure](ctx context.Context, value T) *Chain[T, E] {
	return Start(ctx, rop.Success[T, E](value))
}

func next[T, U any, E rop.Failure](c *Chain[T, E], result rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:       c.ctx,
		id:        c.id,
		startedAt: c.startedAt,
		result:    result,
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

func (c *Chain[T, E]) ID() uuid.UUID {
	return c.id
}

// StartedAt time creation (UTC)
func (c *Chain[T, E]) StartedAt() time.Time {
	return c.startedAt
}

func (c *Chain[T, E]) Context() context.Context {
	return c.ctx
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U any, E rop.Failure](c *Chain[T, E], onSuccess func(context.Context, T) rop.Result[U, E]) *Chain[U, E] {
	return next(c, solo.Switch(c.ctx, c.result, onSuccess))
}

// ThenTry chains a function that returns (U, error); onError classifies the error
func ThenTry[T, U any, E rop.Failure](c *Chain[T, E],
	tryOnSuccess func(context.Context, T) (U, error),
	onError func(context.Context, error) E) *Chain[U, E] {
	return next(c, solo.Try(c.ctx, c.result, tryOnSuccess, onError))
}

// Map chains a pure transformation function
func Map[T, U any, E rop.Failure](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return next(c, solo.Map(c.ctx, c.result, onSuccess))
}

// Validate fails the chain with the returned failure when check reports invalid
func (c *Chain[T, E]) Validate(check func(context.Context, T) (bool, E)) *Chain[T, E] {
	return next(c, solo.AndValidate(c.ctx, c.result, check))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return next(c, solo.Tee(c.ctx, c.result, onSuccess))
}

// OnFailure hands a failure to handler without changing the result
func (c *Chain[T, E]) OnFailure(handler func(E)) *Chain[T, E] {
	return next(c, c.result.IfFailed(handler))
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any, E rop.Failure](c *Chain[T, E],
	onSuccess func(context.Context, T) U,
	onFailure func(context.Context, E) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
