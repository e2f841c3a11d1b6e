package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rop4/pkg/rop"
)

type tooSmall struct{ Min, Got int }

type odd struct{ Got int }

type parseFailed struct{ Input string }

type checkErr = rop.Error2[tooSmall, odd]

type widerErr = rop.Error3[tooSmall, odd, parseFailed]

func small(v int) checkErr { return rop.Error2A[tooSmall, odd](tooSmall{Min: 10, Got: v}) }

func oddErr(v int) checkErr { return rop.Error2B[tooSmall, odd](odd{Got: v}) }

func atLeastTen(_ context.Context, v int) (bool, checkErr) {
	if v < 10 {
		return false, small(v)
	}
	return true, checkErr{}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, rop.Success[int, checkErr](12), Validate(ctx, 12, atLeastTen))
	assert.Equal(t, rop.Fail[int](small(3)), Validate(ctx, 3, atLeastTen))
}

func TestAndValidate_SkipsFailedInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	in := Fail[int](oddErr(5))
	out := AndValidate(ctx, in, func(ctx context.Context, v int) (bool, checkErr) {
		called = true
		return true, checkErr{}
	})

	assert.False(t, called)
	assert.Equal(t, in, out)
}

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	half := func(_ context.Context, v int) rop.Result[string, checkErr] {
		if v%2 != 0 {
			return rop.Fail[string](oddErr(v))
		}
		return rop.Success[string, checkErr](strconv.Itoa(v / 2))
	}

	assert.Equal(t, rop.Success[string, checkErr]("6"), Switch(ctx, Succeed[int, checkErr](12), half))
	assert.Equal(t, rop.Fail[string](oddErr(7)), Switch(ctx, Succeed[int, checkErr](7), half))
	assert.Equal(t, rop.Fail[string](small(1)), Switch(ctx, Fail[int](small(1)), half))
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	double := func(_ context.Context, v int) int { return v * 2 }

	assert.Equal(t, rop.Success[int, checkErr](8), Map(ctx, Succeed[int, checkErr](4), double))
	assert.Equal(t, rop.Fail[int](oddErr(3)), Map(ctx, Fail[int](oddErr(3)), double))
}

func TestMapError_WidensAlgebra(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	widen := func(_ context.Context, e checkErr) widerErr {
		return rop.Matcher2[tooSmall, odd, widerErr]{
			OnA: func(s tooSmall) widerErr { return rop.Error3A[tooSmall, odd, parseFailed](s) },
			OnB: func(o odd) widerErr { return rop.Error3B[tooSmall, odd, parseFailed](o) },
		}.Handle(e)
	}

	out := MapError(ctx, Fail[int](oddErr(9)), widen)
	assert.Equal(t, rop.Fail[int](rop.Error3B[tooSmall, odd, parseFailed](odd{Got: 9})), out)

	ok := MapError(ctx, Succeed[int, checkErr](1), widen)
	assert.Equal(t, rop.Success[int, widerErr](1), ok)

	assert.True(t, MapError(ctx, rop.Result[int, checkErr]{}, widen).IsEmpty())
}

func TestTryAndFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	classify := func(_ context.Context, err error) widerErr {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return rop.Error3C[tooSmall, odd, parseFailed](parseFailed{Input: numErr.Num})
		}
		return rop.Error3C[tooSmall, odd, parseFailed](parseFailed{})
	}
	parse := func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) }

	assert.Equal(t, rop.Success[int, widerErr](42), Try(ctx, Succeed[string, widerErr]("42"), parse, classify))
	assert.Equal(t,
		rop.Fail[int](rop.Error3C[tooSmall, odd, parseFailed](parseFailed{Input: "x"})),
		Try(ctx, Succeed[string, widerErr]("x"), parse, classify))

	notEven := func(_ context.Context, v int) error {
		if v%2 != 0 {
			return errors.New("odd")
		}
		return nil
	}
	asOdd := func(_ context.Context, _ error) checkErr { return oddErr(0) }

	assert.Equal(t, rop.Success[int, checkErr](2), FailOnError(ctx, Succeed[int, checkErr](2), notEven, asOdd))
	assert.Equal(t, rop.Fail[int](oddErr(0)), FailOnError(ctx, Succeed[int, checkErr](3), notEven, asOdd))
}

func TestTees(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var successes []int
	var failures []checkErr
	onSuccess := func(_ context.Context, v int) { successes = append(successes, v) }
	onFailure := func(_ context.Context, e checkErr) { failures = append(failures, e) }

	Tee(ctx, Succeed[int, checkErr](1), onSuccess)
	Tee(ctx, Fail[int](small(1)), onSuccess)
	TeeIf(ctx, Succeed[int, checkErr](2), func(_ context.Context, v int) bool { return v > 5 }, onSuccess)
	TeeIf(ctx, Succeed[int, checkErr](6), func(_ context.Context, v int) bool { return v > 5 }, onSuccess)
	DoubleTee(ctx, Succeed[int, checkErr](7), onSuccess, onFailure)
	out := DoubleTee(ctx, Fail[int](oddErr(3)), onSuccess, onFailure)

	assert.Equal(t, []int{1, 6, 7}, successes)
	assert.Equal(t, []checkErr{oddErr(3)}, failures)
	assert.Equal(t, Fail[int](oddErr(3)), out)
}

func TestDoubleMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var failures int
	toStr := func(_ context.Context, v int) string { return strconv.Itoa(v) }
	onFailure := func(_ context.Context, _ checkErr) { failures++ }

	assert.Equal(t, rop.Success[string, checkErr]("5"), DoubleMap(ctx, Succeed[int, checkErr](5), toStr, onFailure))
	assert.Equal(t, rop.Fail[string](small(2)), DoubleMap(ctx, Fail[int](small(2)), toStr, onFailure))
	assert.Equal(t, 1, failures)
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	describe := func(_ context.Context, e checkErr) string {
		return rop.Process2(e,
			func(s tooSmall) string { return "small:" + strconv.Itoa(s.Got) },
			func(o odd) string { return "odd:" + strconv.Itoa(o.Got) })
	}
	show := func(_ context.Context, v int) string { return "ok:" + strconv.Itoa(v) }

	assert.Equal(t, "ok:4", Finally(ctx, Succeed[int, checkErr](4), show, describe))
	assert.Equal(t, "small:2", Finally(ctx, Fail[int](small(2)), show, describe))
	assert.Equal(t, "odd:3", Finally(ctx, Fail[int](oddErr(3)), show, describe))
}

func addStep(n int) func(ctx context.Context, in rop.Result[int, checkErr]) rop.Result[int, checkErr] {
	return func(ctx context.Context, in rop.Result[int, checkErr]) rop.Result[int, checkErr] {
		return Map(ctx, in, func(_ context.Context, v int) int { return v + n })
	}
}

func failStep(e checkErr) func(ctx context.Context, in rop.Result[int, checkErr]) rop.Result[int, checkErr] {
	return func(ctx context.Context, in rop.Result[int, checkErr]) rop.Result[int, checkErr] {
		return Fail[int](e)
	}
}

func passThrough(_ context.Context, current rop.Result[int, checkErr]) rop.Result[int, checkErr] {
	return current
}

func TestJoin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Join(ctx, Succeed[int, checkErr](1), true, passThrough, addStep(1), addStep(10))
	assert.Equal(t, rop.Success[int, checkErr](12), out)

	executed := 0
	counting := func(ctx context.Context, in rop.Result[int, checkErr]) rop.Result[int, checkErr] {
		executed++
		return in
	}
	out = Join(ctx, Succeed[int, checkErr](1), true, passThrough, failStep(small(1)), counting)
	assert.Equal(t, rop.Fail[int](small(1)), out)
	assert.Zero(t, executed)

	out = Join(ctx, Succeed[int, checkErr](1), false, passThrough, failStep(small(1)), counting)
	assert.Equal(t, rop.Fail[int](small(1)), out)
	assert.Equal(t, 1, executed)
}

func TestJoin_StopsOnDoneContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := Succeed[int, checkErr](1)
	require.Equal(t, in, Join(ctx, in, true, passThrough, addStep(1)))
	require.Equal(t, in, Join(context.Background(), in, true, nil, addStep(1)))
	require.Equal(t, in, Join[int, checkErr](context.Background(), in, true, passThrough))
}
