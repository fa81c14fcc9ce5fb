package async

import (
	"context"
)

// Future is the eventual result of a function started by Async.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the function returns.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext is Await bounded by ctx. When ctx ends first it returns
// ctx.Err(); the function keeps running and the Future still completes.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// Done is closed once the result is available.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async calls fn(ctx, param) on a new goroutine. If ctx is already done the
// function is not called and the Future resolves with ctx.Err().
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// WaitAll awaits every future in order and returns their results. It stops at
// the first error, returning the results gathered so far alongside it.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	if len(futures) == 0 {
		return nil, ErrNoFutures
	}

	results := make([]U, len(futures))
	for i, future := range futures {
		res, err := future.Await()
		results[i] = res
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
