// Package async runs a function on its own goroutine and hands back a Future
// for its result.
//
//	f := async.Async(ctx, url, fetch)
//	img, err := f.AwaitContext(ctx)
//
// A Future completes exactly once. Await blocks until then; AwaitContext also
// returns early when the waiting context ends, without cancelling the work.
package async
