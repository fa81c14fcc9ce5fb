// Package imageload fetches remote images over HTTP and decodes them.
//
// Fetch is synchronous. Load runs Fetch on its own goroutine and returns an
// async.Future. LoadInto is fire-and-forget: the decoded image is handed to a
// callback on success, and failures are logged and otherwise dropped.
//
//	l := imageload.New(imageload.WithLogger(log))
//	l.LoadInto(ctx, avatarURL, func(img image.Image) {
//		thumbnails.Store(userID, img)
//	})
//
// PNG, JPEG and GIF decoders are registered by this package.
package imageload
