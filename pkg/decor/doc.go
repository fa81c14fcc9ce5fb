// Package decor holds the small pieces of layout arithmetic shared by UI
// surfaces: borders with rounded corners, edge insets, and the inset math for
// buttons that place an image beside or above their title.
//
// Values are plain structs. Style methods render them as inline CSS for the
// HTML side; the inset functions return numbers for any renderer.
package decor
