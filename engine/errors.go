package engine

import "errors"

// ErrInvalidParameters is returned by New when width, height, players,
// or the region limit is zero.
var ErrInvalidParameters = errors.New("gamma: width, height, players and area must all be positive")

// ErrNilGame is returned by operations invoked on a nil *Game where the
// original C API would have treated the pointer as an error condition
// rather than silently no-op'ing.
var ErrNilGame = errors.New("gamma: nil game")
