package env

import (
	"errors"

	"github.com/mohamedayman15069/Agar/internal/config"
	"github.com/mohamedayman15069/Agar/internal/engine"
)

// The error taxonomy of the adapter layer. All three are raised
// synchronously and propagated to the caller without retry or partial
// construction.
var (
	// ErrInvalidArgument reports an unsupported observation type,
	// unsupported difficulty or invalid parameter value.
	ErrInvalidArgument = config.ErrInvalidArgument

	// ErrUnavailable reports that the screen encoding was requested
	// against an engine build without rendering support. Distinguishable
	// from ErrInvalidArgument so callers can fall back to another
	// encoding.
	ErrUnavailable = engine.ErrScreenUnavailable

	// ErrNotReset reports a Step call before the first Reset.
	ErrNotReset = errors.New("env: step called before reset")
)
