package scripting

import "errors"

// Sentinel errors shared by all backends. The session layer wraps these into
// its richer error types; backends only need to make the cause recognizable.
var (
	// ErrNoEngine means no running instance exposes the scripting engine.
	ErrNoEngine = errors.New("scripting engine not available")
	// ErrNoConnection means the application has no connection at the
	// requested index.
	ErrNoConnection = errors.New("no open connection")
	// ErrNoSession means the connection has no session at the requested index.
	ErrNoSession = errors.New("no open session")
	// ErrNotFound means an address or name lookup missed.
	ErrNotFound = errors.New("element not found")
	// ErrNotSupported means the control does not expose the requested
	// property or action.
	ErrNotSupported = errors.New("operation not supported by control")
)
