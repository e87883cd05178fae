package scripting

import (
	"fmt"
	"runtime"
)

// AttachOptions selects which connection and session of the running instance
// to drive.
type AttachOptions struct {
	Connection int // index into Application.Children
	Session    int // index into Connection.Children
}

// ErrUnsupported is returned on platforms without a scripting bridge.
var ErrUnsupported = fmt.Errorf("sapgui-cli requires the SAP GUI scripting engine and runs on windows only; current platform is %s/%s", runtime.GOOS, runtime.GOARCH)

// NewBackendFunc is set by bridge packages via init().
// See internal/scripting/sapgui for the Windows COM registration.
var NewBackendFunc func(opts AttachOptions) (Backend, error)

// Attach connects to the running remote instance and returns a live backend.
func Attach(opts AttachOptions) (Backend, error) {
	if NewBackendFunc == nil {
		return nil, ErrUnsupported
	}
	return NewBackendFunc(opts)
}
