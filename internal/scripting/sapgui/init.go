//go:build windows

package sapgui

import "github.com/saptools/sapgui-cli/internal/scripting"

func init() {
	scripting.NewBackendFunc = func(opts scripting.AttachOptions) (scripting.Backend, error) {
		return Attach(opts)
	}
}
