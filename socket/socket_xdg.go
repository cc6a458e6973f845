//go:build !darwin

package socket

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const SocketName = `cmus-socket`

type defaultResolver struct{}

// Resolve returns $XDG_RUNTIME_DIR/cmus-socket.
func (self defaultResolver) Resolve() (string, bool) {
	if xdg.RuntimeDir == `` {
		return ``, false
	}

	return filepath.Join(xdg.RuntimeDir, SocketName), true
}
