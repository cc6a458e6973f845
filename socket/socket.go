// Package socket locates the player's control socket.
package socket

// A Resolver returns the socket path, or false when none can be determined.
type Resolver interface {
	Resolve() (string, bool)
}

// Static always resolves to the given path. An empty path resolves to
// nothing.
type Static string

func (self Static) Resolve() (string, bool) {
	return string(self), self != ``
}

// Default returns the resolver for the platform's conventional location.
func Default() Resolver {
	return defaultResolver{}
}
