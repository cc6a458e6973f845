// Package notify delivers desktop notifications.
package notify

import (
	"fmt"
	"runtime"

	"github.com/ghetzel/go-stockutil/log"
)

// Urgency levels as defined by the freedesktop notification spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const (
	BackendAuto             = `auto`
	BackendDBus             = `dbus`
	BackendNotifySend       = `notify-send`
	BackendTerminalNotifier = `terminal-notifier`
)

type Notification struct {
	Title     string
	Body      string
	Icon      string  // path to an image or an icon name
	Timeout   int32   // ms, -1 = server default
	Transient bool    // do not keep in the notification history
	Urgency   Urgency
}

// A Deliverer shows a notification. Delivery is not confirmed or retried.
type Deliverer interface {
	Deliver(n Notification) error
}

// New returns the named back end. BackendAuto (or an empty name) prefers
// D-Bus and falls back to the platform's command-line notifier.
func New(backend string, appName string) (Deliverer, error) {
	switch backend {
	case ``, BackendAuto:
		if deliverer, err := NewDBus(appName); err == nil {
			return deliverer, nil
		} else {
			log.Debugf("D-Bus unavailable, using %v: %v", platformBackend(), err)
			return New(platformBackend(), appName)
		}

	case BackendDBus:
		return NewDBus(appName)

	case BackendNotifySend:
		return NewNotifySend(), nil

	case BackendTerminalNotifier:
		return NewTerminalNotifier(DefaultGroup), nil

	default:
		return nil, fmt.Errorf("unknown notification backend %q", backend)
	}
}

func platformBackend() string {
	if runtime.GOOS == `darwin` {
		return BackendTerminalNotifier
	}

	return BackendNotifySend
}
