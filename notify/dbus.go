package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = `org.freedesktop.Notifications`
	dbusNotifyPath      = `/org/freedesktop/Notifications`
	dbusNotifyInterface = `org.freedesktop.Notifications`
)

type dbusDeliverer struct {
	appName string
	conn    *dbus.Conn
	obj     dbus.BusObject
}

// NewDBus connects to the session bus.
func NewDBus(appName string) (Deliverer, error) {
	if conn, err := dbus.SessionBus(); err == nil {
		return &dbusDeliverer{
			appName: appName,
			conn:    conn,
			obj:     conn.Object(dbusNotifyDest, dbus.ObjectPath(dbusNotifyPath)),
		}, nil
	} else {
		return nil, err
	}
}

func (self *dbusDeliverer) Deliver(n Notification) error {
	hints := map[string]dbus.Variant{
		`urgency`: dbus.MakeVariant(byte(n.Urgency)),
	}

	if n.Transient {
		hints[`transient`] = dbus.MakeVariant(true)
	}

	// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout)
	call := self.obj.Call(
		dbusNotifyInterface+`.Notify`,
		0,
		self.appName,
		uint32(0),
		n.Icon,
		n.Title,
		n.Body,
		[]string{},
		hints,
		n.Timeout,
	)

	return call.Err
}
