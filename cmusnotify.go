// Package cmusnotify queries a running cmus over its control socket and shows
// the current track as a desktop notification.
package cmusnotify

import (
	"github.com/ghetzel/cmusnotify/metadata"
	"github.com/ghetzel/cmusnotify/notify"
	"github.com/ghetzel/cmusnotify/socket"
	"github.com/ghetzel/go-stockutil/log"
	"github.com/pkg/errors"
)

const Version = `0.1.0`

var ErrNoSocketPath = errors.New(`socket path could not be determined`)

type Notifier struct {
	config    *Configuration
	resolver  socket.Resolver
	deliverer notify.Deliverer
}

func NewNotifier(config *Configuration, resolver socket.Resolver, deliverer notify.Deliverer) *Notifier {
	if config == nil {
		config = DefaultConfiguration()
	}

	return &Notifier{
		config:    config,
		resolver:  resolver,
		deliverer: deliverer,
	}
}

// Status performs one status exchange with the player and parses the reply.
func (self *Notifier) Status() (*metadata.Metadata, error) {
	address, ok := self.resolver.Resolve()

	if !ok {
		return nil, &ConnectionError{
			Err: ErrNoSocketPath,
		}
	}

	log.Debugf("Using socket %v", address)

	client, err := Dial(`unix`, address)

	if err != nil {
		return nil, err
	}

	response, err := client.Exchange(StatusCommand())

	if cerr := client.Close(); err == nil && cerr != nil {
		err = &TransportError{
			Op:  `close`,
			Err: cerr,
		}
	}

	if err != nil {
		return nil, err
	}

	return ParseStatus(response)
}

// Run queries the player and delivers a notification describing the current
// track. When the player cannot be reached a "not running" notification is
// delivered instead and no error is returned.
func (self *Notifier) Run() error {
	if self.deliverer == nil {
		return errors.New(`no notification backend configured`)
	}

	m, err := self.Status()

	if err != nil {
		if IsConnectionError(err) {
			log.Infof("Player not reachable: %v", err)
			return self.deliver(self.NotRunning())
		}

		return err
	}

	return self.deliver(self.Notification(m))
}

// Notification builds the notification for the given player state.
func (self *Notifier) Notification(m *metadata.Metadata) notify.Notification {
	n := notify.Notification{
		Title:     m.FormatTitle(self.config.AppName),
		Body:      m.Message(),
		Icon:      self.config.Icon,
		Timeout:   self.config.Timeout,
		Transient: true,
		Urgency:   notify.UrgencyNormal,
	}

	if cover, ok := m.Cover(); ok {
		log.Debugf("Using cover %v", cover)
		n.Icon = cover
	}

	return n
}

func (self *Notifier) NotRunning() notify.Notification {
	return notify.Notification{
		Title:     self.config.AppName,
		Body:      self.config.NotRunning,
		Icon:      self.config.Icon,
		Timeout:   self.config.Timeout,
		Transient: true,
		Urgency:   notify.UrgencyNormal,
	}
}

func (self *Notifier) deliver(n notify.Notification) error {
	log.Debugf("Notify: %q %q (icon: %v)", n.Title, n.Body, n.Icon)

	if err := self.deliverer.Deliver(n); err != nil {
		return errors.Wrap(err, `notification failed`)
	}

	return nil
}
