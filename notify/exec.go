package notify

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/ghetzel/argonaut"
	"github.com/ghetzel/go-stockutil/log"
	"github.com/kballard/go-shellquote"
)

const DefaultGroup = `cmus`

type notifySend struct {
	Command    argonaut.CommandName `argonaut:"notify-send"`
	Hint       string               `argonaut:"hint"`
	Urgency    string               `argonaut:"urgency"`
	ExpireTime int32                `argonaut:"expire-time"`
	Icon       string               `argonaut:"icon"`
	Summary    string               `argonaut:",positional,required"`
	Body       string               `argonaut:",positional"`
}

type terminalNotifier struct {
	Command argonaut.CommandName `argonaut:"terminal-notifier"`
	Group   string               `argonaut:"group,short"`
	Title   string               `argonaut:"title,short"`
	Message string               `argonaut:"message,short"`
	AppIcon string               `argonaut:"appIcon,short"`
}

// execDeliverer runs an external notifier and does not wait for it to exit.
type execDeliverer struct {
	name    string
	command func(Notification) interface{}
	start   func(*exec.Cmd) error
}

// NewNotifySend runs notify-send(1).
func NewNotifySend() Deliverer {
	return &execDeliverer{
		name: BackendNotifySend,
		command: func(n Notification) interface{} {
			args := &notifySend{
				Urgency: urgencyName(n.Urgency),
				Icon:    n.Icon,
				Summary: n.Title,
				Body:    n.Body,
			}

			if n.Transient {
				args.Hint = `int:transient:1`
			}

			if n.Timeout > 0 {
				args.ExpireTime = n.Timeout
			}

			return args
		},
		start: startCommand,
	}
}

// NewTerminalNotifier runs terminal-notifier on macOS. Notifications in the
// same group replace each other.
func NewTerminalNotifier(group string) Deliverer {
	return &execDeliverer{
		name: BackendTerminalNotifier,
		command: func(n Notification) interface{} {
			args := &terminalNotifier{
				Group:   group,
				Title:   n.Title,
				Message: n.Body,
			}

			// only image files; icon theme names mean nothing here
			if filepath.IsAbs(n.Icon) {
				args.AppIcon = n.Icon
			}

			return args
		},
		start: startCommand,
	}
}

func (self *execDeliverer) Deliver(n Notification) error {
	if cmd, err := argonaut.Command(self.command(n)); err == nil {
		log.Debugf("%v: %v", self.name, shellquote.Join(cmd.Args...))

		if err := self.start(cmd); err != nil {
			return fmt.Errorf("%v: %v", self.name, err)
		}

		return nil
	} else {
		return fmt.Errorf("%v: %v", self.name, err)
	}
}

func startCommand(cmd *exec.Cmd) error {
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	return cmd.Start()
}

func urgencyName(urgency Urgency) string {
	switch urgency {
	case UrgencyLow:
		return `low`
	case UrgencyCritical:
		return `critical`
	default:
		return `normal`
	}
}
