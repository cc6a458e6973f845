package cmusnotify

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrShortWrite     = errors.New(`short write`)
	ErrZeroLengthRead = errors.New(`zero-length read before end of response`)
	ErrMissingSpace   = errors.New(`missing space separator`)
)

// A ConnectionError is returned when the player's socket cannot be reached.
// The player is most likely not running.
type ConnectionError struct {
	Address string
	Err     error
}

func (self *ConnectionError) Error() string {
	if self.Address == `` {
		return fmt.Sprintf("no socket path available: %v", self.Err)
	}

	return fmt.Sprintf("cannot connect to %v: %v", self.Address, self.Err)
}

func (self *ConnectionError) Unwrap() error {
	return self.Err
}

// A TransportError is returned when reading from or writing to an
// established connection fails.
type TransportError struct {
	Op  string
	Err error
}

func (self *TransportError) Error() string {
	return fmt.Sprintf("socket %v: %v", self.Op, self.Err)
}

func (self *TransportError) Unwrap() error {
	return self.Err
}

// A MalformedError is returned when a response line cannot be decoded. Line
// is 1-based.
type MalformedError struct {
	Line  int
	Text  string
	Field string
	Err   error
}

func (self *MalformedError) Error() string {
	if self.Field != `` {
		return fmt.Sprintf("malformed response at line %d (%q): field %v: %v", self.Line, self.Text, self.Field, self.Err)
	}

	return fmt.Sprintf("malformed response at line %d (%q): %v", self.Line, self.Text, self.Err)
}

func (self *MalformedError) Unwrap() error {
	return self.Err
}

func IsConnectionError(err error) bool {
	var cerr *ConnectionError
	return errors.As(err, &cerr)
}

func IsTransportError(err error) bool {
	var terr *TransportError
	return errors.As(err, &terr)
}

func IsMalformedError(err error) bool {
	var merr *MalformedError
	return errors.As(err, &merr)
}
