package cmusnotify

import (
	"io"
	"net"
	"strings"

	"github.com/ghetzel/go-stockutil/log"
	"github.com/ghetzel/go-stockutil/stringutil"
	"github.com/pkg/errors"
)

const (
	ReadBufferSize = 2048
	MaxLineLength  = 1048576
)

type halfCloser interface {
	CloseRead() error
	CloseWrite() error
}

// A Client performs request/response exchanges over a connected stream.
// Requests are a single line; responses are newline-separated records
// ending in a blank line.
type Client struct {
	id   string
	conn io.ReadWriteCloser
}

func NewClient(conn io.ReadWriteCloser) *Client {
	return &Client{
		id:   stringutil.UUID().String(),
		conn: conn,
	}
}

// Dial connects to the player. Any failure is returned as a *ConnectionError.
func Dial(network string, address string) (*Client, error) {
	if conn, err := net.Dial(network, address); err == nil {
		client := NewClient(conn)
		log.Debugf("[%v] connected to %v", client.ID(), address)

		return client, nil
	} else {
		return nil, &ConnectionError{
			Address: address,
			Err:     err,
		}
	}
}

func (self *Client) ID() string {
	return self.id
}

// Send writes the command's request in one write. A write that does not
// accept the whole payload is an error.
func (self *Client) Send(c *cmd) error {
	out := c.Request()

	log.Debugf("[%v] CMD: %v", self.ID(), c)

	if n, err := self.conn.Write(out); err != nil {
		return &TransportError{
			Op:  `write`,
			Err: errors.Wrapf(err, "command %q", c.Command),
		}
	} else if n != len(out) {
		return &TransportError{
			Op:  `write`,
			Err: errors.Wrapf(ErrShortWrite, "wrote %d of %d bytes", n, len(out)),
		}
	}

	return nil
}

// Receive reads until the accumulated response ends with a blank line and
// returns everything read, terminator included.
func (self *Client) Receive() (string, error) {
	buf := make([]byte, ReadBufferSize)
	var response strings.Builder

	for {
		n, err := self.conn.Read(buf)
		response.Write(buf[:n])

		if strings.HasSuffix(response.String(), ResponseTerminator) {
			log.Dumpf("[%v] reply: %v", self.ID(), response.String())
			return response.String(), nil
		}

		if err == io.EOF {
			return ``, &TransportError{
				Op:  `read`,
				Err: errors.Wrapf(io.ErrUnexpectedEOF, "after %d bytes", response.Len()),
			}
		} else if err != nil {
			return ``, &TransportError{
				Op:  `read`,
				Err: err,
			}
		} else if n == 0 {
			return ``, &TransportError{
				Op:  `read`,
				Err: errors.Wrapf(ErrZeroLengthRead, "after %d bytes", response.Len()),
			}
		}
	}
}

// Exchange sends the command and waits for the full response.
func (self *Client) Exchange(c *cmd) (string, error) {
	if err := self.Send(c); err != nil {
		return ``, err
	}

	return self.Receive()
}

// Close shuts down both directions of the connection when supported, then
// closes it.
func (self *Client) Close() error {
	if hc, ok := self.conn.(halfCloser); ok {
		if err := hc.CloseWrite(); err != nil {
			log.Warningf("[%v] shutdown write: %v", self.ID(), err)
		}

		if err := hc.CloseRead(); err != nil {
			log.Warningf("[%v] shutdown read: %v", self.ID(), err)
		}
	}

	defer log.Debugf("[%v] disconnected", self.ID())

	return self.conn.Close()
}
