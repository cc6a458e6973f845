package cmusnotify

import (
	"bufio"
	"strings"

	"github.com/ghetzel/go-stockutil/stringutil"
	"github.com/kballard/go-shellquote"
)

const (
	RecordSeparator    = "\n"
	ResponseTerminator = "\n\n"
	TagKeyword         = `tag`
)

type cmd struct {
	Command   string
	Arguments []string
}

func NewCommand(command string, args ...string) *cmd {
	return &cmd{
		Command:   command,
		Arguments: args,
	}
}

// StatusCommand asks the player for its playback state, the current file and
// its tags.
func StatusCommand() *cmd {
	return NewCommand(`status`)
}

func (self *cmd) String() string {
	if len(self.Arguments) == 0 {
		return self.Command
	}

	return self.Command + ` ` + shellquote.Join(self.Arguments...)
}

// Request returns the bytes written to the socket for this command.
func (self *cmd) Request() []byte {
	return []byte(self.String() + RecordSeparator)
}

// A Record is one line of a response: a keyword and everything after the
// first space.
type Record struct {
	Line    int
	Keyword string
	Value   string
	text    string
}

// Tag splits the value of a `tag` record into the tag name and its value.
func (self Record) Tag() (string, string, error) {
	if !strings.Contains(self.Value, ` `) {
		return ``, ``, &MalformedError{
			Line: self.Line,
			Text: self.text,
			Err:  ErrMissingSpace,
		}
	}

	name, value := stringutil.SplitPair(self.Value, ` `)
	return name, value, nil
}

func (self Record) IsTag() bool {
	return self.Keyword == TagKeyword
}

type Response struct {
	Records []Record
}

// DecodeResponse splits raw response text into records. Blank lines are
// skipped; any other line must contain a space.
func DecodeResponse(text string) (*Response, error) {
	response := &Response{
		Records: make([]Record, 0),
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, ReadBufferSize), MaxLineLength)

	var lineno int

	for scanner.Scan() {
		lineno += 1
		line := scanner.Text()

		if line == `` {
			continue
		}

		if !strings.Contains(line, ` `) {
			return nil, &MalformedError{
				Line: lineno,
				Text: line,
				Err:  ErrMissingSpace,
			}
		}

		keyword, value := stringutil.SplitPair(line, ` `)

		response.Records = append(response.Records, Record{
			Line:    lineno,
			Keyword: keyword,
			Value:   value,
			text:    line,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, &MalformedError{
			Line: lineno + 1,
			Err:  err,
		}
	}

	return response, nil
}
