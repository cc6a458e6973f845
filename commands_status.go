package cmusnotify

import (
	"strconv"

	"github.com/ghetzel/cmusnotify/metadata"
)

// ParseStatus builds Metadata from the response to a `status` command.
//
// Top-level records:
// - status:   playing, paused, stopped, or anything the player reports
// - file:     absolute path of the loaded track
// - duration: track length in seconds
// - position: elapsed seconds
// - tag:      "<name> <value>", where name is one of title, artist, album,
//             date, tracknumber, discnumber
//
// Unknown keywords and tag names are skipped. A known numeric field that does
// not parse, or does not fit its type, fails the whole parse.
func ParseStatus(text string) (*metadata.Metadata, error) {
	response, err := DecodeResponse(text)

	if err != nil {
		return nil, err
	}

	var m metadata.Metadata

	for _, record := range response.Records {
		switch record.Keyword {
		case `status`:
			m.Status = metadata.Status(record.Value)
		case `file`:
			m.File = record.Value
		case `duration`:
			if m.Duration, err = parseUint32(record, `duration`, record.Value); err != nil {
				return nil, err
			}
		case `position`:
			if m.Position, err = parseUint32(record, `position`, record.Value); err != nil {
				return nil, err
			}
		case TagKeyword:
			if err := applyTag(&m, record); err != nil {
				return nil, err
			}
		}
	}

	return &m, nil
}

func applyTag(m *metadata.Metadata, record Record) error {
	name, value, err := record.Tag()

	if err != nil {
		return err
	}

	switch name {
	case `title`:
		m.Title = value
	case `artist`:
		m.Artist = value
	case `album`:
		m.Album = value
	case `date`:
		m.Date = value
	case `tracknumber`:
		m.TrackNumber, err = parseUint8(record, name, value)
	case `discnumber`:
		m.DiscNumber, err = parseUint8(record, name, value)
	}

	return err
}

func parseUint32(record Record, field string, value string) (uint32, error) {
	if v, err := strconv.ParseUint(value, 10, 32); err == nil {
		return uint32(v), nil
	} else {
		return 0, malformedField(record, field, err)
	}
}

func parseUint8(record Record, field string, value string) (uint8, error) {
	if v, err := strconv.ParseUint(value, 10, 8); err == nil {
		return uint8(v), nil
	} else {
		return 0, malformedField(record, field, err)
	}
}

func malformedField(record Record, field string, err error) error {
	return &MalformedError{
		Line:  record.Line,
		Text:  record.text,
		Field: field,
		Err:   err,
	}
}
