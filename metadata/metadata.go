// Package metadata holds the track information reported by the player and
// the strings derived from it for display.
package metadata

import (
	"github.com/fatih/structs"
)

type Status string

const (
	StatusPlaying Status = `playing`
	StatusPaused  Status = `paused`
	StatusStopped Status = `stopped`
)

// Metadata is the player state for one status query. Zero values mean the
// field was not reported.
type Metadata struct {
	File        string `json:"file"        structs:"file"`
	Artist      string `json:"artist"      structs:"artist"`
	Album       string `json:"album"       structs:"album"`
	Title       string `json:"title"       structs:"title"`
	TrackNumber uint8  `json:"tracknumber" structs:"tracknumber"`
	DiscNumber  uint8  `json:"discnumber"  structs:"discnumber"`
	Date        string `json:"date"        structs:"date"`
	Duration    uint32 `json:"duration"    structs:"duration"`
	Position    uint32 `json:"position"    structs:"position"`
	Status      Status `json:"status"      structs:"status"`
}

// Map returns the fields keyed by their protocol names.
func (self *Metadata) Map() map[string]interface{} {
	return structs.New(self).Map()
}

// HasTrack reports whether a file is loaded.
func (self *Metadata) HasTrack() bool {
	return self.File != ``
}
