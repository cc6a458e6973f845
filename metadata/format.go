package metadata

import (
	"fmt"
)

const DefaultApplicationName = `C* Music Player`

// FormatTitle returns "artist - title", or fallback when either tag is
// missing.
func (self *Metadata) FormatTitle(fallback string) string {
	if self.Artist != `` && self.Title != `` {
		return fmt.Sprintf("%s - %s", self.Artist, self.Title)
	}

	return fallback
}

func (self *Metadata) StatusSuffix() string {
	switch self.Status {
	case StatusPaused:
		return ` [Paused]`
	case StatusStopped:
		return ` [Stopped]`
	default:
		return ``
	}
}

// TrackLabel is empty when no track number was reported.
func (self *Metadata) TrackLabel() string {
	if self.TrackNumber == 0 {
		return ``
	} else if self.DiscNumber > 0 {
		return fmt.Sprintf("disc %d, track %d", self.DiscNumber, self.TrackNumber)
	} else {
		return fmt.Sprintf("track %d", self.TrackNumber)
	}
}

// DurationLabel renders "position / duration", or just the duration before
// playback has started. Empty when the duration is unknown.
func (self *Metadata) DurationLabel() string {
	if self.Duration == 0 {
		return ``
	}

	if self.Position > 0 {
		return fmt.Sprintf("%s / %s", FormatTime(self.Position), FormatTime(self.Duration))
	}

	return FormatTime(self.Duration)
}

// Message is the notification body: album and status on the first line,
// track and timing on the second.
func (self *Metadata) Message() string {
	body := fmt.Sprintf("%s%s\n%s", self.Album, self.StatusSuffix(), self.TrackLabel())

	if duration := self.DurationLabel(); duration != `` {
		body += `, ` + duration
	}

	return body
}

// FormatTime renders seconds as MM:SS, or HH:MM:SS from one hour up.
func FormatTime(seconds uint32) string {
	var hours uint32

	minutes := seconds / 60
	seconds = seconds % 60

	if minutes >= 60 {
		hours = minutes / 60
		minutes = minutes % 60
	}

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}

	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
