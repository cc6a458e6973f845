package metadata

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTitle(t *testing.T) {
	tests := []struct {
		artist string
		title  string
		want   string
	}{
		{`Metallideth`, `Orgasmatron`, `Metallideth - Orgasmatron`},
		{`Metallideth`, ``, DefaultApplicationName},
		{``, `Orgasmatron`, DefaultApplicationName},
		{``, ``, DefaultApplicationName},
	}

	for _, tt := range tests {
		m := &Metadata{
			Artist: tt.artist,
			Album:  `Rust in Puppets`,
			Title:  tt.title,
		}

		assert.Equal(t, tt.want, m.FormatTitle(DefaultApplicationName), "artist=%q title=%q", tt.artist, tt.title)
	}
}

func TestFormatTitleIgnoresAlbum(t *testing.T) {
	m := &Metadata{Artist: `A`, Title: `T`}
	assert.Equal(t, `A - T`, m.FormatTitle(`fallback`))
}

func TestStatusSuffix(t *testing.T) {
	for status, want := range map[Status]string{
		`playing`: ``,
		`paused`:  ` [Paused]`,
		`stopped`: ` [Stopped]`,
		``:        ``,
		`garbage`: ``,
	} {
		m := &Metadata{Status: status}
		assert.Equal(t, want, m.StatusSuffix(), "status=%q", status)
	}
}

func TestTrackLabel(t *testing.T) {
	tests := []struct {
		track uint8
		disc  uint8
		want  string
	}{
		{0, 0, ``},
		{0, 3, ``},
		{1, 0, `track 1`},
		{69, 42, `disc 42, track 69`},
		{255, 255, `disc 255, track 255`},
	}

	for _, tt := range tests {
		m := &Metadata{TrackNumber: tt.track, DiscNumber: tt.disc}
		assert.Equal(t, tt.want, m.TrackLabel(), "track=%d disc=%d", tt.track, tt.disc)
	}
}

func TestDurationLabel(t *testing.T) {
	assert.Equal(t, ``, (&Metadata{Duration: 0, Position: 0}).DurationLabel())
	assert.Equal(t, ``, (&Metadata{Duration: 0, Position: 42}).DurationLabel())
	assert.Equal(t, `01:09`, (&Metadata{Duration: 69}).DurationLabel())
	assert.Equal(t, `00:42 / 01:09`, (&Metadata{Duration: 69, Position: 42}).DurationLabel())
	assert.Equal(t, `59:59 / 01:00:00`, (&Metadata{Duration: 3600, Position: 3599}).DurationLabel())
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds uint32
		want    string
	}{
		{0, `00:00`},
		{5, `00:05`},
		{60, `01:00`},
		{69, `01:09`},
		{599, `09:59`},
		{3599, `59:59`},
		{3600, `01:00:00`},
		{3659, `01:00:59`},
		{3660, `01:01:00`},
		{86399, `23:59:59`},
		{360000, `100:00:00`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestFormatTimeRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 59, 61, 3599, 3600, 3601, 3659, 3660, 7325, 45296, 4294967295}

	for i := uint32(0); i < 7300; i += 7 {
		values = append(values, i)
	}

	for _, seconds := range values {
		formatted := FormatTime(seconds)
		parts := strings.Split(formatted, `:`)

		if seconds >= 3600 {
			require.Len(t, parts, 3, formatted)
		} else {
			require.Len(t, parts, 2, formatted)
		}

		var total uint64

		for _, part := range parts {
			require.GreaterOrEqual(t, len(part), 2, formatted)

			v, err := strconv.ParseUint(part, 10, 64)
			require.NoError(t, err)

			total = total*60 + v
		}

		assert.Equal(t, uint64(seconds), total, fmt.Sprintf("%d -> %s", seconds, formatted))
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		m    Metadata
		want string
	}{
		{
			name: `paused without duration`,
			m:    Metadata{Album: `L'Album`, Status: StatusPaused, TrackNumber: 1},
			want: "L'Album [Paused]\ntrack 1",
		},
		{
			name: `playing with position`,
			m:    Metadata{Album: `Rust in Puppets`, Status: StatusPlaying, TrackNumber: 69, DiscNumber: 42, Duration: 258, Position: 123},
			want: "Rust in Puppets\ndisc 42, track 69, 02:03 / 04:18",
		},
		{
			name: `empty album keeps suffix`,
			m:    Metadata{Status: StatusPaused, TrackNumber: 2, Duration: 61},
			want: " [Paused]\ntrack 2, 01:01",
		},
		{
			name: `no track number with duration`,
			m:    Metadata{Album: `A`, Duration: 10},
			want: "A\n, 00:10",
		},
		{
			name: `nothing at all`,
			m:    Metadata{},
			want: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.Message())
		})
	}
}
