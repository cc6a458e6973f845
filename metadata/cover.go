package metadata

import (
	"os"
	"path/filepath"
)

// CoverNames are checked in order next to the playing file.
var CoverNames = []string{
	`cover.jpg`,
	`cover.png`,
}

// Cover returns the cover image for the current file, if there is one.
func (self *Metadata) Cover() (string, bool) {
	return ResolveCover(self.File)
}

// ResolveCover looks for a regular file named after one of CoverNames in the
// directory containing file. Names are matched exactly.
func ResolveCover(file string) (string, bool) {
	if file == `` {
		return ``, false
	}

	dir := filepath.Dir(file)

	if dir == filepath.Clean(file) {
		return ``, false
	}

	for _, name := range CoverNames {
		candidate := filepath.Join(dir, name)

		if stat, err := os.Stat(candidate); err == nil && stat.Mode().IsRegular() {
			return candidate, true
		}
	}

	return ``, false
}
