package socket

import (
	"github.com/ghetzel/go-stockutil/log"
	"github.com/ghetzel/go-stockutil/pathutil"
)

const DefaultPath = `~/.config/cmus/socket`

type defaultResolver struct{}

func (self defaultResolver) Resolve() (string, bool) {
	if path, err := pathutil.ExpandUser(DefaultPath); err == nil {
		return path, true
	} else {
		log.Warningf("cannot expand %v: %v", DefaultPath, err)
		return ``, false
	}
}
