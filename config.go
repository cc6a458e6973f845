package cmusnotify

import (
	"io/ioutil"
	"os"

	"github.com/ghetzel/cmusnotify/metadata"
	"github.com/ghetzel/go-stockutil/pathutil"
	"github.com/ghodss/yaml"
	"github.com/mcuadros/go-defaults"
)

const DefaultConfigPath = `~/.config/cmusnotify/cmusnotify.yml`

type Configuration struct {
	Socket     string `json:"socket,omitempty"`
	Backend    string `json:"backend"          default:"auto"`
	AppName    string `json:"app_name"`
	NotRunning string `json:"not_running"      default:"Not running"`
	Icon       string `json:"icon"             default:"applications-multimedia"`
	Timeout    int32  `json:"timeout"          default:"-1"`
}

func DefaultConfiguration() *Configuration {
	config := new(Configuration)
	config.applyDefaults()

	return config
}

// LoadConfigFromFile reads a YAML configuration. A file that does not exist
// yields the defaults.
func LoadConfigFromFile(f string) (*Configuration, error) {
	if filename, err := pathutil.ExpandUser(f); err == nil {
		var config Configuration

		if file, err := os.Open(filename); err == nil {
			defer file.Close()

			if data, err := ioutil.ReadAll(file); err == nil {
				if err := yaml.Unmarshal(data, &config); err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}

		config.applyDefaults()

		return &config, nil
	} else {
		return nil, err
	}
}

func (self *Configuration) applyDefaults() {
	defaults.SetDefaults(self)

	if self.AppName == `` {
		self.AppName = metadata.DefaultApplicationName
	}

	if self.Socket != `` {
		if path, err := pathutil.ExpandUser(self.Socket); err == nil {
			self.Socket = path
		}
	}
}
