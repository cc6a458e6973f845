package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/ghetzel/cli"
	"github.com/ghetzel/cmusnotify"
	"github.com/ghetzel/cmusnotify/metadata"
	"github.com/ghetzel/cmusnotify/notify"
	"github.com/ghetzel/cmusnotify/socket"
	"github.com/ghetzel/go-stockutil/log"
)

func main() {
	app := cli.NewApp()
	app.Name = `cmusnotify`
	app.Usage = `Show the track cmus is playing as a desktop notification.`
	app.Version = cmusnotify.Version

	var config *cmusnotify.Configuration

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   `log-level, L`,
			Usage:  `Level of log output verbosity`,
			Value:  `warning`,
			EnvVar: `LOGLEVEL`,
		},
		cli.StringFlag{
			Name:  `config, c`,
			Usage: `The path to the configuration file.`,
			Value: cmusnotify.DefaultConfigPath,
		},
		cli.StringFlag{
			Name:   `socket, s`,
			Usage:  `The path to the cmus socket (default: platform location).`,
			EnvVar: `CMUS_SOCKET`,
		},
		cli.StringFlag{
			Name:   `backend, b`,
			Usage:  `Notification backend: auto, dbus, notify-send, or terminal-notifier.`,
			EnvVar: `CMUSNOTIFY_BACKEND`,
		},
	}

	app.Before = func(c *cli.Context) error {
		log.SetLevelString(c.String(`log-level`))

		if cfg, err := cmusnotify.LoadConfigFromFile(c.String(`config`)); err == nil {
			config = cfg
		} else {
			return err
		}

		if v := c.String(`socket`); v != `` {
			config.Socket = v
		}

		if v := c.String(`backend`); v != `` {
			config.Backend = v
		}

		return nil
	}

	app.Action = func(c *cli.Context) {
		if deliverer, err := notify.New(config.Backend, config.AppName); err == nil {
			if err := cmusnotify.NewNotifier(config, resolver(config), deliverer).Run(); err != nil {
				log.Fatal(err)
			}
		} else {
			log.Fatal(err)
		}
	}

	app.Commands = []cli.Command{
		{
			Name:  `status`,
			Usage: `Query cmus and print the parsed status without notifying.`,
			Action: func(c *cli.Context) {
				if m, err := cmusnotify.NewNotifier(config, resolver(config), nil).Status(); err == nil {
					printMetadata(config, m)
				} else {
					log.Fatal(err)
				}
			},
		}, {
			Name:      `format`,
			Usage:     `Parse a saved status response and print the notification it would produce.`,
			ArgsUsage: `[FILE]`,
			Action: func(c *cli.Context) {
				var data []byte
				var err error

				if filename := c.Args().First(); filename != `` && filename != `-` {
					data, err = ioutil.ReadFile(filename)
				} else {
					data, err = ioutil.ReadAll(os.Stdin)
				}

				if err != nil {
					log.Fatal(err)
				}

				if m, err := cmusnotify.ParseStatus(string(data)); err == nil {
					printMetadata(config, m)
				} else {
					log.Fatal(err)
				}
			},
		},
	}

	app.Run(os.Args)
}

func resolver(config *cmusnotify.Configuration) socket.Resolver {
	if config.Socket != `` {
		return socket.Static(config.Socket)
	}

	return socket.Default()
}

func printMetadata(config *cmusnotify.Configuration, m *metadata.Metadata) {
	n := cmusnotify.NewNotifier(config, nil, nil).Notification(m)

	if output, err := json.MarshalIndent(map[string]interface{}{
		`metadata`: m.Map(),
		`title`:    n.Title,
		`message`:  n.Body,
		`icon`:     n.Icon,
	}, ``, `  `); err == nil {
		fmt.Println(string(output))
	} else {
		log.Fatal(err)
	}
}
