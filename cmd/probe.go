package cmd

import (
	"time"

	"github.com/urfave/cli"

	"responder/config"
	"responder/utils"
)

var probe = cli.Command{
	Name:      "probe",
	Usage:     "check that a responder, or the proxy in front of it, answers",
	ArgsUsage: "[address]",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:   "port, p",
			Usage:  "port to probe when no address is given",
			EnvVar: config.PortEnv,
		},
		cli.DurationFlag{
			Name:  "timeout, t",
			Usage: "give up after this long",
			Value: 5 * time.Second,
		},
		cli.StringFlag{
			Name:  "path",
			Usage: "request path",
			Value: "/",
		},
	},
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 1, utils.MaxArgs, nil); err != nil {
			return err
		}

		return exec(Probe, context)
	},
}
