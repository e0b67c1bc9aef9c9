package cmd

import (
	"github.com/urfave/cli"

	"responder/config"
	"responder/pkg/logflags"
	"responder/utils"
)

var serveFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "host",
		Usage: "interface to bind",
		Value: config.DefaultHost,
	},
	cli.StringFlag{
		Name:   "port, p",
		Usage:  "TCP port to listen on",
		Value:  "",
		EnvVar: config.PortEnv,
	},
	cli.BoolFlag{
		Name:  "logFlag, f",
		Usage: "enable debug logging",
	},
	cli.StringFlag{
		Name:  "logStr, s",
		Usage: "comma separated debug log components",
		Value: "http",
	},
	cli.StringFlag{
		Name:  "logDesc, d",
		Usage: "specify the debug log file path, stderr when empty",
		Value: logflags.DefaultLogDesc,
	},
}

var serve = cli.Command{
	Name:  "serve",
	Usage: "listen and answer every request",
	Flags: serveFlags,
	Action: func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 0, utils.ExactArgs, nil); err != nil {
			return err
		}

		return exec(Serve, context)
	},
}
