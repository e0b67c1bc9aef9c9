package cmd

import (
	"github.com/urfave/cli"

	"responder/utils"
)

const (
	usage = `responder answers every HTTP request with a fixed JSON document,
             a smoke-test target for checking that a reverse proxy is wired up`
)

func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "responder"
	app.Usage = usage
	app.Commands = []cli.Command{
		serve,
		probe,
	}
	// Flags live on serve only; a bare invocation runs serve with its own
	// flag set so PORT is honoured the same way.
	app.Action = func(context *cli.Context) error {
		if err := utils.CheckArgs(context, 0, utils.ExactArgs, nil); err != nil {
			return err
		}

		return context.App.Command(serve.Name).Run(context)
	}

	return app
}
