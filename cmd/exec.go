package cmd

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"responder/config"
	"responder/pkg/logflags"
	"responder/service"
	"responder/service/http"
	"responder/utils"
)

type ExecType int

const (
	Serve ExecType = iota
	Probe
)

type executor struct {
	et     ExecType
	ctx    *cli.Context
	stdout io.Writer
	clock  clockwork.Clock

	// started, when set, receives the server once it is listening.
	started func(service.Server)
}

func newExecutor(et ExecType, ctx *cli.Context) *executor {
	return &executor{
		et:     et,
		ctx:    ctx,
		stdout: os.Stdout,
		clock:  clockwork.NewRealClock(),
	}
}

func (e *executor) run() error {
	switch e.et {
	case Serve:
		return e.serve()
	case Probe:
		return e.probe()
	}

	return nil
}

func exec(et ExecType, ctx *cli.Context) error {
	ex := newExecutor(et, ctx)
	return ex.run()
}

func (e *executor) serve() error {
	ctx := e.ctx
	access := logflags.AccessLogger(e.stdout, e.clock)

	cfg, err := config.Resolve(ctx.String("host"), ctx.String("port"))
	if err != nil {
		access.Warnf("ignoring %s: %v, using %d", config.PortEnv, err, cfg.Port)
	}

	listener, err := listen(cfg)
	if err != nil {
		return err
	}

	server := http.NewServer(listener, access)
	if err := server.SetupLogger(ctx.Bool("logFlag"), ctx.String("logStr"), ctx.String("logDesc")); err != nil {
		listener.Close()
		return err
	}

	access.Infof("Server running at %s", boundConfig(cfg, listener.Addr()).URL())
	if e.started != nil {
		e.started(server)
	}

	return server.Run()
}

func listen(cfg *config.Config) (net.Listener, error) {
	listener, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to listen on %s", cfg.Address())
	}

	return listener, nil
}

// boundConfig reports the port the kernel picked when cfg asked for port 0.
func boundConfig(cfg *config.Config, addr net.Addr) *config.Config {
	bound := *cfg
	if tcp, ok := addr.(*net.TCPAddr); ok {
		bound.Port = tcp.Port
	}

	return &bound
}

func (e *executor) probe() error {
	ctx := e.ctx

	addr := ctx.Args().First()
	if addr == "" {
		cfg, _ := config.Resolve("", ctx.String("port"))
		addr = cfg.Address()
	}
	addr = utils.ProbeAddr(addr)

	timeout := ctx.Duration("timeout")
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	if !utils.Telnet(addr, timeout) {
		return fmt.Errorf("invalid connection address: %s", addr)
	}

	var client service.Client = http.NewClient(addr, timeout)

	msg, err := client.Probe(context.Background(), ctx.String("path"))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(e.stdout, "%s %s\n", addr, strconv.Quote(msg))
	return err
}
