package service

import (
	"net"

	"responder/pkg/logflags"
)

// Server represents a server bound to a listener that remote
// clients connect to.
type Server interface {
	Run() error
	Stop() error
}

type ServerImpl struct {
	Logger   logflags.Logger
	Listener net.Listener
}

func (si *ServerImpl) SetupLogger(flag bool, logStr, logDest string) error {
	err := logflags.Setup(flag, logStr, logDest)
	if err != nil {
		return err
	}

	si.Logger = logflags.HTTPLogger()
	return nil
}
